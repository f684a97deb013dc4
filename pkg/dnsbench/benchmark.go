package dnsbench

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/ratelimit"
)

// Benchmark is a representation of a benchmark run over a set of DNS servers.
type Benchmark struct {
	// Servers to probe. Every server receives exactly Requests lookups.
	Servers []Server

	// Domain resolved by every request.
	Domain string

	// Requests is the number of sequential lookups per server.
	Requests int

	// Workers bounds how many servers have requests in flight at once.
	Workers int

	// Timeout is the base timeout of a single request. The adaptive timeout
	// only ever lowers it, never raises it.
	Timeout time.Duration

	Protocol Protocol
	LookupIP IPVersion

	// DisableAdaptiveTimeout turns off shrinking of the request timeout after
	// sustained timeout failures.
	DisableAdaptiveTimeout bool

	// Rate applies a global requests/second limit across all probes, 0 means
	// unlimited.
	Rate int

	// Progress optionally observes the benchmark, it carries no control
	// authority.
	Progress ProgressSink

	// ResolverFactory overrides how resolvers are built, used by tests. When
	// nil, plain DNS resolvers are created from Protocol and LookupIP.
	ResolverFactory ResolverFactory

	resolverFactory ResolverFactory
	limiter         ratelimit.Limiter
}

func (b *Benchmark) init() error {
	if b.Domain == "" {
		b.Domain = DefaultDomain
	}
	if b.Requests <= 0 {
		b.Requests = DefaultRequests
	}
	if b.Workers <= 0 {
		b.Workers = DefaultWorkers
	}
	if b.Workers > MaxWorkers {
		return fmt.Errorf("workers %d exceeds the maximum of %d", b.Workers, MaxWorkers)
	}
	if b.Timeout <= 0 {
		b.Timeout = DefaultTimeout
	}
	if b.Protocol == "" {
		b.Protocol = UDPTransport
	}

	b.resolverFactory = b.ResolverFactory
	if b.resolverFactory == nil {
		b.resolverFactory = NewResolverFactory(b.Protocol, b.LookupIP)
	}

	if b.Rate > 0 {
		b.limiter = ratelimit.New(b.Rate)
	}
	return nil
}

// Run executes the benchmark. One probe goroutine is started per server, a
// counting semaphore keeps at most Workers probes inside the request section,
// and Run returns only after every probe finished. Individual request
// failures never fail the run; an error is only returned for an invalid
// configuration.
func (b *Benchmark) Run(ctx context.Context) (*BenchmarkResult, error) {
	if err := b.init(); err != nil {
		return nil, err
	}

	start := time.Now()

	semaphore := make(chan struct{}, b.Workers)
	results := make([]*ServerResult, 0, len(b.Servers))

	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, server := range b.Servers {
		wg.Add(1)
		go func(server Server) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if b.Progress != nil {
				b.Progress.OnServerStart(server, b.Requests)
			}

			result := b.probeServer(ctx, server)

			mu.Lock()
			results = append(results, result)
			mu.Unlock()

			if b.Progress != nil {
				b.Progress.OnServerDone(server)
			}
		}(server)
	}

	wg.Wait()

	rank(results)

	return &BenchmarkResult{
		Results:           results,
		TotalDuration:     time.Since(start),
		Domain:            b.Domain,
		RequestsPerServer: b.Requests,
	}, nil
}
