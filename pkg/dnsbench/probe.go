package dnsbench

import (
	"context"
	"time"
)

// probeState is the adaptive timeout state machine of a single server probe.
// It is private to the probe goroutine and never shared.
type probeState struct {
	baseTimeout         time.Duration
	currentTimeout      time.Duration
	consecutiveTimeouts int
	adaptive            bool
}

func newProbeState(baseTimeout time.Duration, adaptive bool) *probeState {
	return &probeState{
		baseTimeout:    baseTimeout,
		currentTimeout: baseTimeout,
		adaptive:       adaptive,
	}
}

// observe updates the state with the latest measurement. A success always
// clears the failure streak and, with adaptive behavior enabled, restores the
// base timeout immediately. Timeout failures grow the streak and clamp the
// timeout at the 8 and 16 failure thresholds; other failures change nothing.
func (p *probeState) observe(m Measurement) {
	if !m.Failed() {
		p.consecutiveTimeouts = 0
		if p.adaptive {
			p.currentTimeout = p.baseTimeout
		}
		return
	}

	if !p.adaptive || !m.IsTimeout() {
		return
	}

	p.consecutiveTimeouts++
	switch {
	case p.consecutiveTimeouts >= minimizeTimeoutAfterFailures:
		p.currentTimeout = minimalTimeout
	case p.consecutiveTimeouts >= reduceTimeoutAfterFailures:
		if p.currentTimeout > reducedTimeout {
			p.currentTimeout = reducedTimeout
		}
	}
}

// probeServer issues the configured number of strictly sequential lookups
// against one server and folds the measurements into a ServerResult. A failed
// lookup is one measurement, never a reason to stop probing.
func (b *Benchmark) probeServer(ctx context.Context, server Server) *ServerResult {
	measurements := make([]Measurement, 0, b.Requests)
	state := newProbeState(b.Timeout, !b.DisableAdaptiveTimeout)

	for i := 0; i < b.Requests; i++ {
		if b.limiter != nil {
			b.limiter.Take()
		}

		resolver := b.resolverFactory(server, state.currentTimeout)

		start := time.Now()
		ips, err := resolver.LookupIP(ctx, b.Domain)
		duration := time.Since(start)

		var m Measurement
		if err != nil {
			m = Failure(start, err.Error())
		} else {
			m = Success(start, duration, ips[0])
		}

		state.observe(m)
		recordMeasurement(server, m)
		measurements = append(measurements, m)

		if b.Progress != nil {
			b.Progress.OnRequestComplete(server)
		}
	}

	return newServerResult(server, measurements)
}
