package dnsbench

import (
	"math"
	"net/netip"
	"sort"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Measurement is the outcome of a single lookup attempt. Either ResolvedIP is
// set and Err is empty (success), or Err carries the failure text.
type Measurement struct {
	Start      time.Time
	Duration   time.Duration
	ResolvedIP netip.Addr
	Err        string
}

// Success creates a successful measurement.
func Success(start time.Time, duration time.Duration, ip netip.Addr) Measurement {
	return Measurement{Start: start, Duration: duration, ResolvedIP: ip}
}

// Failure creates a failed measurement.
func Failure(start time.Time, err string) Measurement {
	return Measurement{Start: start, Err: err}
}

// Failed reports whether the lookup attempt failed.
func (m Measurement) Failed() bool {
	return m.Err != ""
}

// IsTimeout reports whether the failure looks like a timeout. The resolver
// does not expose a structured error kind, so this matches the error text.
func (m Measurement) IsTimeout() bool {
	if !m.Failed() {
		return false
	}
	lower := strings.ToLower(m.Err)
	return strings.Contains(lower, "timeout") || strings.Contains(lower, "timed out")
}

// Datapoint is a single success latency sample, kept for plots and
// whole-benchmark latency statistics.
type Datapoint struct {
	Duration time.Duration
	Start    time.Time
}

// ServerResult aggregates all measurements of one server. The duration fields
// are only meaningful when SuccessfulRequests > 0.
type ServerResult struct {
	Name   string
	IP     netip.Addr
	Source Source

	TotalRequests      int
	SuccessfulRequests int

	MinDuration time.Duration
	MaxDuration time.Duration
	AvgDuration time.Duration

	// ResolvedIP is the address from the most recent successful lookup.
	ResolvedIP netip.Addr
	// LastError is the error text of the most recent failure.
	LastError string

	Timings []Datapoint
	Hist    *hdrhistogram.Histogram
}

func newServerResult(server Server, measurements []Measurement) *ServerResult {
	result := ServerResult{
		Name:          server.Name,
		IP:            server.IP(),
		Source:        server.Source,
		TotalRequests: len(measurements),
		Hist:          hdrhistogram.New(histogramMinLatency.Nanoseconds(), histogramMaxLatency.Nanoseconds(), histogramPrecision),
	}

	var sum time.Duration
	for _, m := range measurements {
		if m.Failed() {
			result.LastError = m.Err
			continue
		}

		result.SuccessfulRequests++
		result.ResolvedIP = m.ResolvedIP
		sum += m.Duration

		if result.SuccessfulRequests == 1 || m.Duration < result.MinDuration {
			result.MinDuration = m.Duration
		}
		if m.Duration > result.MaxDuration {
			result.MaxDuration = m.Duration
		}

		result.Timings = append(result.Timings, Datapoint{Duration: m.Duration, Start: m.Start})
		result.Hist.RecordValue(m.Duration.Nanoseconds())
	}

	if result.SuccessfulRequests > 0 {
		result.AvgDuration = sum / time.Duration(result.SuccessfulRequests)
	}
	return &result
}

// SuccessRate returns the percentage of successful requests, 0.0 when no
// requests were made.
func (r *ServerResult) SuccessRate() float64 {
	if r.TotalRequests == 0 {
		return 0.0
	}
	return float64(r.SuccessfulRequests) / float64(r.TotalRequests) * 100.0
}

// AllFailed reports whether not a single request succeeded.
func (r *ServerResult) AllFailed() bool {
	return r.SuccessfulRequests == 0
}

// IsSystem reports whether this server came from the system DNS configuration.
func (r *ServerResult) IsSystem() bool {
	return r.Source == SourceSystem
}

// IsGateway reports whether this server is the network gateway.
func (r *ServerResult) IsGateway() bool {
	return r.Source == SourceGateway
}

// sortKey orders servers by average latency, pushing servers without a single
// success behind every server that responded at least once.
func (r *ServerResult) sortKey() time.Duration {
	if r.AllFailed() {
		return time.Duration(math.MaxInt64)
	}
	return r.AvgDuration
}

// rank orders results ascending by average latency. The sort is stable so
// tied entries keep the completion order of the scheduler.
func rank(results []*ServerResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].sortKey() < results[j].sortKey()
	})
}

// BenchmarkResult is the complete outcome of one benchmark run. Results are
// ranked by average response time.
type BenchmarkResult struct {
	Results           []*ServerResult
	TotalDuration     time.Duration
	Domain            string
	RequestsPerServer int
}

// Fastest returns the server with the lowest average response time, or nil
// when no servers were benchmarked.
func (r *BenchmarkResult) Fastest() *ServerResult {
	if len(r.Results) == 0 {
		return nil
	}
	return r.Results[0]
}

// FullySuccessful returns servers that answered every request.
func (r *BenchmarkResult) FullySuccessful() []*ServerResult {
	var matched []*ServerResult
	for _, res := range r.Results {
		if res.SuccessRate() >= 100.0 {
			matched = append(matched, res)
		}
	}
	return matched
}

// CompletelyFailed returns servers without a single successful request.
func (r *BenchmarkResult) CompletelyFailed() []*ServerResult {
	var matched []*ServerResult
	for _, res := range r.Results {
		if res.AllFailed() {
			matched = append(matched, res)
		}
	}
	return matched
}

// LatencyHistogram merges the per-server latency histograms into one
// histogram covering all successful requests of the run.
func (r *BenchmarkResult) LatencyHistogram() *hdrhistogram.Histogram {
	merged := hdrhistogram.New(histogramMinLatency.Nanoseconds(), histogramMaxLatency.Nanoseconds(), histogramPrecision)
	for _, res := range r.Results {
		if res.Hist != nil {
			merged.Merge(res.Hist)
		}
	}
	return merged
}
