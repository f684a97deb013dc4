package dnsbench

import (
	"math"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(ip string) Server {
	return ServerFromIP("Test", netip.MustParseAddr(ip), SourceBuiltin)
}

func TestNewServerResult_allSuccess(t *testing.T) {
	resolved := netip.MustParseAddr("1.2.3.4")
	now := time.Now()
	measurements := []Measurement{
		Success(now, 10*time.Millisecond, resolved),
		Success(now, 20*time.Millisecond, resolved),
	}

	result := newServerResult(testServer("8.8.8.8"), measurements)

	assert.Equal(t, 2, result.TotalRequests)
	assert.Equal(t, 2, result.SuccessfulRequests)
	assert.Equal(t, 100.0, result.SuccessRate())
	assert.Equal(t, 10*time.Millisecond, result.MinDuration)
	assert.Equal(t, 20*time.Millisecond, result.MaxDuration)
	assert.Equal(t, 15*time.Millisecond, result.AvgDuration)
	assert.Equal(t, resolved, result.ResolvedIP)
	assert.False(t, result.AllFailed())
	assert.Len(t, result.Timings, 2)
	assert.EqualValues(t, 2, result.Hist.TotalCount())
}

func TestNewServerResult_allFailed(t *testing.T) {
	now := time.Now()
	measurements := []Measurement{
		Failure(now, "timeout"),
		Failure(now, "timeout"),
	}

	result := newServerResult(testServer("8.8.8.8"), measurements)

	assert.Equal(t, 2, result.TotalRequests)
	assert.Equal(t, 0, result.SuccessfulRequests)
	assert.Equal(t, 0.0, result.SuccessRate())
	assert.Equal(t, time.Duration(0), result.MinDuration)
	assert.Equal(t, time.Duration(0), result.AvgDuration)
	assert.Equal(t, "timeout", result.LastError)
	assert.False(t, result.ResolvedIP.IsValid())
	assert.True(t, result.AllFailed())
}

func TestNewServerResult_mixed(t *testing.T) {
	first := netip.MustParseAddr("1.2.3.4")
	second := netip.MustParseAddr("5.6.7.8")
	now := time.Now()
	measurements := []Measurement{
		Success(now, 30*time.Millisecond, first),
		Failure(now, "read udp: i/o timeout"),
		Failure(now, "connection refused"),
		Success(now, 10*time.Millisecond, second),
	}

	result := newServerResult(testServer("9.9.9.9"), measurements)

	assert.Equal(t, 4, result.TotalRequests)
	assert.Equal(t, 2, result.SuccessfulRequests)
	assert.Equal(t, 50.0, result.SuccessRate())
	assert.Equal(t, 10*time.Millisecond, result.MinDuration)
	assert.Equal(t, 30*time.Millisecond, result.MaxDuration)
	assert.Equal(t, 20*time.Millisecond, result.AvgDuration)

	// the most recent success and failure win
	assert.Equal(t, second, result.ResolvedIP)
	assert.Equal(t, "connection refused", result.LastError)

	assert.True(t, result.MinDuration <= result.AvgDuration)
	assert.True(t, result.AvgDuration <= result.MaxDuration)
}

func TestNewServerResult_empty(t *testing.T) {
	result := newServerResult(testServer("8.8.8.8"), nil)

	assert.Equal(t, 0, result.TotalRequests)
	assert.Equal(t, 0.0, result.SuccessRate())
	assert.True(t, result.AllFailed())
	assert.Empty(t, result.LastError)
}

func TestMeasurement_IsTimeout(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name        string
		measurement Measurement
		want        bool
	}{
		{
			name:        "timed out text",
			measurement: Failure(now, "Connection timed out"),
			want:        true,
		},
		{
			name:        "timeout text",
			measurement: Failure(now, "read udp 127.0.0.1: i/o timeout"),
			want:        true,
		},
		{
			name:        "other failure",
			measurement: Failure(now, "server refused"),
			want:        false,
		},
		{
			name:        "success",
			measurement: Success(now, 10*time.Millisecond, netip.MustParseAddr("1.2.3.4")),
			want:        false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.measurement.IsTimeout())
		})
	}
}

func TestRank(t *testing.T) {
	fast := &ServerResult{Name: "fast", TotalRequests: 2, SuccessfulRequests: 2, AvgDuration: 15 * time.Millisecond}
	slow := &ServerResult{Name: "slow", TotalRequests: 2, SuccessfulRequests: 2, AvgDuration: 40 * time.Millisecond}
	deadA := &ServerResult{Name: "dead-a", TotalRequests: 2, LastError: "timeout"}
	deadB := &ServerResult{Name: "dead-b", TotalRequests: 2, LastError: "timeout"}

	results := []*ServerResult{deadA, slow, deadB, fast}
	rank(results)

	require.Len(t, results, 4)
	assert.Equal(t, "fast", results[0].Name)
	assert.Equal(t, "slow", results[1].Name)

	// fully failed servers sort last, ties keep their relative order
	assert.Equal(t, "dead-a", results[2].Name)
	assert.Equal(t, "dead-b", results[3].Name)
}

func TestRank_failedAfterSingleSuccess(t *testing.T) {
	succeeded := &ServerResult{Name: "alive", TotalRequests: 10, SuccessfulRequests: 1, AvgDuration: 59 * time.Second}
	failed := &ServerResult{Name: "dead", TotalRequests: 10}

	results := []*ServerResult{failed, succeeded}
	rank(results)

	assert.Equal(t, "alive", results[0].Name)
	assert.Equal(t, "dead", results[1].Name)
}

func TestServerResult_sortKey(t *testing.T) {
	failed := &ServerResult{TotalRequests: 5}
	assert.Equal(t, time.Duration(math.MaxInt64), failed.sortKey())

	succeeded := &ServerResult{TotalRequests: 5, SuccessfulRequests: 5, AvgDuration: 15 * time.Millisecond}
	assert.Equal(t, 15*time.Millisecond, succeeded.sortKey())
}

func TestBenchmarkResult_queries(t *testing.T) {
	fast := &ServerResult{Name: "fast", TotalRequests: 2, SuccessfulRequests: 2, AvgDuration: 15 * time.Millisecond}
	flaky := &ServerResult{Name: "flaky", TotalRequests: 2, SuccessfulRequests: 1, AvgDuration: 20 * time.Millisecond}
	dead := &ServerResult{Name: "dead", TotalRequests: 2}

	result := BenchmarkResult{Results: []*ServerResult{fast, flaky, dead}}

	require.NotNil(t, result.Fastest())
	assert.Equal(t, "fast", result.Fastest().Name)

	fully := result.FullySuccessful()
	require.Len(t, fully, 1)
	assert.Equal(t, "fast", fully[0].Name)

	failed := result.CompletelyFailed()
	require.Len(t, failed, 1)
	assert.Equal(t, "dead", failed[0].Name)
}

func TestBenchmarkResult_empty(t *testing.T) {
	result := BenchmarkResult{}

	assert.Nil(t, result.Fastest())
	assert.Empty(t, result.FullySuccessful())
	assert.Empty(t, result.CompletelyFailed())
	assert.EqualValues(t, 0, result.LatencyHistogram().TotalCount())
}

func TestBenchmarkResult_latencyHistogram(t *testing.T) {
	now := time.Now()
	ip := netip.MustParseAddr("1.2.3.4")
	first := newServerResult(testServer("8.8.8.8"), []Measurement{
		Success(now, 10*time.Millisecond, ip),
		Success(now, 20*time.Millisecond, ip),
	})
	second := newServerResult(testServer("9.9.9.9"), []Measurement{
		Success(now, 30*time.Millisecond, ip),
		Failure(now, "timeout"),
	})

	result := BenchmarkResult{Results: []*ServerResult{first, second}}

	hist := result.LatencyHistogram()
	assert.EqualValues(t, 3, hist.TotalCount())
}
