package dnsbench

import (
	"time"
)

const (
	// DefaultDomain is a default domain to resolve during the benchmark.
	DefaultDomain = "google.com"

	// DefaultWorkers is a default number of concurrently probed servers.
	DefaultWorkers = 16

	// DefaultRequests is a default number of requests issued per server.
	DefaultRequests = 50

	// DefaultTimeout is a default timeout for a single request.
	DefaultTimeout = 2 * time.Second

	// MaxWorkers is the upper bound for the number of concurrently probed servers.
	MaxWorkers = 256

	// DefaultDNSPort is a default port of plain DNS servers.
	DefaultDNSPort = 53
)

// Adaptive timeout thresholds. After 8 consecutive timeouts the per-request
// timeout is clamped to 500ms, after 16 it is forced down to 100ms. Any
// success restores the configured base timeout.
const (
	reduceTimeoutAfterFailures   = 8
	reducedTimeout               = 500 * time.Millisecond
	minimizeTimeoutAfterFailures = 16
	minimalTimeout               = 100 * time.Millisecond
)

const (
	histogramMinLatency = time.Microsecond
	histogramMaxLatency = time.Minute
	histogramPrecision  = 1
)
