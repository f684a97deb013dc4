package dnsbench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dnsRequestsDurationMetrics = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dnsbench",
		Name:      "dns_requests_duration_seconds",
		Help:      "DNS request duration in seconds",
	}, []string{"server"})

	dnsRequestsTotalMetrics = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dnsbench",
		Name:      "dns_requests_total",
		Help:      "The total number of DNS requests",
	}, []string{"server", "outcome"})
)

func recordMeasurement(server Server, m Measurement) {
	addr := server.Addr.String()
	switch {
	case m.IsTimeout():
		dnsRequestsTotalMetrics.WithLabelValues(addr, "timeout").Inc()
	case m.Failed():
		dnsRequestsTotalMetrics.WithLabelValues(addr, "error").Inc()
	default:
		dnsRequestsTotalMetrics.WithLabelValues(addr, "success").Inc()
		dnsRequestsDurationMetrics.WithLabelValues(addr).Observe(m.Duration.Seconds())
	}
}
