package reporter

import (
	"encoding/json"
	"io"

	"github.com/mmangkad/dns-benchmark/pkg/dnsbench"
)

type jsonReporter struct{}

type jsonMeta struct {
	Domain            string  `json:"domain"`
	RequestsPerServer int     `json:"requestsPerServer"`
	TotalServers      int     `json:"totalServers"`
	DurationMs        float64 `json:"durationMs"`
}

type jsonServer struct {
	Name               string   `json:"name"`
	IP                 string   `json:"ip"`
	Source             string   `json:"source"`
	ResolvedIP         string   `json:"resolvedIp,omitempty"`
	TotalRequests      int      `json:"totalRequests"`
	SuccessfulRequests int      `json:"successfulRequests"`
	SuccessRate        float64  `json:"successRate"`
	MinMs              *float64 `json:"minMs,omitempty"`
	MaxMs              *float64 `json:"maxMs,omitempty"`
	AvgMs              *float64 `json:"avgMs,omitempty"`
	Error              string   `json:"error,omitempty"`
}

type jsonReport struct {
	Meta    jsonMeta     `json:"meta"`
	Results []jsonServer `json:"results"`
}

func (s *jsonReporter) print(w io.Writer, result *dnsbench.BenchmarkResult) error {
	report := jsonReport{
		Meta: jsonMeta{
			Domain:            result.Domain,
			RequestsPerServer: result.RequestsPerServer,
			TotalServers:      len(result.Results),
			DurationMs:        millis(result.TotalDuration),
		},
		Results: make([]jsonServer, 0, len(result.Results)),
	}

	for _, server := range result.Results {
		row := jsonServer{
			Name:               server.Name,
			IP:                 server.IP.String(),
			Source:             server.Source.String(),
			TotalRequests:      server.TotalRequests,
			SuccessfulRequests: server.SuccessfulRequests,
			SuccessRate:        server.SuccessRate(),
		}
		if server.ResolvedIP.IsValid() {
			row.ResolvedIP = server.ResolvedIP.String()
		}
		if server.SuccessfulRequests > 0 {
			minMs := millis(server.MinDuration)
			maxMs := millis(server.MaxDuration)
			avgMs := millis(server.AvgDuration)
			row.MinMs = &minMs
			row.MaxMs = &maxMs
			row.AvgMs = &avgMs
		}
		if server.AllFailed() {
			row.Error = server.LastError
		}
		report.Results = append(report.Results, row)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
