package reporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mmangkad/dns-benchmark/pkg/dnsbench"
)

type csvReporter struct{}

func (s *csvReporter) print(w io.Writer, result *dnsbench.BenchmarkResult) error {
	writer := csv.NewWriter(w)

	header := []string{"name", "ip", "source", "resolved_ip", "total_requests", "successful_requests", "success_rate", "min_ms", "max_ms", "avg_ms", "error"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, server := range result.Results {
		resolved := ""
		if server.ResolvedIP.IsValid() {
			resolved = server.ResolvedIP.String()
		}
		minMs, maxMs, avgMs := "", "", ""
		if server.SuccessfulRequests > 0 {
			minMs = fmt.Sprintf("%.3f", millis(server.MinDuration))
			maxMs = fmt.Sprintf("%.3f", millis(server.MaxDuration))
			avgMs = fmt.Sprintf("%.3f", millis(server.AvgDuration))
		}
		lastError := ""
		if server.AllFailed() {
			lastError = server.LastError
		}

		row := []string{
			server.Name,
			server.IP.String(),
			server.Source.String(),
			resolved,
			strconv.Itoa(server.TotalRequests),
			strconv.Itoa(server.SuccessfulRequests),
			fmt.Sprintf("%.2f", server.SuccessRate()),
			minMs,
			maxMs,
			avgMs,
			lastError,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
