package reporter

import (
	"fmt"
	"io"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"github.com/mmangkad/dns-benchmark/pkg/dnsbench"
	"github.com/mmangkad/dns-benchmark/pkg/printutils"
)

type tableReporter struct{}

func (s *tableReporter) print(w io.Writer, result *dnsbench.BenchmarkResult) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Server", "IP Address", "Resolved IP", "Success Rate", "Min", "Max", "Avg"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, server := range result.Results {
		table.Append(tableRow(server))
	}
	table.Render()

	printutils.SuccessPrint(w, "\nBenchmark completed in %s\n", roundDuration(result.TotalDuration))

	if fastest := result.Fastest(); fastest != nil && !fastest.AllFailed() {
		printutils.SuccessPrint(w, "Fastest: %s (%s) - %s\n",
			printutils.HighlightStr(fastest.Name), fastest.IP, formatMillis(fastest.AvgDuration))
	}

	if failed := result.CompletelyFailed(); len(failed) > 0 {
		printutils.ErrPrint(w, "Unreachable: %d of %d servers\n", len(failed), len(result.Results))
	}

	printPercentiles(w, result)
	return nil
}

func tableRow(server *dnsbench.ServerResult) []string {
	name := server.Name
	if server.IsSystem() {
		name += " (system)"
	}
	if server.IsGateway() {
		name += " (gateway)"
	}

	resolved := ""
	if server.ResolvedIP.IsValid() {
		resolved = server.ResolvedIP.String()
	} else if server.AllFailed() {
		resolved = server.LastError
	}

	row := []string{
		name,
		server.IP.String(),
		resolved,
		successRateCell(server),
	}
	if server.AllFailed() {
		return append(row, "-", "-", "-")
	}
	return append(row,
		latencyCell(server.MinDuration),
		latencyCell(server.MaxDuration),
		latencyCell(server.AvgDuration),
	)
}

func successRateCell(server *dnsbench.ServerResult) string {
	cell := fmt.Sprintf("%d/%d", server.SuccessfulRequests, server.TotalRequests)
	switch rate := server.SuccessRate(); {
	case rate >= 100:
		return printutils.GreenStr(cell)
	case rate >= 50:
		return printutils.YellowStr(cell)
	case rate >= 20:
		return printutils.RedStr(cell)
	default:
		return printutils.MagentaStr(cell)
	}
}

func latencyCell(dur time.Duration) string {
	cell := formatMillis(dur)
	switch ms := millis(dur); {
	case ms <= 30:
		return printutils.GreenStr(cell)
	case ms <= 80:
		return printutils.YellowStr(cell)
	default:
		return printutils.RedStr(cell)
	}
}

func printPercentiles(w io.Writer, result *dnsbench.BenchmarkResult) {
	times := allTimings(result)
	if len(times) == 0 {
		return
	}

	values := make([]float64, 0, len(times))
	for _, v := range times {
		values = append(values, millis(v.Duration))
	}

	printutils.SuccessPrint(w, "\nLatency percentiles over %d responses:\n", len(values))
	for _, percentile := range []float64{50, 90, 95, 99} {
		value, err := stats.Percentile(values, percentile)
		if err != nil {
			continue
		}
		printutils.SuccessPrint(w, "\tp%.0f:\t%s\n", percentile, formatMillis(time.Duration(value*float64(time.Millisecond))))
	}
}
