// Package reporter renders benchmark results as a table, JSON, XML or CSV and
// optionally exports latency graphs.
package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mmangkad/dns-benchmark/pkg/dnsbench"
)

// Format selects the output rendering of a benchmark result.
type Format string

// All supported output formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatXML   Format = "xml"
	FormatCSV   Format = "csv"
)

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown output format '%s'", s)
	}
}

// Options controls how a benchmark result is reported.
type Options struct {
	// Format of the rendered result, FormatTable when empty.
	Format Format

	// Writer receiving the rendered result, os.Stdout when nil.
	Writer io.Writer

	// PlotDir is a directory latency graphs are exported to, no graphs are
	// produced when empty.
	PlotDir string

	// PlotFormat is the graph file extension (png, svg, pdf, ...).
	PlotFormat string
}

type reportPrinter interface {
	print(w io.Writer, result *dnsbench.BenchmarkResult) error
}

// PrintReport renders the benchmark result in the configured format and
// exports graphs if a plot directory is configured. An error is returned only
// for fatal rendering failures.
func PrintReport(result *dnsbench.BenchmarkResult, opts Options) error {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	if len(opts.PlotDir) != 0 {
		if err := directoryExists(opts.PlotDir); err != nil {
			return fmt.Errorf("unable to plot results: %w", err)
		}

		now := time.Now().Format(time.RFC3339)
		dir := fmt.Sprintf("%s/graphs-%s", opts.PlotDir, now)
		if err := os.Mkdir(dir, os.ModePerm); err != nil {
			return fmt.Errorf("unable to plot results: %w", err)
		}
		times := allTimings(result)
		plotHistogramLatency(fileName(dir, "latency-histogram", opts.PlotFormat), times)
		plotAvgLatencies(fileName(dir, "latency-barchart", opts.PlotFormat), result.Results)
		plotLineThroughput(fileName(dir, "throughput-lineplot", opts.PlotFormat), times)
	}

	return printer(opts.Format).print(w, result)
}

func printer(format Format) reportPrinter {
	switch format {
	case FormatJSON:
		return &jsonReporter{}
	case FormatXML:
		return &xmlReporter{}
	case FormatCSV:
		return &csvReporter{}
	default:
		return &tableReporter{}
	}
}

func directoryExists(plotDir string) error {
	stat, err := os.Stat(plotDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("'%s' path does not point to an existing directory", plotDir)
		}
		return err
	} else if !stat.IsDir() {
		return fmt.Errorf("'%s' is not a path to a directory", plotDir)
	}
	return nil
}

func fileName(dir, name, format string) string {
	return dir + "/" + name + "." + format
}

// allTimings collects the success datapoints of every server ordered from the
// oldest to the earliest, so time dependent graphs (like line) plot correctly.
func allTimings(result *dnsbench.BenchmarkResult) []dnsbench.Datapoint {
	var times []dnsbench.Datapoint
	for _, server := range result.Results {
		times = append(times, server.Timings...)
	}
	sortDatapoints(times)
	return times
}
