package reporter

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"sort"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mmangkad/dns-benchmark/pkg/dnsbench"
)

func sortDatapoints(times []dnsbench.Datapoint) {
	sort.SliceStable(times, func(i, j int) bool {
		return times[i].Start.Before(times[j].Start)
	})
}

func plotHistogramLatency(file string, times []dnsbench.Datapoint) {
	if len(times) == 0 {
		// nothing to plot
		return
	}
	var values plotter.Values
	for _, v := range times {
		values = append(values, float64(v.Duration.Milliseconds()))
	}
	p := plot.New()
	p.Title.Text = "Latencies distribution"

	hist, err := plotter.NewHist(values, numBins(values))
	if err != nil {
		panic(err)
	}
	p.X.Label.Text = "Latencies (ms)"
	p.X.Tick.Marker = hplot.Ticks{N: 5, Format: "%.0f"}
	p.Y.Label.Text = "Number of requests"
	p.Y.Tick.Marker = hplot.Ticks{N: 5, Format: "%.0f"}
	hist.FillColor = color.RGBA{R: 175, G: 238, B: 238, A: 255}
	p.Add(hist)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, file); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to save plot.", err)
	}
}

// numBins calculates number of bins for histogram.
func numBins(values plotter.Values) int {
	n := float64(len(values))

	// small dataset
	if n < 100 {
		sqrt := math.Sqrt(n)
		return int(math.Min(15, sqrt))
	}

	// medium dataset - use Rice's rule
	if n < 1000 {
		rice := 2 * math.Cbrt(n)
		return int(math.Min(30, rice))
	}

	// large dataset - use Doane's rule
	skewness := stat.Skew(values, nil)
	sigmaG := math.Sqrt(6 * (n - 2) / ((n + 1) * (n + 3)))
	doane := 1 + math.Log2(n) + math.Log2(1+math.Abs(skewness)/sigmaG)
	return int(math.Min(50, doane))
}

func plotAvgLatencies(file string, results []*dnsbench.ServerResult) {
	succeeded := make([]*dnsbench.ServerResult, 0, len(results))
	for _, server := range results {
		if !server.AllFailed() {
			succeeded = append(succeeded, server)
		}
	}
	if len(succeeded) == 0 {
		// nothing to plot
		return
	}

	p := plot.New()
	p.Title.Text = "Average latency per server"
	p.Y.Label.Text = "Latency (ms)"
	p.Y.Tick.Marker = hplot.Ticks{N: 5, Format: "%.0f"}

	width := vg.Points(30)

	names := make([]string, 0, len(succeeded))
	for i, server := range succeeded {
		bar, err := plotter.NewBarChart(plotter.Values{millis(server.AvgDuration)}, width)
		if err != nil {
			panic(err)
		}
		bar.Color = color.RGBA{R: 127, G: 188, B: 165, A: 255}
		bar.Offset = vg.Length(i-len(succeeded)/2) * width
		p.Add(bar)
		names = append(names, server.Name)
	}
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, file); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to save plot.", err)
	}
}

func plotLineThroughput(file string, times []dnsbench.Datapoint) {
	if len(times) == 0 {
		// nothing to plot
		return
	}
	benchStart := times[0].Start

	var values plotter.XYs
	m := make(map[int64]int64)

	for _, v := range times {
		offset := v.Start.Unix() - benchStart.Unix()
		m[offset]++
	}

	for k, v := range m {
		values = append(values, plotter.XY{X: float64(k), Y: float64(v)})
	}

	sort.SliceStable(values, func(i, j int) bool {
		return values[i].X < values[j].X
	})

	p := plot.New()
	p.Title.Text = "Throughput per second"
	p.X.Label.Text = "Time of test (s)"
	p.X.Tick.Marker = hplot.Ticks{N: 3, Format: "%.0f"}
	p.Y.Label.Text = "Number of requests (per sec)"
	p.Y.Tick.Marker = hplot.Ticks{N: 3, Format: "%.0f"}

	l, err := plotter.NewLine(values)
	if err != nil {
		panic(err)
	}
	l.Width = vg.Points(0.5)
	l.FillColor = color.RGBA{R: 175, G: 238, B: 238, A: 255}
	p.Add(l)

	scatter, err := plotter.NewScatter(values)
	if err != nil {
		panic(err)
	}
	scatter.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, file); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to save plot.", err)
	}
}
