package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mmangkad/dns-benchmark/pkg/dnsbench"
)

// progressBar renders one bar over all requests of the whole benchmark.
type progressBar struct {
	bar *progressbar.ProgressBar
}

func newProgressBar(servers, requests int) *progressBar {
	bar := progressbar.NewOptions64(
		int64(servers)*int64(requests),
		progressbar.OptionSetDescription("Benchmarking"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetWriter(os.Stderr),
	)
	return &progressBar{bar: bar}
}

func (p *progressBar) OnServerStart(dnsbench.Server, int) {}

func (p *progressBar) OnRequestComplete(dnsbench.Server) {
	p.bar.Add(1)
}

func (p *progressBar) OnServerDone(dnsbench.Server) {}
