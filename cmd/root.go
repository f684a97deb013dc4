// Package cmd wires the command line interface to the benchmark.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"github.com/mmangkad/dns-benchmark/internal/sysutil"
	"github.com/mmangkad/dns-benchmark/pkg/config"
	"github.com/mmangkad/dns-benchmark/pkg/dnsbench"
	"github.com/mmangkad/dns-benchmark/pkg/printutils"
	"github.com/mmangkad/dns-benchmark/pkg/reporter"
)

// Version is set during release of project during build process.
var Version = "development"

const (
	fileNoBuffer = 9 // app itself needs about 9 for libs
)

// Execute starts main logic of command.
func Execute() {
	cfg := config.LoadOrDefault()

	app := kingpin.New("dns-benchmark", "Benchmarks DNS servers and ranks them by latency.")
	app.Version(Version)

	pDomain := app.Flag("domain", "Domain resolved by every request.").Short('d').Default(cfg.Domain).String()
	pWorkers := app.Flag("workers", "Number of DNS servers probed concurrently.").Short('w').Default(strconv.Itoa(cfg.Workers)).Int()
	pRequests := app.Flag("requests", "Number of requests sent to each server.").Short('n').Default(strconv.Itoa(cfg.Requests)).Int()
	pTimeout := app.Flag("timeout", "Timeout of a single request.").Default((time.Duration(cfg.Timeout) * time.Second).String()).Duration()
	pProtocol := app.Flag("protocol", "DNS transport protocol.").Default(cfg.Protocol).Enum("udp", "tcp")
	pNameServerIP := app.Flag("ns-ip", "IP version of the probed servers.").Default(cfg.NameServerIP).Enum("v4", "v6")
	pLookupIP := app.Flag("lookup-ip", "IP version resolved by the lookups, v4 queries A records, v6 queries AAAA records.").Default(cfg.LookupIP).Enum("v4", "v6")
	pFormat := app.Flag("format", "Output format.").Short('f').Default(cfg.Format).Enum("table", "json", "xml", "csv")
	pCustomServers := app.Flag("custom-servers", "File with additional servers to probe, one 'name;ip:port' entry per line.").Default(cfg.CustomServers).PlaceHolder("/path/to/servers.txt").String()
	pSkipSystem := app.Flag("skip-system", "Do not probe the system DNS servers.").Default(strconv.FormatBool(cfg.SkipSystem)).Bool()
	pSkipGateway := app.Flag("skip-gateway", "Do not probe the default gateway.").Default(strconv.FormatBool(cfg.SkipGateway)).Bool()
	pNoAdaptiveTimeout := app.Flag("no-adaptive-timeout", "Do not shrink the request timeout for unresponsive servers.").Default(strconv.FormatBool(cfg.DisableAdaptiveTimeout)).Bool()
	pRate := app.Flag("rate-limit", "Apply a global requests / second rate limit.").Short('l').Default("0").Int()
	pColor := app.Flag("color", "ANSI Color output.").Default("true").Bool()
	pQuiet := app.Flag("quiet", "Disable the progress bar.").Short('q').Default("false").Bool()
	pPlotDir := app.Flag("plot", "Plot benchmark results and export them to directory.").Default("").PlaceHolder("/path/to/folder").String()
	pPlotFormat := app.Flag("plotf", "Format of graphs. Supported formats png, svg, pdf.").Default("png").Enum("png", "svg", "pdf")
	pSaveConfig := app.Flag("save-config", "Persist the effective options to the config file.").Default("false").Bool()

	runCmd := app.Command("run", "Run the benchmark.").Default()

	configCmd := app.Command("config", "Configuration management.")
	configInitCmd := configCmd.Command("init", "Initialize the config file with default values.")
	configShowCmd := configCmd.Command("show", "Display the current configuration.")
	configSetCmd := configCmd.Command("set", "Update configuration values from the given flags.")
	configResetCmd := configCmd.Command("reset", "Reset the configuration to defaults.")
	configDeleteCmd := configCmd.Command("delete", "Delete the configuration file.")
	configPathCmd := configCmd.Command("path", "Show the config file path.")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	color.NoColor = color.NoColor || !*pColor

	effective := config.Config{
		Domain:                 *pDomain,
		Workers:                *pWorkers,
		Requests:               *pRequests,
		Timeout:                int((*pTimeout).Seconds()),
		Protocol:               *pProtocol,
		NameServerIP:           *pNameServerIP,
		LookupIP:               *pLookupIP,
		Format:                 *pFormat,
		CustomServers:          *pCustomServers,
		SkipSystem:             *pSkipSystem,
		SkipGateway:            *pSkipGateway,
		DisableAdaptiveTimeout: *pNoAdaptiveTimeout,
	}

	switch command {
	case configInitCmd.FullCommand():
		exitOnErr(configInit())
	case configShowCmd.FullCommand():
		exitOnErr(configShow(os.Stdout))
	case configSetCmd.FullCommand():
		exitOnErr(configSet(effective))
	case configResetCmd.FullCommand():
		exitOnErr(configReset())
	case configDeleteCmd.FullCommand():
		exitOnErr(config.Delete())
	case configPathCmd.FullCommand():
		exitOnErr(configPath(os.Stdout))
	case runCmd.FullCommand():
		if *pSaveConfig {
			exitOnErr(effective.Save())
		}
		runBenchmark(effective, *pTimeout, *pRate, *pQuiet, *pPlotDir, *pPlotFormat)
	}
}

func runBenchmark(cfg config.Config, timeout time.Duration, rate int, quiet bool, plotDir, plotFormat string) {
	protocol, err := dnsbench.ParseProtocol(cfg.Protocol)
	exitOnErr(err)
	serverIP, err := dnsbench.ParseIPVersion(cfg.NameServerIP)
	exitOnErr(err)
	lookupIP, err := dnsbench.ParseIPVersion(cfg.LookupIP)
	exitOnErr(err)
	format, err := reporter.ParseFormat(cfg.Format)
	exitOnErr(err)

	servers, err := collectServers(serverIP, cfg.CustomServers, cfg.SkipSystem, cfg.SkipGateway)
	exitOnErr(err)

	checkFileLimit(cfg.Workers)

	sigsInt := make(chan os.Signal, 8)
	signal.Notify(sigsInt, syscall.SIGINT)

	defer close(sigsInt)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		_, ok := <-sigsInt
		if !ok {
			// standard exit based on channel close
			return
		}
		fmt.Fprintf(os.Stderr, "\nCancelling benchmark ^C, again to terminate now.\n")
		cancel()
		<-sigsInt
		os.Exit(1)
	}()

	var progress dnsbench.ProgressSink
	if !quiet && format == reporter.FormatTable {
		progress = newProgressBar(len(servers), cfg.Requests)
	}

	bench := dnsbench.Benchmark{
		Servers:                servers,
		Domain:                 cfg.Domain,
		Requests:               cfg.Requests,
		Workers:                cfg.Workers,
		Timeout:                timeout,
		Protocol:               protocol,
		LookupIP:               lookupIP,
		DisableAdaptiveTimeout: cfg.DisableAdaptiveTimeout,
		Rate:                   rate,
		Progress:               progress,
	}

	result, err := bench.Run(ctx)
	exitOnErr(err)

	err = reporter.PrintReport(result, reporter.Options{
		Format:     format,
		Writer:     os.Stdout,
		PlotDir:    plotDir,
		PlotFormat: plotFormat,
	})
	exitOnErr(err)
}

func checkFileLimit(workers int) {
	lim, err := sysutil.RlimitNoFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot check limit of number of files. Skipping check. Please make sure it is sufficient manually.", err)
		return
	}
	needed := uint64(workers) + uint64(fileNoBuffer)
	if lim < needed {
		printutils.ErrPrint(os.Stderr, "Current process limit for number of files is %d and insufficient for %d workers.\n", lim, workers)
		os.Exit(1)
	}
}

func exitOnErr(err error) {
	if err != nil {
		printutils.ErrPrint(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
