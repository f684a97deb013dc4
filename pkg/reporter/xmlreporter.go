package reporter

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/mmangkad/dns-benchmark/pkg/dnsbench"
)

type xmlReporter struct{}

type xmlServer struct {
	Name               string `xml:"Name"`
	IP                 string `xml:"Ip"`
	Source             string `xml:"Source"`
	ResolvedIP         string `xml:"ResolvedIp,omitempty"`
	TotalRequests      int    `xml:"TotalRequests"`
	SuccessfulRequests int    `xml:"SuccessfulRequests"`
	SuccessRate        string `xml:"SuccessRate"`
	MinMs              string `xml:"MinMs,omitempty"`
	MaxMs              string `xml:"MaxMs,omitempty"`
	AvgMs              string `xml:"AvgMs,omitempty"`
	Error              string `xml:"Error,omitempty"`
}

type xmlReport struct {
	XMLName           xml.Name    `xml:"BenchmarkResult"`
	Domain            string      `xml:"Domain"`
	RequestsPerServer int         `xml:"RequestsPerServer"`
	TotalServers      int         `xml:"TotalServers"`
	DurationMs        string      `xml:"DurationMs"`
	Servers           []xmlServer `xml:"Servers>Server"`
}

func (s *xmlReporter) print(w io.Writer, result *dnsbench.BenchmarkResult) error {
	report := xmlReport{
		Domain:            result.Domain,
		RequestsPerServer: result.RequestsPerServer,
		TotalServers:      len(result.Results),
		DurationMs:        fmt.Sprintf("%.2f", millis(result.TotalDuration)),
		Servers:           make([]xmlServer, 0, len(result.Results)),
	}

	for _, server := range result.Results {
		row := xmlServer{
			Name:               server.Name,
			IP:                 server.IP.String(),
			Source:             server.Source.String(),
			TotalRequests:      server.TotalRequests,
			SuccessfulRequests: server.SuccessfulRequests,
			SuccessRate:        fmt.Sprintf("%.2f", server.SuccessRate()),
		}
		if server.ResolvedIP.IsValid() {
			row.ResolvedIP = server.ResolvedIP.String()
		}
		if server.SuccessfulRequests > 0 {
			row.MinMs = fmt.Sprintf("%.3f", millis(server.MinDuration))
			row.MaxMs = fmt.Sprintf("%.3f", millis(server.MaxDuration))
			row.AvgMs = fmt.Sprintf("%.3f", millis(server.AvgDuration))
		}
		if server.AllFailed() {
			row.Error = server.LastError
		}
		report.Servers = append(report.Servers, row)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
