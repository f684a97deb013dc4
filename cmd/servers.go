package cmd

import (
	"fmt"
	"os"

	"github.com/mmangkad/dns-benchmark/pkg/dnsbench"
	"github.com/mmangkad/dns-benchmark/pkg/platform"
	"github.com/mmangkad/dns-benchmark/pkg/printutils"
)

// collectServers assembles the set of servers to probe: the builtin list (or
// a custom server file when given), the system resolvers and the default
// gateway. Discovery failures are reported but never abort the run. Servers
// sharing an IP are probed once.
func collectServers(version dnsbench.IPVersion, customPath string, skipSystem, skipGateway bool) ([]dnsbench.Server, error) {
	var servers []dnsbench.Server

	if customPath != "" {
		content, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read custom servers '%s': %w", customPath, err)
		}
		servers, err = dnsbench.ParseServers(string(content), version)
		if err != nil {
			return nil, fmt.Errorf("failed to parse custom servers '%s': %w", customPath, err)
		}
	} else {
		servers = dnsbench.BuiltinServers(version)
	}

	if !skipSystem {
		addrs, err := platform.SystemNameservers()
		if err != nil {
			printutils.WarnPrint(os.Stderr, "Skipping system DNS servers: %v\n", err)
		}
		for i, addr := range addrs {
			server := dnsbench.ServerFromIP(fmt.Sprintf("System DNS %d", i+1), addr, dnsbench.SourceSystem)
			if server.MatchesIPVersion(version) {
				servers = append(servers, server)
			}
		}
	}

	if !skipGateway {
		addr, err := platform.DefaultGateway()
		if err != nil {
			printutils.WarnPrint(os.Stderr, "Skipping gateway: %v\n", err)
		} else {
			server := dnsbench.ServerFromIP("Gateway", addr, dnsbench.SourceGateway)
			if server.MatchesIPVersion(version) {
				servers = append(servers, server)
			}
		}
	}

	servers = dnsbench.Dedup(servers)
	if len(servers) == 0 {
		return nil, fmt.Errorf("no servers to benchmark")
	}
	return servers, nil
}
