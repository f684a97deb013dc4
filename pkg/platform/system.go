// Package platform discovers the system resolvers and the default gateway of
// the machine the benchmark runs on.
package platform

import (
	"net/netip"
	"strings"
)

// SystemNameservers returns the DNS servers the operating system is
// configured with, in configuration order.
func SystemNameservers() ([]netip.Addr, error) {
	return detectSystemNameservers()
}

// parseResolvConf extracts nameserver addresses from resolv.conf content.
func parseResolvConf(content string) []netip.Addr {
	var servers []netip.Addr
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 0 && (line[0] == ';' || line[0] == '#') {
			// comment line, skip
			continue
		}

		value, found := strings.CutPrefix(line, "nameserver ")
		if !found {
			continue
		}
		if ip, err := netip.ParseAddr(strings.TrimSpace(value)); err == nil {
			servers = append(servers, ip)
		}
	}
	return servers
}

// parseScutilDNS extracts nameserver addresses from `scutil --dns` output.
func parseScutilDNS(content string) []netip.Addr {
	var servers []netip.Addr
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "nameserver[") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if ip, err := netip.ParseAddr(fields[2]); err == nil {
			servers = append(servers, ip)
		}
	}
	return servers
}

// parseIpconfig extracts DNS server addresses from `ipconfig /all` output.
// The first server follows the "DNS Servers" label, additional servers appear
// on bare continuation lines.
func parseIpconfig(content string) []netip.Addr {
	var servers []netip.Addr
	inDNSSection := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.Contains(line, "DNS") && strings.Contains(line, ":"):
			inDNSSection = false
			_, value, _ := strings.Cut(line, ":")
			if ip, err := netip.ParseAddr(strings.TrimSpace(value)); err == nil {
				servers = append(servers, ip)
				inDNSSection = true
			}
		case inDNSSection && line != "":
			if ip, err := netip.ParseAddr(line); err == nil {
				servers = append(servers, ip)
			} else {
				inDNSSection = false
			}
		default:
			inDNSSection = false
		}
	}
	return servers
}
