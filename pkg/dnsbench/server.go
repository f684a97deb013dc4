package dnsbench

import (
	"bufio"
	"fmt"
	"net/netip"
	"strings"
)

// Source describes where a server entry came from.
type Source int

const (
	// SourceBuiltin marks servers from the built-in provider list.
	SourceBuiltin Source = iota
	// SourceCustom marks servers loaded from a user provided file.
	SourceCustom
	// SourceSystem marks servers taken from the system DNS configuration.
	SourceSystem
	// SourceGateway marks the network gateway of the host.
	SourceGateway
)

func (s Source) String() string {
	switch s {
	case SourceCustom:
		return "custom"
	case SourceSystem:
		return "system"
	case SourceGateway:
		return "gateway"
	default:
		return "builtin"
	}
}

// Protocol is a transport used for DNS requests.
type Protocol string

const (
	// UDPTransport represents plain DNS over UDP.
	UDPTransport Protocol = "udp"
	// TCPTransport represents plain DNS over TCP.
	TCPTransport Protocol = "tcp"
)

// ParseProtocol parses a textual protocol name.
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(s) {
	case "udp":
		return UDPTransport, nil
	case "tcp":
		return TCPTransport, nil
	default:
		return "", fmt.Errorf("invalid protocol %q", s)
	}
}

// IPVersion selects between IPv4 and IPv6, both for choosing name servers
// and for the record type of lookups.
type IPVersion int

const (
	// IPv4 restricts to IPv4 addresses (A lookups).
	IPv4 IPVersion = iota
	// IPv6 restricts to IPv6 addresses (AAAA lookups).
	IPv6
)

func (v IPVersion) String() string {
	if v == IPv6 {
		return "v6"
	}
	return "v4"
}

// ParseIPVersion parses a textual IP version.
func ParseIPVersion(s string) (IPVersion, error) {
	switch strings.ToLower(s) {
	case "v4", "ipv4", "4":
		return IPv4, nil
	case "v6", "ipv6", "6":
		return IPv6, nil
	default:
		return 0, fmt.Errorf("invalid IP version %q", s)
	}
}

// Server is a single DNS server to benchmark.
type Server struct {
	Name   string
	Addr   netip.AddrPort
	Source Source
}

// NewServer creates a server entry from a full socket address.
func NewServer(name string, addr netip.AddrPort, source Source) Server {
	return Server{Name: name, Addr: addr, Source: source}
}

// ServerFromIP creates a server entry with the default DNS port.
func ServerFromIP(name string, ip netip.Addr, source Source) Server {
	return Server{Name: name, Addr: netip.AddrPortFrom(ip, DefaultDNSPort), Source: source}
}

// IP returns the server IP address without the port.
func (s Server) IP() netip.Addr {
	return s.Addr.Addr()
}

// MatchesIPVersion reports whether the server address belongs to the given IP version.
func (s Server) MatchesIPVersion(v IPVersion) bool {
	if v == IPv6 {
		return s.Addr.Addr().Is6() && !s.Addr.Addr().Is4In6()
	}
	return s.Addr.Addr().Is4() || s.Addr.Addr().Is4In6()
}

func (s Server) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Addr.Addr())
}

// ParseServers parses a custom server list. Expected format is one
// `name;ip:port` entry per line, empty lines and lines starting with '#' are
// skipped. Entries not matching the given IP version are filtered out.
func ParseServers(content string, version IPVersion) ([]Server, error) {
	var servers []Server

	scanner := bufio.NewScanner(strings.NewReader(content))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		parts := strings.Split(text, ";")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid format at line %d: expected 'name;ip:port'", line)
		}

		addr, err := netip.ParseAddrPort(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid address at line %d: %w", line, err)
		}

		server := NewServer(strings.TrimSpace(parts[0]), addr, SourceCustom)
		if server.MatchesIPVersion(version) {
			servers = append(servers, server)
		}
	}
	return servers, nil
}

// Dedup removes servers sharing an IP address, keeping the first occurrence.
// The port is intentionally not part of the key.
func Dedup(servers []Server) []Server {
	seen := make(map[netip.Addr]struct{}, len(servers))
	deduped := make([]Server, 0, len(servers))
	for _, s := range servers {
		ip := s.IP().Unmap()
		if _, ok := seen[ip]; ok {
			continue
		}
		seen[ip] = struct{}{}
		deduped = append(deduped, s)
	}
	return deduped
}
