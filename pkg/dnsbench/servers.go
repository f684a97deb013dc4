package dnsbench

import (
	"net/netip"
)

// Built-in well-known public resolvers, two anycast addresses per provider.
var builtinServersV4 = []struct {
	name string
	ip   string
}{
	{"Google", "8.8.8.8"},
	{"Google", "8.8.4.4"},
	{"Cloudflare", "1.1.1.1"},
	{"Cloudflare", "1.0.0.1"},
	{"Quad9", "9.9.9.9"},
	{"Quad9", "149.112.112.112"},
	{"OpenDNS", "208.67.222.222"},
	{"OpenDNS", "208.67.220.220"},
	{"AdGuard", "94.140.14.14"},
	{"AdGuard", "94.140.15.15"},
}

var builtinServersV6 = []struct {
	name string
	ip   string
}{
	{"Google", "2001:4860:4860::8888"},
	{"Google", "2001:4860:4860::8844"},
	{"Cloudflare", "2606:4700:4700::1111"},
	{"Cloudflare", "2606:4700:4700::1001"},
	{"Quad9", "2620:fe::fe"},
	{"Quad9", "2620:fe::9"},
	{"OpenDNS", "2620:119:35::35"},
	{"OpenDNS", "2620:119:53::53"},
	{"AdGuard", "2a10:50c0::ad1:ff"},
	{"AdGuard", "2a10:50c0::ad2:ff"},
}

// BuiltinServers returns the built-in server list for the given IP version.
func BuiltinServers(version IPVersion) []Server {
	list := builtinServersV4
	if version == IPv6 {
		list = builtinServersV6
	}

	servers := make([]Server, 0, len(list))
	for _, entry := range list {
		servers = append(servers, ServerFromIP(entry.name, netip.MustParseAddr(entry.ip), SourceBuiltin))
	}
	return servers
}
