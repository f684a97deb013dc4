package dnsbench

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/miekg/dns"
)

// Resolver resolves a domain against exactly one DNS server.
type Resolver interface {
	// LookupIP resolves the domain and returns all addresses from the answer
	// section. A response without usable addresses is an error.
	LookupIP(ctx context.Context, domain string) ([]netip.Addr, error)
}

// ResolverFactory builds a Resolver bound to a single server with the given
// per-request timeout. The benchmark creates a fresh resolver for every
// request so the adaptive timeout can vary between requests.
type ResolverFactory func(server Server, timeout time.Duration) Resolver

// NewResolverFactory returns a factory producing plain DNS resolvers that
// query one server directly, without caching, retries or hosts file use.
func NewResolverFactory(protocol Protocol, lookup IPVersion) ResolverFactory {
	qtype := dns.TypeA
	if lookup == IPv6 {
		qtype = dns.TypeAAAA
	}

	return func(server Server, timeout time.Duration) Resolver {
		return &dnsResolver{
			client: &dns.Client{
				Net:     string(protocol),
				Timeout: timeout,
			},
			addr:  server.Addr.String(),
			qtype: qtype,
		}
	}
}

type dnsResolver struct {
	client *dns.Client
	addr   string
	qtype  uint16
}

func (r *dnsResolver) LookupIP(ctx context.Context, domain string) ([]netip.Addr, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), r.qtype)

	resp, _, err := r.client.ExchangeContext(ctx, msg, r.addr)
	if err != nil {
		return nil, err
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("resolution failed: server responded with %s", dns.RcodeToString[resp.Rcode])
	}

	ips := answerAddrs(resp)
	if len(ips) == 0 {
		return nil, errors.New("resolution failed: no addresses in response")
	}
	return ips, nil
}

func answerAddrs(resp *dns.Msg) []netip.Addr {
	var ips []netip.Addr
	for _, rr := range resp.Answer {
		switch record := rr.(type) {
		case *dns.A:
			if ip, ok := netip.AddrFromSlice(record.A.To4()); ok {
				ips = append(ips, ip)
			}
		case *dns.AAAA:
			if ip, ok := netip.AddrFromSlice(record.AAAA); ok {
				ips = append(ips, ip)
			}
		}
	}
	return ips
}
