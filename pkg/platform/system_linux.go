//go:build linux

package platform

import (
	"fmt"
	"net/netip"
	"os"
)

const resolvConfPath = "/etc/resolv.conf"

func detectSystemNameservers() ([]netip.Addr, error) {
	content, err := os.ReadFile(resolvConfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", resolvConfPath, err)
	}

	servers := parseResolvConf(string(content))
	if len(servers) == 0 {
		return nil, fmt.Errorf("no nameservers found in %s", resolvConfPath)
	}
	return servers, nil
}
