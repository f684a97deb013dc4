//go:build darwin

package platform

import (
	"fmt"
	"net/netip"
	"os/exec"
)

func detectSystemNameservers() ([]netip.Addr, error) {
	out, err := exec.Command("scutil", "--dns").Output()
	if err != nil {
		return nil, fmt.Errorf("scutil --dns failed: %w", err)
	}

	servers := parseScutilDNS(string(out))
	if len(servers) == 0 {
		return nil, fmt.Errorf("no nameservers found in scutil output")
	}
	return servers, nil
}
