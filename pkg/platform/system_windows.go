//go:build windows

package platform

import (
	"fmt"
	"net/netip"
	"os/exec"
)

func detectSystemNameservers() ([]netip.Addr, error) {
	out, err := exec.Command("ipconfig", "/all").Output()
	if err != nil {
		return nil, fmt.Errorf("ipconfig /all failed: %w", err)
	}

	servers := parseIpconfig(string(out))
	if len(servers) == 0 {
		return nil, fmt.Errorf("no nameservers found in ipconfig output")
	}
	return servers, nil
}
