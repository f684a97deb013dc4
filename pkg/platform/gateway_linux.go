//go:build linux

package platform

import (
	"fmt"
	"net/netip"
	"os"
	"os/exec"
)

const procNetRoutePath = "/proc/net/route"

func detectGateway() (netip.Addr, error) {
	// /proc/net/route is the most reliable source
	if content, err := os.ReadFile(procNetRoutePath); err == nil {
		if ip, err := parseProcNetRoute(string(content)); err == nil {
			return ip, nil
		}
	}

	out, err := exec.Command("ip", "route", "show", "default").Output()
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ip route show default failed: %w", err)
	}
	return parseIPRoute(string(out))
}
