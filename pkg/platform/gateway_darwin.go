//go:build darwin

package platform

import (
	"fmt"
	"net/netip"
	"os/exec"
)

func detectGateway() (netip.Addr, error) {
	if out, err := exec.Command("route", "-n", "get", "default").Output(); err == nil {
		if ip, err := parseRouteGetDefault(string(out)); err == nil {
			return ip, nil
		}
	}

	out, err := exec.Command("netstat", "-rn").Output()
	if err != nil {
		return netip.Addr{}, fmt.Errorf("netstat -rn failed: %w", err)
	}
	return parseNetstatRN(string(out))
}
