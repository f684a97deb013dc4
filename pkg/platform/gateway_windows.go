//go:build windows

package platform

import (
	"fmt"
	"net/netip"
	"os/exec"
)

func detectGateway() (netip.Addr, error) {
	out, err := exec.Command("route", "PRINT").Output()
	if err != nil {
		return netip.Addr{}, fmt.Errorf("route PRINT failed: %w", err)
	}
	return parseRoutePrint(string(out))
}
