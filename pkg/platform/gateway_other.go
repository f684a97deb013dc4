//go:build !(linux || darwin || windows)

package platform

import (
	"errors"
	"net/netip"
)

func detectGateway() (netip.Addr, error) {
	return netip.Addr{}, errors.New("gateway detection is not supported on this platform")
}
