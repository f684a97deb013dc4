//go:build !(linux || darwin || windows)

package platform

import (
	"errors"
	"net/netip"
)

func detectSystemNameservers() ([]netip.Addr, error) {
	return nil, errors.New("system DNS detection is not supported on this platform")
}
