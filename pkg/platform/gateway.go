package platform

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

// DefaultGateway returns the IP address of the default gateway.
func DefaultGateway() (netip.Addr, error) {
	return detectGateway()
}

// parseProcNetRoute finds the default route gateway in /proc/net/route
// content. The gateway column is little-endian hex.
func parseProcNetRoute(content string) (netip.Addr, error) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if i == 0 {
			// header
			continue
		}

		cols := strings.Fields(line)
		if len(cols) < 3 {
			continue
		}

		destination, gatewayHex := cols[1], cols[2]
		if destination != "00000000" || len(gatewayHex) != 8 {
			continue
		}

		raw, err := hex.DecodeString(gatewayHex)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("invalid hex in route: %w", err)
		}

		var bytes [4]byte
		binary.LittleEndian.PutUint32(bytes[:], binary.BigEndian.Uint32(raw))
		return netip.AddrFrom4(bytes), nil
	}

	return netip.Addr{}, errors.New("no default route in /proc/net/route")
}

// parseIPRoute finds the gateway in `ip route show default` output.
func parseIPRoute(content string) (netip.Addr, error) {
	for _, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[0] != "default" {
			continue
		}
		for i, field := range fields {
			if field == "via" && i+1 < len(fields) {
				ip, err := netip.ParseAddr(fields[i+1])
				if err != nil {
					return netip.Addr{}, fmt.Errorf("invalid gateway IP: %w", err)
				}
				return ip, nil
			}
		}
	}

	return netip.Addr{}, errors.New("no default gateway in ip route output")
}

// parseRouteGetDefault finds the gateway in `route -n get default` output.
func parseRouteGetDefault(content string) (netip.Addr, error) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "gateway:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ip, err := netip.ParseAddr(fields[1])
		if err != nil {
			return netip.Addr{}, fmt.Errorf("invalid gateway IP: %w", err)
		}
		return ip, nil
	}

	return netip.Addr{}, errors.New("no gateway in route output")
}

// parseNetstatRN finds the default route gateway in `netstat -rn` output.
func parseNetstatRN(content string) (netip.Addr, error) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "default") {
			continue
		}
		cols := strings.Fields(line)
		if len(cols) < 2 {
			continue
		}
		if ip, err := netip.ParseAddr(cols[1]); err == nil {
			return ip, nil
		}
	}

	return netip.Addr{}, errors.New("no default route in netstat output")
}

// parseRoutePrint finds the IPv4 default route gateway in `route PRINT`
// output.
func parseRoutePrint(content string) (netip.Addr, error) {
	inIPv4Section := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.Contains(strings.ToLower(line), "ipv4") {
			inIPv4Section = true
			continue
		}
		if !inIPv4Section {
			continue
		}

		cols := strings.Fields(line)
		if len(cols) >= 3 && cols[0] == "0.0.0.0" && cols[1] == "0.0.0.0" {
			if ip, err := netip.ParseAddr(cols[2]); err == nil {
				return ip, nil
			}
		}
	}

	return netip.Addr{}, errors.New("no default gateway in route output")
}
