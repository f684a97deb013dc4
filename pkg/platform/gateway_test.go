package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProcNetRoute(t *testing.T) {
	content := `Iface	Destination	Gateway 	Flags	RefCnt	Use	Metric	Mask		MTU	Window	IRTT
eth0	00000000	0100A8C0	0003	0	0	100	00000000	0	0	0
eth0	0000A8C0	00000000	0001	0	0	100	00FFFFFF	0	0	0
`
	ip, err := parseProcNetRoute(content)

	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1", ip.String())
}

func TestParseProcNetRoute_noDefaultRoute(t *testing.T) {
	content := `Iface	Destination	Gateway 	Flags	RefCnt	Use	Metric	Mask		MTU	Window	IRTT
eth0	0000A8C0	00000000	0001	0	0	100	00FFFFFF	0	0	0
`
	_, err := parseProcNetRoute(content)

	require.Error(t, err)
}

func TestParseIPRoute(t *testing.T) {
	content := "default via 192.168.0.1 dev eth0 proto dhcp metric 100\n"

	ip, err := parseIPRoute(content)

	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1", ip.String())
}

func TestParseIPRoute_noGateway(t *testing.T) {
	_, err := parseIPRoute("10.0.0.0/24 dev eth0 proto kernel scope link\n")
	require.Error(t, err)
}

func TestParseRouteGetDefault(t *testing.T) {
	content := `   route to: default
destination: default
       mask: default
    gateway: 192.168.0.1
  interface: en0
`
	ip, err := parseRouteGetDefault(content)

	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1", ip.String())
}

func TestParseNetstatRN(t *testing.T) {
	content := `Routing tables

Internet:
Destination        Gateway            Flags           Netif Expire
default            192.168.0.1        UGScg             en0
127.0.0.1          127.0.0.1          UH                lo0
`
	ip, err := parseNetstatRN(content)

	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1", ip.String())
}

func TestParseRoutePrint(t *testing.T) {
	content := `===========================================================================
IPv4 Route Table
===========================================================================
Active Routes:
Network Destination        Netmask          Gateway       Interface  Metric
          0.0.0.0          0.0.0.0      192.168.0.1     192.168.0.10     25
        127.0.0.0        255.0.0.0         On-link         127.0.0.1    331
`
	ip, err := parseRoutePrint(content)

	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1", ip.String())
}

func TestParseRoutePrint_noDefault(t *testing.T) {
	_, err := parseRoutePrint("IPv4 Route Table\n 10.0.0.0 255.0.0.0 On-link 10.0.0.1\n")
	require.Error(t, err)
}
