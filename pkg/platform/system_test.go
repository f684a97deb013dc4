package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResolvConf(t *testing.T) {
	content := `# Generated by NetworkManager
; another comment
search example.com
nameserver 192.168.0.1
nameserver 8.8.8.8
nameserver not-an-ip
`
	servers := parseResolvConf(content)

	require.Len(t, servers, 2)
	assert.Equal(t, "192.168.0.1", servers[0].String())
	assert.Equal(t, "8.8.8.8", servers[1].String())
}

func TestParseResolvConf_empty(t *testing.T) {
	assert.Empty(t, parseResolvConf("search example.com\n"))
}

func TestParseScutilDNS(t *testing.T) {
	content := `DNS configuration

resolver #1
  nameserver[0] : 192.168.0.1
  nameserver[1] : 8.8.8.8
  if_index : 14 (en0)
`
	servers := parseScutilDNS(content)

	require.Len(t, servers, 2)
	assert.Equal(t, "192.168.0.1", servers[0].String())
	assert.Equal(t, "8.8.8.8", servers[1].String())
}

func TestParseIpconfig(t *testing.T) {
	content := `Windows IP Configuration

Ethernet adapter Ethernet:

   DNS Servers . . . . . . . . . . . : 192.168.0.1
                                       8.8.8.8
   NetBIOS over Tcpip. . . . . . . . : Enabled
`
	servers := parseIpconfig(content)

	require.Len(t, servers, 2)
	assert.Equal(t, "192.168.0.1", servers[0].String())
	assert.Equal(t, "8.8.8.8", servers[1].String())
}

func TestParseIpconfig_noServers(t *testing.T) {
	assert.Empty(t, parseIpconfig("Windows IP Configuration\n"))
}
