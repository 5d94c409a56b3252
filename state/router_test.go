package state

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterIDFromIP(t *testing.T) {
	rid := RouterIDFromIP(net.IPv4(10, 0, 1, 1))
	assert.Equal(t, "10.0.1.1", rid.String())
}

func TestIPv4MaskPrefixLen(t *testing.T) {
	m := IPv4MaskFromIP(net.IPv4(255, 255, 255, 0))
	assert.Equal(t, 24, m.PrefixLen())

	m = IPv4MaskFromIP(net.IPv4(255, 255, 0, 0))
	assert.Equal(t, 16, m.PrefixLen())
}

func TestSubnet(t *testing.T) {
	ip := RouterIDFromIP(net.IPv4(10, 0, 1, 42))
	mask := IPv4MaskFromIP(net.IPv4(255, 255, 255, 0))
	got := Subnet(ip, mask)
	assert.Equal(t, "10.0.1.0", got.String())
}
