package daemon

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vanterra-net/mospfd/state"
)

func TestBuildSelfLSAsNoNeighbors(t *testing.T) {
	mask := state.IPv4MaskFromIP(net.ParseIP("255.255.255.0"))
	ifaces := []*state.Interface{
		{Name: "eth0", IP: state.RouterIDFromIP(net.ParseIP("10.0.1.1")), Mask: mask},
		{Name: "eth1", IP: state.RouterIDFromIP(net.ParseIP("10.0.2.1")), Mask: mask},
	}
	lsas := buildSelfLSAs(ifaces)
	assert.Len(t, lsas, 2)
	for _, l := range lsas {
		assert.Equal(t, state.RouterID(0), l.AdvertisingRID)
	}
}

func TestBuildSelfLSAsWithNeighbors(t *testing.T) {
	mask := state.IPv4MaskFromIP(net.ParseIP("255.255.255.0"))
	iface := &state.Interface{Name: "eth0", IP: state.RouterIDFromIP(net.ParseIP("10.0.1.1")), Mask: mask}
	iface.Neighbors = []*state.Neighbor{
		{RID: 2, IP: state.RouterIDFromIP(net.ParseIP("10.0.1.2")), Mask: mask},
		{RID: 3, IP: state.RouterIDFromIP(net.ParseIP("10.0.1.3")), Mask: mask},
	}
	lsas := buildSelfLSAs([]*state.Interface{iface})
	assert.Len(t, lsas, 2) // one LSA per neighbor, not one per interface
	assert.Equal(t, state.RouterID(2), lsas[0].AdvertisingRID)
	assert.Equal(t, state.RouterID(3), lsas[1].AdvertisingRID)
}
