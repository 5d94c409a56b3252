package daemon

import (
	"log/slog"
	"net"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vanterra-net/mospfd/arp"
	"github.com/vanterra-net/mospfd/state"
)

// Scenario 5 (spec §8): R1-R2-R3 in a line; R1 must compute a two-hop
// route to R3's far subnet with gw=R2 and distance 2.
func TestScenarioThreeRouterLine(t *testing.T) {
	r1 := state.RouterIDFromIP(net.ParseIP("10.0.12.1"))
	r2 := state.RouterIDFromIP(net.ParseIP("10.0.12.2"))
	r3 := state.RouterIDFromIP(net.ParseIP("10.0.23.3"))
	farSubnet := state.RouterIDFromIP(net.ParseIP("10.0.99.0"))
	mask24 := state.IPv4MaskFromIP(net.ParseIP("255.255.255.0"))

	core := state.NewCore(r1, state.DefaultLSUInterval, slog.Default())
	core.Interfaces = []*state.Interface{
		{Name: "eth0", IP: r1, Mask: mask24},
	}
	core.LSDB = []*state.LSDBEntry{
		{RID: r1, Seq: 1, LSAs: []state.LSA{{Subnet: state.Subnet(r2, mask24), Mask: mask24, AdvertisingRID: r2}}},
		{RID: r2, Seq: 1, LSAs: []state.LSA{
			{Subnet: state.Subnet(r1, mask24), Mask: mask24, AdvertisingRID: r1},
			{Subnet: state.Subnet(r3, mask24), Mask: mask24, AdvertisingRID: r3},
		}},
		{RID: r3, Seq: 1, LSAs: []state.LSA{
			{Subnet: state.Subnet(r2, mask24), Mask: mask24, AdvertisingRID: r2},
			{Subnet: farSubnet, Mask: mask24, AdvertisingRID: 0},
		}},
	}
	// R1 needs an interface to resolve R2 as a known neighbor for the
	// egress-interface lookup (gw_to_iface, §4.5).
	core.Interfaces[0].Neighbors = append(core.Interfaces[0].Neighbors, &state.Neighbor{RID: r2})

	d := New(core, arp.NewResolver(nil), slog.Default(), state.DefaultHelloInterval, state.NeighborTimeout(state.DefaultHelloInterval))

	core.Lock()
	d.runSPF()
	core.Unlock()

	entry, ok := core.RT.Lookup(netip.PrefixFrom(netip.MustParseAddr(farSubnet.String()), mask24.PrefixLen()))
	require.True(t, ok)
	assert.Equal(t, uint32(r2), uint32(entry.NextHop))
	assert.Equal(t, uint32(2), entry.Distance)
	assert.Equal(t, "eth0", entry.Iface)
}
