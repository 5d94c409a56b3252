package daemon

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vanterra-net/mospfd/netio"
	"github.com/vanterra-net/mospfd/state"
	"github.com/vanterra-net/mospfd/wire"
)

func TestHandleHelloCreatesThenRefreshesNeighbor(t *testing.T) {
	d, _ := newTestRouter(t, "eth0", "10.0.1.1", "255.255.255.0")
	defer d.Stop()
	// Alive counts whole seconds, so use the default 15s timeout rather
	// than the harness's sub-second one.
	d.NeighborTimeout = state.NeighborTimeout(state.DefaultHelloInterval)
	iface := d.Core.Interfaces[0]

	buf, err := wire.BuildHello(0x0a0000ff, 0, 0xffffff00, 5)
	require.NoError(t, err)

	d.dispatch(iface, buf)
	d.Core.Lock()
	require.Len(t, iface.Neighbors, 1)
	n := iface.Neighbors[0]
	n.Alive = 1 // force it near expiry
	d.Core.Unlock()

	d.dispatch(iface, buf) // a second HELLO should refresh, not duplicate
	d.Core.Lock()
	assert.Len(t, iface.Neighbors, 1)
	assert.Greater(t, iface.Neighbors[0].Alive, 1)
	d.Core.Unlock()
}

func TestHandleLSURefloodsWithDecrementedTTL(t *testing.T) {
	d, _ := newTestRouter(t, "eth0", "10.0.0.1", "255.255.255.0")
	defer d.Stop()
	rxIface := d.Core.Interfaces[0]

	peer, loOut := newTestRouter(t, "eth1", "10.0.1.2", "255.255.255.0")
	defer peer.Stop()
	loSelf := netio.NewLoopback("eth1", net.ParseIP("10.0.1.1"), net.IPMask(net.ParseIP("255.255.255.0").To4()), nil, testHello)
	loSelf.Link(net.ParseIP("10.0.1.2"), loOut)

	outIface := &state.Interface{
		Name: "eth1",
		IP:   state.RouterIDFromIP(net.ParseIP("10.0.1.1")),
		Mask: state.IPv4MaskFromIP(net.ParseIP("255.255.255.0")),
		Link: loSelf,
	}
	outIface.Neighbors = append(outIface.Neighbors, &state.Neighbor{
		RID: state.RouterIDFromIP(net.ParseIP("10.0.1.2")),
		IP:  state.RouterIDFromIP(net.ParseIP("10.0.1.2")),
	})
	d.Core.Interfaces = append(d.Core.Interfaces, outIface)

	buf, err := wire.BuildLSU(0x0a0000ff, 0, 9, 16, wire.LSAs{{Subnet: 0x0a000500, Mask: 0xffffff00}})
	require.NoError(t, err)

	d.dispatch(rxIface, buf)

	select {
	case reflooded := <-loOut.Recv():
		var hdr wire.Header
		require.NoError(t, hdr.UnmarshalBinary(reflooded))
		var lsuHdr wire.LSUHeader
		require.NoError(t, lsuHdr.UnmarshalBinary(reflooded[wire.HeaderLen:]))
		assert.Equal(t, uint8(15), lsuHdr.TTL) // decremented from 16
	case <-time.After(time.Second):
		t.Fatal("expected re-flooded LSU on the non-receiving interface")
	}
}
