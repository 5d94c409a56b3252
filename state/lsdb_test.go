package state

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAndIndexLSDBEntry(t *testing.T) {
	core := NewCore(RouterIDFromIP(net.IPv4(10, 0, 1, 1)), DefaultLSUInterval, nil)
	core.LSDB = []*LSDBEntry{
		{RID: 1, Seq: 3},
		{RID: 2, Seq: 5},
	}

	assert.Equal(t, 0, core.LSDBIndex(1))
	assert.Equal(t, 1, core.LSDBIndex(2))
	assert.Equal(t, -1, core.LSDBIndex(99))

	e := core.FindLSDBEntry(2)
	assert.NotNil(t, e)
	assert.Equal(t, uint16(5), e.Seq)
	assert.Nil(t, core.FindLSDBEntry(99))
}

func TestInterfaceLookups(t *testing.T) {
	core := NewCore(RouterIDFromIP(net.IPv4(10, 0, 1, 1)), DefaultLSUInterval, nil)
	iface := &Interface{
		Name: "eth0",
		IP:   RouterIDFromIP(net.IPv4(10, 0, 1, 1)),
		Mask: IPv4MaskFromIP(net.IPv4(255, 255, 255, 0)),
	}
	iface.Neighbors = append(iface.Neighbors, &Neighbor{RID: 2})
	core.Interfaces = []*Interface{iface}

	got := core.InterfaceForSubnet(RouterIDFromIP(net.IPv4(10, 0, 1, 0)))
	assert.Same(t, iface, got)

	got = core.InterfaceForNeighbor(2)
	assert.Same(t, iface, got)

	assert.Nil(t, core.InterfaceForNeighbor(99))
}
