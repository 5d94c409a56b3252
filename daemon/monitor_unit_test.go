package daemon

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vanterra-net/mospfd/state"
)

func TestAgeNeighborsExpiresAtZero(t *testing.T) {
	d, _ := newTestRouter(t, "eth0", "10.0.1.1", "255.255.255.0")
	defer d.Stop()
	iface := d.Core.Interfaces[0]
	iface.Neighbors = []*state.Neighbor{
		{RID: 2, Alive: 2},
		{RID: 3, Alive: 1},
	}

	d.Core.Lock()
	d.ageNeighbors() // 2->1, 1->0 (expires)
	d.Core.Unlock()

	assert.Len(t, iface.Neighbors, 1)
	assert.Equal(t, state.RouterID(2), iface.Neighbors[0].RID)
	assert.True(t, d.Core.TopologyDirty)
}

func TestAgeNeighborsNoExpiryLeavesFlagClean(t *testing.T) {
	d, _ := newTestRouter(t, "eth0", "10.0.1.1", "255.255.255.0")
	defer d.Stop()
	iface := d.Core.Interfaces[0]
	iface.Neighbors = []*state.Neighbor{{RID: 2, Alive: 5}}

	d.Core.Lock()
	d.ageNeighbors()
	d.Core.Unlock()

	assert.Len(t, iface.Neighbors, 1)
	assert.Equal(t, 4, iface.Neighbors[0].Alive)
	assert.False(t, d.Core.TopologyDirty)
}

var _ = net.IPv4 // keep net imported for symmetry with other daemon test files
