package rtable

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntryPacksPrefix(t *testing.T) {
	e := NewEntry(0x0a000100, 0xffffff00, 0, "eth0", 0)
	assert.Equal(t, "10.0.1.0/24", e.Dest.String())
	assert.Equal(t, "eth0", e.Iface)
}

func TestAddAndLookup(t *testing.T) {
	tbl := New()
	tbl.Lock()
	defer tbl.Unlock()

	e := NewEntry(0x0a000100, 0xffffff00, 2, "eth0", 1)
	tbl.AddEntry(e)

	got, ok := tbl.Lookup(netip.MustParsePrefix("10.0.1.0/24"))
	assert.True(t, ok)
	assert.Equal(t, uint32(1), got.Distance)
}

func TestClearTable(t *testing.T) {
	tbl := New()
	tbl.Lock()
	tbl.AddEntry(NewEntry(0x0a000100, 0xffffff00, 0, "eth0", 0))
	tbl.ClearTable()
	_, ok := tbl.Lookup(netip.MustParsePrefix("10.0.1.0/24"))
	tbl.Unlock()
	assert.False(t, ok)
}

func TestSnapshot(t *testing.T) {
	tbl := New()
	tbl.Lock()
	tbl.AddEntry(NewEntry(0x0a000100, 0xffffff00, 0, "eth0", 0))
	tbl.AddEntry(NewEntry(0x0a000200, 0xffffff00, 3, "eth1", 1))
	tbl.Unlock()

	snap := tbl.Snapshot()
	assert.Len(t, snap, 2)
}
