package state

import (
	"log/slog"
	"sync"
	"time"

	"github.com/vanterra-net/mospfd/rtable"
)

// Core is the single process-wide structure spec §9 "Global singleton"
// calls for: router identity, interface list, LSDB, and flags, created
// once at init and borrowed by each background thread, with its mutex
// (core_lock, §5) owned alongside it. No true package-level globals exist.
type Core struct {
	mu sync.Mutex // core_lock

	RouterID RouterID
	AreaID   uint32
	SeqNum   uint16
	LSUInt   time.Duration

	// LeftInterval counts down to the next forced LSU refresh (§4.3).
	LeftInterval  time.Duration
	TopologyDirty bool

	Interfaces []*Interface
	LSDB       []*LSDBEntry

	// DefaultGW/DefaultGWIface, if DefaultGW is non-zero, are installed as
	// the 0.0.0.0/0 route by init_rtable (§6) ahead of every SPF rebuild.
	DefaultGW      RouterID
	DefaultGWIface string

	RT  *rtable.Table // rt_lock lives inside rtable.Table
	Log *slog.Logger
}

// NewCore builds an empty Core. Interfaces must be appended before the
// background threads start.
func NewCore(routerID RouterID, lsuInterval time.Duration, log *slog.Logger) *Core {
	return &Core{
		RouterID: routerID,
		AreaID:   AreaID,
		LSUInt:   lsuInterval,
		LeftInterval: lsuInterval,
		RT:       rtable.New(),
		Log:      log,
	}
}

// Lock/Unlock expose core_lock directly; every background thread in
// daemon/ takes it for the duration of one iteration's work and releases
// it before any blocking sleep (§5 "releases core_lock before the sleep
// and reacquires it after").
func (c *Core) Lock()   { c.mu.Lock() }
func (c *Core) Unlock() { c.mu.Unlock() }

// FindInterface returns the interface named name, or nil.
func (c *Core) FindInterface(name string) *Interface {
	for _, i := range c.Interfaces {
		if i.Name == name {
			return i
		}
	}
	return nil
}

// InterfaceForSubnet returns the interface whose attached subnet
// (ip & mask) equals subnet, the "subnet_to_iface" collaborator §4.5 calls
// for when installing a directly-attached RT entry.
func (c *Core) InterfaceForSubnet(subnet RouterID) *Interface {
	for _, i := range c.Interfaces {
		if i.Subnet() == subnet {
			return i
		}
	}
	return nil
}

// InterfaceForNeighbor returns the interface on which a neighbor with the
// given rid is known, the "gw_to_iface" collaborator §4.5 calls for when
// resolving the egress interface for a routed next hop.
func (c *Core) InterfaceForNeighbor(rid RouterID) *Interface {
	for _, i := range c.Interfaces {
		if i.FindNeighbor(rid) != nil {
			return i
		}
	}
	return nil
}
