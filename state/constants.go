package state

import "time"

// Protocol defaults, per spec §6 "Defaults".
const (
	DefaultHelloInterval  = 5 * time.Second
	DefaultNeighborFactor = 3 // NEIGHBOR_TIMEOUT = NeighborFactor * hello interval
	DefaultLSUInterval    = 30 * time.Second
	MaxLSUTTL             = 16
	AreaID         uint32 = 0

	WireVersion = 2

	// Every fourth HELLO cycle the emitter dumps the routing table (§4.1).
	HelloDumpEvery = 4
)

// NeighborTimeout returns the alive countdown a fresh neighbor is given,
// 3x the owning interface's hello interval unless overridden.
func NeighborTimeout(helloInterval time.Duration) time.Duration {
	return DefaultNeighborFactor * helloInterval
}
