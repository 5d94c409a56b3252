// Package daemon wires together the five cooperating components spec §2
// describes — Hello Emitter, Neighbor Monitor, LSU Generator, Packet
// Dispatcher, SPF/RT Builder — as real OS-thread-style goroutines sharing
// one coarse lock, following spec §5's concurrency model rather than the
// teacher's single-dispatch-channel actor loop (the teacher's model does
// not admit the parallel-thread, blocking-sleep design the protocol
// requires).
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/vanterra-net/mospfd/arp"
	"github.com/vanterra-net/mospfd/state"
)

// Daemon owns the shared Core and the background threads that operate on
// it. There is deliberately no graceful-shutdown path in production use
// (spec §5 "Cancellation": the process exits and threads die with it);
// the context here exists purely so tests can stop a Daemon without
// leaking goroutines across test cases.
type Daemon struct {
	Core *state.Core
	ARP  *arp.Resolver
	Log  *slog.Logger

	HelloInterval   time.Duration
	NeighborTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	helloTicks int // for the "every fourth emission" debug dump, §4.1

	// floodSeen suppresses re-sending an LSU we've already put on the
	// wire for (rid, seq) within the last floodSuppressWindow. Not part
	// of the protocol's acceptance/sequencing rules (§4.3, §4.4) — purely
	// a wire-traffic dedup, adapted from the teacher's IOPending seqno
	// dedup cache.
	floodSeen *ttlcache.Cache[string, struct{}]
}

const floodSuppressWindow = 2 * time.Second

// New builds a Daemon around an already-populated Core.
func New(core *state.Core, resolver *arp.Resolver, log *slog.Logger, helloInterval, neighborTimeout time.Duration) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())
	seen := ttlcache.New[string, struct{}](
		ttlcache.WithTTL[string, struct{}](floodSuppressWindow),
	)
	go seen.Start()
	return &Daemon{
		Core:            core,
		ARP:             resolver,
		Log:             log,
		HelloInterval:   helloInterval,
		NeighborTimeout: neighborTimeout,
		ctx:             ctx,
		cancel:          cancel,
		floodSeen:       seen,
	}
}

// Start launches the four long-lived threads named in spec §5: Hello
// Emitter, Neighbor Monitor, LSU Generator, and (per-interface) the
// packet-reception thread that calls the Dispatcher. SPF does not get its
// own thread — it runs inline inside the LSU Generator and the Dispatcher,
// exactly as §5 specifies.
func (d *Daemon) Start() {
	go d.runHelloEmitter()
	go d.runNeighborMonitor()
	go d.runLSUGenerator()
	for _, iface := range d.Core.Interfaces {
		go d.runDispatcher(iface)
	}
}

// Stop cancels the background threads and stops the eviction goroutines
// of the flood-suppression cache and the ARP resolver. Not part of the
// protocol core — a pure test/process-lifecycle convenience, since §5
// specifies no graceful shutdown.
func (d *Daemon) Stop() {
	d.cancel()
	d.floodSeen.Stop()
	if d.ARP != nil {
		d.ARP.Close()
	}
}

// floodKey builds the dedup key for a given (rid, seq) flood.
func floodKey(rid state.RouterID, seq uint16) string {
	return fmt.Sprintf("%s/%d", rid, seq)
}

// sleepUnlocked sleeps for d, honoring cancellation, without holding
// core_lock — the pattern §5 mandates for "a thread that must sleep for a
// one-second tick while polling a condition": release before the sleep,
// reacquire after. Callers that already released core_lock call this
// directly; it returns false if the daemon was stopped mid-sleep.
func (d *Daemon) sleepUnlocked(dur time.Duration) bool {
	select {
	case <-time.After(dur):
		return true
	case <-d.ctx.Done():
		return false
	}
}
