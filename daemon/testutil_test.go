package daemon

import (
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/vanterra-net/mospfd/arp"
	"github.com/vanterra-net/mospfd/netio"
	"github.com/vanterra-net/mospfd/state"
)

const (
	testHello   = 30 * time.Millisecond
	testTimeout = 3 * testHello
	testLSUInt  = 200 * time.Millisecond
)

// newTestRouter builds a single-interface Daemon backed by a netio.Loopback,
// with fast timers so scenario tests don't need real wall-clock seconds.
// Grounded on the teacher's mock_dplink.go + integration/harness.go
// approach of wiring multiple in-process nodes over fake links.
func newTestRouter(t *testing.T, name, ip, cidrMask string) (*Daemon, *netio.Loopback) {
	t.Helper()
	mask := net.ParseIP(cidrMask).To4()
	lo := netio.NewLoopback(name, net.ParseIP(ip), net.IPMask(mask), nil, testHello)

	core := state.NewCore(state.RouterIDFromIP(net.ParseIP(ip)), testLSUInt, slog.Default())
	core.Interfaces = []*state.Interface{{
		Name:          name,
		IP:            state.RouterIDFromIP(net.ParseIP(ip)),
		Mask:          state.IPv4MaskFromIP(net.ParseIP(cidrMask)),
		HelloInterval: testHello,
		Link:          lo,
	}}

	d := New(core, arp.NewResolver(nil), slog.Default(), testHello, testTimeout)
	return d, lo
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
