// Package perf exposes the small metrics surface carried ambiently per
// SPEC_FULL.md (not gated by any Non-goal): HELLO tx/rx counters, LSU
// flood counters, and an SPF-run-duration histogram, adapted from the
// teacher's perf/vars.go expvar-published metric.Histogram/metric.Counter
// set.
package perf

import (
	"expvar"
	"net/http"

	"github.com/encodeous/metric"
)

var (
	HelloTxCount = metric.NewCounter("10s1s")
	HelloRxCount = metric.NewCounter("10s1s")

	LSUFloodedCount    = metric.NewCounter("10s1s")
	LSUSuppressedCount = metric.NewCounter("10s1s")
	LSUAcceptedCount   = metric.NewCounter("10s1s")
	LSURejectedCount   = metric.NewCounter("10s1s")

	SpfDuration = metric.NewHistogram("1m1s")
)

// ServeDebug registers the /debug/metrics handler on the given mux when
// --debug-metrics is passed, matching the teacher's debug handler wiring.
func ServeDebug(mux *http.ServeMux) {
	mux.Handle("/debug/metrics", metric.Handler(metric.Exposed))
}

func init() {
	expvar.Publish("mospfd:HelloTx/s", HelloTxCount)
	expvar.Publish("mospfd:HelloRx/s", HelloRxCount)
	expvar.Publish("mospfd:LSUFlooded/s", LSUFloodedCount)
	expvar.Publish("mospfd:LSUSuppressed/s", LSUSuppressedCount)
	expvar.Publish("mospfd:LSUAccepted/s", LSUAcceptedCount)
	expvar.Publish("mospfd:LSURejected/s", LSURejectedCount)
	expvar.Publish("mospfd:SpfDuration (µs)", SpfDuration)
}
