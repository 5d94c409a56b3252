//go:build !linux

package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/vanterra-net/mospfd/netio"
	"github.com/vanterra-net/mospfd/state"
)

func openInterface(ic state.IfaceCfg, helloInterval time.Duration) (netio.Interface, error) {
	return nil, fmt.Errorf("mospfd: raw interfaces are not supported on %s; run with a loopback-backed test harness instead", runtime.GOOS)
}
