package daemon

import (
	"fmt"
	"log/slog"
	"net"
	"net/netip"

	"github.com/vanterra-net/mospfd/arp"
	"github.com/vanterra-net/mospfd/netio"
	"github.com/vanterra-net/mospfd/state"
)

// Bootstrap builds a Daemon from a validated Config and the set of
// already-opened netio.Interfaces (keyed by interface name), following the
// structure of the teacher's entrypoint.go Bootstrap/Start split: parse and
// validate config, then assemble the runtime structures, then hand back
// something the caller (cmd/run.go) just calls Start on.
func Bootstrap(cfg *state.Config, links map[string]netio.Interface, log *slog.Logger) (*Daemon, error) {
	helloInterval := cfg.HelloInterval
	if helloInterval <= 0 {
		helloInterval = state.DefaultHelloInterval
	}
	lsuInterval := cfg.LSUInterval
	if lsuInterval <= 0 {
		lsuInterval = state.DefaultLSUInterval
	}
	neighborTimeout := cfg.NeighborTimeout
	if neighborTimeout <= 0 {
		neighborTimeout = state.NeighborTimeout(helloInterval)
	}

	interfaces := make([]*state.Interface, 0, len(cfg.Interfaces))
	for _, ic := range cfg.Interfaces {
		link, ok := links[ic.Name]
		if !ok {
			return nil, fmt.Errorf("daemon: no netio.Interface opened for %q", ic.Name)
		}
		pfx, err := netip.ParsePrefix(ic.CIDR)
		if err != nil {
			return nil, fmt.Errorf("daemon: interface %q: %w", ic.Name, err)
		}
		ifaceHello := helloInterval
		if link.HelloInterval() > 0 {
			ifaceHello = link.HelloInterval()
		}
		interfaces = append(interfaces, &state.Interface{
			Name:          ic.Name,
			IP:            state.RouterIDFromIP(net.IP(pfx.Addr().AsSlice())),
			Mask:          maskFromPrefixLen(pfx.Bits()),
			HelloInterval: ifaceHello,
			Link:          link,
		})
	}
	if len(interfaces) == 0 {
		return nil, fmt.Errorf("daemon: no interfaces configured")
	}

	routerID := interfaces[0].IP
	if cfg.RouterID != "" {
		addr, err := netip.ParseAddr(cfg.RouterID)
		if err != nil {
			return nil, fmt.Errorf("daemon: router_id override: %w", err)
		}
		routerID = state.RouterIDFromIP(net.IP(addr.AsSlice()))
	}

	core := state.NewCore(routerID, lsuInterval, log)
	core.Interfaces = interfaces

	if cfg.DefaultGateway != "" {
		addr, err := netip.ParseAddr(cfg.DefaultGateway)
		if err != nil {
			return nil, fmt.Errorf("daemon: default_gateway: %w", err)
		}
		core.DefaultGW = state.RouterIDFromIP(net.IP(addr.AsSlice()))
		core.DefaultGWIface = cfg.DefaultGatewayIface
	}

	resolver := arp.NewResolver(nil)

	return New(core, resolver, log, helloInterval, neighborTimeout), nil
}

// maskFromPrefixLen converts a CIDR prefix length to the packed 32-bit
// mask representation state.IPv4Mask uses.
func maskFromPrefixLen(bits int) state.IPv4Mask {
	m := net.CIDRMask(bits, 32)
	return state.IPv4MaskFromIP(net.IP(m))
}
