package state

import (
	"fmt"
	"net"
	"net/netip"
	"regexp"
)

var ifaceNameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]{1,15}$`)

// ConfigValidator checks a Config the way the teacher's
// CentralConfigValidator/NodeConfigValidator check LocalCfg/CentralCfg:
// regex name checks, netip parsing, descriptive fmt.Errorf wrapping.
func ConfigValidator(cfg *Config) error {
	if len(cfg.Interfaces) == 0 {
		return fmt.Errorf("state: config defines no interfaces")
	}
	seen := make(map[string]bool, len(cfg.Interfaces))
	for _, ic := range cfg.Interfaces {
		if !ifaceNameRe.MatchString(ic.Name) {
			return fmt.Errorf("state: invalid interface name %q", ic.Name)
		}
		if seen[ic.Name] {
			return fmt.Errorf("state: duplicate interface name %q", ic.Name)
		}
		seen[ic.Name] = true

		pfx, err := netip.ParsePrefix(ic.CIDR)
		if err != nil {
			return fmt.Errorf("state: interface %q has invalid cidr %q: %w", ic.Name, ic.CIDR, err)
		}
		if !pfx.Addr().Is4() {
			return fmt.Errorf("state: interface %q must be IPv4, got %q", ic.Name, ic.CIDR)
		}
		if ic.MAC != "" {
			if _, err := net.ParseMAC(ic.MAC); err != nil {
				return fmt.Errorf("state: interface %q has invalid mac %q: %w", ic.Name, ic.MAC, err)
			}
		}
	}
	if cfg.RouterID != "" {
		if addr, err := netip.ParseAddr(cfg.RouterID); err != nil || !addr.Is4() {
			return fmt.Errorf("state: invalid router_id override %q", cfg.RouterID)
		}
	}
	if cfg.HelloInterval < 0 || cfg.NeighborTimeout < 0 || cfg.LSUInterval < 0 {
		return fmt.Errorf("state: timer fields must be non-negative")
	}
	if (cfg.DefaultGateway == "") != (cfg.DefaultGatewayIface == "") {
		return fmt.Errorf("state: default_gateway and default_gateway_iface must be set together")
	}
	if cfg.DefaultGateway != "" {
		if addr, err := netip.ParseAddr(cfg.DefaultGateway); err != nil || !addr.Is4() {
			return fmt.Errorf("state: invalid default_gateway %q", cfg.DefaultGateway)
		}
		if !seen[cfg.DefaultGatewayIface] {
			return fmt.Errorf("state: default_gateway_iface %q is not a configured interface", cfg.DefaultGatewayIface)
		}
	}
	return nil
}
