package state

import "time"

// DefaultConfigPath is where `mospfd run` looks for its config unless
// overridden by -c, matching the teacher's NodeConfigPath/CentralConfigPath
// package-level flag-bound default pattern.
var DefaultConfigPath = "mospfd.yaml"

// Debug flags bound directly to cobra flags, in the teacher's
// DBG_log_probe/DBG_log_router style: cheap package-level switches for
// optional console diagnostics that aren't part of the protocol.
var (
	DebugLogRouteTable   bool
	DebugLogRouteChanges bool
	DebugMetrics         bool
)

// IfaceCfg configures one interface mospfd should run on.
type IfaceCfg struct {
	Name string `yaml:"name"`
	// CIDR, e.g. "10.0.1.1/24" — address and mask both come from here.
	CIDR string `yaml:"cidr"`
	MAC  string `yaml:"mac,omitempty"`
}

// Config is the single YAML node configuration file mospfd loads (§ambient
// "Configuration"): router identity override, interfaces, and timers.
type Config struct {
	// RouterID overrides the "first interface's address" default (§3) when
	// set.
	RouterID string `yaml:"router_id,omitempty"`

	Interfaces []IfaceCfg `yaml:"interfaces"`

	HelloInterval   time.Duration `yaml:"hello_interval,omitempty"`
	NeighborTimeout time.Duration `yaml:"neighbor_timeout,omitempty"`
	LSUInterval     time.Duration `yaml:"lsuint,omitempty"`

	LogPath string `yaml:"log_path,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`

	// DefaultGateway/DefaultGatewayIface name an upstream router that does
	// not itself speak mOSPF; when both are set, init_rtable (§6) installs
	// it as the 0.0.0.0/0 route ahead of every SPF rebuild.
	DefaultGateway      string `yaml:"default_gateway,omitempty"`
	DefaultGatewayIface string `yaml:"default_gateway_iface,omitempty"`
}
