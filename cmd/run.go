package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/vanterra-net/mospfd/daemon"
	"github.com/vanterra-net/mospfd/logging"
	"github.com/vanterra-net/mospfd/netio"
	"github.com/vanterra-net/mospfd/perf"
	"github.com/vanterra-net/mospfd/state"
)

var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Run mospfd on the current host",
	Long:    `Loads the node configuration, opens raw interfaces, and runs the mOSPF daemon. Requires permission to open raw sockets.`,
	GroupID: "mospf",
	RunE:    runMain,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	runCmd.Flags().BoolVarP(&state.DebugLogRouteTable, "ltable", "t", false, "log the routing table on every debug dump")
	runCmd.Flags().BoolVarP(&state.DebugLogRouteChanges, "lrchange", "g", false, "log route table changes")
	runCmd.Flags().BoolVarP(&state.DebugMetrics, "debug-metrics", "m", false, "serve /debug/metrics on localhost")
}

var verbose bool

func runMain(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var cfg state.Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := state.ConfigValidator(&cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := slog.LevelInfo
	if verbose || cfg.Verbose {
		level = slog.LevelDebug
	}
	log, err := logging.New(level, cfg.LogPath)
	if err != nil {
		return err
	}

	links := make(map[string]netio.Interface, len(cfg.Interfaces))
	for _, ic := range cfg.Interfaces {
		helloInterval := cfg.HelloInterval
		if helloInterval <= 0 {
			helloInterval = state.DefaultHelloInterval
		}
		link, err := openInterface(ic, helloInterval)
		if err != nil {
			return fmt.Errorf("open interface %q: %w", ic.Name, err)
		}
		links[ic.Name] = link
	}

	d, err := daemon.Bootstrap(&cfg, links, log)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	if state.DebugMetrics {
		mux := http.NewServeMux()
		perf.ServeDebug(mux)
		go func() {
			_ = http.ListenAndServe("127.0.0.1:6061", mux)
		}()
	}

	d.Start()
	log.Info("mospfd started", "router_id", d.Core.RouterID, "interfaces", len(d.Core.Interfaces))

	select {} // spec §5 "Cancellation": the process exits and threads die with it
}
