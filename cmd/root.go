package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vanterra-net/mospfd/state"
)

// rootCmd is the base command, in the teacher's cmd/root.go structure:
// a persistent -c/--config flag whose default is state.DefaultConfigPath.
var rootCmd = &cobra.Command{
	Use:   "mospfd",
	Short: "mOSPF routing daemon",
	Long:  `mospfd discovers neighboring routers, floods link-state advertisements, and computes a shortest-path forwarding table.`,
}

var configPath string

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "mospf", Title: "mOSPF Commands"})
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", state.DefaultConfigPath, "node configuration file")
}
