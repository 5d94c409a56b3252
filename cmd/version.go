package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags, the way the teacher's build
// pipeline stamps a version string into the binary.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the mospfd version",
	GroupID: "mospf",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mospfd", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
