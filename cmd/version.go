package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with
// -ldflags "-X github.com/strucware/strut/cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strut",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("strut %s\n", Version)
	},
}
