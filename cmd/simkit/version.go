// Version command for the simkit CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the toolkit release, overridable at build time with -ldflags.
var Version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the simkit version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("simkit", Version)
	},
}
