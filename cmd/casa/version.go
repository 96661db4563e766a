package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/casaops/casa"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of casa",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("casa version %s\n", strings.TrimSpace(casa.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
