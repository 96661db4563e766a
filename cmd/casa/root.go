package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "casa",
	Short: "casa is an MCP gateway for Home Assistant",
	Long: `casa exposes a fixed catalogue of schema-described tools over the
Model Context Protocol and executes them against the Home Assistant REST API,
letting AI agents observe and control your home.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "casa.yaml", "Path to the configuration file")
}
