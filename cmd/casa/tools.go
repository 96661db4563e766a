package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casaops/casa/internal/presentation/tui"
	"github.com/casaops/casa/pkg/tools"
)

// toolsCmd renders the tool catalogue without needing an MCP client.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools casa advertises over MCP",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner()

		markdown := tui.CatalogueMarkdown(tools.Default().Definitions())
		render := tui.NewRenderer()
		out, err := render(markdown)
		if err != nil {
			// Fall back to raw markdown on terminals glamour can't probe.
			fmt.Println(markdown)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
