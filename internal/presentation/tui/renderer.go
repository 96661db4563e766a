package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mark3labs/mcp-go/mcp"
)

// NewRenderer returns a function that renders markdown for the terminal,
// auto-detecting light/dark backgrounds.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// CatalogueMarkdown formats the tool catalogue as a markdown document, one
// section per tool with its parameters and requiredness.
func CatalogueMarkdown(defs []mcp.Tool) string {
	var b strings.Builder
	b.WriteString("# Tool Catalogue\n\n")

	for _, def := range defs {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", def.Name, def.Description)

		if len(def.InputSchema.Properties) == 0 {
			b.WriteString("_No parameters._\n\n")
			continue
		}

		required := make(map[string]bool, len(def.InputSchema.Required))
		for _, name := range def.InputSchema.Required {
			required[name] = true
		}

		names := make([]string, 0, len(def.InputSchema.Properties))
		for name := range def.InputSchema.Properties {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			marker := "optional"
			if required[name] {
				marker = "required"
			}
			desc := ""
			if prop, ok := def.InputSchema.Properties[name].(map[string]any); ok {
				if d, ok := prop["description"].(string); ok {
					desc = ": " + d
				}
			}
			fmt.Fprintf(&b, "- `%s` (%s)%s\n", name, marker, desc)
		}
		b.WriteString("\n")
	}
	return b.String()
}
