package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casaops/casa/pkg/tools"
)

func TestCatalogueMarkdownListsEveryTool(t *testing.T) {
	md := CatalogueMarkdown(tools.Default().Definitions())

	for _, name := range []string{
		"get_all_devices",
		"get_devices_by_type",
		"get_device_state",
		"control_light",
		"control_switch",
		"control_climate",
	} {
		assert.Contains(t, md, "## "+name)
	}

	assert.Contains(t, md, "_No parameters._")
	assert.Contains(t, md, "`brightness` (optional)")
	assert.Contains(t, md, "`entity_id` (required)")
	assert.Contains(t, md, "(required): ")
	assert.NotContains(t, md, "\u2014")
}
