package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the casa ASCII art banner in a warm amber gradient.
func PrintBanner() {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   ___ __ _ ___  __ _ ", "#fbbf24"},
		{"  / __/ _` / __|/ _` |", "#f59e0b"},
		{" | (_| (_| \\__ \\ (_| |", "#f97316"},
		{"  \\___\\__,_|___/\\__,_|", "#ea580c"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
