package tui

import (
	"strings"

	"github.com/awesome-gocui/gocui"
)

// ParseOutputMode maps a config output_mode value to a gocui output mode.
// Unknown values select 24-bit color.
func ParseOutputMode(name string) gocui.OutputMode {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal":
		return gocui.OutputNormal
	case "256":
		return gocui.Output256
	case "simulator":
		return gocui.OutputSimulator
	default:
		return gocui.OutputTrue
	}
}
