package tui

import (
	"github.com/jesseduffield/lazycore/pkg/boxlayout"
)

// View names.
const (
	ViewTerminal = "terminal"
	ViewStatus   = "status"
)

// arrange splits the screen into the terminal panel and a one-line status
// bar below it. Dimensions are inclusive cell coordinates.
func arrange(width, height int) map[string]boxlayout.Dimensions {
	root := &boxlayout.Box{
		Direction: boxlayout.ROW,
		Children: []*boxlayout.Box{
			{Window: ViewTerminal, Weight: 1},
			{Window: ViewStatus, Size: 1},
		},
	}
	return boxlayout.ArrangeWindows(root, 0, 0, width, height)
}
