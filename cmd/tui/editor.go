package tui

import (
	"github.com/awesome-gocui/gocui"
	"github.com/gdamore/tcell/v2"

	"github.com/voidbrain/webcli/pkg/logging"
	"github.com/voidbrain/webcli/pkg/terminal"
)

// KeyHandler consumes translated key events; *terminal.Engine implements it.
type KeyHandler interface {
	HandleKey(ev terminal.KeyEvent)
}

// Editor is the gocui.Editor of the terminal view. Instead of editing the
// view it forwards every key to the engine, which redraws through the Screen.
type Editor struct {
	keys      KeyHandler
	clipboard Clipboard
	logger    logging.Logger
}

// NewEditor creates an editor. clipboard may be nil to disable pasting.
func NewEditor(keys KeyHandler, clipboard Clipboard, logger logging.Logger) *Editor {
	return &Editor{keys: keys, clipboard: clipboard, logger: logger}
}

// Edit implements gocui.Editor.
func (e *Editor) Edit(_ *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	if key == gocui.KeyCtrlV {
		e.paste()
		return
	}
	if ev, ok := TranslateKey(key, ch, mod); ok {
		e.keys.HandleKey(ev)
	}
}

// paste types the clipboard contents. Line breaks are dropped so a paste
// never submits a command on its own.
func (e *Editor) paste() {
	if e.clipboard == nil {
		return
	}
	text, err := e.clipboard.Paste()
	if err != nil {
		e.logger.Warn("clipboard paste failed", "error", err)
		return
	}
	for _, ev := range terminal.KeysFor(text) {
		if ev.Name == terminal.KeyEnter {
			continue
		}
		e.keys.HandleKey(ev)
	}
}

// TranslateKey converts a gocui key report into a terminal key event.
// Keys the terminal has no name for are reported as not ok.
func TranslateKey(key gocui.Key, ch rune, mod gocui.Modifier) (terminal.KeyEvent, bool) {
	ctrl := mod&gocui.Modifier(tcell.ModCtrl) != 0
	alt := mod&gocui.Modifier(tcell.ModAlt) != 0

	if ch != 0 {
		return terminal.KeyEvent{Char: string(ch), Name: string(ch), Ctrl: ctrl, Alt: alt}, true
	}
	if key == gocui.KeySpace {
		return terminal.KeyEvent{Char: " ", Name: " ", Ctrl: ctrl, Alt: alt}, true
	}

	var name string
	switch key {
	case gocui.KeyEnter:
		name = terminal.KeyEnter
	case gocui.KeyBackspace, gocui.KeyBackspace2:
		name = terminal.KeyBackspace
	case gocui.KeyArrowUp:
		name = terminal.KeyArrowUp
	case gocui.KeyArrowDown:
		name = terminal.KeyArrowDown
	case gocui.KeyTab:
		name = terminal.KeyTab
	default:
		return terminal.KeyEvent{}, false
	}
	return terminal.KeyEvent{Name: name, Ctrl: ctrl, Alt: alt}, true
}
