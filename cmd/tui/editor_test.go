package tui

import (
	"errors"
	"testing"

	"github.com/awesome-gocui/gocui"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/voidbrain/webcli/pkg/logging"
	"github.com/voidbrain/webcli/pkg/terminal"
)

type recordingKeys struct {
	events []terminal.KeyEvent
}

func (r *recordingKeys) HandleKey(ev terminal.KeyEvent) {
	r.events = append(r.events, ev)
}

type fakeClipboard struct {
	text   string
	err    error
	copied string
}

func (c *fakeClipboard) Copy(text string) error {
	c.copied = text
	return c.err
}

func (c *fakeClipboard) Paste() (string, error) { return c.text, c.err }

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		key  gocui.Key
		ch   rune
		mod  gocui.Modifier
		want terminal.KeyEvent
		ok   bool
	}{
		{name: "rune", ch: 'a', want: terminal.CharKey('a'), ok: true},
		{name: "unicode rune", ch: 'é', want: terminal.CharKey('é'), ok: true},
		{name: "space", key: gocui.KeySpace, want: terminal.CharKey(' '), ok: true},
		{name: "alt rune", ch: 'x', mod: gocui.Modifier(tcell.ModAlt), want: terminal.KeyEvent{Char: "x", Name: "x", Alt: true}, ok: true},
		{name: "enter", key: gocui.KeyEnter, want: terminal.NamedKey(terminal.KeyEnter), ok: true},
		{name: "backspace", key: gocui.KeyBackspace, want: terminal.NamedKey(terminal.KeyBackspace), ok: true},
		{name: "backspace2", key: gocui.KeyBackspace2, want: terminal.NamedKey(terminal.KeyBackspace), ok: true},
		{name: "arrow up", key: gocui.KeyArrowUp, want: terminal.NamedKey(terminal.KeyArrowUp), ok: true},
		{name: "arrow down", key: gocui.KeyArrowDown, want: terminal.NamedKey(terminal.KeyArrowDown), ok: true},
		{name: "tab", key: gocui.KeyTab, want: terminal.NamedKey(terminal.KeyTab), ok: true},
		{name: "arrow left", key: gocui.KeyArrowLeft},
		{name: "function key", key: gocui.KeyF5},
		{name: "escape", key: gocui.KeyEsc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TranslateKey(tt.key, tt.ch, tt.mod)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEditor_ForwardsKeys(t *testing.T) {
	keys := &recordingKeys{}
	editor := NewEditor(keys, nil, logging.NewDisabledLogger())

	editor.Edit(nil, 0, 'l', gocui.ModNone)
	editor.Edit(nil, gocui.KeyF5, 0, gocui.ModNone)
	editor.Edit(nil, gocui.KeyEnter, 0, gocui.ModNone)

	assert.Equal(t, []terminal.KeyEvent{terminal.CharKey('l'), terminal.NamedKey(terminal.KeyEnter)}, keys.events)
}

func TestEditor_Paste(t *testing.T) {
	keys := &recordingKeys{}
	editor := NewEditor(keys, &fakeClipboard{text: "ls\n/"}, logging.NewDisabledLogger())

	editor.Edit(nil, gocui.KeyCtrlV, 0, gocui.ModNone)

	assert.Equal(t, terminal.KeysFor("ls/"), keys.events)
}

func TestEditor_PasteFailure(t *testing.T) {
	keys := &recordingKeys{}
	editor := NewEditor(keys, &fakeClipboard{err: errors.New("no clipboard utility")}, logging.NewDisabledLogger())

	editor.Edit(nil, gocui.KeyCtrlV, 0, gocui.ModNone)
	NewEditor(keys, nil, logging.NewDisabledLogger()).Edit(nil, gocui.KeyCtrlV, 0, gocui.ModNone)

	assert.Empty(t, keys.events)
}
