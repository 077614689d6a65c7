package terminal

import (
	"unicode"
	"unicode/utf8"
)

// Key names delivered by the key-event source for non-printable keys.
const (
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
	KeyTab       = "Tab"
)

// KeyEvent is one discrete key action as reported by the host.
type KeyEvent struct {
	Char string // printable character, empty when the key has none
	Name string
	Ctrl bool
	Alt  bool
}

// CharKey returns the event produced by typing r.
func CharKey(r rune) KeyEvent {
	s := string(r)
	return KeyEvent{Char: s, Name: s}
}

// NamedKey returns the event for a key without a printable character.
func NamedKey(name string) KeyEvent {
	return KeyEvent{Name: name}
}

// KeysFor converts text into the key events that would type it.
// Newlines become Enter; carriage returns and other control characters are dropped.
func KeysFor(text string) []KeyEvent {
	events := make([]KeyEvent, 0, len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			events = append(events, NamedKey(KeyEnter))
		case unicode.IsControl(r):
			continue
		default:
			events = append(events, CharKey(r))
		}
	}
	return events
}

// printable reports the character to insert for e, if any.
func (e KeyEvent) printable() (string, bool) {
	if e.Ctrl || e.Alt || utf8.RuneCountInString(e.Char) != 1 {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(e.Char)
	if !unicode.IsPrint(r) {
		return "", false
	}
	return e.Char, true
}
