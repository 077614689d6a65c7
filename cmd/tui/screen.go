package tui

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultScrollback is the number of lines kept before the oldest are dropped.
const DefaultScrollback = 2000

// Canvas is the part of a gocui view the screen draws on.
type Canvas interface {
	io.Writer
	Clear()
	Size() (int, int)
	SetOrigin(x, y int) error
	SetCursor(x, y int) error
}

// Screen is a terminal.Sink that keeps what a character terminal would show:
// backspace moves the cursor left, later text overwrites, carriage return
// goes to column 0. It is not safe for concurrent use; the gui goroutine owns it.
type Screen struct {
	lines      [][]rune
	col        int
	scrollback int
}

// NewScreen creates an empty screen keeping at most scrollback lines.
func NewScreen(scrollback int) *Screen {
	if scrollback <= 0 {
		scrollback = DefaultScrollback
	}
	return &Screen{lines: [][]rune{nil}, scrollback: scrollback}
}

func (s *Screen) Write(text string) {
	for _, r := range text {
		switch r {
		case '\n':
			s.lines = append(s.lines, nil)
			s.col = 0
		case '\r':
			s.col = 0
		case '\b':
			if s.col > 0 {
				s.col--
			}
		default:
			last := len(s.lines) - 1
			if s.col < len(s.lines[last]) {
				s.lines[last][s.col] = r
			} else {
				s.lines[last] = append(s.lines[last], r)
			}
			s.col++
		}
	}
	if extra := len(s.lines) - s.scrollback; extra > 0 {
		s.lines = append([][]rune(nil), s.lines[extra:]...)
	}
}

func (s *Screen) WriteLine(text string) {
	s.Write(text + "\n")
}

func (s *Screen) Clear() {
	s.lines = [][]rune{nil}
	s.col = 0
}

// Text returns the screen contents, lines separated by "\n".
func (s *Screen) Text() string {
	lines := make([]string, len(s.lines))
	for i, line := range s.lines {
		lines[i] = string(line)
	}
	return strings.Join(lines, "\n")
}

// Cursor returns the cursor position in display cells.
func (s *Screen) Cursor() (x, y int) {
	y = len(s.lines) - 1
	return runewidth.StringWidth(string(s.lines[y][:s.col])), y
}

// Render redraws c and scrolls it so the cursor is visible.
func (s *Screen) Render(c Canvas) error {
	c.Clear()
	if _, err := io.WriteString(c, s.Text()); err != nil {
		return err
	}

	x, y := s.Cursor()
	width, height := c.Size()
	ox, oy := 0, 0
	if width > 0 && x >= width {
		ox = x - width + 1
	}
	if height > 0 && y >= height {
		oy = y - height + 1
	}
	if err := c.SetOrigin(ox, oy); err != nil {
		return err
	}
	return c.SetCursor(x-ox, y-oy)
}
