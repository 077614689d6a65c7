package tui

import (
	"github.com/atotto/clipboard"
)

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	Copy(text string) error
	Paste() (string, error)
}

type systemClipboard struct{}

// NewClipboard returns the system clipboard.
func NewClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

func (systemClipboard) Paste() (string, error) {
	return clipboard.ReadAll()
}
