// Package theme derives the terminal palette from the visitor's settings.
package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/voidbrain/webcli/pkg/settings"
)

// Palette holds the color tokens a terminal renderer reads. Values are #rrggbb.
type Palette struct {
	Background          string `json:"background"`
	Foreground          string `json:"foreground"`
	Cursor              string `json:"cursor"`
	SelectionBackground string `json:"selection_background"`
	SelectionForeground string `json:"selection_foreground"`
}

// Fallback is used for any token that is missing or not a valid color.
var Fallback = Palette{
	Background:          "#1e1e2e",
	Foreground:          "#e0e0e0",
	Cursor:              "#66cc66",
	SelectionBackground: "#8a2be2",
	SelectionForeground: "#1e1e2e",
}

var accents = map[string]string{
	"purple": "#8a2be2",
	"orange": "#ff8c00",
	"green":  "#66cc66",
}

// flavours holds the dark background and foreground of each flavour; the
// light theme swaps them.
var flavours = map[string][2]string{
	"terminal":   {Fallback.Background, Fallback.Foreground},
	"newspaper":  {"#1b1a17", "#f2ead3"},
	"cereal-box": {"#2d0a4e", "#ffd23f"},
}

// For returns the palette for a settings snapshot.
func For(s settings.Settings) Palette {
	p := Fallback
	if base, ok := flavours[s.Flavour]; ok {
		p.Background, p.Foreground = base[0], base[1]
	}
	if s.Theme == "light" {
		p.Background, p.Foreground = p.Foreground, p.Background
	}
	if accent, ok := accents[s.Color]; ok {
		p.Cursor = accent
		p.SelectionBackground = accent
	}
	p.SelectionForeground = p.Background
	return p.Sanitized()
}

// Sanitized replaces invalid tokens with their Fallback value.
func (p Palette) Sanitized() Palette {
	fix := func(value, fallback string) string {
		if Validate(value) != nil {
			return fallback
		}
		return value
	}
	return Palette{
		Background:          fix(p.Background, Fallback.Background),
		Foreground:          fix(p.Foreground, Fallback.Foreground),
		Cursor:              fix(p.Cursor, Fallback.Cursor),
		SelectionBackground: fix(p.SelectionBackground, Fallback.SelectionBackground),
		SelectionForeground: fix(p.SelectionForeground, Fallback.SelectionForeground),
	}
}

// Muted is the foreground halfway towards the background, for secondary text.
func (p Palette) Muted() string {
	muted, err := Blend(p.Foreground, p.Background, 0.5)
	if err != nil {
		return Fallback.Foreground
	}
	return muted
}

// Validate reports whether hex is a #rrggbb color.
func Validate(hex string) error {
	if len(hex) != 7 {
		return fmt.Errorf("invalid color %q: want #rrggbb", hex)
	}
	if _, err := colorful.Hex(hex); err != nil {
		return fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return nil
}

// Blend mixes a towards b by t in [0,1], in Lab space.
func Blend(a, b string, t float64) (string, error) {
	ca, err := colorful.Hex(a)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", a, err)
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", b, err)
	}
	return ca.BlendLab(cb, t).Clamped().Hex(), nil
}
