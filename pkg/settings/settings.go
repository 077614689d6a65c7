// Package settings holds the visitor preferences shared by the site and the
// terminal: language, flavour, accent color and light/dark theme.
package settings

import (
	"errors"
	"fmt"
	"slices"
)

// StorageKey names the object that holds the settings inside the document.
const StorageKey = "voidbrain-settings"

// ChangedEvent is emitted with the new Settings after every successful change.
const ChangedEvent = "settings.changed"

const (
	KeyLanguage = "language"
	KeyFlavour  = "flavour"
	KeyColor    = "color"
	KeyTheme    = "theme"
)

// Keys lists every setting in display order.
var Keys = []string{KeyLanguage, KeyFlavour, KeyColor, KeyTheme}

var options = map[string][]string{
	KeyLanguage: {"en", "it"},
	KeyFlavour:  {"terminal", "newspaper", "cereal-box"},
	KeyColor:    {"purple", "orange", "green"},
	KeyTheme:    {"dark", "light"},
}

var (
	ErrUnknownKey   = errors.New("unknown setting")
	ErrInvalidValue = errors.New("invalid setting value")
)

// Settings is a complete, valid set of preferences.
type Settings struct {
	Language string `json:"language"`
	Flavour  string `json:"flavour"`
	Color    string `json:"color"`
	Theme    string `json:"theme"`
}

// Defaults returns the preferences of a first-time visitor.
func Defaults() Settings {
	return Settings{
		Language: "en",
		Flavour:  "terminal",
		Color:    "purple",
		Theme:    "dark",
	}
}

// Options returns the accepted values for key.
func Options(key string) []string {
	return slices.Clone(options[key])
}

// Validate checks that key exists and value is one of its options.
func Validate(key, value string) error {
	allowed, ok := options[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("%w: %s=%s", ErrInvalidValue, key, value)
	}
	return nil
}

// Get returns the value stored under key.
func (s Settings) Get(key string) (string, bool) {
	switch key {
	case KeyLanguage:
		return s.Language, true
	case KeyFlavour:
		return s.Flavour, true
	case KeyColor:
		return s.Color, true
	case KeyTheme:
		return s.Theme, true
	}
	return "", false
}

// With returns a copy of s with key set to value. Unknown keys are ignored.
func (s Settings) With(key, value string) Settings {
	switch key {
	case KeyLanguage:
		s.Language = value
	case KeyFlavour:
		s.Flavour = value
	case KeyColor:
		s.Color = value
	case KeyTheme:
		s.Theme = value
	}
	return s
}

func (s Settings) String() string {
	return fmt.Sprintf("language=%s flavour=%s color=%s theme=%s", s.Language, s.Flavour, s.Color, s.Theme)
}

// Reader exposes the current preferences.
type Reader interface {
	Snapshot() Settings
}

// Writer changes one preference.
type Writer interface {
	Set(key, value string) error
}

// Store is a key-value view over persisted preferences.
type Store interface {
	Reader
	Writer
	Get(key string) (string, bool)
	Update(partial map[string]string) error
	Reset() error
}

// Publisher receives change notifications.
type Publisher interface {
	Emit(eventType string, event interface{})
}
