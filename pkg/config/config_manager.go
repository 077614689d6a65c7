package config

import (
	"os"
	"strings"
)

// Manager looks up single configuration values. Unset and empty values
// are treated alike: both select the default.
type Manager interface {
	GetStringWithDefault(key, defaultValue string) string
	GetListWithDefault(key string, defaultValue []string) []string
}

// EnvManager reads values from the process environment.
type EnvManager struct {
	lookup func(key string) string
}

// NewConfigManager returns a Manager backed by os.Getenv.
func NewConfigManager() Manager {
	return &EnvManager{lookup: os.Getenv}
}

// NewMapManager returns a Manager serving a fixed set of values, for
// embedding the terminal without touching the environment.
func NewMapManager(values map[string]string) Manager {
	return &EnvManager{lookup: func(key string) string { return values[key] }}
}

func (m *EnvManager) GetStringWithDefault(key, defaultValue string) string {
	if value := m.lookup(key); strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

// GetListWithDefault splits a comma or whitespace separated value, dropping
// empty items.
func (m *EnvManager) GetListWithDefault(key string, defaultValue []string) []string {
	fields := strings.FieldsFunc(m.lookup(key), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return defaultValue
	}
	return fields
}
