package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_GetStringWithDefault(t *testing.T) {
	t.Setenv("WEBCLI_TEST_KEY", "test_value")
	t.Setenv("WEBCLI_TEST_BLANK", "   ")
	manager := NewConfigManager()

	assert.Equal(t, "test_value", manager.GetStringWithDefault("WEBCLI_TEST_KEY", "default"))
	assert.Equal(t, "default", manager.GetStringWithDefault("WEBCLI_TEST_BLANK", "default"))
	assert.Equal(t, "default", manager.GetStringWithDefault("WEBCLI_NON_EXISTENT_KEY", "default"))
}

func TestEnvManager_KeepsSignificantSpaces(t *testing.T) {
	manager := NewMapManager(map[string]string{EnvPrompt: "> "})

	assert.Equal(t, "> ", manager.GetStringWithDefault(EnvPrompt, "$ "))
}

func TestEnvManager_GetListWithDefault(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"commas", "help,ls,echo", []string{"help", "ls", "echo"}},
		{"spaces", "help ls\techo", []string{"help", "ls", "echo"}},
		{"mixed with empties", " help,, ls ,", []string{"help", "ls"}},
		{"only separators", " , ,", []string{"default"}},
		{"unset", "", []string{"default"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewMapManager(map[string]string{"LIST": tt.value})
			assert.Equal(t, tt.want, manager.GetListWithDefault("LIST", []string{"default"}))
		})
	}
}
