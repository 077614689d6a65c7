package di

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidbrain/webcli/pkg/config"
	"github.com/voidbrain/webcli/pkg/terminal"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SettingsFile = filepath.Join(t.TempDir(), "settings.json")
	return cfg
}

func TestInjectEngine_Defaults(t *testing.T) {
	sink := &terminal.Transcript{}

	engine, err := InjectEngine(testConfig(t), sink)
	require.NoError(t, err)

	engine.SubmitLine("ls /Add-On")
	assert.Equal(t, "$ ls /Add-On\n├─ readme.md\n└─ changelog.md\n\n$ ", sink.String())
}

func TestInjectEngine_CustomFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)
	cfg.Prompt = "> "
	cfg.Commands = []string{"ls", "explain"}
	cfg.FilesystemFile = filepath.Join(dir, "tree.yaml")
	cfg.TopicsFile = filepath.Join(dir, "topics.yaml")
	require.NoError(t, os.WriteFile(cfg.FilesystemFile, []byte("\"/\":\n  srv:\n"), 0644))
	require.NoError(t, os.WriteFile(cfg.TopicsFile, []byte("topics:\n  - name: Go\n    text: gopher\n"), 0644))
	sink := &terminal.Transcript{}

	engine, err := InjectEngine(cfg, sink)
	require.NoError(t, err)

	engine.SubmitLine("help")
	engine.SubmitLine("ls")
	engine.SubmitLine("explain go")
	out := sink.String()
	assert.Contains(t, out, "Available commands: ls explain\n")
	assert.Contains(t, out, "└─ srv\n")
	assert.Contains(t, out, "Definitions: Go\ngopher\n")
	assert.True(t, len(out) > 2 && out[len(out)-2:] == "> ")
}

func TestInjectEngine_PersistsSettings(t *testing.T) {
	cfg := testConfig(t)
	engine, err := InjectEngine(cfg, &terminal.Transcript{})
	require.NoError(t, err)

	engine.SubmitLine("settings theme light")

	store, err := InjectSettingsStore(cfg)
	require.NoError(t, err)
	assert.Equal(t, "light", store.Snapshot().Theme)
}

func TestInjectEngine_Translations(t *testing.T) {
	cfg := testConfig(t)
	cfg.TranslationsFile = filepath.Join(t.TempDir(), "messages.yaml")
	require.NoError(t, os.WriteFile(cfg.TranslationsFile, []byte("en:\n  navigation.extras: Extras\nit:\n  navigation.extras: Varie\n"), 0644))
	sink := &terminal.Transcript{}

	engine, err := InjectEngine(cfg, sink)
	require.NoError(t, err)

	engine.SubmitLine("settings language it")
	engine.SubmitLine("ls /")
	engine.SubmitLine("ls /Varie")
	out := sink.String()
	assert.Contains(t, out, "├─ Varie/\n")
	assert.Contains(t, out, "├─ Plugins/\n")
	assert.Contains(t, out, "ls /Varie\n├─ fpv.txt\n└─ frisbee.txt\n")
}

func TestInjectEngine_BadFiles(t *testing.T) {
	cfg := testConfig(t)
	cfg.FilesystemFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := InjectEngine(cfg, &terminal.Transcript{})
	assert.Error(t, err)

	cfg = testConfig(t)
	cfg.TopicsFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = InjectEngine(cfg, &terminal.Transcript{})
	assert.Error(t, err)

	cfg = testConfig(t)
	cfg.TranslationsFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = InjectEngine(cfg, &terminal.Transcript{})
	assert.Error(t, err)
}

func TestProvideMachine_WithoutStore(t *testing.T) {
	machine := ProvideMachine(config.Default(), nil, nil, nil, nil)
	assert.NotEmpty(t, machine.Commands())
}
