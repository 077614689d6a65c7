package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidbrain/webcli/pkg/config"
	"github.com/voidbrain/webcli/pkg/settings"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// testEnv isolates the command from the caller's environment and returns the
// settings file it will use.
func testEnv(t *testing.T) string {
	t.Helper()
	for _, key := range []string{config.EnvPrompt, config.EnvCommands, config.EnvFilesystem, config.EnvTopics, config.EnvTranslations, config.EnvOutputMode} {
		t.Setenv(key, "")
	}
	path := filepath.Join(t.TempDir(), "settings.json")
	t.Setenv(config.EnvSettingsFile, path)

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
	return path
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestRoot_LineMode(t *testing.T) {
	testEnv(t)

	res := execute(t, "echo hi\nls /Modules\n")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "$ echo hi\nhi\n\n$ ls /Modules\n"), res.stdout)
	assert.Contains(t, res.stdout, "└─ ~web-development\n")
	assert.True(t, strings.HasSuffix(res.stdout, "$ \n"), res.stdout)
}

func TestRoot_LineModeConversation(t *testing.T) {
	testEnv(t)

	res := execute(t, "explain\nfpv\n")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "explain what? fpv\n")
	assert.Contains(t, res.stdout, "FPV: Go Send It!")
}

func TestRoot_LineModeLanguage(t *testing.T) {
	path := testEnv(t)

	res := execute(t, "settings language it\nls /\n")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Set language to it\n")
	assert.Contains(t, res.stdout, "├─ Moduli/\n")
	assert.Contains(t, res.stdout, "└─ Link.html\n")

	store, err := settings.NewFileStore(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "it", store.Snapshot().Language)
}

func TestRoot_ConfigFile(t *testing.T) {
	testEnv(t)
	path := filepath.Join(t.TempDir(), "webcli.toml")
	require.NoError(t, os.WriteFile(path, []byte(`prompt = "> "`), 0644))

	res := execute(t, "echo x\n", "--config", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "> echo x\nx\n")

	path = filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`promtp = "> "`), 0644))
	res = execute(t, "", "--config", path)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "promtp")
}

func TestRoot_EnvFile(t *testing.T) {
	testEnv(t)
	t.Setenv(config.EnvPrompt, "")
	os.Unsetenv(config.EnvPrompt)
	envFile := filepath.Join(t.TempDir(), "webcli.env")
	require.NoError(t, os.WriteFile(envFile, []byte("WEBCLI_PROMPT=\"env> \"\n"), 0644))

	res := execute(t, "echo y\n", "--env-file", envFile)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "env> echo y\n")
}

func TestRoot_VerboseJSONLogs(t *testing.T) {
	testEnv(t)

	res := execute(t, "echo z\n", "-v", "--log-format", "json")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, `"msg":"configuration loaded"`)
	assert.Contains(t, res.stdout, "$ echo z\nz\n")
}

func TestRoot_VerboseAndQuietExclusive(t *testing.T) {
	testEnv(t)

	res := execute(t, "", "-v", "-q")
	assert.Error(t, res.err)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"echo", []string{"echo", "hello", "world"}, "hello world\n"},
		{"unknown", []string{"frobnicate"}, "Command not found: frobnicate\n"},
		{"explain inline", []string{"explain", "fpv"}, "Definitions: FPV, Ultimate Frisbee, Astrophotography, Hiking, ML\n🚁  FPV: Go Send It!\n"},
		{"clear", []string{"clear"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testEnv(t)
			res := execute(t, "", append([]string{"run"}, tt.args...)...)
			require.NoError(t, res.err)
			if tt.want == "" {
				assert.Empty(t, res.stdout)
				return
			}
			assert.True(t, strings.HasPrefix(res.stdout, tt.want), res.stdout)
		})
	}
}

func TestRun_PersistsSettings(t *testing.T) {
	path := testEnv(t)

	res := execute(t, "", "run", "settings", "theme", "light")
	require.NoError(t, res.err)
	assert.Equal(t, "Set theme to light\n", res.stdout)

	store, err := settings.NewFileStore(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "light", store.Snapshot().Theme)
}

func TestRun_RequiresCommand(t *testing.T) {
	testEnv(t)

	res := execute(t, "", "run")
	assert.Error(t, res.err)
}

func TestCommandOutput(t *testing.T) {
	tests := []struct {
		name string
		text string
		line string
		want string
	}{
		{"single line", "echo hi\nhi\n\n$ ", "echo hi", "hi\n"},
		{"several lines", "ls\na\nb\n\n$ ", "ls", "a\nb\n"},
		{"pending prompt", "explain\nDefinitions: A\n\nexplain what? ", "explain", "Definitions: A\n"},
		{"cleared", "$ ", "clear", ""},
		{"empty", "", "x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandOutput(tt.text, tt.line))
		})
	}
}

func TestVersion(t *testing.T) {
	testEnv(t)

	res := execute(t, "", "version")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "web-cli v1.0\n"), res.stdout)
	assert.Contains(t, res.stdout, "platform: ")

	res = execute(t, "", "--version")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "web-cli v1.0\n"), res.stdout)
}
