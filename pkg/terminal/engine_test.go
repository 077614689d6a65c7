package terminal

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidbrain/webcli/pkg/logging"
	"github.com/voidbrain/webcli/pkg/settings"
)

type recordingWriter struct {
	calls [][2]string
	err   error
}

func (w *recordingWriter) Set(key, value string) error {
	w.calls = append(w.calls, [2]string{key, value})
	return w.err
}

func newTestEngine(opts ...Option) (*Engine, *Transcript) {
	sink := &Transcript{}
	engine := NewEngine(sink, NewMachine(opts...), WithLogger(logging.NewDisabledLogger()))
	return engine, sink
}

func TestEngine_RendersInitialPrompt(t *testing.T) {
	_, sink := newTestEngine()

	assert.Equal(t, "$ ", sink.String())
}

func TestEngine_HandleKey(t *testing.T) {
	engine, sink := newTestEngine()

	for _, ev := range KeysFor("echo hi") {
		engine.HandleKey(ev)
	}
	assert.Equal(t, "echo hi", engine.Buffer())
	assert.Equal(t, "$ echo hi", sink.String())

	engine.HandleKey(NamedKey(KeyBackspace))
	engine.HandleKey(NamedKey(KeyEnter))

	assert.Equal(t, "$ echo hi\b \b\nh\n\n$ ", sink.String())
	assert.Equal(t, []string{"echo h"}, engine.State().History)
	assert.Equal(t, "", engine.Buffer())
}

func TestEngine_SubmitLine(t *testing.T) {
	engine, sink := newTestEngine()

	engine.SubmitLine("explain")
	engine.SubmitLine("ml")

	lines := sink.Lines()
	assert.Contains(t, lines, "🤖  Machine Learning:")
	assert.Contains(t, lines, "HAL? Is that you?")
	assert.Equal(t, "$ ", lines[len(lines)-1])
	assert.Equal(t, Idle{}, engine.State().Conversation)
}

func TestEngine_Clear(t *testing.T) {
	engine, sink := newTestEngine()
	engine.SubmitLine("help")

	engine.SubmitLine("clear")

	assert.Equal(t, "$ ", sink.String())
	assert.Equal(t, 1, sink.Clears())
	assert.Equal(t, []string{"clear", "help"}, engine.State().History)
}

func TestEngine_Execute(t *testing.T) {
	engine, sink := newTestEngine()
	for _, ev := range KeysFor("ec") {
		engine.HandleKey(ev)
	}

	engine.Execute("ls /Modules")

	assert.Equal(t, "$ ecls /Modules\n└─ ~web-development\n\n$ ", sink.String())
	assert.Empty(t, engine.State().History)
	assert.Equal(t, "", engine.Buffer())
}

func TestEngine_ChangeSetting(t *testing.T) {
	store := &stubSettings{current: settings.Defaults()}
	writer := &recordingWriter{}
	sink := &Transcript{}
	engine := NewEngine(sink, NewMachine(WithSettings(store)),
		WithSettingsWriter(writer),
		WithLogger(logging.NewDisabledLogger()),
	)

	engine.SubmitLine("settings theme light")

	require.Len(t, writer.calls, 1)
	assert.Equal(t, [2]string{"theme", "light"}, writer.calls[0])
	assert.Contains(t, sink.String(), "Set theme to light\n")
}

func TestEngine_LanguageChangeAppliesToNextLine(t *testing.T) {
	store, err := settings.NewFileStore(filepath.Join(t.TempDir(), "settings.json"), nil)
	require.NoError(t, err)
	sink := &Transcript{}
	engine := NewEngine(sink, NewMachine(WithSettings(store)),
		WithSettingsWriter(store),
		WithLogger(logging.NewDisabledLogger()),
	)

	engine.SubmitLine("settings language it")
	sink.Reset()
	engine.SubmitLine("ls /")

	out := sink.String()
	assert.Contains(t, out, "├─ Plugin/\n")
	assert.Contains(t, out, "├─ Moduli/\n")
	assert.Contains(t, out, "└─ Link.html\n")
	assert.NotContains(t, out, "Plugins/")
	assert.Equal(t, "it", store.Snapshot().Language)
}

func TestEngine_ChangeSettingFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.NewLogger(logging.Config{Output: &logs})
	writer := &recordingWriter{err: errors.New("read-only file system")}
	sink := &Transcript{}
	engine := NewEngine(sink, NewMachine(WithSettings(&stubSettings{current: settings.Defaults()})),
		WithSettingsWriter(writer),
		WithLogger(logger),
	)

	engine.SubmitLine("settings color orange")
	engine.SubmitLine("echo still here")

	assert.Contains(t, logs.String(), "failed to persist setting")
	assert.Contains(t, logs.String(), "read-only file system")
	assert.Contains(t, sink.String(), "still here\n")
}

func TestEngine_ChangeSettingWithoutWriter(t *testing.T) {
	engine, sink := newTestEngine(WithSettings(&stubSettings{current: settings.Defaults()}))

	assert.NotPanics(t, func() { engine.SubmitLine("settings color green") })
	assert.Contains(t, sink.String(), "Set color to green\n")
}

func TestWriterSink(t *testing.T) {
	var out bytes.Buffer
	sink := NewWriterSink(&out)

	sink.Write("$ ")
	sink.WriteLine("ls")
	sink.Clear()

	assert.Equal(t, "$ ls\n\033[H\033[2J", out.String())
}

func TestTranscript(t *testing.T) {
	var sink Transcript
	sink.Write("a")
	sink.WriteLine("b")
	sink.Write("c")

	assert.Equal(t, []string{"ab", "c"}, sink.Lines())

	sink.Reset()
	assert.Equal(t, "", sink.String())
	assert.Zero(t, sink.Clears())
}
