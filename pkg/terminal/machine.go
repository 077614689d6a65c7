package terminal

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/voidbrain/webcli/pkg/fakefs"
	"github.com/voidbrain/webcli/pkg/i18n"
	"github.com/voidbrain/webcli/pkg/settings"
	"github.com/voidbrain/webcli/pkg/topics"
	"github.com/voidbrain/webcli/pkg/version"
)

const (
	// DefaultPrompt is rendered before every line while no follow-up is pending.
	DefaultPrompt = "$ "

	// DateLayout is the layout used by the date command.
	DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

	settingsUsage = "Usage: settings [language|flavour|color|theme <value>]"
)

// Machine turns key events into state changes and output effects. It holds
// only configuration fixed at construction, so one Machine can drive any
// number of sessions.
type Machine struct {
	prompt   string
	commands []string
	fs       *fakefs.Node
	topics   *topics.Catalogue
	now      func() time.Time
	version  string
	settings settings.Reader
	labels   *i18n.Catalogue
}

// Option configures a Machine.
type Option func(*Machine)

// WithPrompt sets the prompt rendered while idle.
func WithPrompt(prompt string) Option {
	return func(m *Machine) { m.prompt = prompt }
}

// WithCommands sets the command names listed by help and offered by completion.
func WithCommands(names ...string) Option {
	return func(m *Machine) { m.commands = append([]string(nil), names...) }
}

// WithFilesystem sets the tree answered by ls.
func WithFilesystem(root *fakefs.Node) Option {
	return func(m *Machine) { m.fs = root }
}

// WithTopics sets the catalogue used by explain.
func WithTopics(catalogue *topics.Catalogue) Option {
	return func(m *Machine) { m.topics = catalogue }
}

// WithClock sets the time source used by date.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithVersion sets the string rendered by version.
func WithVersion(v string) Option {
	return func(m *Machine) { m.version = v }
}

// WithSettings enables the settings command. The language setting picks
// the translation of every label the machine prints.
func WithSettings(reader settings.Reader) Option {
	return func(m *Machine) { m.settings = reader }
}

// WithTranslations sets the labels used for each language.
func WithTranslations(catalogue *i18n.Catalogue) Option {
	return func(m *Machine) { m.labels = catalogue }
}

// NewMachine creates a Machine with the site defaults for anything not configured.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		prompt:   DefaultPrompt,
		commands: append([]string(nil), DefaultCommands...),
		fs:       fakefs.Default(),
		topics:   topics.Default(),
		now:      time.Now,
		version:  version.GetInfo().ShortString(),
		labels:   i18n.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Commands returns the configured command names.
func (m *Machine) Commands() []string {
	return append([]string(nil), m.commands...)
}

// Start returns the initial state and renders the first prompt.
func (m *Machine) Start() (State, []Effect) {
	s := NewState()
	var out emitter
	out.write(m.promptFor(s))
	return s, out.effects
}

// Transition applies one key event.
func (m *Machine) Transition(s State, ev KeyEvent) (State, []Effect) {
	var out emitter
	switch ev.Name {
	case KeyEnter:
		return m.Submit(s)
	case KeyBackspace:
		if s.Buffer == "" {
			return s, nil
		}
		_, size := utf8.DecodeLastRuneInString(s.Buffer)
		s.Buffer = s.Buffer[:len(s.Buffer)-size]
		out.write(eraseSequence)
	case KeyArrowUp:
		s = m.recall(s, 1, &out)
	case KeyArrowDown:
		s = m.recall(s, -1, &out)
	case KeyTab:
		s = m.complete(s, &out)
	default:
		ch, ok := ev.printable()
		if !ok {
			return s, nil
		}
		s.Buffer += ch
		out.write(ch)
	}
	return s, out.effects
}

// Submit runs the current buffer as if Enter was pressed.
func (m *Machine) Submit(s State) (State, []Effect) {
	var out emitter
	line := strings.TrimSpace(s.Buffer)
	s.Buffer = ""
	out.line("")

	if line == "" {
		m.renderPrompt(s, &out)
		return s, out.effects
	}
	s = s.withEntry(line)

	if pending, ok := s.Awaiting(); ok {
		out.lines(m.followUp(pending.Command, line))
		s.Conversation = Idle{}
		m.renderPrompt(s, &out)
		return s, out.effects
	}

	inv, _ := ParseLine(line)
	s = m.dispatch(s, inv, &out)
	return s, out.effects
}

// Execute echoes line and runs it as a command, the way a link on the page
// triggers one. History and any pending follow-up are left untouched.
func (m *Machine) Execute(s State, line string) (State, []Effect) {
	var out emitter
	out.line(line)
	s.Buffer = ""

	inv, ok := ParseLine(line)
	if !ok {
		m.renderPrompt(s, &out)
		return s, out.effects
	}
	s = m.dispatch(s, inv, &out)
	return s, out.effects
}

func (m *Machine) dispatch(s State, inv Invocation, out *emitter) State {
	switch inv.Command {
	case CommandHelp:
		out.line(m.text("help.available", "Available commands") + ": " + strings.Join(m.commands, " "))
	case CommandClear:
		out.clear()
		out.write(m.promptFor(s))
		return s
	case CommandEcho:
		out.line(strings.Join(inv.Args, " "))
	case CommandDate:
		out.line(m.now().Format(DateLayout))
	case CommandVersion:
		out.line(m.version)
	case CommandLs:
		m.list(inv.Args, out)
	case CommandExplain:
		s = m.explain(s, inv.Args, out)
	case CommandHistory:
		for i := len(s.History) - 1; i >= 0; i-- {
			out.line(fmt.Sprintf("%4d  %s", len(s.History)-i, s.History[i]))
		}
	case CommandSettings:
		m.configure(inv.Args, out)
	default:
		out.line(m.text("command.not_found", "Command not found") + ": " + inv.Name)
	}
	m.renderPrompt(s, out)
	return s
}

func (m *Machine) list(args []string, out *emitter) {
	path := "/"
	if len(args) > 0 {
		path = args[0]
	}
	lang := m.language()
	label := func(name string) string { return m.labels.Name(lang, name) }
	node, ok := m.fs.ResolveLabelled(path, label)
	if !ok {
		out.line(m.text("ls.not_found", "Path not found") + ": " + path)
		return
	}
	out.lines(node.TreeLabelled(label))
}

// explain always prints the catalogue. Without an argument it waits for the
// topic on the next line; with one it answers at once and stays idle.
func (m *Machine) explain(s State, args []string, out *emitter) State {
	out.line(m.topics.LineWithLabel(m.text("explain.label", m.topics.Label)))
	if len(args) == 0 {
		s.Conversation = AwaitingFollowUp{Command: CommandExplain, Prompt: m.text("explain.prompt", m.topics.Prompt())}
		return s
	}
	out.lines(m.followUp(CommandExplain, strings.Join(args, " ")))
	return s
}

func (m *Machine) followUp(cmd Command, input string) []string {
	switch cmd {
	case CommandExplain:
		topic, ok := m.topics.Lookup(input)
		if !ok {
			return []string{m.text("explain.invalid", "Invalid option") + ": " + input}
		}
		return topic.Lines()
	default:
		return nil
	}
}

func (m *Machine) configure(args []string, out *emitter) {
	if m.settings == nil {
		out.line("Settings unavailable")
		return
	}
	switch len(args) {
	case 0:
		out.line(m.settings.Snapshot().String())
	case 2:
		key, value := strings.ToLower(args[0]), strings.ToLower(args[1])
		err := settings.Validate(key, value)
		switch {
		case errors.Is(err, settings.ErrUnknownKey):
			out.line("Unknown setting: " + args[0])
		case err != nil:
			out.line("Invalid option: " + args[1])
		default:
			out.emit(ChangeSetting{Key: key, Value: value})
			out.line(fmt.Sprintf("Set %s to %s", key, value))
		}
	default:
		out.line(settingsUsage)
	}
}

// recall replaces the buffer with a history entry. step is +1 towards older
// entries (ArrowUp) and -1 towards newer ones (ArrowDown).
func (m *Machine) recall(s State, step int, out *emitter) State {
	if len(s.History) == 0 {
		return s
	}
	idx := s.recallIndex(step)
	for range utf8.RuneCountInString(s.Buffer) {
		out.write(eraseSequence)
	}
	s.HistoryIndex = idx
	s.Buffer = s.History[idx]
	out.write(s.Buffer)
	return s
}

func (m *Machine) complete(s State, out *emitter) State {
	matches := Complete(m.commands, s.Buffer)
	switch len(matches) {
	case 0:
	case 1:
		suffix := strings.TrimPrefix(matches[0], s.Buffer)
		s.Buffer += suffix
		out.write(suffix)
	default:
		out.line("")
		out.line(strings.Join(matches, " "))
		m.renderPrompt(s, out)
		out.write(s.Buffer)
	}
	return s
}

// language is read on every call so a change made by the settings command
// applies from the next line on.
func (m *Machine) language() string {
	if m.settings == nil {
		return settings.Defaults().Language
	}
	return m.settings.Snapshot().Language
}

func (m *Machine) text(key, fallback string) string {
	return m.labels.Text(m.language(), key, fallback)
}

func (m *Machine) promptFor(s State) string {
	if pending, ok := s.Awaiting(); ok {
		return pending.Prompt + " "
	}
	return m.prompt
}

func (m *Machine) renderPrompt(s State, out *emitter) {
	out.line("")
	out.write(m.promptFor(s))
}
