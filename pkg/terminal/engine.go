package terminal

import (
	"github.com/voidbrain/webcli/pkg/logging"
	"github.com/voidbrain/webcli/pkg/settings"
)

// Engine owns one terminal session: it keeps the State between key events
// and applies each transition's effects to its Sink. An Engine must receive
// its events from a single goroutine.
type Engine struct {
	machine  *Machine
	state    State
	sink     Sink
	settings settings.Writer
	logger   logging.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithSettingsWriter persists changes requested by the settings command.
func WithSettingsWriter(w settings.Writer) EngineOption {
	return func(e *Engine) { e.settings = w }
}

// WithLogger replaces the engine's logger.
func WithLogger(logger logging.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine starts a session on sink and renders the initial prompt.
func NewEngine(sink Sink, machine *Machine, opts ...EngineOption) *Engine {
	e := &Engine{
		machine: machine,
		sink:    sink,
		logger:  logging.NewComponentLogger("terminal"),
	}
	for _, opt := range opts {
		opt(e)
	}

	var effects []Effect
	e.state, effects = machine.Start()
	e.apply(effects)
	return e
}

// HandleKey applies one key event.
func (e *Engine) HandleKey(ev KeyEvent) {
	if ev.Name == KeyEnter {
		e.logger.Debug("line submitted", "line", e.state.Buffer)
	}
	next, effects := e.machine.Transition(e.state, ev)
	e.state = next
	e.apply(effects)
}

// SubmitLine types line and presses Enter.
func (e *Engine) SubmitLine(line string) {
	for _, ev := range KeysFor(line) {
		e.HandleKey(ev)
	}
	e.HandleKey(NamedKey(KeyEnter))
}

// Execute runs line as a command without going through the input buffer.
func (e *Engine) Execute(line string) {
	e.logger.Debug("executing command", "line", line)
	next, effects := e.machine.Execute(e.state, line)
	e.state = next
	e.apply(effects)
}

// State returns the current session state.
func (e *Engine) State() State {
	return e.state
}

// Buffer returns the line being edited.
func (e *Engine) Buffer() string {
	return e.state.Buffer
}

func (e *Engine) apply(effects []Effect) {
	for _, effect := range effects {
		switch effect := effect.(type) {
		case Write:
			e.sink.Write(effect.Text)
		case WriteLine:
			e.sink.WriteLine(effect.Text)
		case Clear:
			e.sink.Clear()
		case ChangeSetting:
			if e.settings == nil {
				continue
			}
			// Storage failures never interrupt the session.
			if err := e.settings.Set(effect.Key, effect.Value); err != nil {
				e.logger.Warn("failed to persist setting", "key", effect.Key, "error", err)
			}
		}
	}
}
