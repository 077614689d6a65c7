package terminal

// Effect is one output instruction produced by a transition.
type Effect interface {
	effect()
}

// Write appends raw text to the sink.
type Write struct{ Text string }

// WriteLine appends text followed by a line break.
type WriteLine struct{ Text string }

// Clear erases everything previously rendered.
type Clear struct{}

// ChangeSetting asks the host to persist a validated settings change.
type ChangeSetting struct {
	Key   string
	Value string
}

func (Write) effect()         {}
func (WriteLine) effect()     {}
func (Clear) effect()         {}
func (ChangeSetting) effect() {}

// eraseSequence visually removes the character before the cursor.
const eraseSequence = "\b \b"

type emitter struct {
	effects []Effect
}

func (e *emitter) write(text string) {
	if text == "" {
		return
	}
	e.effects = append(e.effects, Write{Text: text})
}

func (e *emitter) line(text string) {
	e.effects = append(e.effects, WriteLine{Text: text})
}

func (e *emitter) lines(texts []string) {
	for _, text := range texts {
		e.line(text)
	}
}

func (e *emitter) clear() {
	e.effects = append(e.effects, Clear{})
}

func (e *emitter) emit(effect Effect) {
	e.effects = append(e.effects, effect)
}
