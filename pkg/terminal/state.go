package terminal

// State is the complete engine state between two key events. Transitions
// return a new State and never modify the slices of the one they were given.
type State struct {
	Buffer string
	// History holds submitted non-empty lines, most recent first.
	History []string
	// HistoryIndex is -1 when not browsing history, otherwise a valid index into History.
	HistoryIndex int
	Conversation Conversation
}

// NewState returns the state of a freshly started session.
func NewState() State {
	return State{
		HistoryIndex: -1,
		Conversation: Idle{},
	}
}

// Awaiting reports whether a follow-up line is pending.
func (s State) Awaiting() (AwaitingFollowUp, bool) {
	pending, ok := s.Conversation.(AwaitingFollowUp)
	return pending, ok
}

// withEntry prepends line to a copy of the history and stops browsing.
func (s State) withEntry(line string) State {
	history := make([]string, 0, len(s.History)+1)
	history = append(history, line)
	history = append(history, s.History...)
	s.History = history
	s.HistoryIndex = -1
	return s
}

// recallIndex returns the history index a recall towards older (+1) or
// newer (-1) entries lands on. The first recall always lands on the most
// recent entry; later ones hold at either end.
func (s State) recallIndex(step int) int {
	if s.HistoryIndex == -1 {
		return 0
	}
	idx := s.HistoryIndex + step
	if idx < 0 {
		return 0
	}
	if idx > len(s.History)-1 {
		return len(s.History) - 1
	}
	return idx
}
