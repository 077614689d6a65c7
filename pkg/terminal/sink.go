package terminal

import (
	"io"
	"strings"
)

// Sink is the destination for rendered terminal text.
type Sink interface {
	// Write appends text without a line break.
	Write(text string)
	// WriteLine appends text followed by a line break.
	WriteLine(text string)
	// Clear erases all prior output.
	Clear()
}

const clearScreen = "\033[H\033[2J"

// WriterSink renders to an io.Writer. Write errors belong to the host and are dropped.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Write(text string)     { _, _ = io.WriteString(s.w, text) }
func (s *WriterSink) WriteLine(text string) { _, _ = io.WriteString(s.w, text+"\n") }
func (s *WriterSink) Clear()                { _, _ = io.WriteString(s.w, clearScreen) }

// Transcript is an in-memory sink that keeps everything written since the last Clear.
type Transcript struct {
	out    strings.Builder
	clears int
}

func (t *Transcript) Write(text string) { t.out.WriteString(text) }

func (t *Transcript) WriteLine(text string) {
	t.out.WriteString(text)
	t.out.WriteByte('\n')
}

func (t *Transcript) Clear() {
	t.out.Reset()
	t.clears++
}

// String returns the text written since the last Clear.
func (t *Transcript) String() string { return t.out.String() }

// Lines splits the transcript on line breaks.
func (t *Transcript) Lines() []string { return strings.Split(t.out.String(), "\n") }

// Clears returns how many times the sink was cleared.
func (t *Transcript) Clears() int { return t.clears }

// Reset discards the transcript without counting a clear.
func (t *Transcript) Reset() { t.out.Reset() }
