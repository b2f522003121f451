package game

import (
	"fmt"
	"io"
	"sync"
)

// #region sink

// Sink receives the displayed game log, one line at a time, in order.
type Sink interface {
	Append(line string)
}

// #endregion sink

// #region memory-sink

// MemorySink buffers displayed lines in memory.
type MemorySink struct {
	mu    sync.Mutex
	lines []string
}

// NewMemorySink creates an empty buffer sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Append adds one line.
func (s *MemorySink) Append(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

// Lines returns a copy of everything appended so far.
func (s *MemorySink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// #endregion memory-sink

// #region writer-sink

// WriterSink streams displayed lines to an io.Writer, newline-terminated.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps a writer.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Append writes the line followed by a newline. Write errors are ignored;
// the display log is best-effort and must never stall the game.
func (s *WriterSink) Append(line string) {
	fmt.Fprintln(s.w, line)
}

// #endregion writer-sink

// #region tee-sink

// TeeSink fans each line out to several sinks in order.
type TeeSink struct {
	sinks []Sink
}

// NewTeeSink combines sinks.
func NewTeeSink(sinks ...Sink) *TeeSink {
	return &TeeSink{sinks: sinks}
}

// Append forwards the line to every sink.
func (s *TeeSink) Append(line string) {
	for _, sink := range s.sinks {
		sink.Append(line)
	}
}

// #endregion tee-sink
