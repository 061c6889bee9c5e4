package ddl

import (
	"bufio"
	"fmt"
	"io"
)

// Writer appends rendered lines to a destination stream in emission order.
// It is the only component that performs output I/O; renderers stay pure.
type Writer struct {
	dest  io.Writer
	echo  io.Writer
	lines int
}

// NewWriter creates a writer over the destination stream
func NewWriter(dest io.Writer) *Writer {
	return &Writer{dest: dest}
}

// SetEchoSink enables the echo-to-log side channel
func (w *Writer) SetEchoSink(sink io.Writer) {
	w.echo = sink
}

// Append writes the lines to the destination in order, one per line
func (w *Writer) Append(lines []string) error {
	if w.dest == nil {
		return ErrNilDestination
	}
	for _, line := range lines {
		if _, err := io.WriteString(w.dest, line+"\n"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		w.lines++
	}
	return nil
}

// Lines returns the number of lines written so far
func (w *Writer) Lines() int {
	return w.lines
}

// Echo re-reads the destination stream from the start and copies every line
// verbatim to the echo sink. The destination must support seeking; its write
// position is restored afterwards so the echo cannot alter the written
// content. Without an echo sink this is a no-op.
func (w *Writer) Echo() error {
	if w.echo == nil {
		return nil
	}
	seeker, ok := w.dest.(io.ReadSeeker)
	if !ok {
		return ErrEchoUnsupported
	}

	pos, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("failed to record stream position: %w", err)
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind stream: %w", err)
	}

	scanner := bufio.NewScanner(seeker)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w.echo, scanner.Text()); err != nil {
			_, _ = seeker.Seek(pos, io.SeekStart)
			return fmt.Errorf("failed to echo output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		_, _ = seeker.Seek(pos, io.SeekStart)
		return fmt.Errorf("failed to re-read stream: %w", err)
	}

	if _, err := seeker.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("failed to restore stream position: %w", err)
	}
	return nil
}
