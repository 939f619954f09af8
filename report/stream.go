package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/occupancy/ladder"
	"github.com/katalvlaran/occupancy/normalize"
)

// TextStream writes text output incrementally, one configuration at a time.
// It is meant to be fed from enumerate.WithOnConfiguration; indices are not
// padded because the final count is unknown up front.
type TextStream struct {
	w *bufio.Writer
	n int
}

// NewTextStream writes the problem header and returns the stream.
func NewTextStream(w io.Writer, p normalize.Reduced) (*TextStream, error) {
	s := &TextStream{w: bufio.NewWriter(w)}
	if _, err := fmt.Fprintln(s.w, problemLine(NewProblem(p))); err != nil {
		return nil, err
	}

	return s, nil
}

// Add writes the next configuration.
func (s *TextStream) Add(c ladder.Configuration) error {
	s.n++
	_, err := fmt.Fprintf(s.w, "%d: %s\n", s.n, c)

	return err
}

// Flush writes buffered rows without the total line. Use it when the
// search stops early.
func (s *TextStream) Flush() error { return s.w.Flush() }

// Close writes the total line and flushes.
func (s *TextStream) Close() error {
	fmt.Fprintf(s.w, "total configurations: %d\n", s.n)

	return s.w.Flush()
}
