package transcript

import (
	"fmt"
	"io"
)

// Writer is an io.Writer with a sticky error.
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w. Wrapping a *Writer returns it unchanged.
func New(w io.Writer) *Writer {
	if tw, ok := w.(*Writer); ok {
		return tw
	}
	return &Writer{w: w}
}

// Write implements io.Writer.
//
// After the first failure it reports the same error without writing.
func (t *Writer) Write(p []byte) (int, error) {
	if t.err != nil {
		return 0, t.err
	}
	n, err := t.w.Write(p)
	if err != nil {
		t.err = err
	}
	return n, err
}

// Println writes a newline-terminated line built like fmt.Sprintln.
func (t *Writer) Println(a ...any) {
	_, _ = fmt.Fprintln(t, a...)
}

// Printf writes a formatted line; a trailing newline is not added.
func (t *Writer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(t, format, a...)
}

// Err returns the first write error, if any.
func (t *Writer) Err() error { return t.err }

// Line writes s plus a newline to w, discarding the result.
//
// Capability methods use it so they stay single-line and error-free; the
// caller's Writer records failures.
func Line(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}
