package internal

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// FlushMode controls when a console flushes output on its own.
type FlushMode int

// Flush modes.
const (
	// FlushAuto flushes after each line if the output is a terminal, like C
	// stdio does, and otherwise only when asked.
	FlushAuto FlushMode = iota
	// FlushLine flushes whenever printed text contains a newline.
	FlushLine
	// FlushNever flushes only when asked.
	FlushNever
)

var flushModeNames = [...]string{"auto", "line", "never"}

// String returns the name of the mode as used in configuration.
func (m FlushMode) String() string {
	if m < FlushAuto || m > FlushNever {
		return fmt.Sprintf("FlushMode(%d)", m)
	}
	return flushModeNames[m]
}

// ParseFlushMode returns the mode named by s.
func ParseFlushMode(s string) (FlushMode, error) {
	for i, name := range flushModeNames {
		if s == name {
			return FlushMode(i), nil
		}
	}
	return FlushAuto, fmt.Errorf("unknown flush mode %q", s)
}

// Console is buffered byte I/O producing and consuming runtime strings. A
// Console is not safe for concurrent use.
type Console struct {
	in   *bufio.Reader
	out  *bufio.Writer
	line bool

	// eof is set once the input is exhausted. Reads never touch the input
	// again after that.
	eof bool
	// err is the first non-EOF read error.
	err error
}

// NewConsole creates a console reading from in and writing to out with
// buffers of the given size. If size is not positive, bufio's default is
// used.
func NewConsole(in io.Reader, out io.Writer, size int, mode FlushMode) *Console {
	if size <= 0 {
		size = 4096
	}
	c := Console{
		in:  bufio.NewReaderSize(in, size),
		out: bufio.NewWriterSize(out, size),
	}
	switch mode {
	case FlushLine:
		c.line = true
	case FlushAuto:
		c.line = isTerminal(out)
	}
	return &c
}

// Getchar reads one byte and returns the cached string for it. At the end of
// input, and on every read thereafter, it returns the empty string.
func (c *Console) Getchar(chars *Cache) *String {
	if c.eof {
		return chars.Empty
	}
	b, err := c.in.ReadByte()
	if err != nil {
		c.eof = true
		if err != io.EOF {
			c.err = err
		}
		return chars.Empty
	}
	return chars.Char(b)
}

// Print writes the contents of s. Write errors are held by the output buffer
// and reported by the next Flush.
func (c *Console) Print(s *String) {
	s.WriteTo(c.out)
	if c.line && bytes.IndexByte(s.b, '\n') >= 0 {
		c.out.Flush()
	}
}

// Flush writes any buffered output to the underlying writer.
func (c *Console) Flush() error {
	return c.out.Flush()
}

// Err returns the first error other than end of input encountered while
// reading.
func (c *Console) Err() error {
	return c.err
}

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty(int(f.Fd()))
}
