package internal

import (
	"io"

	"golang.org/x/text/encoding/charmap"
)

// String is the runtime representation of Tiger strings: an immutable
// sequence of raw bytes with an explicit length. Zero bytes are ordinary
// content.
//
// Strings are always handled by pointer. Two *String values are identical iff
// they are the same pointer; StringEqual uses this as a fast path, and several
// operations return one of their operands or a cached singleton rather than a
// copy. Callers must therefore never rely on a fresh pointer from an
// operation unless it documents one.
type String struct {
	b []byte
}

// NewString creates a string holding a copy of b. The result is always a new
// value, even if b is empty or a single byte.
func NewString(b []byte) *String {
	return &String{b: append([]byte(nil), b...)}
}

// NewStringOf creates a string holding the bytes of s.
func NewStringOf(s string) *String {
	return &String{b: []byte(s)}
}

// Len returns the number of bytes in the string.
func (s *String) Len() int {
	return len(s.b)
}

// At returns the byte at index i. Panics if i is out of range.
func (s *String) At(i int) byte {
	return s.b[i]
}

// Bytes returns a copy of the string's contents.
func (s *String) Bytes() []byte {
	return append([]byte(nil), s.b...)
}

// AppendTo appends the string's contents to dst and returns the extended
// slice.
func (s *String) AppendTo(dst []byte) []byte {
	return append(dst, s.b...)
}

// WriteTo writes the string's contents to w.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.b)
	return int64(n), err
}

// String returns the contents of s decoded as Latin-1, so that every byte
// maps to exactly one rune. It is meant for diagnostics; use Bytes to get the
// raw contents.
func (s *String) String() string {
	r, err := charmap.ISO8859_1.NewDecoder().Bytes(s.b)
	if err != nil {
		// Latin-1 has a mapping for every byte, so this can't happen.
		return string(s.b)
	}
	return string(r)
}
