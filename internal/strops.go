package internal

import "bytes"

// StringEqual reports whether s and t have the same contents. Identical
// strings are equal without examining their contents.
func StringEqual(s, t *String) bool {
	if s == t {
		return true
	}
	return len(s.b) == len(t.b) && bytes.Equal(s.b, t.b)
}

// StringCompare orders s and t lexicographically by unsigned byte value,
// returning -1, 0, or 1. If one is a prefix of the other, the shorter sorts
// first.
func StringCompare(s, t *String) int {
	if s == t {
		return 0
	}
	return bytes.Compare(s.b, t.b)
}

// Concat returns the concatenation of a and b. If either is empty, the
// result is the other operand itself; otherwise it is a new string.
func Concat(a, b *String) *String {
	switch {
	case len(a.b) == 0:
		return b
	case len(b.b) == 0:
		return a
	}
	r := make([]byte, len(a.b)+len(b.b))
	copy(r, a.b)
	copy(r[len(a.b):], b.b)
	return &String{b: r}
}

// Size returns the length of s.
func Size(s *String) int {
	return len(s.b)
}

// Ord returns the value of the first byte of s, or -1 if s is empty. Bytes
// after the first are ignored.
func Ord(s *String) int {
	if len(s.b) == 0 {
		return -1
	}
	return int(s.b[0])
}

// Not returns 1 if i is 0 and 0 otherwise.
func Not(i int) int {
	if i == 0 {
		return 1
	}
	return 0
}
