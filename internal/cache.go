package internal

import "sync"

// Cache holds the strings that are shared by every runtime in the process:
// one single-byte string for each byte value, and the canonical empty string.
// A Cache is immutable once built, so it is safe to share between goroutines.
type Cache struct {
	// chars holds the single-byte strings. Each one's contents are a
	// one-byte window into bytes.
	chars [256]String
	bytes [256]byte

	// Empty is the canonical zero-length string. Operations producing an
	// empty result return it rather than allocating.
	Empty *String
}

var (
	chars     *Cache
	charsOnce sync.Once
)

// Chars returns the process-wide character cache, building it on first use.
// Every call returns the same cache, and the cache is fully built before any
// call returns.
func Chars() *Cache {
	charsOnce.Do(func() { chars = newCache() })
	return chars
}

// newCache builds a character cache. Only Chars should call this; runtimes
// rely on cached strings being identical across the process.
func newCache() *Cache {
	c := &Cache{Empty: &String{b: []byte{}}}
	for i := range c.bytes {
		c.bytes[i] = byte(i)
		c.chars[i].b = c.bytes[i : i+1 : i+1]
	}
	return c
}

// Char returns the cached single-byte string for b.
func (c *Cache) Char(b byte) *String {
	return &c.chars[b]
}

// Chr returns the cached single-byte string for the byte value i. If i is
// outside 0..255, the result is a ContractViolation fault.
func (c *Cache) Chr(i int) (*String, error) {
	if i < 0 || i >= len(c.chars) {
		return nil, &Fault{Kind: ContractViolation, Op: "chr", Args: []int{i}}
	}
	return &c.chars[i], nil
}

// Substring returns the n bytes of s starting at first. A single-byte result
// is the cached string for that byte, and an empty result is c.Empty;
// otherwise the result is a new string. If the range does not lie within s,
// the result is a ContractViolation fault reporting the length of s, first,
// and n.
func (c *Cache) Substring(s *String, first, n int) (*String, error) {
	if first < 0 || n < 0 || first > s.Len() || n > s.Len()-first {
		return nil, &Fault{Kind: ContractViolation, Op: "substring", Args: []int{s.Len(), first, n}}
	}
	switch n {
	case 0:
		return c.Empty, nil
	case 1:
		return c.Char(s.b[first]), nil
	}
	return NewString(s.b[first : first+n]), nil
}
