//go:build !nounsafe

package internal

import "unsafe"

// Using unsafe to retrieve addresses avoids a trip through reflect for every
// identity check.

// UniqueID returns the string's address.
func (s *String) UniqueID() uintptr {
	return uintptr(unsafe.Pointer(s))
}

// UniqueID returns the block's address.
func (b *Block) UniqueID() uintptr {
	return uintptr(unsafe.Pointer(b))
}
