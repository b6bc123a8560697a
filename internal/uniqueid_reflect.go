//go:build nounsafe

package internal

import "reflect"

// The default implementation of UniqueID uses unsafe.Pointer. If you can't use
// packages importing unsafe, you can build with -tags=nounsafe to select this
// implementation instead.

// UniqueID returns the string's address.
func (s *String) UniqueID() uintptr {
	return reflect.ValueOf(s).Pointer()
}

// UniqueID returns the block's address.
func (b *Block) UniqueID() uintptr {
	return reflect.ValueOf(b).Pointer()
}
