package internal

import "math"

// WordSize is the size in bytes of one storage word. Array elements and
// record fields each occupy one word.
const WordSize = 8

// maxBlockWords bounds the size of any single block regardless of the heap
// limit, so that a block's byte size fits in an int on every platform.
const maxBlockWords = math.MaxInt32 / WordSize

// Word is one word of block storage. Generated code decides per offset
// whether a word holds an integer or a reference; the runtime never looks.
// The zero Word is both integer zero and the nil reference.
type Word struct {
	Int int64
	Ref interface{}
}

// Block is the storage of a Tiger array or record. Its words are addressed by
// index; layout is entirely up to the code that allocated it.
type Block struct {
	words []Word
	size  int
}

// Len returns the number of words in the block.
func (b *Block) Len() int {
	return len(b.words)
}

// Size returns the byte size the block was allocated with. It is at most
// Len()*WordSize.
func (b *Block) Size() int {
	return b.size
}

// Word returns the word at index i. Panics if i is out of range.
func (b *Block) Word(i int) Word {
	return b.words[i]
}

// SetWord sets the word at index i. Panics if i is out of range.
func (b *Block) SetWord(i int, w Word) {
	b.words[i] = w
}

// Int returns the integer part of the word at index i.
func (b *Block) Int(i int) int64 {
	return b.words[i].Int
}

// SetInt stores an integer at index i, clearing any reference there.
func (b *Block) SetInt(i int, v int64) {
	b.words[i] = Word{Int: v}
}

// Ref returns the reference part of the word at index i.
func (b *Block) Ref(i int) interface{} {
	return b.words[i].Ref
}

// SetRef stores a reference at index i, clearing any integer there.
func (b *Block) SetRef(i int, v interface{}) {
	b.words[i] = Word{Ref: v}
}

// HeapStats describes the allocations a heap has made.
type HeapStats struct {
	// TotalAlloc is the total number of bytes allocated, counting WordSize
	// bytes for each whole word.
	TotalAlloc int64
	// Mallocs is the number of blocks allocated.
	Mallocs int64
}

// Heap allocates blocks. It never frees anything; blocks live as long as
// something references them.
type Heap struct {
	// Limit is the maximum number of bytes the heap may allocate in total,
	// counting WordSize bytes per word regardless of the Go size of a Word.
	// Zero means no limit.
	Limit int64

	stats HeapStats
}

// InitArray allocates a block of size words, each holding the integer init.
// If the block cannot be allocated, the result is a ResourceExhaustion fault.
func (h *Heap) InitArray(size, init int) (*Block, error) {
	if size < 0 || size > maxBlockWords {
		return nil, &Fault{Kind: ResourceExhaustion, Op: "init_array", Args: []int{size, init}}
	}
	b := h.alloc(size)
	if b == nil {
		return nil, &Fault{Kind: ResourceExhaustion, Op: "init_array", Args: []int{size, init}}
	}
	b.size = size * WordSize
	if init != 0 {
		for i := range b.words {
			b.words[i].Int = int64(init)
		}
	}
	return b, nil
}

// AllocRecord allocates a zeroed block of size bytes. A size that is not a
// multiple of WordSize is rounded up to whole words, and the final partial
// word is zeroed along with the rest. If the block cannot be allocated, the
// result is a ResourceExhaustion fault.
func (h *Heap) AllocRecord(size int) (*Block, error) {
	if size < 0 || size > maxBlockWords*WordSize {
		return nil, &Fault{Kind: ResourceExhaustion, Op: "alloc_record", Args: []int{size}}
	}
	b := h.alloc(align(size) / WordSize)
	if b == nil {
		return nil, &Fault{Kind: ResourceExhaustion, Op: "alloc_record", Args: []int{size}}
	}
	b.size = size
	return b, nil
}

// Stats returns the heap's allocation statistics.
func (h *Heap) Stats() HeapStats {
	return h.stats
}

// alloc allocates a zeroed block of n words, or returns nil if that would
// exceed the heap's limit.
func (h *Heap) alloc(n int) *Block {
	bytes := int64(n) * WordSize
	if h.Limit > 0 && h.stats.TotalAlloc+bytes > h.Limit {
		return nil
	}
	h.stats.TotalAlloc += bytes
	h.stats.Mallocs++
	return &Block{words: make([]Word, n)}
}

// align rounds size up to a multiple of WordSize.
func align(size int) int {
	if r := size % WordSize; r != 0 {
		size += WordSize - r
	}
	return size
}
