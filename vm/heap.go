package vm

// MemHeapSize is the size of the shared, program-global heap (one of the
// "sizes the core assumes but does not itself enforce" from spec.md §6).
// cmd/hvm exposes this as the --heap-size flag; tests may construct a
// Heap with a different size via NewHeapSized.
const MemHeapSize = 65536

// Heap is the fixed-size, program-global addressable word array, plus the
// `this`/`that` pointer registers that segment addressing resolves
// relative to.
type Heap struct {
	mem        []Word
	this, that Addr
}

// NewHeap returns a zeroed heap of MemHeapSize words with this=that=0.
func NewHeap() *Heap {
	return NewHeapSized(MemHeapSize)
}

// NewHeapSized returns a zeroed heap of the given size.
func NewHeapSized(size int) *Heap {
	return &Heap{mem: make([]Word, size)}
}

// Size returns the configured heap capacity.
func (h *Heap) Size() int { return len(h.mem) }

func (h *Heap) This() Addr     { return h.this }
func (h *Heap) That() Addr     { return h.that }
func (h *Heap) SetThis(a Addr) { h.this = a }
func (h *Heap) SetThat(a Addr) { h.that = a }

// Get reads a word at addr. Callers must bounds-check first (addr <
// Size()); this mirrors heap_get in original_source/src/exec.c, which
// assumes its caller already validated the address.
func (h *Heap) Get(addr Addr) Word {
	return h.mem[addr]
}

// Set writes a word at addr. See Get for the bounds-check contract.
func (h *Heap) Set(addr Addr, w Word) {
	h.mem[addr] = w
}
