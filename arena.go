package alloc

import "unsafe"

// block is one unit of backing storage in the chain. buf is the aligned
// payload; used is the bump cursor within it.
type block struct {
	buf  []byte
	used int
}

// blockHeaderSize is the per-block bookkeeping overhead counted into the
// reserved statistic alongside the payload capacity.
var blockHeaderSize = int(unsafe.Sizeof(block{}))

// newBlock allocates a zeroed block with the given payload capacity.
// The raw buffer is over-allocated so the payload start can be advanced
// to the alignment boundary; make failing to satisfy the request is a
// fatal runtime error, never a recoverable one.
func newBlock(capacity, align int) *block {
	raw := make([]byte, capacity+align-1)
	off := 0
	if r := int(uintptr(unsafe.Pointer(&raw[0])) & uintptr(align-1)); r != 0 {
		off = align - r
	}
	return &block{buf: raw[off : off+capacity : off+capacity]}
}

// Arena is a region allocator backed by a chain of fixed-capacity blocks.
// Allocations bump a cursor within the first block that has room; there is
// no per-allocation free. Reclamation is bulk only: Reset, Rewind to a
// Marker, or Release.
//
// An Arena assumes a single logical owner. Concurrent callers must
// synchronize externally or use SafeArena.
type Arena struct {
	cfg    Config
	blocks []*block

	// tail is the allocation frontier: the block the last growth or
	// rewind selected. -1 while the chain is empty.
	tail int

	// blockSeq drives the geometric growth sequence. It advances only
	// while the candidate capacity is below cfg.MaxBlockSize.
	blockSeq int

	// gen invalidates outstanding markers across Release.
	gen uint64

	stats Stats
}

// NewArena creates an empty arena. No backing storage is reserved until
// the first allocation. The zero Config selects the defaults.
func NewArena(cfg Config) *Arena {
	return &Arena{cfg: cfg.withDefaults(), tail: -1}
}

// Config returns the normalized configuration the arena was built with.
func (a *Arena) Config() Config {
	return a.cfg
}

// AllocBytes returns an n-byte slice carved out of the chain. The slice
// starts on the configured alignment boundary and stays valid until the
// next Reset, Rewind past it, or Release. Returns nil if n <= 0.
//
// AllocBytes never fails observably: if the Go heap cannot back a new
// block the process dies.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	size := a.roundUp(n)

	// First fit over the whole chain. Preferring an earlier block with
	// room over growing keeps small allocations from multiplying blocks.
	var b *block
	for _, cand := range a.blocks {
		if cand.used+size <= len(cand.buf) {
			b = cand
			break
		}
	}
	if b == nil {
		b = a.grow(size)
	}

	start := b.used
	b.used += size

	a.stats.Used += size
	if a.stats.Used > a.stats.Peak {
		a.stats.Peak = a.stats.Used
	}
	return b.buf[start : start+n : start+size]
}

// grow appends a block able to hold size bytes and makes it the frontier.
//
// Capacities follow the stb_ds doubling sequence MIN, MIN, 2*MIN, 2*MIN,
// 4*MIN, ... capped at MaxBlockSize: each rung is used twice, which halves
// the number of blocks to walk at teardown compared to doubling every
// time. Requests larger than the candidate get a one-off block sized
// exactly to the request, without advancing the sequence, so the next
// normal-sized growth continues where it left off.
func (a *Arena) grow(size int) *block {
	capacity := a.cfg.MinBlockSize << (a.blockSeq >> 1)
	if capacity > a.cfg.MaxBlockSize {
		capacity = a.cfg.MaxBlockSize
	}
	if size > capacity {
		capacity = size
	} else if capacity < a.cfg.MaxBlockSize {
		a.blockSeq++
	}

	b := newBlock(capacity, a.cfg.Alignment)
	a.blocks = append(a.blocks, b)
	a.tail = len(a.blocks) - 1
	a.stats.Reserved += blockHeaderSize + len(b.buf)
	return b
}

// EnsureCapacity grows the chain if no block could currently satisfy an
// n-byte allocation, so a following AllocBytes(n) will not grow.
func (a *Arena) EnsureCapacity(n int) {
	if n <= 0 {
		return
	}
	size := a.roundUp(n)
	for _, b := range a.blocks {
		if b.used+size <= len(b.buf) {
			return
		}
	}
	a.grow(size)
}

// Reset discards every allocation while keeping all backing storage for
// reuse. Used drops to zero; Reserved and Peak are unchanged. Calling
// Reset on an empty arena is a no-op, and Reset is idempotent.
func (a *Arena) Reset() {
	if len(a.blocks) == 0 {
		return
	}
	for _, b := range a.blocks {
		b.used = 0
	}
	a.tail = 0
	a.stats.Used = 0
}

// Release frees every block and returns the arena to its initial empty
// state; it is safe to keep allocating afterwards, which regrows the
// chain from scratch. Used and Reserved drop to zero. Outstanding markers
// are invalidated: rewinding with one panics instead of corrupting the
// regrown chain. Release on an empty arena is a no-op.
func (a *Arena) Release() {
	for _, b := range a.blocks {
		a.stats.Used -= b.used
		a.stats.Reserved -= blockHeaderSize + len(b.buf)
	}
	a.blocks = nil
	a.tail = -1
	a.blockSeq = 0
	a.gen++
}

func (a *Arena) roundUp(n int) int {
	align := a.cfg.Alignment
	return (n + align - 1) &^ (align - 1)
}
