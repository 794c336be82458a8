package alloc

import (
	"fmt"
	"io"
)

// Kind tags an allocator back-end. The arena is the only back-end today;
// the tag exists so call sites programming against Allocator survive the
// addition of further back-ends (a free-list allocator, for instance)
// unchanged.
type Kind uint8

const (
	// KindArena selects the region allocator implemented by Arena.
	KindArena Kind = iota
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindArena:
		return "arena"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Allocator is the back-end-independent allocation contract. Every
// back-end hands out aligned byte regions and reclaims them in bulk;
// what Free and Realloc mean is up to the back-end (for the arena both
// are structural no-ops).
type Allocator interface {
	// AllocBytes returns an n-byte aligned region, or nil if n <= 0.
	// It never fails observably; backing-storage exhaustion is fatal.
	AllocBytes(n int) []byte

	// Free releases p if the back-end supports per-region release.
	// The arena back-end does not: Free is a no-op there.
	Free(p []byte)

	// Realloc resizes p if the back-end supports it. The arena back-end
	// does not: it returns p unchanged, since a bump region cannot be
	// resized in place without a copy.
	Realloc(p []byte) []byte

	// Kind reports which back-end this allocator is.
	Kind() Kind

	// Stats returns a snapshot of the usage counters.
	Stats() Stats

	// DumpStats writes a human-readable report of the counters.
	DumpStats(w io.Writer, name string)

	// Reset discards all allocations but keeps backing storage.
	Reset()

	// Release frees all backing storage.
	Release()
}

// New creates an allocator of the given kind. Unknown kinds panic: a tag
// that matches no back-end is a programming error, not a runtime
// condition to recover from.
func New(kind Kind, cfg Config) Allocator {
	switch kind {
	case KindArena:
		return NewArena(cfg)
	}
	panic(fmt.Sprintf("alloc: unknown allocator kind %d", uint8(kind)))
}

// Kind reports KindArena.
func (a *Arena) Kind() Kind {
	return KindArena
}

// Free is a no-op. Arena storage is reclaimed in bulk by Reset, Rewind,
// or Release; freeing an individual region is intentionally unsupported.
func (a *Arena) Free(p []byte) {}

// Realloc returns p unchanged. Bump regions are never moved or resized
// once granted; callers needing a larger region must allocate anew and
// copy.
func (a *Arena) Realloc(p []byte) []byte {
	return p
}

var _ Allocator = (*Arena)(nil)
