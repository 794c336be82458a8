package alloc

import (
	"io"
	"runtime"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent
// access: the external synchronization the core arena requires, packaged
// up. All operations are thread-safe at the cost of a lock per call.
//
// Note that Snapshot/Rewind pairs spanning other goroutines' allocations
// discard those allocations too; scratch scoping only composes with
// well-behaved callers.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena. The zero Config selects
// the defaults.
func NewSafeArena(cfg Config) *SafeArena {
	return &SafeArena{a: NewArena(cfg)}
}

// AllocBytes thread-safely allocates n bytes. Returns nil if n <= 0.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// EnsureCapacity thread-safely grows the chain if no block could satisfy
// an n-byte allocation.
func (s *SafeArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Snapshot thread-safely captures the current allocation frontier.
func (s *SafeArena) Snapshot() Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Snapshot()
}

// Rewind thread-safely restores the chain to the state captured by m.
func (s *SafeArena) Rewind(m Marker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Rewind(m)
}

// Reset thread-safely discards all allocations while keeping storage.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely frees all blocks and returns the arena to its
// initial empty state.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Free is a no-op, matching the arena back-end.
func (s *SafeArena) Free(p []byte) {}

// Realloc returns p unchanged, matching the arena back-end.
func (s *SafeArena) Realloc(p []byte) []byte {
	return p
}

// Kind reports KindArena.
func (s *SafeArena) Kind() Kind {
	return KindArena
}

// Stats thread-safely returns a snapshot of the usage counters.
func (s *SafeArena) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Stats()
}

// DumpStats thread-safely writes a human-readable counter report.
func (s *SafeArena) DumpStats(w io.Writer, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.DumpStats(w, name)
}

var _ Allocator = (*SafeArena)(nil)

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely returns a pointer to a zeroed T inside the arena.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocZeroed is identical to SafeAlloc - provided for API consistency.
func SafeAllocZeroed[T any](s *SafeArena) *T {
	return SafeAlloc[T](s)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a zeroed slice of n elements.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafePtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}
