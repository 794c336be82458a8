package alloc

// SizeInUse returns the bytes currently bump-allocated across the chain,
// including alignment padding. It is computed from the blocks' fill
// cursors and always matches Stats().Used.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, b := range a.blocks {
		sum += b.used
	}
	return sum
}

// NumBlocks returns the number of backing blocks in the chain.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// Capacity returns the total payload capacity (in bytes) of all blocks.
// Unlike Stats().Reserved it excludes per-block bookkeeping overhead.
func (a *Arena) Capacity() int {
	sum := 0
	for _, b := range a.blocks {
		sum += len(b.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity
// (0.0 to 1.0). Returns 0.0 if the chain is empty.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Reserved:    a.stats.Reserved,
		Peak:        a.stats.Peak,
		NumBlocks:   a.NumBlocks(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total payload capacity in bytes
	Reserved    int     // Backing storage held, incl. block overhead
	Peak        int     // Maximum SizeInUse ever reached
	NumBlocks   int     // Number of blocks in the chain
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the bytes currently allocated.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// NumBlocks thread-safely returns the number of backing blocks.
func (s *SafeArena) NumBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumBlocks()
}

// Capacity thread-safely returns the total payload capacity.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the ratio of bytes in use to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
