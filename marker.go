package alloc

// Marker is a checkpoint into an arena's chain: the allocation frontier
// at the moment of capture. It is a plain value with no ownership; it is
// only meaningful for the arena it was captured from. A generation number
// lets Rewind reject markers that predate a Release instead of silently
// corrupting a regrown chain.
type Marker struct {
	block  int // index of the frontier block, -1 if the chain was empty
	offset int // fill of that block at capture time
	gen    uint64
}

// Snapshot captures the current allocation frontier. Rewinding to the
// returned marker discards every allocation made after this call.
func (a *Arena) Snapshot() Marker {
	if len(a.blocks) == 0 {
		return Marker{block: -1, gen: a.gen}
	}
	return Marker{block: a.tail, offset: a.blocks[a.tail].used, gen: a.gen}
}

// Rewind restores the chain to the fill state captured by m, logically
// discarding allocations made since while keeping all backing storage for
// reuse: Reserved never changes, Used drops by the discarded amount.
//
// The marker must come from this arena and must not predate a Release;
// violating either panics. A marker captured on an empty chain rewinds
// like a full Reset.
func (a *Arena) Rewind(m Marker) {
	if m.gen != a.gen {
		panic("alloc: marker predates arena release")
	}
	if m.block < 0 {
		a.Reset()
		return
	}
	if m.block >= len(a.blocks) {
		panic("alloc: marker block out of range")
	}

	b := a.blocks[m.block]
	a.stats.Used -= b.used - m.offset
	b.used = m.offset
	for _, later := range a.blocks[m.block+1:] {
		a.stats.Used -= later.used
		later.used = 0
	}
	a.tail = m.block
}

// Scratch is a scoped temporary-allocation region: a marker paired with
// its arena. Everything allocated between Scratch and Done is discarded
// on Done, so short-lived allocations can nest on a long-lived arena.
type Scratch struct {
	a *Arena
	m Marker
}

// Scratch opens a temporary region on the arena. Callers must guarantee
// Done on every exit path, typically with defer. Scratch regions nest:
// closing an inner region leaves the outer region's allocations intact.
func (a *Arena) Scratch() Scratch {
	return Scratch{a: a, m: a.Snapshot()}
}

// Done rewinds the arena to where the scratch region began.
func (s Scratch) Done() {
	s.a.Rewind(s.m)
}
