package alloc

import (
	"fmt"
	"io"
)

// Stats are the usage counters an allocator maintains as a side effect of
// allocation and chain growth.
//
// Used tracks the chain's current logical fill: it grows with every
// allocation, shrinks by the discarded amount on Reset and Rewind, and is
// zero after Release. Reserved is the total backing storage held,
// including per-block bookkeeping overhead; it only changes when blocks
// are added or released, never on Reset or Rewind. Peak is the maximum
// Used has ever reached and survives resets.
//
// Invariants: Used <= Reserved and Peak >= Used at all times.
type Stats struct {
	Used     int
	Reserved int
	Peak     int
}

// String formats the counters on a single line.
func (s Stats) String() string {
	return fmt.Sprintf("used=%d reserved=%d peak=%d", s.Used, s.Reserved, s.Peak)
}

// Dump writes a human-readable report of the counters under the given
// name. It never mutates state.
func (s Stats) Dump(w io.Writer, name string) {
	fmt.Fprintf(w, "%s stats:\n", name)
	fmt.Fprintf(w, "    Used     : %d bytes\n", s.Used)
	fmt.Fprintf(w, "    Reserved : %d bytes\n", s.Reserved)
	fmt.Fprintf(w, "    Peak     : %d bytes\n", s.Peak)
}

// Stats returns a snapshot of the arena's usage counters.
func (a *Arena) Stats() Stats {
	return a.stats
}

// DumpStats writes a human-readable report of the arena's counters.
func (a *Arena) DumpStats(w io.Writer, name string) {
	a.stats.Dump(w, name)
}
