// Package alloc implements a region (arena) allocator for Go: variably
// sized, aligned allocations carved out of a chain of coarser backing
// blocks, with no per-allocation free and cheap bulk reclamation.
//
// # Overview
//
// A region allocator satisfies requests by advancing a cursor through
// pre-reserved blocks. Individual allocations are never freed; instead
// the whole region is reclaimed at once, or rewound to a checkpoint.
// This is useful for:
//
//   - Request- or frame-scoped allocations with batch cleanup
//   - Temporary working memory layered on a long-lived arena
//   - Reducing garbage collection pressure
//   - Predictable allocation cost on hot paths
//
// # Basic Usage
//
//	a := alloc.NewArena(alloc.Config{}) // defaults: 512 B .. 1 MiB blocks
//	defer a.Release()
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Allocate typed values
//	ptr := alloc.Alloc[MyStruct](a)
//	slice := alloc.AllocSlice[int](a, 100)
//
//	// Discard everything, keep the blocks for reuse
//	a.Reset()
//
// # Checkpoints and Scratch Regions
//
// Snapshot captures the allocation frontier; Rewind restores it, keeping
// the backing storage. Scratch packages the pair as a scoped region:
//
//	scratch := a.Scratch()
//	defer scratch.Done() // discards everything allocated below
//
//	tmp := a.AllocBytes(4096)
//	// ... use tmp ...
//
// Scratch regions nest: closing an inner region leaves the outer
// region's allocations intact.
//
// # Block Growth
//
// The chain starts empty. When no block can hold a request, a new block
// is appended with capacities following the doubling sequence MIN, MIN,
// 2*MIN, 2*MIN, 4*MIN, ... capped at a configured maximum. Each rung is
// used twice, halving the number of blocks to release at teardown.
// Requests larger than the next rung get a one-off block sized exactly
// to the request, without disturbing the sequence. Allocation placement
// is first fit over the chain, so small requests fill older blocks
// before new ones are created.
//
// # Allocator Front-End
//
// The Allocator interface is the back-end-independent contract: byte
// allocation, Free, Realloc, stats, and bulk reclamation, dispatched by
// a Kind tag. The arena is the only back-end today; on it Free is a
// structural no-op and Realloc returns its argument unchanged.
//
//	al := alloc.New(alloc.KindArena, alloc.Config{})
//	defer al.Release()
//	al.DumpStats(os.Stdout, "parser")
//
// # Thread Safety
//
// Arena assumes a single logical owner. For concurrent access use
// SafeArena, which serializes every operation behind a mutex:
//
//	s := alloc.NewSafeArena(alloc.Config{})
//	defer s.Release()
//	buf := s.AllocBytes(1024)
//	ptr := alloc.SafeAlloc[MyStruct](s)
//
// # Failure Model
//
// Allocation never returns an error. If the Go heap cannot back a new
// block the process dies; there is no partial allocation,
// retry, or backpressure. Misuse - rewinding with a marker taken before
// a Release, or using a region after its arena was reset - is a checked
// fault where cheap (panic) and a caller obligation otherwise.
//
// # Statistics
//
// Stats tracks used (current logical fill), reserved (backing storage
// held, including per-block overhead), and peak (high-water mark of
// used). Reset and Rewind lower used but never reserved; Release zeroes
// both. DumpStats writes a human-readable report.
package alloc
