package alloc

import (
	"sync"
	"testing"
)

func TestSafeArenaConcurrentAlloc(t *testing.T) {
	s := NewSafeArena(Config{})
	defer s.Release()

	const workers = 8
	const allocsPerWorker = 100

	var wg sync.WaitGroup
	results := make([][][]byte, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < allocsPerWorker; i++ {
				buf := s.AllocBytes(16)
				for j := range buf {
					buf[j] = byte(id)
				}
				results[id] = append(results[id], buf)
			}
		}(w)
	}
	wg.Wait()

	// Every worker's regions must be intact: no two allocations overlap.
	for id, bufs := range results {
		for _, buf := range bufs {
			for _, b := range buf {
				if b != byte(id) {
					t.Fatalf("worker %d region overwritten: got %d", id, b)
				}
			}
		}
	}

	if got, want := s.Stats().Used, workers*allocsPerWorker*16; got != want {
		t.Errorf("Used = %d, want %d", got, want)
	}
}

func TestSafeArenaSnapshotRewind(t *testing.T) {
	s := NewSafeArena(Config{})
	defer s.Release()

	s.AllocBytes(100)
	m := s.Snapshot()
	s.AllocBytes(200)

	s.Rewind(m)
	if got := s.Stats().Used; got != 104 {
		t.Errorf("Used after Rewind = %d, want 104", got)
	}
}

func TestSafeArenaResetRelease(t *testing.T) {
	s := NewSafeArena(Config{})
	s.AllocBytes(100)

	s.Reset()
	if s.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset = %d, want 0", s.SizeInUse())
	}
	if s.NumBlocks() == 0 {
		t.Error("Expected blocks to remain after Reset")
	}

	s.Release()
	if s.NumBlocks() != 0 {
		t.Errorf("NumBlocks after Release = %d, want 0", s.NumBlocks())
	}

	// Reusable after Release, like the plain arena.
	if buf := s.AllocBytes(50); len(buf) != 50 {
		t.Errorf("AllocBytes after Release length = %d, want 50", len(buf))
	}
}

func TestSafeAlloc(t *testing.T) {
	s := NewSafeArena(Config{})
	defer s.Release()

	type rec struct {
		A int64
		B [24]byte
	}

	var wg sync.WaitGroup
	ptrs := make([]*rec, 16)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := SafeAlloc[rec](s)
			p.A = int64(i)
			ptrs[i] = p
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for _, p := range ptrs {
		if seen[p.A] {
			t.Fatalf("duplicate record value %d: allocations overlap", p.A)
		}
		seen[p.A] = true
	}
}

func TestSafeAllocSlice(t *testing.T) {
	s := NewSafeArena(Config{})
	defer s.Release()

	sl := SafeAllocSlice[int64](s, 8)
	if len(sl) != 8 {
		t.Errorf("SafeAllocSlice length = %d, want 8", len(sl))
	}

	z := SafeAllocSliceZeroed[int64](s, 8)
	for i, v := range z {
		if v != 0 {
			t.Errorf("SafeAllocSliceZeroed[%d] = %d, want 0", i, v)
		}
	}

	if SafeAllocSlice[int64](s, 0) != nil {
		t.Error("SafeAllocSlice(0) should return nil")
	}
}

func TestSafeArenaDispatch(t *testing.T) {
	var al Allocator = NewSafeArena(Config{})
	defer al.Release()

	if al.Kind() != KindArena {
		t.Errorf("Kind = %v, want %v", al.Kind(), KindArena)
	}
	p := al.AllocBytes(32)
	al.Free(p)
	if q := al.Realloc(p); len(q) != len(p) {
		t.Errorf("Realloc changed length: %d != %d", len(q), len(p))
	}
}
