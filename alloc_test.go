package alloc

import (
	"testing"
	"unsafe"
)

func TestAlloc(t *testing.T) {
	a := NewArena(Config{})
	defer a.Release()

	type point struct {
		X, Y int64
	}

	p := Alloc[point](a)
	if p.X != 0 || p.Y != 0 {
		t.Errorf("Alloc[point] not zeroed: %+v", *p)
	}

	p.X, p.Y = 3, 4
	if p.X != 3 || p.Y != 4 {
		t.Error("Could not write through Alloc[point] pointer")
	}

	if got := a.Stats().Used; got != int(unsafe.Sizeof(point{})) {
		t.Errorf("Used after Alloc[point] = %d, want %d", got, unsafe.Sizeof(point{}))
	}
}

func TestAllocZeroesReusedStorage(t *testing.T) {
	a := NewArena(Config{})
	defer a.Release()

	p := Alloc[[64]byte](a)
	for i := range p {
		p[i] = 0xFF
	}

	// The rewound storage still holds the old bytes; Alloc must clear them.
	a.Reset()
	q := Alloc[[64]byte](a)
	for i, b := range q {
		if b != 0 {
			t.Fatalf("Alloc after Reset not zeroed at byte %d: %#x", i, b)
		}
	}
}

func TestAllocUninitialized(t *testing.T) {
	a := NewArena(Config{})
	defer a.Release()

	p := AllocUninitialized[int64](a)
	*p = 42
	if *p != 42 {
		t.Error("Could not write through AllocUninitialized pointer")
	}
}

func TestAllocZeroSizedType(t *testing.T) {
	a := NewArena(Config{})
	defer a.Release()

	p := Alloc[struct{}](a)
	if p == nil {
		t.Error("Alloc[struct{}] = nil, want a valid pointer")
	}
	if a.Stats().Used != 0 {
		t.Errorf("Used after zero-sized Alloc = %d, want 0", a.Stats().Used)
	}
}

func TestAllocSlice(t *testing.T) {
	a := NewArena(Config{})
	defer a.Release()

	s := AllocSlice[int32](a, 10)
	if len(s) != 10 {
		t.Errorf("AllocSlice length = %d, want 10", len(s))
	}
	for i := range s {
		s[i] = int32(i)
	}
	for i, v := range s {
		if v != int32(i) {
			t.Errorf("s[%d] = %d, want %d", i, v, i)
		}
	}

	if AllocSlice[int](a, 0) != nil {
		t.Error("AllocSlice(0) should return nil")
	}
	if AllocSlice[int](a, -1) != nil {
		t.Error("AllocSlice(-1) should return nil")
	}
}

func TestAllocSliceZeroed(t *testing.T) {
	a := NewArena(Config{})
	defer a.Release()

	// Dirty the storage, rewind, then check the zeroed variant.
	dirty := AllocSlice[byte](a, 128)
	for i := range dirty {
		dirty[i] = 0xAA
	}
	a.Reset()

	s := AllocSliceZeroed[byte](a, 128)
	for i, b := range s {
		if b != 0 {
			t.Fatalf("AllocSliceZeroed not zeroed at %d: %#x", i, b)
		}
	}
}

func TestPtrAndKeepAlive(t *testing.T) {
	a := NewArena(Config{})
	defer a.Release()

	p := Alloc[int](a)
	*p = 7
	q := PtrAndKeepAlive(a, p)
	if q != p || *q != 7 {
		t.Error("PtrAndKeepAlive must return its argument unchanged")
	}
}
