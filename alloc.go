package alloc

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T stored inside the arena. The
// pointer stays valid until the arena is reset, rewound past it, or
// released. Zeroing is explicit because rewound storage is reused without
// being cleared.
func Alloc[T any](a *Arena) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T)
	}
	b := a.AllocBytes(size)
	clear(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocZeroed is identical to Alloc - provided for API consistency.
func AllocZeroed[T any](a *Arena) *T {
	return Alloc[T](a)
}

// AllocUninitialized returns a *T located in the arena without zeroing
// memory. Faster than Alloc, but after a Reset or Rewind the memory may
// hold stale bytes from earlier allocations.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T)
	}
	b := a.AllocBytes(size)
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not zeroed. Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return make([]T, n)
	}
	b := a.AllocBytes(elemSize * n)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory. Returns nil if n <= 0.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	if s != nil {
		clear(s)
	}
	return s
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena,
// preventing the arena (and with it t's backing block) from being
// collected while the pointer is still in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
