package locking

// Reference count guarding a table's buffers: the last Release frees them.

import (
	"fmt"
	"sync/atomic"
)

type RefCount struct {
	count atomic.Int32
}

// NewRefCount starts at one reference, held by the creator.
func NewRefCount() *RefCount {
	r := &RefCount{}
	r.count.Store(1)
	return r
}

func (r *RefCount) Retain() {
	r.count.Add(1)
}

// Release drops one reference and reports whether it was the last one.
func (r *RefCount) Release() bool {
	n := r.count.Add(-1)
	if n < 0 {
		panic("refcount dropped below zero")
	}
	return n == 0
}

func (r *RefCount) Load() int32 {
	return r.count.Load()
}

func (r *RefCount) String() string {
	return fmt.Sprintf("RefCount: %d", r.Load())
}
