// SPDX-License-Identifier: MIT
// Package: initwith/fixed
//
// partial.go — the partially-constructed array.
//
// A partial owns its destination for the duration of one construction call.
// Slots 0..filled-1 hold values written by this call; the rest hold nothing
// meaningful and are never read. A partial is never returned to callers:
// finish hands back the array only once every slot is written.

package fixed

// partial tracks the written prefix of an array under construction.
type partial[A Array[T], T any] struct {
	dst    *A  // storage owned by the construction call
	filled int // number of slots written, also the next slot to write
	n      int // len(A)
}

// newPartial wraps dst, which must be owned exclusively by the caller.
func newPartial[A Array[T], T any](dst *A) *partial[A, T] {
	return &partial[A, T]{dst: dst, n: len(*dst)}
}

// full reports whether every slot has been written.
func (p *partial[A, T]) full() bool {
	return p.filled == p.n
}

// next returns the slot the following put will write.
func (p *partial[A, T]) next() int {
	return p.filled
}

// put writes v into the next slot. Writing past the end is a programming
// error inside this package and panics.
func (p *partial[A, T]) put(v T) {
	if p.filled >= p.n {
		panic("fixed: write past end of array")
	}
	(*p.dst)[p.filled] = v
	p.filled++
}

// finish returns the completed array. Finishing early is a programming
// error inside this package and panics.
func (p *partial[A, T]) finish() A {
	if p.filled != p.n {
		panic("fixed: finish on partially constructed array")
	}

	return *p.dst
}

// abandon drops the written prefix, calling release (if non-nil) on slots
// filled-1 down to 0. The partial is unusable afterwards.
func (p *partial[A, T]) abandon(release func(T)) {
	var i int
	if release != nil {
		for i = p.filled - 1; i >= 0; i-- {
			release((*p.dst)[i])
		}
	}
	p.dst = nil
	p.filled = 0
}
