// SPDX-License-Identifier: MIT
// Package: initwith/fixed
//
// source.go — construction by draining an existing sequence in order.

package fixed

import (
	"fmt"
	"iter"
)

// FromSeq fills an array of type A with the first len(A) values of seq, in
// order. seq is not pulled past the last slot; remaining values are left
// unconsumed. For len(A) == 0 seq is never started.
//
// Errors:
//   - ErrNilGenerator  seq is nil and len(A) > 0.
//   - ErrShortSource   seq ended early; the *SlotError names the first empty slot.
func FromSeq[A Array[T], T any](seq iter.Seq[T]) (A, error) {
	var (
		out  A
		zero A
	)
	p := newPartial[A, T](&out)
	if p.full() {
		return out, nil
	}
	if seq == nil {
		return zero, fmt.Errorf("%s: %w", MethodFromSeq, ErrNilGenerator)
	}

	for v := range seq {
		p.put(v)
		if p.full() {
			break
		}
	}
	if !p.full() {
		slot := p.next()
		p.abandon(nil)
		return zero, slotErrorf(MethodFromSeq, slot, ErrShortSource, nil)
	}

	return p.finish(), nil
}

// FromSlice copies src into a new array of type A. src must have exactly
// len(A) elements; otherwise ErrLengthMismatch is returned.
func FromSlice[A Array[T], T any](src []T) (A, error) {
	var zero A
	if n := len(zero); len(src) != n {
		return zero, fmt.Errorf("%s: want %d elements, got %d: %w", MethodFromSlice, n, len(src), ErrLengthMismatch)
	}

	return ConstructIndexed[A](func(i int) T { return src[i] }), nil
}
