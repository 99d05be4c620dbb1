// SPDX-License-Identifier: MIT
// Package: initwith/generators
//
// numeric.go — numeric and sequence-draining generators.

package generators

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/initwith/fixed"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Identity maps slot i to N(i).
func Identity[N Number](slot int) N {
	return N(slot)
}

// Squares maps slot i to N(i*i).
func Squares[N Number](slot int) N {
	v := N(slot)

	return v * v
}

// Repeat returns a generator that yields v on every call.
func Repeat[T any](v T) fixed.Generator[T] {
	return func() T {
		return v
	}
}

// Counter returns a generator yielding start, start+step, start+2*step, …
// Each call returns the current value, then advances it.
func Counter[N Number](start, step N) fixed.Generator[N] {
	cur := start
	return func() N {
		v := cur
		cur += step
		return v
	}
}

// Cursor returns a generator that drains src in order, one element per call.
// Calling it more than len(src) times panics; used with fixed.Construct that
// aborts construction, which is what a too-short source should do.
func Cursor[T any](src []T) fixed.Generator[T] {
	var pos int
	return func() T {
		if pos >= len(src) {
			panic(fmt.Sprintf("Cursor: source exhausted after %d elements", len(src)))
		}
		v := src[pos]
		pos++
		return v
	}
}
