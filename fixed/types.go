// SPDX-License-Identifier: MIT
// Package: initwith/fixed
//
// types.go — generator function types.

package fixed

// Generator yields one element per call. It may carry mutable captured state
// (a counter, a cursor into another sequence); calls are strictly sequential.
type Generator[T any] func() T

// IndexGenerator yields the element for the given 0-based slot.
type IndexGenerator[T any] func(slot int) T

// FallibleGenerator yields one element per call or an error that aborts construction.
type FallibleGenerator[T any] func() (T, error)

// FallibleIndexGenerator yields the element for slot or an error that aborts construction.
type FallibleIndexGenerator[T any] func(slot int) (T, error)
