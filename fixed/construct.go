// SPDX-License-Identifier: MIT
// Package: initwith/fixed
//
// construct.go — the sequential slot constructor.
//
// Contract (strict):
//   • The generator is invoked exactly len(A) times, in slot order 0..N-1.
//   • Invocation i writes slot i; no slot is written twice or read before written.
//   • N = 0 never invokes the generator, so a nil generator is accepted.
//   • A generator panic propagates unchanged. Slots written before the panic
//     are NOT released: element types owning resources (files, buffers,
//     reference counts) leak those resources on that path. Callers that need
//     cleanup use TryConstruct with WithRelease, or guard inside the generator.

package fixed

// Construct builds an array of type A by calling gen once per slot, front to back.
//
//	a := fixed.Construct[[3]int](func() int { return 4 }) // [4 4 4]
//
// Complexity: O(N) generator calls, no allocation beyond the returned array.
func Construct[A Array[T], T any](gen func() T) A {
	var out A
	p := newPartial[A, T](&out)
	for !p.full() {
		p.put(gen())
	}

	return p.finish()
}

// ConstructIndexed builds an array of type A by calling gen(i) for i = 0..N-1.
// It is Construct driven by a counter that advances after each call.
//
//	sq := fixed.ConstructIndexed[[5]int](func(i int) int { return i * i }) // [0 1 4 9 16]
func ConstructIndexed[A Array[T], T any](gen func(slot int) T) A {
	var slot int

	return Construct[A](func() T {
		v := gen(slot)
		slot++
		return v
	})
}

// Into constructs a new A with gen and stores it in *dst. dst is only
// assigned after every slot is written, so a panicking generator leaves *dst
// untouched. Panics if dst is nil.
func Into[A Array[T], T any](dst *A, gen func() T) {
	if dst == nil {
		panic("fixed: Into(nil)")
	}
	*dst = Construct[A](gen)
}

// Len returns the length of A without building one.
func Len[A Array[T], T any]() int {
	var a A

	return len(a)
}
