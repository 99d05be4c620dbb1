// Package initwith builds fixed-size Go arrays from generator functions,
// slot by slot, without a placeholder pass.
//
// What lives where:
//
//	fixed/       — Construct, ConstructIndexed, Into, TryConstruct(Indexed),
//	               FromSeq, FromSlice and the generated Array[T] constraint
//	generators/  — ready-made generators: IDs, counters, cursors, RNG draws
//	cmd/fixedgen — regenerates fixed/lengths_gen.go for a different max length
//
// Quick example:
//
//	squares := fixed.ConstructIndexed[[5]int](func(i int) int { return i * i })
//	// [0 1 4 9 16]
//
// Read the "Abort semantics" section of package fixed before building arrays
// of resource-owning values: a generator that panics part-way leaves the
// already-built prefix unreleased.
//
//	go get github.com/katalvlaran/initwith/fixed
package initwith
