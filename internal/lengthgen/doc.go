// Package lengthgen renders the per-length instantiation of package fixed:
// the Array[T] union over every supported length and the table test that
// exercises each of them.
//
// Go generics have no way to say "an array of any length", so the set of
// lengths has to be spelled out. lengthgen spells it out at build time from a
// Config instead of it being maintained by hand.
//
// Outputs:
//
//   - Output      package source declaring MaxLen and Array[T].
//   - TestOutput  package_test source calling checkLength[[N]int](t, N) for
//     every N in 0..MaxLen (optional; empty disables it).
//
// Both are passed through go/format, so output is stable byte-for-byte for a
// given Config.
package lengthgen
