// Package generators provides ready-made generators for package fixed.
//
// Index generators (func(slot int) T, for fixed.ConstructIndexed):
//
//   - Decimal:      "0","1",…
//   - Symbol:       "A".."Z" (panics outside 0..25)
//   - ExcelColumn:  "A","Z","AA",…
//   - Alphanumeric: base-36 "0"…"z","10",…
//   - Hex:          lowercase hexadecimal "0","a","ff",…
//   - Prefixed(p):  p+"0", p+"1",…
//   - Identity, Squares: numeric index maps.
//
// Stateful generators (func() T, for fixed.Construct):
//
//   - Repeat(v), Counter(start, step), Cursor(src)
//   - Uniform, Normal, Exponential: draws from a caller-owned *rand.Rand.
//
// Generators returned here own mutable state and are not safe for concurrent
// use; fixed never calls them concurrently. Constructors validate their
// parameters and panic on meaningless input.
package generators
