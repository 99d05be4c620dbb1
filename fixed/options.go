// SPDX-License-Identifier: MIT
// Package: initwith/fixed
//
// options.go — functional options for the error-returning constructors.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs (nil funcs).
//     Constructors themselves never panic on their own account.
//   • Defaults keep the bare construction semantics: no release on abort,
//     no panic recovery, no observer.

package fixed

// Option customizes TryConstruct and TryConstructIndexed.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithRelease registers fn to be called on every slot already written when a
// construction call is abandoned with an error. Slots are released in reverse
// order (k-1 down to 0). Without this option the written prefix is simply
// dropped, which leaks any resource the elements own.
//
// The element type of fn must match the array's element type; a mismatch is
// reported at construction time as ErrOptionViolation.
// Panics on nil.
func WithRelease[T any](fn func(T)) Option {
	if fn == nil {
		panic("fixed: WithRelease(nil)")
	}
	return func(c *config) {
		c.release = fn
	}
}

// WithRecover turns a generator panic into a returned error wrapping
// ErrGeneratorPanicked. Without it, panics propagate to the caller unchanged.
func WithRecover() Option {
	return func(c *config) {
		c.recoverPanics = true
	}
}

// WithObserver registers fn to be called with the slot index right after each
// slot is written.
// Panics on nil.
func WithObserver(fn func(slot int)) Option {
	if fn == nil {
		panic("fixed: WithObserver(nil)")
	}
	return func(c *config) {
		c.observe = fn
	}
}
