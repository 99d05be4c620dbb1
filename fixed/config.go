// SPDX-License-Identifier: MIT
// Package: initwith/fixed
//
// config.go — resolved option set for the error-returning constructors.
//
// Deterministic defaults:
//   • release       = nil   (written prefix is not released on abort)
//   • recoverPanics = false (generator panics propagate)
//   • observe       = nil

package fixed

// config aggregates all knobs used by the Try* constructors.
// It is passed by VALUE once resolved.
type config struct {
	// release holds a func(T) for the array's element type, or nil.
	release any
	// recoverPanics converts generator panics into ErrGeneratorPanicked.
	recoverPanics bool
	// observe is called after each slot write.
	observe func(slot int)
}

// newConfig applies opts in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// releaseFor returns the typed release function for element type T.
// ok is false when a release function was registered for another type.
func releaseFor[T any](cfg config) (fn func(T), ok bool) {
	if cfg.release == nil {
		return nil, true
	}
	fn, ok = cfg.release.(func(T))

	return fn, ok
}
