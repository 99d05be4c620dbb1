// SPDX-License-Identifier: MIT
// Package: initwith/fixed
//
// try.go — error-returning constructors.
//
// These follow Construct's ordering contract but let the generator abort with
// an error instead of a panic. On abort the zero A is returned with a
// *SlotError naming the slot that failed; slots written earlier are released
// only when WithRelease is supplied.

package fixed

import "fmt"

// TryConstruct builds an array of type A from gen, stopping at the first error.
//
// Errors:
//   - ErrNilGenerator     gen is nil and len(A) > 0.
//   - ErrOptionViolation  WithRelease was given a func for another element type.
//   - ErrGeneratorFailed  gen returned an error (also wrapped, so errors.Is
//     matches the generator's own error).
//   - ErrGeneratorPanicked gen panicked and WithRecover was supplied.
func TryConstruct[A Array[T], T any](gen func() (T, error), opts ...Option) (A, error) {
	var indexed func(int) (T, error)
	if gen != nil {
		indexed = func(int) (T, error) { return gen() }
	}

	return tryConstruct[A](MethodTryConstruct, indexed, newConfig(opts...))
}

// TryConstructIndexed builds an array of type A by calling gen(i) for
// i = 0..N-1, stopping at the first error. Errors as for TryConstruct.
func TryConstructIndexed[A Array[T], T any](gen func(slot int) (T, error), opts ...Option) (A, error) {
	return tryConstruct[A](MethodTryConstructIndexed, gen, newConfig(opts...))
}

// tryConstruct is the shared loop of the Try* constructors.
func tryConstruct[A Array[T], T any](op string, gen func(int) (T, error), cfg config) (A, error) {
	var (
		out  A
		zero A
		v    T
		slot int
		err  error
	)
	p := newPartial[A, T](&out)
	if p.full() {
		return out, nil
	}
	if gen == nil {
		return zero, fmt.Errorf("%s: %w", op, ErrNilGenerator)
	}
	release, ok := releaseFor[T](cfg)
	if !ok {
		return zero, fmt.Errorf("%s: release func does not accept %T: %w", op, v, ErrOptionViolation)
	}

	for !p.full() {
		slot = p.next()
		if v, err = invoke(op, gen, slot, cfg.recoverPanics); err != nil {
			p.abandon(release)
			return zero, err
		}
		p.put(v)
		if cfg.observe != nil {
			cfg.observe(slot)
		}
	}

	return p.finish(), nil
}

// invoke calls gen for slot and converts its failure into a *SlotError.
// With recoverPanics, a panic inside gen becomes ErrGeneratorPanicked.
func invoke[T any](op string, gen func(int) (T, error), slot int, recoverPanics bool) (v T, err error) {
	if recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				cause, isErr := r.(error)
				if !isErr {
					cause = fmt.Errorf("%v", r)
				}
				var zero T
				v = zero
				err = slotErrorf(op, slot, ErrGeneratorPanicked, cause)
			}
		}()
	}
	if v, err = gen(slot); err != nil {
		var zero T
		return zero, slotErrorf(op, slot, ErrGeneratorFailed, err)
	}

	return v, nil
}
