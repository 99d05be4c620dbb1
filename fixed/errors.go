// SPDX-License-Identifier: MIT
// Package: initwith/fixed
//
// errors.go — sentinel errors and the slot-scoped error type.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Failures tied to a slot are reported as *SlotError, which unwraps to
//     the sentinel and, for generator failures, to the generator's own error.
//   • Construct / ConstructIndexed / Into never return errors: a generator
//     panic propagates to the caller unchanged.

package fixed

import (
	"errors"
	"fmt"
)

// ErrGeneratorFailed marks an abort caused by a generator returning a non-nil
// error. The generator's error is wrapped alongside it.
// Usage: if errors.Is(err, ErrGeneratorFailed) { /* inspect errors.As(*SlotError) */ }.
var ErrGeneratorFailed = errors.New("fixed: generator failed")

// ErrGeneratorPanicked marks an abort caused by a generator panic that was
// recovered because WithRecover was supplied.
var ErrGeneratorPanicked = errors.New("fixed: generator panicked")

// ErrNilGenerator indicates a nil generator or source was supplied for a
// non-empty array. Empty arrays never touch the generator, so nil is accepted there.
var ErrNilGenerator = errors.New("fixed: nil generator")

// ErrShortSource indicates that a source sequence ended before every slot was filled.
var ErrShortSource = errors.New("fixed: source exhausted before array was full")

// ErrLengthMismatch indicates that a slice source does not have exactly the
// length of the requested array.
var ErrLengthMismatch = errors.New("fixed: source length mismatch")

// ErrOptionViolation indicates an option that could only be checked against the
// element type at construction time (e.g., WithRelease for a different T).
var ErrOptionViolation = errors.New("fixed: invalid option value")

// SlotError reports the slot at which a construction call was abandoned.
// Slots 0..Slot-1 were written before the abort; Slot itself was not.
type SlotError struct {
	Op   string // canonical operation name, e.g. MethodTryConstruct
	Slot int    // 0-based slot that could not be filled
	Err  error  // wrapped cause (sentinel and, where present, the generator error)
}

// Error implements error.
func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: slot %d: %v", e.Op, e.Slot, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *SlotError) Unwrap() error {
	return e.Err
}

// slotErrorf builds a *SlotError for op at slot, wrapping sentinel and cause.
// cause may be nil, in which case only the sentinel is wrapped.
func slotErrorf(op string, slot int, sentinel, cause error) error {
	if cause == nil {
		return &SlotError{Op: op, Slot: slot, Err: sentinel}
	}

	return &SlotError{Op: op, Slot: slot, Err: fmt.Errorf("%w: %w", sentinel, cause)}
}
