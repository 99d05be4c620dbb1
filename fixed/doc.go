// Package fixed builds fixed-size arrays by calling a generator once per slot.
//
// What:
//
//   - Construct:            [N]T from a func() T, called N times in slot order.
//   - ConstructIndexed:     [N]T from a func(int) T, called with 0..N-1.
//   - Into:                 Construct into caller storage, assigned only on success.
//   - TryConstruct(Indexed): error-returning variants with options
//     (WithRelease, WithRecover, WithObserver).
//   - FromSeq / FromSlice:  drain an existing sequence into an array.
//
// Why:
//
//   - Element values often depend on position or on running state (a counter,
//     a cursor into another sequence). Building them in place avoids a
//     placeholder pass followed by overwrites.
//   - The array is handed out only once every slot is written; the partially
//     built value is never observable.
//
// Supported lengths:
//
// Go generics cannot abstract over array length, so the capability is the
// type set Array[T] = ~[0]T | ~[1]T | … | ~[MaxLen]T. That union is generated
// by cmd/fixedgen (see generate.go); regenerate with a larger max_len if you
// need longer arrays. Named array types are accepted through the ~ terms.
//
// Ordering & concurrency:
//
// Generator calls are strictly sequential on the calling goroutine; call i+1
// starts only after call i returned. Nothing is parallel or speculative.
//
// Abort semantics (read this):
//
// If the generator panics on slot k, the panic propagates out of Construct and
// no array is returned. Slots 0..k-1 were already written and are NOT released:
// elements that own resources (open files, pooled buffers, reference counts)
// leak them on that path. Nothing is released twice and no partial array is
// ever exposed. To clean up on abort, use TryConstruct with WithRelease, or
// guard the resource inside the generator.
//
// Errors:
//
//   - ErrGeneratorFailed    generator returned an error (Try*).
//   - ErrGeneratorPanicked  generator panicked under WithRecover (Try*).
//   - ErrNilGenerator       nil generator/source for a non-empty array.
//   - ErrShortSource        FromSeq source ended early.
//   - ErrLengthMismatch     FromSlice length differs from the array's.
//   - ErrOptionViolation    WithRelease element type differs from the array's.
//
// Complexity: O(N) generator calls per construction; no allocation beyond the
// array itself (closures aside).
package fixed
