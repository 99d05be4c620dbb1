// SPDX-License-Identifier: MIT
// Package: initwith/internal/lengthgen
//
// errors.go — sentinel errors for configuration and rendering.

package lengthgen

import "errors"

var (
	// ErrBadMaxLen is returned when MaxLen is outside [0, MaxSupportedLen].
	ErrBadMaxLen = errors.New("lengthgen: max_len out of range")

	// ErrBadPackage is returned when Package is not a valid Go identifier.
	ErrBadPackage = errors.New("lengthgen: invalid package name")

	// ErrNoOutput is returned when Output is empty.
	ErrNoOutput = errors.New("lengthgen: output path is required")

	// ErrRender wraps template execution and go/format failures.
	ErrRender = errors.New("lengthgen: render failed")
)
