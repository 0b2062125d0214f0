// SPDX-License-Identifier: MIT
// Package fourier: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered error conditions.

package fourier

import "errors"

// Every message is prefixed with "fourier: ..." for consistency and easy
// grepping. Do not %w-wrap these sentinels when returning directly; when
// context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer
// boundary — callers still match with errors.Is.

var (
	// ErrInvalidFeatures is returned by New when features < 1.
	ErrInvalidFeatures = errors.New("fourier: features must be >= 1")

	// ErrInvalidOrder is returned by New when order < 0.
	ErrInvalidOrder = errors.New("fourier: order must be >= 0")

	// ErrDimensionOverflow is returned by New when (order+1)^features, or the
	// features×(order+1)^features backing allocation, does not fit in an int.
	// Guarding up front keeps construction from truncating or wrapping around.
	ErrDimensionOverflow = errors.New("fourier: basis dimension overflows practical limits")

	// ErrShapeMismatch indicates that an input's feature dimension disagrees
	// with the basis' configured features.
	ErrShapeMismatch = errors.New("fourier: input feature dimension mismatch")

	// ErrNilInput indicates that a nil input matrix was passed.
	ErrNilInput = errors.New("fourier: nil input matrix")
)
