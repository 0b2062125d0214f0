// SPDX-License-Identifier: MIT
// Package fourier: projection through the coefficient matrix.
// All entry points validate shape fail-fast and return plain sentinels; the
// numeric kernels (Mul, Apply) run only on validated inputs.

package fourier

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Encode projects x through the coefficient matrix and applies cosine
// elementwise: the result is cos(x · C), of shape (batch, Dim()).
//
// Stage 1 (Validate): x must be non-nil with exactly Features() columns.
// Stage 2 (Execute): y = x · C, then y[i,j] = cos(y[i,j]).
//
// Encode is a pure function of x and the fixed basis: it has no side effects,
// never mutates x or the basis, and is safe to call concurrently from any
// number of goroutines. Non-finite values are not rejected; they propagate
// under IEEE-754 rules (cos(±Inf) = NaN, cos(NaN) = NaN).
//
// Complexity: O(batch · features · Dim()) time, O(batch · Dim()) memory.
func (b *Basis) Encode(x mat.Matrix) (*mat.Dense, error) {
	// Validate input presence and shape
	if x == nil {
		return nil, ErrNilInput
	}
	if _, cols := x.Dims(); cols != b.features {
		return nil, ErrShapeMismatch
	}

	// Project, then apply cosine elementwise in place
	var y mat.Dense
	y.Mul(x, b.coeff)
	y.Apply(func(_, _ int, v float64) float64 { return math.Cos(v) }, &y)

	return &y, nil
}

// EncodeVector encodes a single sample: the returned slice has length Dim()
// and equals the sole row of Encode on the 1×features batch [x].
// The input slice is read only, never retained or mutated.
func (b *Basis) EncodeVector(x []float64) ([]float64, error) {
	// Validate length against the configured feature count
	if len(x) != b.features {
		return nil, ErrShapeMismatch
	}

	y, err := b.Encode(mat.NewDense(1, b.features, x))
	if err != nil {
		return nil, err
	}

	// Copy the row out so the caller owns independent storage
	return mat.Row(nil, 0, y), nil
}
