// SPDX-License-Identifier: MIT
// Package fourier: basis construction and accessors.
// The coefficient matrix is built exactly once here and treated as read-only
// by every other file; Coefficients hands out deep copies only.

package fourier

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// minFeatures is the smallest accepted input dimensionality.
const minFeatures = 1

// Basis is a fixed cosine feature expansion over `features` input dimensions
// with per-dimension frequencies 0..order. It owns a constant coefficient
// matrix of shape features × (order+1)^features whose columns are the
// π-scaled multi-indices of {0,...,order}^features.
//
// A Basis has exactly one steady state: constructed and ready to encode.
// Encode never mutates it, so a single instance may be shared freely across
// goroutines.
type Basis struct {
	features int
	order    int
	dim      int        // output width, (order+1)^features
	coeff    *mat.Dense // features × dim; never written after New
}

// New constructs a Fourier basis for `features` input dimensions and maximum
// per-dimension frequency `order`.
//
// Stage 1 (Validate): features ≥ 1 and order ≥ 0.
// Stage 2 (Guard): (order+1)^features and the features×dim backing slice must
// fit in an int; checked multiplicatively before any allocation.
// Stage 3 (Build): enumerate every multi-index of {0,...,order}^features with
// an explicit counter (last position increments first, carrying left, so the
// first feature varies slowest) and write each one, scaled by π, as a column.
//
// Construction is deterministic: identical (features, order) yield
// bit-identical coefficient matrices.
//
// order = 0 is valid and degenerates to the single all-zero multi-index,
// i.e. one constant output column of cos(0) = 1.
//
// Complexity: O(features · (order+1)^features) time and memory.
func New(features, order int) (*Basis, error) {
	// Validate arguments
	if features < minFeatures {
		return nil, ErrInvalidFeatures
	}
	if order < 0 {
		return nil, ErrInvalidOrder
	}

	// Guard dim = (order+1)^features against int overflow
	base := order + 1
	dim := 1
	for i := 0; i < features; i++ {
		if dim > math.MaxInt/base {
			return nil, ErrDimensionOverflow
		}
		dim *= base
	}
	// Guard the features×dim backing allocation as well
	if dim > math.MaxInt/features {
		return nil, ErrDimensionOverflow
	}

	// Enumerate multi-indices column by column, row-major into a flat slice
	data := make([]float64, features*dim)
	idx := make([]int, features) // current multi-index, starts at all zeros
	for col := 0; col < dim; col++ {
		for row, v := range idx {
			data[row*dim+col] = float64(v) * math.Pi
		}
		// increment with carry; overflow past the first position ends the walk
		for pos := features - 1; pos >= 0; pos-- {
			idx[pos]++
			if idx[pos] <= order {
				break
			}
			idx[pos] = 0
		}
	}

	return &Basis{
		features: features,
		order:    order,
		dim:      dim,
		coeff:    mat.NewDense(features, dim, data),
	}, nil
}

// Features returns the configured input dimensionality.
func (b *Basis) Features() int { return b.features }

// Order returns the configured maximum per-dimension frequency.
func (b *Basis) Order() int { return b.order }

// Dim returns the output width, (order+1)^features.
func (b *Basis) Dim() int { return b.dim }

// Coefficients returns a deep copy of the coefficient matrix
// (features × Dim()). Mutating the copy has no effect on the basis.
func (b *Basis) Coefficients() *mat.Dense {
	return mat.DenseCopyOf(b.coeff)
}
