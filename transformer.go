// SPDX-License-Identifier: MIT

package fourier

import "gonum.org/v1/gonum/mat"

// The Fit/Transform/FitTransform triple lets a Basis slot into
// scikit-learn-shaped preprocessing pipelines built on gonum matrices.
// The basis is fully determined at construction time, so Fit learns nothing:
// it only validates the input shape.

// Fit validates that X has exactly Features() columns. The basis itself is
// fixed by New, so no parameters are estimated and nothing is mutated.
func (b *Basis) Fit(x mat.Matrix) error {
	if x == nil {
		return ErrNilInput
	}
	if _, cols := x.Dims(); cols != b.features {
		return ErrShapeMismatch
	}

	return nil
}

// Transform encodes X in the cosine basis; it is Encode behind the
// mat.Matrix-returning signature transformer pipelines expect.
func (b *Basis) Transform(x mat.Matrix) (mat.Matrix, error) {
	return b.Encode(x)
}

// FitTransform validates X and encodes it in one call.
func (b *Basis) FitTransform(x mat.Matrix) (mat.Matrix, error) {
	if err := b.Fit(x); err != nil {
		return nil, err
	}

	return b.Encode(x)
}
