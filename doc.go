// Package fourier encodes real-valued feature vectors in a fixed cosine
// (Fourier) basis, a common non-learned feature expansion used in front of
// linear models and kernel methods.
//
// Given an input batch X of shape (batch, features), the encoder computes
//
//	Y = cos(X · C)
//
// where C is a constant coefficient matrix of shape
// (features, (order+1)^features). Each column of C is one multi-index from
// the Cartesian product {0,...,order}^features, scaled by π. Columns are
// enumerated in nested-iteration order (the first feature varies slowest),
// so identical (features, order) always yield bit-identical bases and,
// therefore, reproducible encodings across runs and machines.
//
// The basis is built once by New and never mutated afterwards: there is no
// fitting, no learning, and no internal state change on Encode. Any number
// of goroutines may call Encode on the same Basis concurrently without
// synchronization.
//
// Complexity:
//
//	New    — O(features · (order+1)^features) time and memory.
//	Encode — O(batch · features · (order+1)^features) time,
//	         O(batch · (order+1)^features) memory for the result.
//
// The output width (order+1)^features grows exponentially in features; that
// growth, not concurrency, is the practical scaling limit. New rejects
// combinations whose dimension cannot be represented or allocated
// (ErrDimensionOverflow) instead of truncating silently.
//
// Errors:
//   - ErrInvalidFeatures, ErrInvalidOrder — invalid constructor arguments.
//   - ErrDimensionOverflow — (order+1)^features exceeds practical limits.
//   - ErrShapeMismatch — input feature dimension disagrees with the basis.
//   - ErrNilInput — nil input matrix.
package fourier
