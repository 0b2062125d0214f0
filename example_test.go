package fourier_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fourier"
)

// ExampleNew builds a basis over two features with frequencies {0,1}.
// The output width is (order+1)^features = 2² = 4, one basis function per
// multi-index (0,0), (0,1), (1,0), (1,1).
func ExampleNew() {
	b, err := fourier.New(2, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rows, cols := b.Coefficients().Dims()
	fmt.Printf("coefficients: %d x %d\n", rows, cols)
	fmt.Printf("output width: %d\n", b.Dim())
	// Output:
	// coefficients: 2 x 4
	// output width: 4
}

// ExampleBasis_Encode encodes a two-sample batch with one feature and
// order 1. The second basis function is cos(π·x), so x=0 maps to 1 and
// x=1 maps to -1.
func ExampleBasis_Encode() {
	b, err := fourier.New(1, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	x := mat.NewDense(2, 1, []float64{0, 1})
	y, err := b.Encode(x)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("x=0 -> [%.0f %.0f]\n", y.At(0, 0), y.At(0, 1))
	fmt.Printf("x=1 -> [%.0f %.0f]\n", y.At(1, 0), y.At(1, 1))
	// Output:
	// x=0 -> [1 1]
	// x=1 -> [1 -1]
}

// ExampleBasis_EncodeVector encodes a single sample without building a batch.
func ExampleBasis_EncodeVector() {
	b, err := fourier.New(2, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	out, err := b.EncodeVector([]float64{0, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(out)
	// Output:
	// [1 1 1 1]
}
