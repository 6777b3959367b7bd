package wsbm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const symTol = 1e-12

// ValidateWeightMatrix checks that w is square, symmetric, has a zero
// diagonal, and has all off-diagonal entries strictly inside (-1, 1).
// The sampler rejects invalid matrices before the iteration loop begins;
// out-of-domain entries would otherwise drive the Fisher transform to
// Inf/NaN and silently poison every draw.
func ValidateWeightMatrix(w *mat.Dense) error {
	r, c := w.Dims()
	if r != c {
		return fmt.Errorf("weight matrix must be square, got %dx%d", r, c)
	}
	if r == 0 {
		return fmt.Errorf("weight matrix must have at least one node")
	}

	for i := 0; i < r; i++ {
		if w.At(i, i) != 0 {
			return fmt.Errorf("weight matrix diagonal must be zero, got %g at node %d", w.At(i, i), i)
		}
		for j := i + 1; j < r; j++ {
			v := w.At(i, j)
			if math.Abs(v-w.At(j, i)) > symTol {
				return fmt.Errorf("weight matrix must be symmetric: W[%d][%d]=%g, W[%d][%d]=%g",
					i, j, v, j, i, w.At(j, i))
			}
			if math.IsNaN(v) || v <= -1 || v >= 1 {
				return fmt.Errorf("weight W[%d][%d]=%g outside open interval (-1, 1)", i, j, v)
			}
		}
	}
	return nil
}
