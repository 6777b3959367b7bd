package wsbm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FisherTransform maps a weight matrix with entries in (-1, 1) onto the
// whole real line, elementwise 0.5*ln((1+w)/(1-w)). Entries outside the
// open interval produce Inf/NaN; callers must validate first.
func FisherTransform(w *mat.Dense) *mat.Dense {
	r, c := w.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := w.At(i, j)
			out.Set(i, j, 0.5*math.Log((1+v)/(1-v)))
		}
	}
	return out
}

// InverseFisher maps a transformed value back to the (-1, 1) weight scale.
// Useful for interpreting block means on the original correlation scale.
func InverseFisher(x float64) float64 {
	return math.Tanh(x)
}
