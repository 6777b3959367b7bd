package wsbm

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFisherTransformRoundTrip(t *testing.T) {
	values := []float64{-0.9, 0, 0.5, 0.99}

	w := mat.NewDense(1, len(values), values)
	wf := FisherTransform(w)

	for j, v := range values {
		got := InverseFisher(wf.At(0, j))
		if math.Abs(got-v) > 1e-12 {
			t.Errorf("round trip of %g: got %g", v, got)
		}
	}
}

func TestFisherTransformMonotone(t *testing.T) {
	values := []float64{-0.99, -0.9, -0.5, 0, 0.3, 0.5, 0.8, 0.99}

	w := mat.NewDense(1, len(values), values)
	wf := FisherTransform(w)

	for j := 1; j < len(values); j++ {
		if wf.At(0, j) <= wf.At(0, j-1) {
			t.Errorf("transform not monotone: f(%g)=%g <= f(%g)=%g",
				values[j], wf.At(0, j), values[j-1], wf.At(0, j-1))
		}
	}
}

func TestFisherTransformZeroFixed(t *testing.T) {
	w := mat.NewDense(1, 1, []float64{0})
	if got := FisherTransform(w).At(0, 0); got != 0 {
		t.Errorf("f(0) = %g, want 0", got)
	}
}
