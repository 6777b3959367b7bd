package wsbm

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestStickBreakingMassConservation(t *testing.T) {
	src := rand.NewSource(42)
	cases := []struct {
		name string
		nk   []int
		eta0 float64
	}{
		{"Uniform", []int{5, 5, 5, 5}, 1.0},
		{"Skewed", []int{20, 3, 1, 0, 0}, 0.5},
		{"SingleOccupied", []int{10, 0, 0}, 2.0},
		{"Large", []int{100, 50, 25, 12, 6, 3, 1, 1}, 1.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sb := NewStickBreaking(len(c.nk))
			sb.Update(c.nk, c.eta0, src)

			total := 0.0
			for _, la := range sb.LogAlpha {
				total += math.Exp(la)
			}
			if math.Abs(total-1) > 1e-9 {
				t.Errorf("mixture weights sum to %g, want 1", total)
			}

			// The last break absorbs all remaining stick mass.
			if sb.LogBeta[len(c.nk)-1] != 0 {
				t.Errorf("LogBeta[K-1] = %g, want 0", sb.LogBeta[len(c.nk)-1])
			}
		})
	}
}

func TestStickBreakingSingleComponent(t *testing.T) {
	sb := NewStickBreaking(1)
	sb.Update([]int{7}, 1.0, rand.NewSource(1))

	if sb.LogAlpha[0] != 0 {
		t.Errorf("LogAlpha[0] = %g, want 0 for K=1", sb.LogAlpha[0])
	}
}

func TestStickBreakingFavorsOccupiedComponents(t *testing.T) {
	src := rand.NewSource(7)
	sb := NewStickBreaking(4)

	// With one heavily occupied component, its weight should dominate on
	// average across redraws.
	wins := 0
	const draws = 200
	for i := 0; i < draws; i++ {
		sb.Update([]int{50, 1, 1, 0}, 1.0, src)
		if sb.LogAlpha[0] > sb.LogAlpha[1] && sb.LogAlpha[0] > sb.LogAlpha[2] {
			wins++
		}
	}
	if wins < draws*3/4 {
		t.Errorf("dominant component won only %d/%d redraws", wins, draws)
	}
}
