package wsbm

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// StickBreaking holds the truncated stick-breaking state: the log break
// proportions and the resulting log mixture weights.
type StickBreaking struct {
	K        int
	LogBeta  []float64
	LogAlpha []float64
}

// NewStickBreaking allocates stick-breaking state for K components.
func NewStickBreaking(k int) *StickBreaking {
	return &StickBreaking{
		K:        k,
		LogBeta:  make([]float64, k),
		LogAlpha: make([]float64, k),
	}
}

// Update redraws every break proportion from its Beta posterior given the
// current occupancy counts, then rebuilds the log mixture weights via the
// product construction. The last break is pinned to 1 so the truncation is
// exact: the final component absorbs all remaining stick mass.
func (sb *StickBreaking) Update(nk []int, eta0 float64, src rand.Source) {
	tail := 0
	for k := sb.K - 1; k >= 0; k-- {
		if k == sb.K-1 {
			sb.LogBeta[k] = 0
		} else {
			tail += nk[k+1]
			beta := distuv.Beta{
				Alpha: 1 + float64(nk[k]),
				Beta:  eta0 + float64(tail),
				Src:   src,
			}
			sb.LogBeta[k] = math.Log(beta.Rand())
		}
	}

	rest := 0.0 // log of the stick mass remaining before break k
	for k := 0; k < sb.K; k++ {
		sb.LogAlpha[k] = sb.LogBeta[k] + rest
		rest += math.Log(1 - math.Exp(sb.LogBeta[k]))
	}
}
