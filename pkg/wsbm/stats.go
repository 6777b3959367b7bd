package wsbm

import (
	"gonum.org/v1/gonum/mat"
)

// PairStats holds per-community-pair sufficient statistics of the
// transformed weights. Only the upper triangle (k <= kk) is populated;
// the diagonal holds within-community statistics.
type PairStats struct {
	K     int
	Count *mat.Dense // number of contributing weight observations
	Sum   *mat.Dense // sum of transformed weights
	SumSq *mat.Dense // sum of squared transformed weights
	CenSS *mat.Dense // centered sum of squares: SumSq - Sum^2/Count
}

// NewPairStats allocates zeroed statistics for K communities.
func NewPairStats(k int) *PairStats {
	return &PairStats{
		K:     k,
		Count: mat.NewDense(k, k, nil),
		Sum:   mat.NewDense(k, k, nil),
		SumSq: mat.NewDense(k, k, nil),
		CenSS: mat.NewDense(k, k, nil),
	}
}

// Aggregate recomputes all pair statistics from the current assignment.
// Cross-pair sums run over the full n_k x n_kk submatrix (both orders), so
// each unordered node pair contributes twice to an off-diagonal cell before
// normalization. Within-community sums run over the full n_k x n_k
// submatrix, including its diagonal, and are halved; this matches the
// no-self-loop intent only when the main diagonal of wf is zero, which the
// validator enforces.
func (s *PairStats) Aggregate(wf *mat.Dense, z []int, nk []int) {
	s.Count.Zero()
	s.Sum.Zero()
	s.SumSq.Zero()
	s.CenSS.Zero()

	n := len(z)
	for i := 0; i < n; i++ {
		zi := z[i]
		for j := 0; j < n; j++ {
			k, kk := zi, z[j]
			if k > kk {
				k, kk = kk, k
			}
			v := wf.At(i, j)
			s.Sum.Set(k, kk, s.Sum.At(k, kk)+v)
			s.SumSq.Set(k, kk, s.SumSq.At(k, kk)+v*v)
		}
	}

	for k := 0; k < s.K; k++ {
		for kk := k; kk < s.K; kk++ {
			// The double loop above visits every ordered pair, so all
			// cells carry twice the intended mass.
			s.Sum.Set(k, kk, s.Sum.At(k, kk)/2)
			s.SumSq.Set(k, kk, s.SumSq.At(k, kk)/2)

			var count float64
			if k == kk {
				count = float64(nk[k] * (nk[k] - 1) / 2)
			} else {
				count = float64(nk[k] * nk[kk])
			}
			s.Count.Set(k, kk, count)

			if count > 0 {
				sum := s.Sum.At(k, kk)
				s.CenSS.Set(k, kk, s.SumSq.At(k, kk)-sum*sum/count)
			}
		}
	}
}
