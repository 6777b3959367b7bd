package wsbm

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Priors holds the fixed normal/inverse-gamma hyperparameters for the
// block-pair parameters.
type Priors struct {
	SS0 float64 // prior scale
	Nu0 float64 // prior degrees of freedom
	Mu0 float64 // prior mean
	N0  float64 // prior pseudo-count
}

// BlockParams holds the per-community-pair Gaussian parameters of the
// transformed weights, upper triangle only.
type BlockParams struct {
	K   int
	Mu  *mat.Dense
	Var *mat.Dense
}

// NewBlockParams allocates block parameters with Var initialized to the
// prior scale.
func NewBlockParams(k int, p Priors) *BlockParams {
	b := &BlockParams{
		K:   k,
		Mu:  mat.NewDense(k, k, nil),
		Var: mat.NewDense(k, k, nil),
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			b.Var.Set(i, j, p.SS0)
		}
	}
	return b
}

// UpdateVar redraws every pair variance from its inverse-gamma posterior.
// Pairs with no observations fall back to the prior scale deterministically.
func (b *BlockParams) UpdateVar(s *PairStats, p Priors, src rand.Source) {
	for k := 0; k < b.K; k++ {
		for kk := k; kk < b.K; kk++ {
			count := s.Count.At(k, kk)
			if count > 0 {
				sum := s.Sum.At(k, kk)
				meanObs := sum / count
				scale := p.SS0 + s.CenSS.At(k, kk) +
					(p.N0*count/(p.N0+count))*(meanObs-p.Mu0)*(meanObs-p.Mu0)
				ig := distuv.InverseGamma{
					Alpha: (count + p.Nu0) / 2,
					Beta:  scale / 2,
					Src:   src,
				}
				b.Var.Set(k, kk, ig.Rand())
			} else {
				b.Var.Set(k, kk, p.SS0)
			}
		}
	}
}

// UpdateMu redraws every pair mean from its normal posterior given the
// freshly drawn variances.
func (b *BlockParams) UpdateMu(s *PairStats, p Priors, src rand.Source) {
	for k := 0; k < b.K; k++ {
		for kk := k; kk < b.K; kk++ {
			count := s.Count.At(k, kk)
			norm := distuv.Normal{
				Mu:    (s.Sum.At(k, kk) + p.N0*p.Mu0) / (count + p.N0),
				Sigma: math.Sqrt(b.Var.At(k, kk) / (count + p.N0)),
				Src:   src,
			}
			b.Mu.Set(k, kk, norm.Rand())
		}
	}
}

// LogPosterior accumulates the joint log-likelihood and prior density terms
// over all pairs for the current parameters and statistics.
func (b *BlockParams) LogPosterior(s *PairStats, p Priors) float64 {
	lp := 0.0
	for k := 0; k < b.K; k++ {
		for kk := k; kk < b.K; kk++ {
			count := s.Count.At(k, kk)
			v := b.Var.At(k, kk)
			m := b.Mu.At(k, kk)
			sum := s.Sum.At(k, kk)
			sumSq := s.SumSq.At(k, kk)

			// Gaussian likelihood term
			lp += (-count/2)*math.Log(v) - sumSq/(2*v) +
				m*sum/v - count*m*m/(2*v)
			// normal prior on the mean
			lp += -0.5*math.Log(v/p.N0) - (p.N0/(2*v))*(m-p.Mu0)*(m-p.Mu0)
			// inverse-gamma prior on the variance
			lp += -(p.Nu0/2+1)*math.Log(v) + p.SS0/(2*v)
		}
	}
	return lp
}
