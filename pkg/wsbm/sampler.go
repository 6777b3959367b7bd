package wsbm

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sampler holds the full MCMC state for one chain. All fields are owned
// exclusively by the running chain; independent chains must use separate
// Sampler instances with separate seeds.
type Sampler struct {
	cfg    *Config
	logger zerolog.Logger
	rng    *rand.Rand

	n      int
	k      int
	priors Priors

	wf     *mat.Dense
	z      []int
	nk     []int
	stats  *PairStats
	blocks *BlockParams
	sticks *StickBreaking

	// scratch for the per-node categorical draw
	logProb []float64
}

// NewSampler prepares a sampler for the given weight matrix. The matrix is
// validated and Fisher-transformed; the assignment vector is initialized
// uniformly over a random number of initially active communities.
func NewSampler(w *mat.Dense, cfg *Config) (*Sampler, error) {
	if err := ValidateWeightMatrix(w); err != nil {
		return nil, fmt.Errorf("invalid weight matrix: %w", err)
	}
	k := cfg.KMax()
	if k < 1 {
		return nil, fmt.Errorf("k_max must be positive, got %d", k)
	}
	if cfg.Eta0() <= 0 {
		return nil, fmt.Errorf("eta0 must be positive, got %g", cfg.Eta0())
	}

	n, _ := w.Dims()
	s := &Sampler{
		cfg:     cfg,
		logger:  cfg.CreateLogger(),
		rng:     rand.New(rand.NewSource(uint64(cfg.RandomSeed()))),
		n:       n,
		k:       k,
		priors:  Priors{SS0: cfg.SS0(), Nu0: cfg.Nu0(), Mu0: cfg.Mu0(), N0: cfg.N0()},
		wf:      FisherTransform(w),
		z:       make([]int, n),
		nk:      make([]int, k),
		stats:   NewPairStats(k),
		sticks:  NewStickBreaking(k),
		logProb: make([]float64, k),
	}
	s.blocks = NewBlockParams(k, s.priors)

	// Start from a uniform assignment over a random prefix of the
	// available labels, as a crude overdispersed initialization.
	kStart := s.rng.Intn(k) + 1
	for i := range s.z {
		s.z[i] = s.rng.Intn(kStart)
		s.nk[s.z[i]]++
	}

	return s, nil
}

// Run executes the full MCMC loop and returns the posterior artifacts.
// Cancellation is honored between iterations only; a sweep never suspends
// mid-flight.
func Run(ctx context.Context, w *mat.Dense, cfg *Config) (*Result, error) {
	s, err := NewSampler(w, cfg)
	if err != nil {
		return nil, err
	}
	return s.Sample(ctx)
}

// Sample runs the iteration loop on an initialized sampler.
func (s *Sampler) Sample(ctx context.Context) (*Result, error) {
	start := time.Now()
	iters := s.cfg.Iterations()
	burn := s.cfg.BurnIn()
	store := s.cfg.Store()
	eta0 := s.cfg.Eta0()

	s.logger.Info().
		Int("nodes", s.n).
		Int("k_max", s.k).
		Float64("eta0", eta0).
		Int("iterations", iters).
		Int("burn_in", burn).
		Bool("store", store).
		Msg("Starting WSBM sampler")

	res := &Result{
		LogPost: make([]float64, iters),
		N:       s.n,
		KMax:    s.k,
		BurnIn:  burn,
		NumIter: iters,
	}
	if store {
		res.ZHistory = make([][]int, iters)
		res.MuTrace = make([][][]float64, 0, iters-burn)
		res.VarTrace = make([][][]float64, 0, iters-burn)
	}

	// Initialization pass: statistics and block parameters from the
	// starting assignment, plus the initial log-likelihood when stored.
	s.stats.Aggregate(s.wf, s.z, s.nk)
	s.blocks.UpdateVar(s.stats, s.priors, s.rng)
	s.blocks.UpdateMu(s.stats, s.priors, s.rng)
	if store {
		res.LogL = s.blocks.LogPosterior(s.stats, s.priors)
	}

	nextPct := 0
	for it := 0; it < iters; it++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		s.sticks.Update(s.nk, eta0, s.rng)
		s.resample()
		s.stats.Aggregate(s.wf, s.z, s.nk)
		s.blocks.UpdateVar(s.stats, s.priors, s.rng)
		s.blocks.UpdateMu(s.stats, s.priors, s.rng)

		if store {
			res.LogPost[it] = s.blocks.LogPosterior(s.stats, s.priors)
			zs := make([]int, s.n)
			copy(zs, s.z)
			res.ZHistory[it] = zs
			if it >= burn {
				res.MuTrace = append(res.MuTrace, denseToSlice(s.blocks.Mu))
				res.VarTrace = append(res.VarTrace, denseToSlice(s.blocks.Var))
			}
		}

		if s.cfg.EnableProgress() && it*100/iters == nextPct {
			s.logger.Info().Int("percent", nextPct).Msg("Sampling progress")
			nextPct += 10
		}
	}

	res.Z = make([]int, s.n)
	copy(res.Z, s.z)
	res.Mu = denseToSlice(s.blocks.Mu)
	res.Var = denseToSlice(s.blocks.Var)

	s.logger.Info().
		Int64("runtime_ms", time.Since(start).Milliseconds()).
		Ints("occupancy", s.nk).
		Msg("WSBM sampler completed")

	return res, nil
}

// resample performs one full assignment sweep. Node i's new label is drawn
// conditional on the already-updated labels of nodes < i in the same sweep;
// this immediate-update ordering changes the chain's mixing behavior and
// must not be batched.
func (s *Sampler) resample() {
	for i := 0; i < s.n; i++ {
		for k := 0; k < s.k; k++ {
			lp := s.sticks.LogAlpha[k]
			for ii := 0; ii < s.n; ii++ {
				if ii == i {
					continue
				}
				// Block matrices store the upper triangle only, so
				// parameters are looked up by the ordered label pair.
				a, b := k, s.z[ii]
				if a > b {
					a, b = b, a
				}
				v := s.blocks.Var.At(a, b)
				d := s.wf.At(i, ii) - s.blocks.Mu.At(a, b)
				lp += -0.5*math.Log(2*math.Pi*v) - d*d/(2*v)
			}
			s.logProb[k] = lp
		}

		s.setLabel(i, s.drawCategorical())
	}
}

// drawCategorical normalizes the scratch log-scores with log-sum-exp and
// draws a label by inverse CDF. Underflow that collapses the whole mixture
// onto one label degenerates to that label deterministically.
func (s *Sampler) drawCategorical() int {
	lse := floats.LogSumExp(s.logProb)
	u := s.rng.Float64()
	cum := 0.0
	for k := 0; k < s.k; k++ {
		cum += math.Exp(s.logProb[k] - lse)
		if u < cum {
			return k
		}
	}
	return s.k - 1
}

// setLabel applies a drawn label, maintaining occupancy counts so that the
// remainder of the sweep sees the update.
func (s *Sampler) setLabel(i, label int) {
	if s.z[i] == label {
		return
	}
	s.nk[label]++
	s.nk[s.z[i]]--
	s.z[i] = label
}

func denseToSlice(d *mat.Dense) [][]float64 {
	r, c := d.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = d.At(i, j)
		}
	}
	return out
}
