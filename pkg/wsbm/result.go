package wsbm

import (
	"encoding/json"
	"os"

	"gonum.org/v1/gonum/stat"
)

// Result represents the sampler output. Block-parameter matrices hold the
// upper triangle (k <= kk) only; lower-triangle entries are zero.
type Result struct {
	Z        []int         `json:"z"`                   // final assignment vector
	ZHistory [][]int       `json:"z_history,omitempty"` // per-iteration assignments
	Mu       [][]float64   `json:"mu"`                  // final block means
	Var      [][]float64   `json:"var"`                 // final block variances
	MuTrace  [][][]float64 `json:"mu_trace,omitempty"`  // post-burn-in mean snapshots
	VarTrace [][][]float64 `json:"var_trace,omitempty"` // post-burn-in variance snapshots
	LogL     float64       `json:"log_likelihood"`      // initial log-likelihood
	LogPost  []float64     `json:"logpost"`             // per-iteration log-posterior

	N       int `json:"n"`
	KMax    int `json:"k_max"`
	BurnIn  int `json:"burn_in"`
	NumIter int `json:"iterations"`
}

// CoAssignment returns the n x n post-burn-in co-assignment frequency
// matrix: entry (i, j) is the fraction of retained draws in which nodes i
// and j share a community. Returns nil when no history was stored.
func (r *Result) CoAssignment() [][]float64 {
	if len(r.ZHistory) == 0 {
		return nil
	}

	co := make([][]float64, r.N)
	for i := range co {
		co[i] = make([]float64, r.N)
	}

	draws := 0
	for it := r.BurnIn; it < len(r.ZHistory); it++ {
		zs := r.ZHistory[it]
		for i := 0; i < r.N; i++ {
			for j := 0; j < r.N; j++ {
				if zs[i] == zs[j] {
					co[i][j]++
				}
			}
		}
		draws++
	}
	if draws == 0 {
		return co
	}
	for i := range co {
		for j := range co[i] {
			co[i][j] /= float64(draws)
		}
	}
	return co
}

// MeanLogPost returns the mean of the post-burn-in log-posterior series.
func (r *Result) MeanLogPost() float64 {
	if r.BurnIn >= len(r.LogPost) {
		return 0
	}
	return stat.Mean(r.LogPost[r.BurnIn:], nil)
}

// PosteriorMeanMu averages the stored post-burn-in mean snapshots for one
// community pair, on the transformed scale.
func (r *Result) PosteriorMeanMu(k, kk int) float64 {
	if k > kk {
		k, kk = kk, k
	}
	vals := make([]float64, 0, len(r.MuTrace))
	for _, snap := range r.MuTrace {
		vals = append(vals, snap[k][kk])
	}
	if len(vals) == 0 {
		return 0
	}
	return stat.Mean(vals, nil)
}

// PosteriorMeanVar averages the stored post-burn-in variance snapshots for
// one community pair.
func (r *Result) PosteriorMeanVar(k, kk int) float64 {
	if k > kk {
		k, kk = kk, k
	}
	vals := make([]float64, 0, len(r.VarTrace))
	for _, snap := range r.VarTrace {
		vals = append(vals, snap[k][kk])
	}
	if len(vals) == 0 {
		return 0
	}
	return stat.Mean(vals, nil)
}

// WriteJSON writes the result to a file as indented JSON.
func (r *Result) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
