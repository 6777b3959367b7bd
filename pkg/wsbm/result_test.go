package wsbm

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestCoAssignmentWithoutHistory(t *testing.T) {
	r := &Result{N: 3}
	if co := r.CoAssignment(); co != nil {
		t.Errorf("expected nil co-assignment without stored history")
	}
}

func TestCoAssignmentFrequencies(t *testing.T) {
	r := &Result{
		N:      3,
		BurnIn: 1,
		ZHistory: [][]int{
			{0, 0, 0}, // burn-in, ignored
			{0, 0, 1},
			{0, 0, 1},
			{0, 1, 1},
			{0, 0, 1},
		},
	}

	co := r.CoAssignment()
	if co[0][1] != 0.75 {
		t.Errorf("co[0][1] = %g, want 0.75", co[0][1])
	}
	if co[0][2] != 0 {
		t.Errorf("co[0][2] = %g, want 0", co[0][2])
	}
	if co[0][0] != 1 {
		t.Errorf("co[0][0] = %g, want 1", co[0][0])
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	r := &Result{
		Z:       []int{0, 1},
		Mu:      [][]float64{{0.1, 0.2}, {0, 0.3}},
		Var:     [][]float64{{0.1, 0.1}, {0, 0.1}},
		LogPost: []float64{-1, -2},
		N:       2,
		KMax:    2,
		NumIter: 2,
	}

	path := filepath.Join(t.TempDir(), "result.json")
	if err := r.WriteJSON(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back Result
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Z) != 2 || back.Z[1] != 1 {
		t.Errorf("round-tripped Z = %v, want [0 1]", back.Z)
	}
}
