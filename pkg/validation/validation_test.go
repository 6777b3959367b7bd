package validation

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndValidateMatrixCSV(t *testing.T) {
	path := writeTempFile(t, "w.csv", "0,0.5,0.2\n0.5,0,-0.3\n0.2,-0.3,0\n")

	w, err := LoadAndValidateMatrix(path)
	if err != nil {
		t.Fatal(err)
	}
	if r, c := w.Dims(); r != 3 || c != 3 {
		t.Fatalf("dims = %dx%d, want 3x3", r, c)
	}
	if w.At(1, 2) != -0.3 {
		t.Errorf("W[1][2] = %g, want -0.3", w.At(1, 2))
	}
}

func TestLoadAndValidateMatrixJSON(t *testing.T) {
	path := writeTempFile(t, "w.json", "[[0, 0.5], [0.5, 0]]")

	w, err := LoadAndValidateMatrix(path)
	if err != nil {
		t.Fatal(err)
	}
	if w.At(0, 1) != 0.5 {
		t.Errorf("W[0][1] = %g, want 0.5", w.At(0, 1))
	}
}

func TestLoadAndValidateMatrixRejections(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
	}{
		{"Missing", "", ""},
		{"NonSquare", "w.csv", "0,0.5\n0.5,0\n0.1,0.2\n"},
		{"Asymmetric", "w.csv", "0,0.5\n0.4,0\n"},
		{"OutOfDomain", "w.csv", "0,1.5\n1.5,0\n"},
		{"NonZeroDiagonal", "w.csv", "0.2,0.5\n0.5,0\n"},
		{"NotNumeric", "w.csv", "0,abc\nabc,0\n"},
		{"Ragged", "w.csv", "0,0.5\n0.5\n"},
		{"BadJSON", "w.json", "{not a matrix}"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.csv")
			if c.file != "" {
				path = writeTempFile(t, c.file, c.content)
			}
			if _, err := LoadAndValidateMatrix(path); err == nil {
				t.Errorf("expected error, got none")
			}
		})
	}
}
