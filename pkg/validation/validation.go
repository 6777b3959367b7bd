// Package validation loads weight matrices from disk and validates them
// before they reach the sampler.
package validation

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/gilchrisn/wsbm-sampler/pkg/wsbm"
)

// LoadAndValidateMatrix loads a weight matrix from a CSV or JSON file
// (chosen by extension) and validates its structure.
func LoadAndValidateMatrix(filePath string) (*mat.Dense, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("matrix file does not exist: %s", filePath)
	}

	var (
		w   *mat.Dense
		err error
	)
	if strings.HasSuffix(strings.ToLower(filePath), ".json") {
		w, err = loadJSON(filePath)
	} else {
		w, err = loadCSV(filePath)
	}
	if err != nil {
		return nil, err
	}

	if err := wsbm.ValidateWeightMatrix(w); err != nil {
		return nil, fmt.Errorf("matrix validation failed: %w", err)
	}
	return w, nil
}

// loadCSV reads an n x n matrix from comma-separated rows of floats.
func loadCSV(filePath string) (*mat.Dense, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open matrix file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse matrix CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("matrix file is empty: %s", filePath)
	}

	n := len(records)
	w := mat.NewDense(n, len(records[0]), nil)
	for i, row := range records {
		if len(row) != len(records[0]) {
			return nil, fmt.Errorf("ragged matrix row %d: got %d columns, want %d",
				i, len(row), len(records[0]))
		}
		for j, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("bad weight at row %d col %d: %w", i, j, err)
			}
			w.Set(i, j, v)
		}
	}
	return w, nil
}

// loadJSON reads an n x n matrix from a JSON array of arrays of numbers.
func loadJSON(filePath string) (*mat.Dense, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix file: %w", err)
	}

	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse matrix JSON: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("matrix file is empty: %s", filePath)
	}

	w := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("ragged matrix row %d: got %d columns, want %d",
				i, len(row), len(rows[0]))
		}
		for j, v := range row {
			w.Set(i, j, v)
		}
	}
	return w, nil
}
