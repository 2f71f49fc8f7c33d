package xgbtrees

import (
	"encoding/json"
	"os"
	"testing"
)

// goldenPredictions holds reference inputs/predictions for a fixture model,
// mirroring the golden-file convention used for the LightGBM loader tests
// this package's loader tests are patterned after.
type goldenPredictions struct {
	Inputs      [][]float64 `json:"inputs"`
	Predictions []float64   `json:"predictions"`
}

func loadGoldenPredictions(t *testing.T, path string) goldenPredictions {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}
	var g goldenPredictions
	if err := json.Unmarshal(data, &g); err != nil {
		t.Fatalf("failed to parse golden file %s: %v", path, err)
	}
	return g
}

func TestLoadModelAgainstGoldenPredictions(t *testing.T) {
	data, err := os.ReadFile("testdata/regression_stump.json")
	if err != nil {
		t.Fatalf("failed to read model fixture: %v", err)
	}
	e, err := LoadModel(data)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}

	golden := loadGoldenPredictions(t, "testdata/regression_stump_golden.json")
	for i, input := range golden.Inputs {
		got := e.Predict(input)
		want := golden.Predictions[i]
		if got != want {
			t.Errorf("row %d: Predict(%v) = %f; want %f", i, input, got, want)
		}
	}
}
