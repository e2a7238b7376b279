package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArtifact(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model.json")
	payload := `{
		"vocabulary": {"hoax": 0, "report": 1},
		"idf": [1.0, 1.0],
		"weights": [3.0, -3.0],
		"intercept": 0.0
	}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	pReal, pFake := store.PredictProba("hoax hoax hoax")
	if pFake <= pReal {
		t.Fatalf("expected fake-leaning distribution, got real=%f fake=%f", pReal, pFake)
	}
	if math.Abs(pReal+pFake-1) > 1e-9 {
		t.Fatalf("probabilities must sum to 1, got %f", pReal+pFake)
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestLoadCorruptArtifact(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for corrupt artifact")
	}
}

func TestNewRejectsDimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := New(map[string]int{"a": 0}, []float64{1}, []float64{1, 2}, 0)
	if err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

func TestPredictProbaNeutralText(t *testing.T) {
	t.Parallel()

	store, err := New(map[string]int{"hoax": 0}, []float64{1}, []float64{5}, 0)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// No vocabulary hit: z = intercept = 0, a 50/50 split.
	pReal, pFake := store.PredictProba("completely unrelated words")
	if math.Abs(pReal-0.5) > 1e-9 || math.Abs(pFake-0.5) > 1e-9 {
		t.Fatalf("expected 0.5/0.5, got %f/%f", pReal, pFake)
	}
}
