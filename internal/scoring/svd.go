// Package scoring wraps the offline-trained SVD collaborative-filtering
// model. The trainer factorizes the user-asset interaction matrix into
// latent vectors; predicting an affinity at serving time is a biased dot
// product, so the model is cheap to evaluate and read-only after load.
package scoring

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// Artifact is the serialized form of a trained SVD model. The offline
// trainer exports factors in this shape and cmd/modelpack packs them with
// encoding/gob.
type Artifact struct {
	Name        string
	GlobalMean  float64
	MinRating   float64
	MaxRating   float64
	UserIndex   map[string]int
	ItemIndex   map[string]int
	UserFactors [][]float64
	ItemFactors [][]float64
	UserBias    []float64
	ItemBias    []float64
}

// SVDModel answers affinity predictions for (user, asset) pairs. All fields
// are fixed at load time; concurrent reads are safe.
type SVDModel struct {
	artifact Artifact
}

// Load reads a gob-encoded model artifact from disk.
func Load(path string) (*SVDModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a gob-encoded model artifact from r.
func Decode(r io.Reader) (*SVDModel, error) {
	var artifact Artifact
	if err := gob.NewDecoder(r).Decode(&artifact); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if err := validate(&artifact); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}
	return &SVDModel{artifact: artifact}, nil
}

// Encode writes the artifact to w in the format Decode expects.
func Encode(w io.Writer, artifact *Artifact) error {
	if err := validate(artifact); err != nil {
		return fmt.Errorf("invalid model artifact: %w", err)
	}
	return gob.NewEncoder(w).Encode(artifact)
}

func validate(a *Artifact) error {
	if len(a.UserFactors) != len(a.UserIndex) || len(a.UserBias) != len(a.UserIndex) {
		return fmt.Errorf("user factor/bias count does not match user index size %d", len(a.UserIndex))
	}
	if len(a.ItemFactors) != len(a.ItemIndex) || len(a.ItemBias) != len(a.ItemIndex) {
		return fmt.Errorf("item factor/bias count does not match item index size %d", len(a.ItemIndex))
	}
	for _, i := range a.UserIndex {
		if i < 0 || i >= len(a.UserFactors) {
			return fmt.Errorf("user index entry %d out of range", i)
		}
	}
	for _, i := range a.ItemIndex {
		if i < 0 || i >= len(a.ItemFactors) {
			return fmt.Errorf("item index entry %d out of range", i)
		}
	}
	return nil
}

// Name returns the model name used in provenance labels.
func (m *SVDModel) Name() string {
	if m.artifact.Name == "" {
		return "SVD"
	}
	return m.artifact.Name
}

// IsKnownUser reports whether the user appeared in the training set.
func (m *SVDModel) IsKnownUser(userID string) bool {
	_, ok := m.artifact.UserIndex[userID]
	return ok
}

// Predict estimates the user's affinity for an asset. For an asset the
// model never saw it falls back to the user's baseline (global mean plus
// user bias); for an unknown user it returns the global mean. It never
// fails: callers are expected to gate on IsKnownUser.
func (m *SVDModel) Predict(userID, assetID string) float64 {
	a := &m.artifact

	u, knownUser := a.UserIndex[userID]
	if !knownUser {
		return a.GlobalMean
	}

	est := a.GlobalMean + a.UserBias[u]
	if i, knownItem := a.ItemIndex[assetID]; knownItem {
		est += a.ItemBias[i] + dot(a.UserFactors[u], a.ItemFactors[i])
	}

	// Clamp to the training rating scale when the artifact declares one.
	if a.MaxRating > a.MinRating {
		if est < a.MinRating {
			est = a.MinRating
		}
		if est > a.MaxRating {
			est = a.MaxRating
		}
	}
	return est
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
