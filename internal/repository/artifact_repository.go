package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// ModelArtifact is the descriptor the offline training pipeline publishes.
// It is informational only: the prediction path never reads it. Subdocuments
// are kept as raw JSON so the artifact's own key order survives to the wire.
type ModelArtifact struct {
	ModelName         string          `json:"model_name"`
	Accuracy          float64         `json:"accuracy"`
	F1Score           float64         `json:"f1_score"`
	ROCAUC            float64         `json:"roc_auc"`
	AllModels         json.RawMessage `json:"all_models"`
	FeatureImportance json.RawMessage `json:"feature_importance"`
	TopFeatures       json.RawMessage `json:"top_5"`
}

type ArtifactRepository struct {
	artifact *ModelArtifact
}

// NewArtifactRepository reads model_info.json from dir once. The artifact
// is immutable afterwards, so concurrent reads need no synchronization.
func NewArtifactRepository(dir string) (*ArtifactRepository, error) {
	path := filepath.Join(dir, "model_info.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	artifact, err := parseArtifact(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse model artifact %s: %w", path, err)
	}
	return &ArtifactRepository{artifact: artifact}, nil
}

// Artifact returns the loaded descriptor.
func (r *ArtifactRepository) Artifact() *ModelArtifact {
	return r.artifact
}

func parseArtifact(doc string) (*ModelArtifact, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("invalid JSON")
	}

	name := gjson.Get(doc, "best_model")
	importance := gjson.Get(doc, "feature_importance")
	if !name.Exists() || !importance.Exists() {
		return nil, fmt.Errorf("missing best_model or feature_importance")
	}

	return &ModelArtifact{
		ModelName:         name.String(),
		Accuracy:          gjson.Get(doc, "accuracy").Float(),
		F1Score:           gjson.Get(doc, "f1_score").Float(),
		ROCAUC:            gjson.Get(doc, "roc_auc").Float(),
		AllModels:         rawOrNull(gjson.Get(doc, "results")),
		FeatureImportance: json.RawMessage(importance.Raw),
		TopFeatures:       topFeatures(importance, 5),
	}, nil
}

// topFeatures rebuilds the first n entries of the importance object. gjson
// iterates in document order, which is the artifact's importance ranking.
func topFeatures(importance gjson.Result, n int) json.RawMessage {
	var sb strings.Builder
	sb.WriteByte('{')
	count := 0
	importance.ForEach(func(key, value gjson.Result) bool {
		if count >= n {
			return false
		}
		if count > 0 {
			sb.WriteByte(',')
		}
		name, _ := json.Marshal(key.String())
		sb.Write(name)
		sb.WriteByte(':')
		sb.WriteString(value.Raw)
		count++
		return true
	})
	sb.WriteByte('}')
	return json.RawMessage(sb.String())
}

func rawOrNull(result gjson.Result) json.RawMessage {
	if !result.Exists() {
		return json.RawMessage("null")
	}
	return json.RawMessage(result.Raw)
}
