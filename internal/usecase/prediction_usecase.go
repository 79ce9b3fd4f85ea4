package usecase

import (
	"errors"

	"github.com/pratikrath126/placement-predictor/internal/metrics"
	"github.com/pratikrath126/placement-predictor/internal/model"
	"github.com/pratikrath126/placement-predictor/internal/repository"
	"github.com/pratikrath126/placement-predictor/internal/service"
)

// ErrArtifactUnavailable is returned by the informational operations when
// the training artifact failed to load at startup. Prediction is unaffected.
var ErrArtifactUnavailable = errors.New("model artifact not loaded")

type PredictionUsecase struct {
	scoring      service.ScoringServiceInterface
	advisory     service.AdvisoryServiceInterface
	artifactRepo *repository.ArtifactRepository
}

// NewPredictionUsecase wires the two pure engines with the optional
// artifact source. artifactRepo may be nil when the artifact is missing.
func NewPredictionUsecase(scoring service.ScoringServiceInterface, advisory service.AdvisoryServiceInterface, artifactRepo *repository.ArtifactRepository) *PredictionUsecase {
	return &PredictionUsecase{scoring: scoring, advisory: advisory, artifactRepo: artifactRepo}
}

// Predict runs the scoring engine and advisory generator on a validated
// profile and assembles the response. It holds no thresholds of its own.
func (uc *PredictionUsecase) Predict(profile model.Profile) model.PredictionResponse {
	result := uc.scoring.Score(profile)
	suggestions, strengths := uc.advisory.Advise(profile)

	metrics.PredictionsTotal.WithLabelValues(result.Label).Inc()
	metrics.PredictionScore.Observe(result.Score)

	return model.PredictionResponse{
		Prediction:  result.Label,
		Probability: result.Score,
		Suggestions: suggestions,
		Strengths:   strengths,
	}
}

// ModelInfo returns the offline training descriptor.
func (uc *PredictionUsecase) ModelInfo() (*repository.ModelArtifact, error) {
	if uc.artifactRepo == nil {
		return nil, ErrArtifactUnavailable
	}
	return uc.artifactRepo.Artifact(), nil
}
