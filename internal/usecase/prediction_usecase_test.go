package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratikrath126/placement-predictor/internal/model"
	"github.com/pratikrath126/placement-predictor/internal/service"
)

type stubScoring struct {
	result model.ScoreResult
}

func (s *stubScoring) Score(model.Profile) model.ScoreResult { return s.result }

type stubAdvisory struct {
	suggestions []model.Suggestion
	strengths   []string
}

func (s *stubAdvisory) Advise(model.Profile) ([]model.Suggestion, []string) {
	return s.suggestions, s.strengths
}

func TestPredictionUsecase_Predict_AssemblesResponse(t *testing.T) {
	scoring := &stubScoring{result: model.ScoreResult{Score: 72.5, Label: model.LabelPlaced}}
	advisory := &stubAdvisory{
		suggestions: []model.Suggestion{{Area: "Projects", Priority: model.PriorityHigh, Impact: model.ImpactHigh}},
		strengths:   []string{"No backlogs - excellent academic standing!"},
	}
	uc := NewPredictionUsecase(scoring, advisory, nil)

	resp := uc.Predict(model.Profile{})

	assert.Equal(t, model.LabelPlaced, resp.Prediction)
	assert.Equal(t, 72.5, resp.Probability)
	assert.Equal(t, advisory.suggestions, resp.Suggestions)
	assert.Equal(t, advisory.strengths, resp.Strengths)
}

func TestPredictionUsecase_Predict_WithRealEngines(t *testing.T) {
	uc := NewPredictionUsecase(service.NewScoringService(), service.NewAdvisoryService(), nil)

	profile := model.Profile{
		CGPA:                      6.0,
		TechnicalSkillScore:       50,
		Backlogs:                  0,
		Gender:                    model.GenderMale,
		ExtracurricularActivities: model.ExtracurricularNo,
	}

	resp := uc.Predict(profile)

	assert.Equal(t, model.LabelNotPlaced, resp.Prediction)
	assert.Equal(t, 22.5, resp.Probability)

	areas := make([]string, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		areas = append(areas, s.Area)
	}
	assert.Contains(t, areas, "Extracurriculars")
}

func TestPredictionUsecase_ModelInfo_Unavailable(t *testing.T) {
	uc := NewPredictionUsecase(&stubScoring{}, &stubAdvisory{}, nil)

	_, err := uc.ModelInfo()
	require.ErrorIs(t, err, ErrArtifactUnavailable)
}
