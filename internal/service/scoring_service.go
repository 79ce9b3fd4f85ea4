package service

import (
	"math"

	"github.com/pratikrath126/placement-predictor/internal/model"
)

// Score bounds for profiles that clear the backlog gate. Backlog-penalized
// profiles can fall below ScoreFloor, down to 0.
const (
	ScoreFloor    = 10.0
	ScoreCeiling  = 99.0
	baselineScore = 60.0
)

type ScoringServiceInterface interface {
	Score(profile model.Profile) model.ScoreResult
}

// ScoringService computes the placement-fitness score. It is pure and
// stateless: no I/O, no randomness, safe for concurrent use.
type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score applies the fixed rule set and returns the one-decimal score with
// its derived label.
func (s *ScoringService) Score(profile model.Profile) model.ScoreResult {
	score := s.compute(profile)
	return model.ScoreResult{
		Score: score,
		Label: labelFor(score),
	}
}

func (s *ScoringService) compute(p model.Profile) float64 {
	score := baselineScore

	// Active backlogs override every other signal. The floor here is 0,
	// not ScoreFloor, so these profiles can score below the global minimum.
	if p.Backlogs > 0 {
		score = baselineScore - float64(30+10*p.Backlogs)
		return roundScore(math.Max(0.0, score))
	}

	// CGPA relative to the 7.0 eligibility floor.
	if p.CGPA >= 7.0 {
		score += (p.CGPA - 7.0) * 5
	} else {
		score -= 20
	}

	// Technical skill relative to a 75 expectation. The penalty rate below
	// is steeper than the bonus rate above.
	if p.TechnicalSkillScore >= 75 {
		score += (p.TechnicalSkillScore - 75) * 0.4
	} else {
		score -= (75 - p.TechnicalSkillScore) * 0.5
	}

	if p.InternshipCount > 0 {
		score += float64(p.InternshipCount) * 10
	} else {
		score -= 5
	}

	score += float64(p.LiveProjects) * 5

	if p.HasExtracurriculars() {
		score += 2
	}

	return roundScore(clampScore(score))
}

func labelFor(score float64) string {
	if score >= model.PlacementThreshold {
		return model.LabelPlaced
	}
	return model.LabelNotPlaced
}

func clampScore(score float64) float64 {
	if score < ScoreFloor {
		return ScoreFloor
	}
	if score > ScoreCeiling {
		return ScoreCeiling
	}
	return score
}

func roundScore(score float64) float64 {
	return math.Round(score*10) / 10
}
