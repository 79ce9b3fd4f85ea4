package service

import (
	"fmt"

	"github.com/pratikrath126/placement-predictor/internal/model"
)

type AdvisoryServiceInterface interface {
	Advise(profile model.Profile) ([]model.Suggestion, []string)
}

// AdvisoryService derives improvement suggestions and recognized strengths
// from a profile. Its thresholds are its own, re-derived from the raw
// profile; they answer "what would most help", not "why the score came out
// this way", so they deliberately diverge from the scoring rules.
type AdvisoryService struct{}

func NewAdvisoryService() *AdvisoryService {
	return &AdvisoryService{}
}

// Advise evaluates each attribute rule independently, in a fixed order:
// backlogs, internships, projects, technical skill, cgpa, extracurriculars.
// Each attribute contributes at most one suggestion or one strength. Output
// keeps the evaluation order; suggestions are not re-sorted by priority.
func (s *AdvisoryService) Advise(p model.Profile) ([]model.Suggestion, []string) {
	suggestions := []model.Suggestion{}
	strengths := []string{}

	if p.Backlogs > 0 {
		suggestions = append(suggestions, model.Suggestion{
			Area:     "Academics",
			Priority: model.PriorityVeryHigh,
			Message:  fmt.Sprintf("You have %d active backlog(s). Clearing every backlog is the single most important step toward placement.", p.Backlogs),
			Impact:   model.ImpactCritical,
		})
	} else {
		strengths = append(strengths, "No backlogs - excellent academic standing!")
	}

	if p.InternshipCount == 0 {
		suggestions = append(suggestions, model.Suggestion{
			Area:     "Internships",
			Priority: model.PriorityHigh,
			Message:  "Gain industry experience through internships. Even one internship significantly boosts your profile.",
			Impact:   model.ImpactVeryHigh,
		})
	} else if p.InternshipCount >= 2 {
		strengths = append(strengths, fmt.Sprintf("%d internships completed", p.InternshipCount))
	}

	if p.LiveProjects < 2 {
		suggestions = append(suggestions, model.Suggestion{
			Area:     "Projects",
			Priority: model.PriorityHigh,
			Message:  "Build at least 2 live projects to showcase practical skills to recruiters.",
			Impact:   model.ImpactHigh,
		})
	} else {
		strengths = append(strengths, fmt.Sprintf("%d live projects", p.LiveProjects))
	}

	if p.TechnicalSkillScore < 75 {
		suggestions = append(suggestions, model.Suggestion{
			Area:     "Technical Skills",
			Priority: model.PriorityHigh,
			Message:  "Improve technical skills through online courses, coding practice, and projects. Target a score of 75+.",
			Impact:   model.ImpactHigh,
		})
	} else if p.TechnicalSkillScore >= 90 {
		strengths = append(strengths, fmt.Sprintf("Strong technical skills (%g/100)", p.TechnicalSkillScore))
	}

	if p.CGPA < 7.5 {
		suggestions = append(suggestions, model.Suggestion{
			Area:     "CGPA",
			Priority: model.PriorityMedium,
			Message:  "Focus on improving your CGPA. Target 7.5+ for better placement chances.",
			Impact:   model.ImpactMedium,
		})
	} else if p.CGPA >= 8.5 {
		strengths = append(strengths, fmt.Sprintf("Excellent CGPA (%g)", p.CGPA))
	}

	if !p.HasExtracurriculars() && p.InternshipCount == 0 && p.LiveProjects == 0 {
		suggestions = append(suggestions, model.Suggestion{
			Area:     "Extracurriculars",
			Priority: model.PriorityLow,
			Message:  "Participate in clubs, sports, or volunteering to develop a well-rounded profile.",
			Impact:   model.ImpactLow,
		})
	}

	return suggestions, strengths
}
