package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratikrath126/placement-predictor/internal/model"
)

func TestAdvisoryService_Advise_WeakProfile(t *testing.T) {
	svc := NewAdvisoryService()

	p := averageProfile()
	p.Backlogs = 1
	p.InternshipCount = 0
	p.LiveProjects = 0
	p.TechnicalSkillScore = 50
	p.CGPA = 6.0
	p.ExtracurricularActivities = model.ExtracurricularNo

	suggestions, strengths := svc.Advise(p)

	require.Len(t, suggestions, 6)
	assert.Empty(t, strengths)

	// Output order is attribute-evaluation order, never re-sorted.
	expectedAreas := []string{"Academics", "Internships", "Projects", "Technical Skills", "CGPA", "Extracurriculars"}
	for i, area := range expectedAreas {
		assert.Equal(t, area, suggestions[i].Area)
	}

	assert.Equal(t, model.PriorityVeryHigh, suggestions[0].Priority)
	assert.Equal(t, model.ImpactCritical, suggestions[0].Impact)
	assert.Contains(t, suggestions[0].Message, "1 active backlog")
	assert.Equal(t, model.PriorityLow, suggestions[5].Priority)
	assert.Equal(t, model.ImpactLow, suggestions[5].Impact)
}

func TestAdvisoryService_Advise_StrongProfile(t *testing.T) {
	svc := NewAdvisoryService()

	p := averageProfile()
	p.InternshipCount = 2
	p.LiveProjects = 3
	p.TechnicalSkillScore = 95
	p.CGPA = 9.0
	p.ExtracurricularActivities = model.ExtracurricularYes

	suggestions, strengths := svc.Advise(p)

	assert.Empty(t, suggestions)
	assert.Equal(t, []string{
		"No backlogs - excellent academic standing!",
		"2 internships completed",
		"3 live projects",
		"Strong technical skills (95/100)",
		"Excellent CGPA (9)",
	}, strengths)
}

func TestAdvisoryService_Advise_RuleTable(t *testing.T) {
	svc := NewAdvisoryService()

	tests := []struct {
		name            string
		modify          func(p *model.Profile)
		wantSuggestion  string // area, empty when none expected for that attribute
		wantStrengthLen int
	}{
		// The neutral base below always carries two strengths: no backlogs
		// and two live projects (the projects rule has no silent zone).
		{
			name:            "one internship yields neither suggestion nor strength",
			modify:          func(p *model.Profile) { p.InternshipCount = 1 },
			wantSuggestion:  "",
			wantStrengthLen: 2,
		},
		{
			name:            "technical score between thresholds is silent",
			modify:          func(p *model.Profile) { p.TechnicalSkillScore = 80 },
			wantSuggestion:  "",
			wantStrengthLen: 2,
		},
		{
			name:            "cgpa between 7.5 and 8.5 is silent",
			modify:          func(p *model.Profile) { p.CGPA = 8.0 },
			wantSuggestion:  "",
			wantStrengthLen: 2,
		},
		{
			name:            "single project still suggests more projects",
			modify:          func(p *model.Profile) { p.LiveProjects = 1 },
			wantSuggestion:  "Projects",
			wantStrengthLen: 1,
		},
		{
			name:            "technical threshold boundary at 75 is silent",
			modify:          func(p *model.Profile) { p.TechnicalSkillScore = 75 },
			wantSuggestion:  "",
			wantStrengthLen: 2,
		},
		{
			name:            "technical strength boundary at 90",
			modify:          func(p *model.Profile) { p.TechnicalSkillScore = 90 },
			wantSuggestion:  "",
			wantStrengthLen: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := averageProfile()
			p.InternshipCount = 1 // neutral: no internship suggestion or strength
			p.LiveProjects = 2    // neutral strength side
			p.CGPA = 8.0          // between advisory thresholds
			p.TechnicalSkillScore = 80
			tt.modify(&p)

			suggestions, strengths := svc.Advise(p)

			if tt.wantSuggestion == "" {
				assert.Empty(t, suggestions)
			} else {
				require.Len(t, suggestions, 1)
				assert.Equal(t, tt.wantSuggestion, suggestions[0].Area)
			}
			assert.Len(t, strengths, tt.wantStrengthLen)
		})
	}
}

func TestAdvisoryService_ExtracurricularSuggestionNeedsAllThree(t *testing.T) {
	svc := NewAdvisoryService()

	// Internships present: no extracurricular suggestion even with "No".
	p := averageProfile()
	p.InternshipCount = 1
	p.LiveProjects = 0
	p.ExtracurricularActivities = model.ExtracurricularNo

	suggestions, _ := svc.Advise(p)
	for _, s := range suggestions {
		assert.NotEqual(t, "Extracurriculars", s.Area)
	}

	// No internships, no projects, no activities: suggestion appears.
	p.InternshipCount = 0
	suggestions, _ = svc.Advise(p)
	areas := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		areas = append(areas, s.Area)
	}
	assert.Contains(t, areas, "Extracurriculars")
}

func TestAdvisoryService_Deterministic(t *testing.T) {
	svc := NewAdvisoryService()
	p := averageProfile()
	p.Backlogs = 2

	s1, st1 := svc.Advise(p)
	s2, st2 := svc.Advise(p)

	assert.Equal(t, s1, s2)
	assert.Equal(t, st1, st2)
}
