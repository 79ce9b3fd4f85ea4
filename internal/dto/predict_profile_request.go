package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pratikrath126/placement-predictor/internal/model"
)

// PredictProfileRequest mirrors model.Profile with pointer fields so a
// missing JSON key is distinguishable from a legitimate zero. Values are
// rejected when out of domain, never clamped.
type PredictProfileRequest struct {
	SSCPercentage             *float64 `json:"ssc_percentage"`
	HSCPercentage             *float64 `json:"hsc_percentage"`
	DegreePercentage          *float64 `json:"degree_percentage"`
	CGPA                      *float64 `json:"cgpa"`
	EntranceExamScore         *float64 `json:"entrance_exam_score"`
	TechnicalSkillScore       *float64 `json:"technical_skill_score"`
	SoftSkillScore            *float64 `json:"soft_skill_score"`
	InternshipCount           *int     `json:"internship_count"`
	LiveProjects              *int     `json:"live_projects"`
	WorkExperienceMonths      *int     `json:"work_experience_months"`
	Certifications            *int     `json:"certifications"`
	AttendancePercentage      *float64 `json:"attendance_percentage"`
	Backlogs                  *int     `json:"backlogs"`
	Gender                    *string  `json:"gender"`
	ExtracurricularActivities *string  `json:"extracurricular_activities"`
}

// Validate checks presence and domain of every field.
func (r PredictProfileRequest) Validate() error {
	percent := []validation.Rule{validation.NotNil, validation.Min(0.0), validation.Max(100.0)}
	count := []validation.Rule{validation.NotNil, validation.Min(0)}

	return validation.ValidateStruct(&r,
		validation.Field(&r.SSCPercentage, percent...),
		validation.Field(&r.HSCPercentage, percent...),
		validation.Field(&r.DegreePercentage, percent...),
		validation.Field(&r.CGPA, validation.NotNil, validation.Min(0.0), validation.Max(10.0)),
		validation.Field(&r.EntranceExamScore, percent...),
		validation.Field(&r.TechnicalSkillScore, percent...),
		validation.Field(&r.SoftSkillScore, percent...),
		validation.Field(&r.InternshipCount, count...),
		validation.Field(&r.LiveProjects, count...),
		validation.Field(&r.WorkExperienceMonths, count...),
		validation.Field(&r.Certifications, count...),
		validation.Field(&r.AttendancePercentage, percent...),
		validation.Field(&r.Backlogs, count...),
		validation.Field(&r.Gender, validation.NotNil, validation.Required, validation.In(model.GenderMale, model.GenderFemale)),
		validation.Field(&r.ExtracurricularActivities, validation.NotNil, validation.Required, validation.In(model.ExtracurricularYes, model.ExtracurricularNo)),
	)
}

// ToProfile converts a validated request into the engine input. Call only
// after Validate has passed; it dereferences every field.
func (r PredictProfileRequest) ToProfile() model.Profile {
	return model.Profile{
		SSCPercentage:             *r.SSCPercentage,
		HSCPercentage:             *r.HSCPercentage,
		DegreePercentage:          *r.DegreePercentage,
		CGPA:                      *r.CGPA,
		EntranceExamScore:         *r.EntranceExamScore,
		TechnicalSkillScore:       *r.TechnicalSkillScore,
		SoftSkillScore:            *r.SoftSkillScore,
		InternshipCount:           *r.InternshipCount,
		LiveProjects:              *r.LiveProjects,
		WorkExperienceMonths:      *r.WorkExperienceMonths,
		Certifications:            *r.Certifications,
		AttendancePercentage:      *r.AttendancePercentage,
		Backlogs:                  *r.Backlogs,
		Gender:                    *r.Gender,
		ExtracurricularActivities: *r.ExtracurricularActivities,
	}
}
