package model

// Gender and extracurricular values accepted on the wire.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"

	ExtracurricularYes = "Yes"
	ExtracurricularNo  = "No"
)

// Profile is the 15-attribute student description the engines score and
// advise on. It is always built from an already-validated request, so
// every field is within its declared domain.
type Profile struct {
	SSCPercentage             float64 `json:"ssc_percentage"`
	HSCPercentage             float64 `json:"hsc_percentage"`
	DegreePercentage          float64 `json:"degree_percentage"`
	CGPA                      float64 `json:"cgpa"`
	EntranceExamScore         float64 `json:"entrance_exam_score"`
	TechnicalSkillScore       float64 `json:"technical_skill_score"`
	SoftSkillScore            float64 `json:"soft_skill_score"`
	InternshipCount           int     `json:"internship_count"`
	LiveProjects              int     `json:"live_projects"`
	WorkExperienceMonths      int     `json:"work_experience_months"`
	Certifications            int     `json:"certifications"`
	AttendancePercentage      float64 `json:"attendance_percentage"`
	Backlogs                  int     `json:"backlogs"`
	Gender                    string  `json:"gender"`                     // "Male" or "Female"
	ExtracurricularActivities string  `json:"extracurricular_activities"` // "Yes" or "No"
}

// HasExtracurriculars reports whether the student is active in
// extracurricular activities.
func (p Profile) HasExtracurriculars() bool {
	return p.ExtracurricularActivities == ExtracurricularYes
}
