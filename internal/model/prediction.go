package model

// Priority ranks how urgently a suggestion should be acted on.
type Priority string

const (
	PriorityVeryHigh Priority = "Very High"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Impact estimates how much acting on a suggestion moves placement chances.
type Impact string

const (
	ImpactCritical Impact = "Critical"
	ImpactVeryHigh Impact = "Very High"
	ImpactHigh     Impact = "High"
	ImpactMedium   Impact = "Medium"
	ImpactLow      Impact = "Low"
)

// Placement labels returned on the wire.
const (
	LabelPlaced    = "Placed"
	LabelNotPlaced = "Not Placed"
)

// PlacementThreshold is the score at and above which a profile is
// labelled Placed.
const PlacementThreshold = 60.0

// ScoreResult pairs the fitness score with its derived label.
type ScoreResult struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// Suggestion is one piece of improvement advice tied to a profile attribute.
type Suggestion struct {
	Area     string   `json:"area"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
	Impact   Impact   `json:"impact"`
}

// PredictionResponse is the full /predict payload. Built once per request
// and discarded; nothing is cached or shared across requests.
type PredictionResponse struct {
	Prediction  string       `json:"prediction"`
	Probability float64      `json:"probability"`
	Suggestions []Suggestion `json:"suggestions"`
	Strengths   []string     `json:"strengths"`
}
