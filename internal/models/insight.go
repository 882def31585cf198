package models

// TraitNames are the seven fixed radar axes, in the order the narrative
// oracle must return them.
var TraitNames = []string{
	"Curiosity",
	"Emotional Intensity",
	"Self-Discipline",
	"Social Orientation",
	"Escapism",
	"Learning Drive",
	"Exploration Breadth",
}

// Trait is one radar axis with a 0–1 score.
type Trait struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// FAQEntry is one generated question/answer pair.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// InsightPayload is the fourth-stage output: the validated narrative profile.
type InsightPayload struct {
	NarrativeSummary string     `json:"narrativeSummary"`
	Traits           []Trait    `json:"traits"`
	SuggestedShifts  []string   `json:"suggestedShifts"`
	FAQ              []FAQEntry `json:"faq"`
	VisualMetaphor   string     `json:"visualMetaphor,omitempty"`
}
