package types

// Explanation is a structured, presentation-agnostic explanation for a
// factor score. The rendering layer decides how each field is displayed;
// no sentinel markers are embedded in the strings.
type Explanation struct {
	Yours string `json:"yours,omitempty"` // what the resume provided
	Job   string `json:"job,omitempty"`   // what the job asked for
	Why   string `json:"why"`             // why the score was assigned
}

// Factor is one weighted scoring dimension with its evidence.
type Factor struct {
	Name         string      `json:"name"`
	Score        int         `json:"score"`
	MatchedCount int         `json:"matched_count"`
	TotalCount   int         `json:"total_count"`
	Explanation  Explanation `json:"explanation"`
	Icon         string      `json:"icon,omitempty"` // presentation hint only
}

// Factor display names, in the order factors appear in an AnalysisResult.
const (
	FactorSkills     = "Skills Match"
	FactorExperience = "Experience Level"
	FactorLocation   = "Location Match"
	FactorKeywords   = "Keywords"
	FactorEducation  = "Education"
)

// GuidanceTier labels the score band a result falls into.
type GuidanceTier string

// Guidance tiers, from best to worst band.
const (
	TierStrongFit   GuidanceTier = "strong_fit"   // >= 80
	TierModerateFit GuidanceTier = "moderate_fit" // 60-79
	TierPoorFit     GuidanceTier = "poor_fit"     // < 60
)

// Guidance is the tier-based advice derived from the overall score.
// For the strong tier, Pitch is set. For the moderate tier, Gaps lists the
// concrete shortfalls. For the poor tier, either MissingInputs explains which
// side lacks signal, or Reason states the genuine mismatch.
type Guidance struct {
	Tier          GuidanceTier `json:"tier"`
	Pitch         string       `json:"pitch,omitempty"`
	PitchNote     string       `json:"pitch_note,omitempty"`
	Reason        string       `json:"reason,omitempty"`
	Gaps          []string     `json:"gaps,omitempty"`
	MissingInputs []string     `json:"missing_inputs,omitempty"`
	NextStep      string       `json:"next_step,omitempty"`
}

// AnalysisResult is the complete output of one analysis run. It is a value
// object: constructed once, never mutated.
type AnalysisResult struct {
	OverallScore      int             `json:"overall_score"`
	Factors           []Factor        `json:"factors"`
	Weights           WeightConfig    `json:"weights"`
	MissingDataAlerts []string        `json:"missing_data_alerts,omitempty"`
	ExtractedRole     string          `json:"extracted_role"`
	LocationDetails   LocationDetails `json:"location_details"`
	Guidance          Guidance        `json:"guidance"`

	// WeightsScaled is true when the supplied weights did not sum to 100.
	// The overall score is then a scaled value, not a percentage.
	WeightsScaled bool `json:"weights_scaled,omitempty"`

	// Semantic holds the optional LLM supplement; nil when the collaborator
	// was disabled or failed.
	Semantic *SemanticAnalysis `json:"semantic,omitempty"`
}

// Factor returns the named factor, or nil if absent.
func (r *AnalysisResult) Factor(name string) *Factor {
	for i := range r.Factors {
		if r.Factors[i].Name == name {
			return &r.Factors[i]
		}
	}
	return nil
}
