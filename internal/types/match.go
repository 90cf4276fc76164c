package types

// SkillMatchResult holds the outcome of matching a job's required vocabulary
// against a resume. The same shape is used for the Skills and Keywords
// dimensions; they are extracted from separate curated lists and weighted
// independently.
type SkillMatchResult struct {
	Matching      []string `json:"matching"`
	Missing       []string `json:"missing"`
	TotalRequired int      `json:"total_required"`
	MatchCount    int      `json:"match_count"`
	Score         int      `json:"score"`

	// MissingDataAlert is set when the job text yields zero extractable
	// terms, meaning the dimension could not be evaluated at all.
	MissingDataAlert string `json:"missing_data_alert,omitempty"`
}

// Unscoreable reports whether the dimension had no job-side signal.
func (r SkillMatchResult) Unscoreable() bool {
	return r.TotalRequired == 0
}
