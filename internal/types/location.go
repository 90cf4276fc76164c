package types

// LocationInfo holds the location signals extracted from one text blob
// (either a resume or a job posting). It is constructed once per analysis
// call and never mutated afterwards.
type LocationInfo struct {
	IsRemote            bool     `json:"is_remote"`
	IsHybrid            bool     `json:"is_hybrid"`
	IsOnsite            bool     `json:"is_onsite"`
	ExplicitlyNotRemote bool     `json:"explicitly_not_remote"`
	States              []string `json:"states"` // two-letter codes, deduplicated, detection order
	City                string   `json:"city,omitempty"`
	HasLocationInfo     bool     `json:"has_location_info"`
	FormattedLocation   string   `json:"formatted_location,omitempty"`

	// OriginalText is retained for secondary keyword scans such as
	// relocation willingness. It is excluded from JSON output.
	OriginalText string `json:"-"`
}

// DisplayLocation returns the formatted location or a placeholder when none was found.
func (l LocationInfo) DisplayLocation() string {
	if l.FormattedLocation == "" {
		return "Not specified"
	}
	return l.FormattedLocation
}

// LocationScore is the result of comparing a candidate location against a job location.
type LocationScore struct {
	Score        int    `json:"score"`
	Reason       string `json:"reason"`
	MissingSide  string `json:"missing_side,omitempty"` // "resume", "job", or "" when both sides had signal
	MatchedCount int    `json:"matched_count"`
	TotalCount   int    `json:"total_count"`
}

// LocationDetails retains both resolved locations for downstream display.
type LocationDetails struct {
	Resume LocationInfo `json:"resume"`
	Job    LocationInfo `json:"job"`
}
