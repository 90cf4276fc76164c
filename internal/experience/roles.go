package experience

import (
	"regexp"

	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// roleTriggers associates a role type with the phrases that signal it in a
// job description. The table is ordered: when two roles tie on trigger
// count, the earlier entry wins.
type roleTriggers struct {
	role     types.RoleType
	triggers []string
}

var roleTriggerTable = []roleTriggers{
	{types.RoleProductManager, []string{"product manager", "pm role", "product management", "product lead"}},
	{types.RoleEngineering, []string{"engineer", "developer", "software engineer", "backend", "frontend", "full stack"}},
	{types.RoleDataScience, []string{"data scientist", "data analyst", "machine learning engineer", "ml engineer"}},
	{types.RoleDesign, []string{"designer", "ux designer", "ui designer", "product designer"}},
	{types.RoleMarketing, []string{"marketing manager", "growth manager", "marketing lead"}},
	{types.RoleSales, []string{"sales manager", "account executive", "sales lead"}},
}

// yearExtractor holds the regexes that pull role-specific years out of a
// resume. phrase patterns capture a year count in group 1; range patterns
// capture a start year in group 1 and an end year (or "present"/"current")
// in group 2.
type yearExtractor struct {
	phrases []*regexp.Regexp
	ranges  []*regexp.Regexp
}

// roleYearExtractors covers the role types with dedicated extraction rules.
// All other role types fall back to the generic total-experience pattern.
var roleYearExtractors = map[types.RoleType]yearExtractor{
	types.RoleProductManager: {
		phrases: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:as|in|of)?\s*(?:an?\s+)?(?:product\s*manager|pm|product\s*management)`),
			regexp.MustCompile(`(?i)product\s*manager.*?(\d+)\s*years?`),
			regexp.MustCompile(`(?i)\bpm\b.*?(\d+)\s*years?`),
		},
		ranges: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:product\s*manager|\bpm\b).*?(\d{4})\s*[-–—]\s*(\d{4}|present|current)`),
		},
	},
	types.RoleEngineering: {
		phrases: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:as|in|of)?\s*(?:an?\s+)?(?:software\s*engineer|engineer|developer)`),
			regexp.MustCompile(`(?i)(?:engineer|developer).*?(\d+)\s*years?`),
		},
		ranges: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:engineer|developer).*?(\d{4})\s*[-–—]\s*(\d{4}|present|current)`),
		},
	},
}

// jobYearsPattern finds every years requirement in a job description; the
// maximum value found is the required years.
var jobYearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)

// totalExperiencePattern finds role-agnostic experience statements such as
// "8 years of experience".
var totalExperiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?(?:total\s*)?experience`)
