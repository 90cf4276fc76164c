// Package keywords scores keyword coverage between a job posting and a
// resume. Mechanically identical to the skills dimension but extracted from
// its own curated list and weighted separately.
package keywords

import (
	"math"

	"github.com/jonathan/jobfit-analyzer/internal/textmatch"
	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// maxExtracted caps how many keywords are taken from a job posting.
const maxExtracted = 20

// jobMissingKeywordsAlert is reported when no keywords can be extracted from the job text.
const jobMissingKeywordsAlert = "The job description doesn't have clear keywords. Add more detail to improve keyword analysis."

// synonymTable maps keywords to equivalent phrasings, bidirectionally.
var synonymTable = textmatch.Synonyms{
	"product strategy":            {"strategy", "strategic planning", "product planning"},
	"roadmap":                     {"roadmapping", "product roadmap", "strategic roadmap"},
	"roadmapping":                 {"roadmap", "product roadmap"},
	"metrics":                     {"kpis", "analytics", "data metrics", "performance metrics"},
	"analytics":                   {"data analytics", "data analysis", "metrics", "analysis"},
	"data analysis":               {"analytics", "data analytics", "analysis", "quantitative analysis"},
	"data analytics":              {"analytics", "data analysis", "analysis"},
	"a/b testing":                 {"ab testing", "experimentation", "split testing", "a/b test", "ab test"},
	"ab testing":                  {"a/b testing", "experimentation", "split testing"},
	"experimentation":             {"a/b testing", "ab testing", "testing", "experiment"},
	"sql":                         {"postgresql", "mysql", "database", "sql query"},
	"user research":               {"customer research", "user interviews", "research", "user testing"},
	"cross-functional leadership": {"cross functional", "cross-functional", "leadership", "team leadership"},
	"javascript":                  {"js", "ecmascript"},
	"typescript":                  {"ts"},
	"node.js":                     {"nodejs", "node"},
}

// Extract returns up to maxExtracted keywords found in the job text,
// deduplicated, in vocabulary order.
func Extract(jobText string) []string {
	found := textmatch.ExtractPresent(Vocabulary(), jobText)
	if len(found) > maxExtracted {
		found = found[:maxExtracted]
	}
	return found
}

// Match extracts the job's keywords and checks each against the resume with
// synonym expansion. Zero extractable keywords score 0 with a missing-data
// alert rather than a guessed default.
func Match(jobText, resumeText string) types.SkillMatchResult {
	required := Extract(jobText)

	if len(required) == 0 {
		return types.SkillMatchResult{
			Score:            0,
			MissingDataAlert: jobMissingKeywordsAlert,
		}
	}

	matching, missing := textmatch.Match(required, resumeText, synonymTable)

	return types.SkillMatchResult{
		Matching:      matching,
		Missing:       missing,
		TotalRequired: len(required),
		MatchCount:    len(matching),
		Score:         int(math.Round(float64(len(matching)) / float64(len(required)) * 100)),
	}
}
