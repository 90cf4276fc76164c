// Package skills scores how well a resume covers the skills a job posting
// asks for, using a curated multi-discipline vocabulary with variant and
// synonym expansion.
package skills

import (
	"math"

	"github.com/jonathan/jobfit-analyzer/internal/textmatch"
	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// jobMissingSkillsAlert is reported when the job text yields no extractable skills.
const jobMissingSkillsAlert = "The job description doesn't list specific skills. Add skill requirements to your job description for accurate scoring."

// ExtractVocabulary returns the curated skills mentioned in the job text,
// deduplicated, in vocabulary order. Extraction does not apply synonyms:
// the job must name the skill itself in some variant form.
func ExtractVocabulary(jobText string) []string {
	return textmatch.ExtractPresent(Vocabulary(), jobText)
}

// Match extracts the job's required skills and checks each against the
// resume with synonym expansion. An empty extraction scores 0 and carries a
// missing-data alert; a guessed nonzero default would fabricate confidence.
func Match(jobText, resumeText string) types.SkillMatchResult {
	required := ExtractVocabulary(jobText)

	if len(required) == 0 {
		return types.SkillMatchResult{
			Score:            0,
			MissingDataAlert: jobMissingSkillsAlert,
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
