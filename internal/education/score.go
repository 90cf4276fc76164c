package education

import (
	"fmt"

	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// Missing-side labels recorded when a level could not be resolved.
const (
	MissingSideResume = "resume"
	MissingSideJob    = "job"
	MissingSideBoth   = "both"
)

// Score compares the resume's resolved education level against the job's.
// A missing level on either side is reported as missing data, not as a
// mismatch.
func Score(job, resume types.EducationInfo) types.EducationScore {
	switch {
	case job.Level == types.LevelUnspecified && resume.Level == types.LevelUnspecified:
		return types.EducationScore{
			Score:            0,
			Explanation:      "No education mentioned on either side.",
			MissingDataAlert: "Add your education details to your resume and education requirements to the job description for accurate scoring.",
			MissingSide:      MissingSideBoth,
		}

	case job.Level == types.LevelUnspecified:
		return types.EducationScore{
			Score:       100,
			Explanation: fmt.Sprintf("Your education (%s) exceeds the requirements (no specific education required).", resume.Name),
		}

	case resume.Level == types.LevelUnspecified:
		return types.EducationScore{
			Score:            0,
			Explanation:      fmt.Sprintf("Job requires %s but no education found in resume.", job.Name),
			MissingDataAlert: fmt.Sprintf("Add your education details to your resume. Job requires at least %s.", job.Name),
			MissingSide:      MissingSideResume,
		}

	case resume.Level >= job.Level:
		verb := "meets"
		if resume.Level > job.Level {
			verb = "exceeds"
		}
		return types.EducationScore{
			Score:       100,
			Explanation: fmt.Sprintf("Your education (%s) %s the requirements (%s).", resume.Name, verb, job.Name),
		}

	default:
		score := 40
		if job.Level-resume.Level == 1 {
			score = 60
		}
		return types.EducationScore{
			Score:       score,
			Explanation: fmt.Sprintf("Your education (%s) is below job requirements (%s).", resume.Name, job.Name),
		}
	}
}
