package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/jobfit-analyzer/internal/education"
	"github.com/jonathan/jobfit-analyzer/internal/location"
	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// metricPattern pulls a quantifiable achievement out of resume text: a
// percentage, a dollar figure, an M/K-scale count, or a years figure.
var metricPattern = regexp.MustCompile(`[0-9]+%|[0-9]+M|[0-9]+K|\$[0-9]+|[0-9]+ years`)

// Guide derives tier-based guidance from the overall score. The poor-fit
// tier re-derives, per factor, whether a low score came from missing input
// rather than a genuine mismatch, so users are never told they are a poor
// match when the real problem is an incomplete resume or job description.
func Guide(overallScore int, in Inputs, resumeText string) types.Guidance {
	switch {
	case overallScore >= 80:
		return strongFit(in, resumeText)
	case overallScore >= 60:
		return moderateFit(overallScore, in)
	default:
		return poorFit(overallScore, in)
	}
}

func strongFit(in Inputs, resumeText string) types.Guidance {
	guidance := types.Guidance{
		Tier:      types.TierStrongFit,
		PitchNote: "Personalized pitch. Customize as needed.",
	}

	if len(in.Skills.Matching) == 0 {
		guidance.Pitch = "I'm a strong match for this role and confident I can contribute from day one."
		return guidance
	}

	matched := strings.Join(capList(in.Skills.Matching, 2), ", ")
	metric := metricPattern.FindString(resumeText)
	if metric == "" {
		metric = fmt.Sprintf("%d years", in.Experience.CandidateYears)
	}

	guidance.Pitch = fmt.Sprintf(
		"I've delivered results with %s, bringing %s of proven impact. I'm ready to accelerate your team.",
		matched, metric)
	return guidance
}

func moderateFit(overallScore int, in Inputs) types.Guidance {
	var gaps []string
	if in.Skills.Score < 70 {
		gaps = append(gaps, fmt.Sprintf("Skills: %d%% match", in.Skills.Score))
	}
	if in.Experience.Score < 70 {
		gaps = append(gaps, fmt.Sprintf("Experience: %d years vs %d required", in.Experience.CandidateYears, in.Experience.RequiredYears))
	}
	if in.Location.Score < 80 {
		gaps = append(gaps, "Location: different location specified")
	}
	if len(gaps) == 0 {
		gaps = []string{"Review your profile against the role requirements"}
	}

	return types.Guidance{
		Tier:     types.TierModerateFit,
		Reason:   fmt.Sprintf("You're a %d%% fit. Gaps:", overallScore),
		Gaps:     gaps,
		NextStep: "Close the gaps and re-run the analysis to unlock a pitch.",
	}
}

func poorFit(overallScore int, in Inputs) types.Guidance {
	missing := missingInputs(in)
	if len(missing) > 0 {
		return types.Guidance{
			Tier:          types.TierPoorFit,
			Reason:        fmt.Sprintf("Score (%d%%) is limited by missing information, not necessarily a poor match.", overallScore),
			MissingInputs: missing,
			NextStep:      "Add the missing information and re-run the analysis.",
		}
	}

	return types.Guidance{
		Tier:     types.TierPoorFit,
		Reason:   fmt.Sprintf("Not a strong fit (%d%%). This appears to be a different career path.", overallScore),
		NextStep: "Find roles matching 70%+ for better success.",
	}
}

// missingInputs lists, per factor, which side lacks the relevant signal.
func missingInputs(in Inputs) []string {
	var missing []string

	if in.Skills.MissingDataAlert != "" {
		missing = append(missing, "Job description lists no recognizable skills. Add skill requirements to the job text.")
	}
	if in.Keywords.MissingDataAlert != "" {
		missing = append(missing, "Job description yields no keywords. Add more detail to the job text.")
	}
	if in.Experience.MissingResumeSignal {
		missing = append(missing, "Resume states no years of experience. Add your experience history.")
	}
	switch in.Location.MissingSide {
	case location.MissingSideJob:
		missing = append(missing, "Job description names no location. Add the job location.")
	case location.MissingSideResume:
		missing = append(missing, "Resume names no location. Add your location.")
	}
	switch in.Education.MissingSide {
	case education.MissingSideBoth:
		missing = append(missing, "Neither side mentions education. Add education details to the resume and requirements to the job text.")
	case education.MissingSideResume:
		missing = append(missing, "Resume mentions no education. Add your education details.")
	}

	return missing
}
