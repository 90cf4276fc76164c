// Package scoring combines the five dimension sub-scores into a weighted
// overall score and derives tier-based guidance from it.
package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// Inputs bundles the five dimension results for aggregation.
type Inputs struct {
	Skills     types.SkillMatchResult
	Experience types.ExperienceMatchResult
	Location   types.LocationScore
	Keywords   types.SkillMatchResult
	Education  types.EducationScore

	// LocationDetails carries both resolved locations for explanations.
	LocationDetails types.LocationDetails
}

// Aggregate computes round(sum(subscore * weight / 100)) over the five fixed
// dimensions and assembles the ordered factor list with explanations and
// missing-data alerts. Weights that do not sum to 100 still produce a result,
// flagged as scaled rather than a percentage.
func Aggregate(in Inputs, weights types.WeightConfig) types.AnalysisResult {
	weighted := in.Skills.Score*weights.Skills +
		in.Experience.Score*weights.Experience +
		in.Location.Score*weights.Location +
		in.Keywords.Score*weights.Keywords +
		in.Education.Score*weights.Education

	result := types.AnalysisResult{
		OverallScore:  (weighted + 50) / 100,
		Weights:       weights,
		WeightsScaled: weights.Sum() != 100,
		Factors: []types.Factor{
			coverageFactor(types.FactorSkills, "Code", in.Skills, "skills"),
			experienceFactor(in.Experience),
			locationFactor(in.Location, in.LocationDetails),
			coverageFactor(types.FactorKeywords, "Hash", in.Keywords, "keywords"),
			educationFactor(in.Education),
		},
	}

	for _, alert := range []string{
		in.Skills.MissingDataAlert,
		in.Keywords.MissingDataAlert,
		in.Education.MissingDataAlert,
	} {
		if alert != "" {
			result.MissingDataAlerts = append(result.MissingDataAlerts, alert)
		}
	}
	if in.Location.MissingSide != "" {
		result.MissingDataAlerts = append(result.MissingDataAlerts, in.Location.Reason)
	}

	return result
}

// coverageFactor renders a skills- or keywords-style coverage result as a factor.
func coverageFactor(name, icon string, m types.SkillMatchResult, noun string) types.Factor {
	factor := types.Factor{
		Name:         name,
		Score:        m.Score,
		MatchedCount: m.MatchCount,
		TotalCount:   m.TotalRequired,
		Icon:         icon,
	}

	if m.TotalRequired == 0 {
		factor.Explanation = types.Explanation{
			Job: fmt.Sprintf("no %s extractable", noun),
			Why: m.MissingDataAlert,
		}
		return factor
	}

	why := fmt.Sprintf("Found %d of %d required %s.", m.MatchCount, m.TotalRequired, noun)
	if len(m.Missing) > 0 {
		why += fmt.Sprintf(" Missing: %s.", strings.Join(capList(m.Missing, 3), ", "))
	} else {
		why += fmt.Sprintf(" Full %s coverage.", noun)
	}

	factor.Explanation = types.Explanation{
		Yours: joinOrNone(capList(m.Matching, 5)),
		Job:   fmt.Sprintf("%d required %s", m.TotalRequired, noun),
		Why:   why,
	}
	return factor
}

func experienceFactor(e types.ExperienceMatchResult) types.Factor {
	job := fmt.Sprintf("%d years of %s experience required", e.RequiredYears, e.DetectedRoleType)
	if e.RequiredYears == 0 {
		job = "no years requirement stated"
	}
	return types.Factor{
		Name:  types.FactorExperience,
		Score: e.Score,
		Icon:  "Briefcase",
		Explanation: types.Explanation{
			Yours: fmt.Sprintf("%d years of %s experience", e.CandidateYears, e.DetectedRoleType),
			Job:   job,
			Why:   e.Explanation,
		},
	}
}

func locationFactor(score types.LocationScore, details types.LocationDetails) types.Factor {
	return types.Factor{
		Name:         types.FactorLocation,
		Score:        score.Score,
		MatchedCount: score.MatchedCount,
		TotalCount:   score.TotalCount,
		Icon:         "MapPin",
		Explanation: types.Explanation{
			Yours: details.Resume.DisplayLocation(),
			Job:   details.Job.DisplayLocation(),
			Why:   score.Reason,
		},
	}
}

func educationFactor(e types.EducationScore) types.Factor {
	return types.Factor{
		Name:  types.FactorEducation,
		Score: e.Score,
		Icon:  "GraduationCap",
		Explanation: types.Explanation{
			Why: e.Explanation,
		},
	}
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
