// Package experience detects the role type a job is hiring for and scores
// the candidate's role-specific years of experience against the job's
// requirement. Experience in a different role never satisfies a
// role-specific requirement.
package experience

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// Analyzer scores experience fit. The clock resolves "present"/"current" in
// date ranges to a calendar year.
type Analyzer struct {
	now func() time.Time
}

// New returns an Analyzer backed by the system clock.
func New() *Analyzer {
	return &Analyzer{now: time.Now}
}

// NewWithClock returns an Analyzer with an injected clock.
func NewWithClock(now func() time.Time) *Analyzer {
	return &Analyzer{now: now}
}

// Analyze compares the experience requirement in jobText against the
// experience evidence in resumeText.
func (a *Analyzer) Analyze(jobText, resumeText string) types.ExperienceMatchResult {
	jobLower := strings.ToLower(jobText)
	resumeLower := strings.ToLower(resumeText)

	role := detectRoleType(jobLower)
	required := requiredYears(jobLower)
	total := maxYears(totalExperiencePattern, resumeLower)
	candidate := a.roleSpecificYears(role, resumeText, total)

	result := types.ExperienceMatchResult{
		CandidateYears:      candidate,
		RequiredYears:       required,
		DetectedRoleType:    role,
		TotalExperience:     total,
		MissingResumeSignal: candidate == 0 && total == 0,
		MissingJobSignal:    required == 0,
	}

	switch {
	case required == 0:
		result.Score = 80
		result.Explanation = fmt.Sprintf(
			"Job role: %s. Required years not specified. Candidate %s experience: %d years%s. Assuming moderate fit.",
			role, role, candidate, totalSuffix(candidate, total))
	case candidate >= required:
		result.Score = 100
		result.Explanation = fmt.Sprintf(
			"Job role: %s. Required: %d years of %s experience. Candidate %s experience: %d years%s. Requirement met.",
			role, required, role, role, candidate, totalSuffix(candidate, total))
	case required-candidate <= 2:
		result.Score = 70
		result.Explanation = fmt.Sprintf(
			"Job role: %s. Required: %d years of %s experience. Candidate %s experience: %d years%s. Gap of %d year(s), within 2 years of the requirement.",
			role, required, role, role, candidate, gapSuffix(role, candidate, total), required-candidate)
	default:
		result.Score = 40
		result.Explanation = fmt.Sprintf(
			"Job role: %s. Required: %d years of %s experience. Candidate %s experience: %d years%s. Gap of %d years, more than 2 years below the requirement.",
			role, required, role, role, candidate, gapSuffix(role, candidate, total), required-candidate)
	}

	// Role-specific experience absence overrides a generic total-experience
	// signal: years in a different role do not transfer.
	if candidate == 0 && total > 0 && role != types.RoleGeneral {
		result.Score = 40
		result.Explanation = fmt.Sprintf(
			"Job role: %s. Required: %d years of %s experience. Candidate has %d years of total experience but no %s-specific experience detected. Experience in a different role does not transfer.",
			role, required, role, total, role)
	}

	return result
}

// detectRoleType counts each role's trigger phrases in the lowercased job
// text and returns the role with the strictly highest count. Ties keep the
// earlier table entry; zero counts everywhere mean General.
func detectRoleType(jobLower string) types.RoleType {
	detected := types.RoleGeneral
	best := 0
	for _, entry := range roleTriggerTable {
		count := 0
		for _, trigger := range entry.triggers {
			if strings.Contains(jobLower, trigger) {
				count++
			}
		}
		if count > best {
			best = count
			detected = entry.role
		}
	}
	return detected
}

// requiredYears returns the largest years figure in the job text, or 0.
func requiredYears(jobLower string) int {
	return maxYears(jobYearsPattern, jobLower)
}

// roleSpecificYears extracts the candidate's years in the detected role.
// The maximum across all matches is used, not the sum, because one stint is
// often described several ways. Roles without dedicated patterns fall back
// to the generic total-experience figure.
func (a *Analyzer) roleSpecificYears(role types.RoleType, resumeText string, total int) int {
	extractor, ok := roleYearExtractors[role]
	if !ok {
		return total
	}

	best := 0
	for _, pattern := range extractor.phrases {
		if y := maxYears(pattern, resumeText); y > best {
			best = y
		}
	}
	for _, pattern := range extractor.ranges {
		for _, m := range pattern.FindAllStringSubmatch(resumeText, -1) {
			start, _ := strconv.Atoi(m[1])
			end := a.resolveEndYear(m[2])
			if years := end - start; years > best {
				best = years
			}
		}
	}
	return best
}

// resolveEndYear turns a date-range end token into a calendar year.
func (a *Analyzer) resolveEndYear(token string) int {
	switch strings.ToLower(token) {
	case "present", "current":
		return a.now().Year()
	default:
		year, _ := strconv.Atoi(token)
		return year
	}
}

// maxYears returns the largest group-1 integer matched by pattern in text,
// or 0 when nothing matches.
func maxYears(pattern *regexp.Regexp, text string) int {
	best := 0
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		if y, err := strconv.Atoi(m[1]); err == nil && y > best {
			best = y
		}
	}
	return best
}

func totalSuffix(candidate, total int) string {
	if total > candidate {
		return fmt.Sprintf(" (total experience: %d years)", total)
	}
	return ""
}

func gapSuffix(role types.RoleType, candidate, total int) string {
	if total > candidate {
		return fmt.Sprintf(" (total experience: %d years, but only %d as %s)", total, candidate, role)
	}
	return ""
}
