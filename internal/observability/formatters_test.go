package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobfit-analyzer/internal/types"
)

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		OverallScore:  74,
		ExtractedRole: "Senior Software Engineer",
		Weights:       types.DefaultWeights(),
		Factors: []types.Factor{
			{
				Name:         types.FactorSkills,
				Score:        67,
				MatchedCount: 2,
				TotalCount:   3,
				Explanation: types.Explanation{
					Yours: "react, sql",
					Job:   "react, sql, docker",
					Why:   "Matched 2 of 3 required skills.",
				},
			},
			{
				Name:  types.FactorExperience,
				Score: 100,
				Explanation: types.Explanation{
					Why: "Candidate meets the required experience.",
				},
			},
		},
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "FIT ANALYSIS")
	assert.Contains(t, output, "Senior Software Engineer")
	assert.Contains(t, output, "74%")
	assert.Contains(t, output, "Skills Match")
	assert.Contains(t, output, "(2/3)")
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResult_ScaledWeights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := sampleResult()
	result.WeightsScaled = true
	p.PrintResult(result)

	assert.Contains(t, buf.String(), "scaled")
}

func TestPrintFactorDetails(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFactorDetails(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "FACTOR DETAILS")
	assert.Contains(t, output, "Yours: react, sql")
	assert.Contains(t, output, "Matched 2 of 3")
}

func TestPrintGuidance_StrongFit(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGuidance(types.Guidance{
		Tier:      types.TierStrongFit,
		Pitch:     "I've delivered results with react, sql.",
		PitchNote: "Personalized pitch. Customize as needed.",
	})
	output := buf.String()

	assert.Contains(t, output, "GUIDANCE")
	assert.Contains(t, output, "Strong fit")
	assert.Contains(t, output, "delivered results")
}

func TestPrintGuidance_ModerateFit(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGuidance(types.Guidance{
		Tier:     types.TierModerateFit,
		Reason:   "You're a 63% fit. Gaps:",
		Gaps:     []string{"Missing skills: docker", "2 years short on experience"},
		NextStep: "Close the gaps and re-run the analysis to unlock a pitch.",
	})
	output := buf.String()

	assert.Contains(t, output, "63% fit")
	assert.Contains(t, output, "docker")
	assert.Contains(t, output, "re-run the analysis")
}

func TestPrintGuidance_PoorFitMissingInputs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGuidance(types.Guidance{
		Tier:          types.TierPoorFit,
		MissingInputs: []string{"Resume has no education details."},
	})
	output := buf.String()

	assert.Contains(t, output, "missing information")
	assert.Contains(t, output, "no education details")
}

func TestPrintAlerts_WithAlerts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAlerts([]string{"Add your education details to your resume."})
	output := buf.String()

	assert.Contains(t, output, "MISSING DATA ALERTS")
	assert.Contains(t, output, "education details")
}

func TestPrintAlerts_NoAlerts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAlerts(nil)

	assert.Contains(t, buf.String(), "NO MISSING DATA")
}

func TestPrintSemantic(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSemantic(&types.SemanticAnalysis{
		SkillMatch: types.SemanticSkillMatch{
			MatchScore:   70,
			Missing:      []string{"docker"},
			Transferable: []string{"vue (similar to react)"},
		},
		ExperienceMatch: types.SemanticExperienceMatch{
			Score:       85,
			Explanation: "Close to the required experience.",
		},
	})
	output := buf.String()

	assert.Contains(t, output, "SEMANTIC SUPPLEMENT")
	assert.Contains(t, output, "70%")
	assert.Contains(t, output, "docker")
	assert.Contains(t, output, "vue")
}

func TestPrintSemantic_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSemantic(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := sampleResult()
	result.ExtractedRole = "Senior Staff Principal Distinguished Engineer Level 99 Of A Very Long Title"
	p.PrintResult(result)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
