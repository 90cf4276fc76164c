// Package semantic runs the optional LLM-backed fit analysis. Its output
// supplements the deterministic factors; callers must tolerate its failure.
package semantic

import (
	"context"
	"encoding/json"

	"github.com/jonathan/jobfit-analyzer/internal/llm"
	"github.com/jonathan/jobfit-analyzer/internal/prompts"
	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// Analyzer produces a SemanticAnalysis from resume and job text.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer wraps an existing LLM client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// NewFromAPIKey constructs an Analyzer with the default Gemini configuration.
func NewFromAPIKey(ctx context.Context, apiKey string) (*Analyzer, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, &APICallError{Message: "failed to create LLM client", Cause: err}
	}
	return &Analyzer{client: client}, nil
}

// Close releases the underlying client.
func (a *Analyzer) Close() error {
	return a.client.Close()
}

// Analyze asks the model for a structured fit analysis of resumeText
// against jobText.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*types.SemanticAnalysis, error) {
	prompt, err := fitPrompt(resumeText, jobText)
	if err != nil {
		return nil, err
	}

	responseText, err := a.client.GenerateJSON(ctx, prompt, llm.TierFit)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate fit analysis", Cause: err}
	}

	var analysis types.SemanticAnalysis
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(responseText)), &analysis); err != nil {
		return nil, &ParseError{Message: "failed to parse fit analysis JSON", Cause: err}
	}

	clampScores(&analysis)
	return &analysis, nil
}

// fitPrompt renders the fit-analysis prompt template.
func fitPrompt(resumeText, jobText string) (string, error) {
	return prompts.Render("semantic.json", "analyze-fit", map[string]string{
		"ResumeText": resumeText,
		"JobText":    jobText,
	})
}

// clampScores forces model-reported scores into [0, 100].
func clampScores(analysis *types.SemanticAnalysis) {
	analysis.SkillMatch.MatchScore = clamp(analysis.SkillMatch.MatchScore)
	analysis.ExperienceMatch.Score = clamp(analysis.ExperienceMatch.Score)
}

func clamp(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
