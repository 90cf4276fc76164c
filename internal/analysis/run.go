// Package analysis orchestrates the five deterministic analyzers and the
// optional semantic supplement into a single AnalysisResult.
package analysis

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobfit-analyzer/internal/education"
	"github.com/jonathan/jobfit-analyzer/internal/experience"
	"github.com/jonathan/jobfit-analyzer/internal/keywords"
	"github.com/jonathan/jobfit-analyzer/internal/location"
	"github.com/jonathan/jobfit-analyzer/internal/scoring"
	"github.com/jonathan/jobfit-analyzer/internal/skills"
	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// SemanticProvider supplies the optional LLM-backed supplement. Its failure
// never fails a run; the deterministic result stands on its own.
type SemanticProvider interface {
	Analyze(ctx context.Context, resumeText, jobText string) (*types.SemanticAnalysis, error)
}

// Runner runs a complete analysis. The zero value is not usable; construct
// with New.
type Runner struct {
	experience *experience.Analyzer
	semantic   SemanticProvider
}

// New returns a Runner with the system clock and no semantic supplement.
func New() *Runner {
	return &Runner{experience: experience.New()}
}

// NewWithSemantic returns a Runner with the system clock and an optional
// semantic provider (nil disables the supplement).
func NewWithSemantic(sem SemanticProvider) *Runner {
	return &Runner{experience: experience.New(), semantic: sem}
}

// NewWithOptions returns a Runner with an injected experience analyzer and
// an optional semantic provider (nil disables the supplement).
func NewWithOptions(exp *experience.Analyzer, sem SemanticProvider) *Runner {
	return &Runner{experience: exp, semantic: sem}
}

// Run analyzes resumeText against jobText under the given weights. The five
// analyzers are independent and run concurrently. Blank input is rejected
// with a MissingInputError before any analyzer runs.
func (r *Runner) Run(ctx context.Context, resumeText, jobText string, weights types.WeightConfig) (*types.AnalysisResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &MissingInputError{Field: "resume"}
	}
	if strings.TrimSpace(jobText) == "" {
		return nil, &MissingInputError{Field: "job"}
	}

	var (
		in       scoring.Inputs
		semantic *types.SemanticAnalysis
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resumeLoc := location.Resolve(resumeText)
		jobLoc := location.Resolve(jobText)
		in.LocationDetails = types.LocationDetails{Resume: resumeLoc, Job: jobLoc}
		in.Location = location.Score(resumeLoc, jobLoc)
		return nil
	})
	g.Go(func() error {
		in.Skills = skills.Match(jobText, resumeText)
		return nil
	})
	g.Go(func() error {
		in.Keywords = keywords.Match(jobText, resumeText)
		return nil
	})
	g.Go(func() error {
		in.Experience = r.experience.Analyze(jobText, resumeText)
		return nil
	})
	g.Go(func() error {
		jobEdu := education.ResolveLevel(jobText)
		resumeEdu := education.ResolveLevel(resumeText)
		in.Education = education.Score(jobEdu, resumeEdu)
		return nil
	})
	if r.semantic != nil {
		g.Go(func() error {
			// Tolerated failure: the deterministic result is complete without it.
			if s, err := r.semantic.Analyze(gCtx, resumeText, jobText); err == nil {
				semantic = s
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := scoring.Aggregate(in, weights)
	result.Guidance = scoring.Guide(result.OverallScore, in, resumeText)
	result.ExtractedRole = extractRole(jobText)
	result.LocationDetails = in.LocationDetails
	result.Semantic = semantic

	return &result, nil
}

// extractRole derives a display title from the job text's first line,
// truncated at the first dash.
func extractRole(jobText string) string {
	firstLine, _, _ := strings.Cut(jobText, "\n")
	title, _, _ := strings.Cut(firstLine, "-")
	if title = strings.TrimSpace(title); title != "" {
		return title
	}
	return "Position"
}
