package semantic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobfit-analyzer/internal/llm"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
	tier     llm.Tier
	closed   bool
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, tier llm.Tier) (string, error) {
	f.prompt = prompt
	f.tier = tier
	return f.response, f.err
}

func (f *fakeClient) Model(llm.Tier) string { return "fake-model" }

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

const validResponse = `{
  "skill_match": {"matched": ["react"], "missing": ["docker"], "transferable": ["vue"], "match_score": 67},
  "experience_match": {"your_experience": "5 years", "required_experience": "5 years", "score": 100, "explanation": "meets"},
  "job_analysis": {"location": "Remote", "required_education": "Bachelor's", "role_title": "Senior Software Engineer"},
  "resume_parsed": {"education": "BS", "location": "San Francisco, CA"}
}`

func TestAnalyze_ParsesResponse(t *testing.T) {
	client := &fakeClient{response: validResponse}
	analyzer := NewAnalyzer(client)

	result, err := analyzer.Analyze(context.Background(), "resume text", "job text")
	require.NoError(t, err)

	assert.Equal(t, []string{"react"}, result.SkillMatch.Matched)
	assert.Equal(t, []string{"vue"}, result.SkillMatch.Transferable)
	assert.Equal(t, 100, result.ExperienceMatch.Score)
	assert.Equal(t, "Senior Software Engineer", result.JobAnalysis.RoleTitle)
}

func TestAnalyze_PromptCarriesBothTexts(t *testing.T) {
	client := &fakeClient{response: validResponse}
	analyzer := NewAnalyzer(client)

	_, err := analyzer.Analyze(context.Background(), "RESUME BODY", "JOB BODY")
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "RESUME BODY")
	assert.Contains(t, client.prompt, "JOB BODY")
}

func TestAnalyze_StripsMarkdownWrapper(t *testing.T) {
	client := &fakeClient{response: "```json\n" + validResponse + "\n```"}
	analyzer := NewAnalyzer(client)

	result, err := analyzer.Analyze(context.Background(), "resume", "job")
	require.NoError(t, err)
	assert.Equal(t, 67, result.SkillMatch.MatchScore)
}

func TestAnalyze_ClampsScores(t *testing.T) {
	client := &fakeClient{response: `{
		"skill_match": {"match_score": 250},
		"experience_match": {"score": -10}
	}`}
	analyzer := NewAnalyzer(client)

	result, err := analyzer.Analyze(context.Background(), "resume", "job")
	require.NoError(t, err)
	assert.Equal(t, 100, result.SkillMatch.MatchScore)
	assert.Zero(t, result.ExperienceMatch.Score)
}

func TestAnalyze_APIError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	analyzer := NewAnalyzer(client)

	_, err := analyzer.Analyze(context.Background(), "resume", "job")
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestAnalyze_ParseError(t *testing.T) {
	client := &fakeClient{response: "not json at all"}
	analyzer := NewAnalyzer(client)

	_, err := analyzer.Analyze(context.Background(), "resume", "job")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestAnalyze_UsesFitTier(t *testing.T) {
	client := &fakeClient{response: validResponse}
	analyzer := NewAnalyzer(client)

	_, err := analyzer.Analyze(context.Background(), "resume", "job")
	require.NoError(t, err)
	assert.Equal(t, llm.TierFit, client.tier)
}

func TestClose_ReleasesClient(t *testing.T) {
	client := &fakeClient{}
	analyzer := NewAnalyzer(client)

	require.NoError(t, analyzer.Close())
	assert.True(t, client.closed)
}

func TestNewFromAPIKey_RequiresKey(t *testing.T) {
	_, err := NewFromAPIKey(context.Background(), "")
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
}
