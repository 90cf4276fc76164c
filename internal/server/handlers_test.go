package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobfit-analyzer/internal/types"
)

const (
	testResume = "5 years as Software Engineer (2019-2024) in San Francisco, CA. Skills: React, SQL, Python."
	testJob    = "Senior Software Engineer. 5+ years experience. Remote. Skills: React, SQL, Docker."
)

func postAnalyze(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze_Success(t *testing.T) {
	s := newTestServer(t)

	body, err := json.Marshal(AnalyzeRequest{ResumeText: testResume, JobText: testJob})
	require.NoError(t, err)

	rec := postAnalyze(t, s, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Nil(t, resp.ID)

	assert.GreaterOrEqual(t, resp.Result.OverallScore, 0)
	assert.LessOrEqual(t, resp.Result.OverallScore, 100)
	assert.Len(t, resp.Result.Factors, 5)
	assert.NotEmpty(t, resp.Result.ExtractedRole)
	assert.NotEmpty(t, resp.Result.Guidance.Tier)
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	rec := postAnalyze(t, s, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestHandleAnalyze_MissingJob(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{ResumeText: testResume})
	rec := postAnalyze(t, s, string(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job_text or job_url is required")
}

func TestHandleAnalyze_BlankResume(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{ResumeText: "   ", JobText: testJob})
	rec := postAnalyze(t, s, string(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resume")
}

func TestHandleAnalyze_JobSourcesMutuallyExclusive(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{
		ResumeText: testResume,
		JobText:    testJob,
		JobURL:     "https://example.com/job",
	})
	rec := postAnalyze(t, s, string(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mutually exclusive")
}

func TestHandleAnalyze_InvalidWeights(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{
		ResumeText: testResume,
		JobText:    testJob,
		Weights:    &types.WeightConfig{Skills: 50, Experience: 25, Location: 15, Education: 10, Keywords: 10},
	})
	rec := postAnalyze(t, s, string(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_CustomWeights(t *testing.T) {
	s := newTestServer(t)

	weights := types.WeightConfig{Skills: 60, Experience: 20, Location: 10, Education: 5, Keywords: 5}
	body, _ := json.Marshal(AnalyzeRequest{ResumeText: testResume, JobText: testJob, Weights: &weights})
	rec := postAnalyze(t, s, string(body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, weights, resp.Result.Weights)
	assert.False(t, resp.Result.WeightsScaled)
}

func TestHandleAnalyze_JobURL(t *testing.T) {
	jobServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><div class="job-description">` + testJob + `</div></body></html>`))
	}))
	defer jobServer.Close()

	s := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{ResumeText: testResume, JobURL: jobServer.URL})
	rec := postAnalyze(t, s, string(body))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Result.Factors, 5)
}

func TestHandleAnalyze_FetchFailure(t *testing.T) {
	jobServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer jobServer.Close()

	s := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{ResumeText: testResume, JobURL: jobServer.URL})
	rec := postAnalyze(t, s, string(body))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleAnalyze_SaveWithoutStore(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{ResumeText: testResume, JobText: testJob, Save: true})
	rec := postAnalyze(t, s, string(body))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "persistence is not configured")
}

func TestHandleAnalyze_ProfileWithoutStore(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{ResumeText: testResume, JobText: testJob, Profile: "strict"})
	rec := postAnalyze(t, s, string(body))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleGetAnalysis_InvalidID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analyses/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	s.handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid analysis ID")
}

func TestHandleGetAnalysis_NoStore(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analyses/7f0e98c1-4c8b-4f3a-9a44-6f1f6f9aa001", nil)
	rec := httptest.NewRecorder()
	s.handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleListAnalyses_InvalidLimit(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analyses?limit=zero", nil)
	rec := httptest.NewRecorder()
	s.handler().ServeHTTP(rec, req)

	// Store unavailability is reported before query parsing
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePutWeightProfile_InvalidWeights(t *testing.T) {
	s := newTestServer(t)

	body := `{"skills": 90, "experience": 25, "location": 15, "education": 10, "keywords": 10}`
	req := httptest.NewRequest(http.MethodPut, "/weights/strict", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "expected 100")
}

func TestHandlePutWeightProfile_NoStore(t *testing.T) {
	s := newTestServer(t)

	body := `{"skills": 40, "experience": 25, "location": 15, "education": 10, "keywords": 10}`
	req := httptest.NewRequest(http.MethodPut, "/weights/strict", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleCreateFeedback_InvalidRating(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(FeedbackRequest{Rating: 9})
	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	s.handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "rating must be between 1 and 5")
}

func TestHandleCreateFeedback_NoStore(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(FeedbackRequest{Rating: 4, Comment: "matched my own read"})
	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	s.handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
