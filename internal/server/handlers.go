package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/jobfit-analyzer/internal/fetch"
	"github.com/jonathan/jobfit-analyzer/internal/store"
	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	ResumeText string              `json:"resume_text"`
	JobText    string              `json:"job_text,omitempty"`
	JobURL     string              `json:"job_url,omitempty"`
	Weights    *types.WeightConfig `json:"weights,omitempty"`
	Profile    string              `json:"profile,omitempty"`
	Save       bool                `json:"save,omitempty"`
}

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	ID     *uuid.UUID            `json:"id,omitempty"`
	Result *types.AnalysisResult `json:"result"`
}

// FeedbackRequest represents the request body for /feedback
type FeedbackRequest struct {
	AnalysisID *uuid.UUID `json:"analysis_id,omitempty"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment,omitempty"`
}

// handleAnalyze runs a full analysis of a resume against a job posting.
// The job may be supplied inline or by URL; weights come from the request,
// a named profile, or the server defaults, in that order.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.JobText != "" && req.JobURL != "" {
		s.errorResponse(w, http.StatusBadRequest, "job_text and job_url are mutually exclusive")
		return
	}
	if req.JobText == "" && req.JobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job_text or job_url is required")
		return
	}
	if req.Weights != nil && req.Profile != "" {
		s.errorResponse(w, http.StatusBadRequest, "weights and profile are mutually exclusive")
		return
	}

	jobText := req.JobText
	if req.JobURL != "" {
		text, err := fetch.JobPosting(r.Context(), req.JobURL, nil)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		jobText = text
	}

	weights, err := s.resolveWeights(r, req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.runner.Run(r.Context(), req.ResumeText, jobText, weights)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := AnalyzeResponse{Result: result}
	if req.Save {
		if s.store == nil {
			s.errorResponse(w, http.StatusServiceUnavailable, (&ErrStoreUnavailable{}).Error())
			return
		}
		id, err := s.store.SaveAnalysis(r.Context(), result, req.ResumeText, jobText)
		if err != nil {
			log.Printf("Failed to save analysis: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save analysis")
			return
		}
		resp.ID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// resolveWeights picks the weight configuration for a run: explicit request
// weights win, then a named stored profile, then the server defaults.
func (s *Server) resolveWeights(r *http.Request, req AnalyzeRequest) (types.WeightConfig, error) {
	if req.Weights != nil {
		if err := req.Weights.Validate(); err != nil {
			return types.WeightConfig{}, &ErrValidation{Field: "weights", Message: err.Error()}
		}
		return *req.Weights, nil
	}

	if req.Profile != "" {
		if s.store == nil {
			return types.WeightConfig{}, &ErrStoreUnavailable{}
		}
		profile, err := s.store.GetWeightProfile(r.Context(), req.Profile)
		if err != nil {
			return types.WeightConfig{}, err
		}
		if profile == nil {
			return types.WeightConfig{}, &ErrNotFound{Resource: "weight profile", ID: req.Profile}
		}
		return profile.Weights, nil
	}

	return s.defaultWeights, nil
}

// handleGetAnalysis returns a persisted analysis by ID
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, (&ErrStoreUnavailable{}).Error())
		return
	}

	record, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis")
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleListAnalyses returns recent persisted analyses, newest first
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, (&ErrStoreUnavailable{}).Error())
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	summaries, err := s.store.ListAnalyses(r.Context(), limit)
	if err != nil {
		log.Printf("Failed to list analyses: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list analyses")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": summaries})
}

// handleGetWeightProfile returns a named weight profile
func (s *Server) handleGetWeightProfile(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, (&ErrStoreUnavailable{}).Error())
		return
	}

	name := r.PathValue("name")
	profile, err := s.store.GetWeightProfile(r.Context(), name)
	if err != nil {
		log.Printf("Failed to get weight profile: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get weight profile")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Weight profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handlePutWeightProfile creates or updates a named weight profile
func (s *Server) handlePutWeightProfile(w http.ResponseWriter, r *http.Request) {
	var weights types.WeightConfig
	if err := json.NewDecoder(r.Body).Decode(&weights); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := weights.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, (&ErrStoreUnavailable{}).Error())
		return
	}

	name := r.PathValue("name")
	if err := s.store.SaveWeightProfile(r.Context(), name, weights); err != nil {
		log.Printf("Failed to save weight profile: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save weight profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"name": name, "weights": weights})
}

// handleListWeightProfiles returns all stored weight profiles
func (s *Server) handleListWeightProfiles(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, (&ErrStoreUnavailable{}).Error())
		return
	}

	profiles, err := s.store.ListWeightProfiles(r.Context())
	if err != nil {
		log.Printf("Failed to list weight profiles: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list weight profiles")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"profiles": profiles})
}

// handleCreateFeedback records a user rating of an analysis
func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	feedback := store.Feedback{
		AnalysisID: req.AnalysisID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := feedback.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, (&ErrStoreUnavailable{}).Error())
		return
	}

	id, err := s.store.SaveFeedback(r.Context(), feedback)
	if err != nil {
		log.Printf("Failed to save feedback: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save feedback")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}
