// Package store provides PostgreSQL persistence for analysis runs, named
// weight profiles, and user feedback.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the required tables when they do not exist. Safe to
// call on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			overall_score INT NOT NULL,
			extracted_role TEXT NOT NULL,
			result JSONB NOT NULL,
			resume_text TEXT NOT NULL,
			job_text TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS weight_profiles (
			name TEXT PRIMARY KEY,
			weights JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			analysis_id UUID REFERENCES analyses(id) ON DELETE CASCADE,
			rating INT NOT NULL,
			comment TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// AnalysisRecord is a persisted analysis run.
type AnalysisRecord struct {
	ID            uuid.UUID             `json:"id"`
	OverallScore  int                   `json:"overall_score"`
	ExtractedRole string                `json:"extracted_role"`
	Result        *types.AnalysisResult `json:"result"`
	CreatedAt     time.Time             `json:"created_at"`
}

// AnalysisSummary is a lightweight view of a persisted analysis for listing.
type AnalysisSummary struct {
	ID            uuid.UUID `json:"id"`
	OverallScore  int       `json:"overall_score"`
	ExtractedRole string    `json:"extracted_role"`
	CreatedAt     time.Time `json:"created_at"`
}

// SaveAnalysis persists a completed analysis and returns its ID.
func (s *Store) SaveAnalysis(ctx context.Context, result *types.AnalysisResult, resumeText, jobText string) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO analyses (overall_score, extracted_role, result, resume_text, job_text)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		result.OverallScore, result.ExtractedRole, resultJSON, resumeText, jobText,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a persisted analysis by ID. Returns nil when absent.
func (s *Store) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var record AnalysisRecord
	var resultJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, overall_score, extracted_role, result, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.OverallScore, &record.ExtractedRole, &resultJSON, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := json.Unmarshal(resultJSON, &record.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &record, nil
}

// ListAnalyses retrieves recent analyses, newest first.
func (s *Store) ListAnalyses(ctx context.Context, limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, overall_score, extracted_role, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var summaries []AnalysisSummary
	for rows.Next() {
		var summary AnalysisSummary
		if err := rows.Scan(&summary.ID, &summary.OverallScore, &summary.ExtractedRole, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// WeightProfile is a named, persisted weight configuration.
type WeightProfile struct {
	Name      string             `json:"name"`
	Weights   types.WeightConfig `json:"weights"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// GetWeightProfile retrieves a named weight profile. Returns nil when absent.
func (s *Store) GetWeightProfile(ctx context.Context, name string) (*WeightProfile, error) {
	var profile WeightProfile
	var weightsJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT name, weights, updated_at FROM weight_profiles WHERE name = $1`,
		name,
	).Scan(&profile.Name, &weightsJSON, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weight profile: %w", err)
	}

	if err := json.Unmarshal(weightsJSON, &profile.Weights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weight profile: %w", err)
	}
	return &profile, nil
}

// SaveWeightProfile upserts a named weight profile. The weights must be
// valid; persistence never stores a non-summing configuration.
func (s *Store) SaveWeightProfile(ctx context.Context, name string, weights types.WeightConfig) error {
	if err := weights.Validate(); err != nil {
		return err
	}

	weightsJSON, err := json.Marshal(weights)
	if err != nil {
		return fmt.Errorf("failed to marshal weights: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO weight_profiles (name, weights)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET weights = $2, updated_at = NOW()`,
		name, weightsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save weight profile: %w", err)
	}
	return nil
}

// ListWeightProfiles retrieves all weight profiles, by name.
func (s *Store) ListWeightProfiles(ctx context.Context) ([]WeightProfile, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, weights, updated_at FROM weight_profiles ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight profiles: %w", err)
	}
	defer rows.Close()

	var profiles []WeightProfile
	for rows.Next() {
		var profile WeightProfile
		var weightsJSON []byte
		if err := rows.Scan(&profile.Name, &weightsJSON, &profile.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan weight profile: %w", err)
		}
		if err := json.Unmarshal(weightsJSON, &profile.Weights); err != nil {
			return nil, fmt.Errorf("failed to unmarshal weight profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// Feedback is a user rating of an analysis result.
type Feedback struct {
	ID         uuid.UUID  `json:"id"`
	AnalysisID *uuid.UUID `json:"analysis_id,omitempty"`
	Rating     int        `json:"rating"` // 1-5
	Comment    string     `json:"comment,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Validate checks feedback fields before persistence.
func (f *Feedback) Validate() error {
	if f.Rating < 1 || f.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", f.Rating)
	}
	return nil
}

// SaveFeedback persists user feedback and returns its ID.
func (s *Store) SaveFeedback(ctx context.Context, feedback Feedback) (uuid.UUID, error) {
	if err := feedback.Validate(); err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO feedback (analysis_id, rating, comment)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		feedback.AnalysisID, feedback.Rating, feedback.Comment,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	return id, nil
}
