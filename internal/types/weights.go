// Package types provides type definitions for structured data used throughout the jobfit-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// WeightConfig holds the percentage weight of each scoring dimension.
// The five weights are expected to sum to 100; callers validate this before
// accepting a configuration. The aggregator still computes a best-effort
// result for non-summing configs and flags it (see scoring package).
type WeightConfig struct {
	Skills     int `json:"skills" validate:"gte=0,lte=100"`
	Experience int `json:"experience" validate:"gte=0,lte=100"`
	Location   int `json:"location" validate:"gte=0,lte=100"`
	Education  int `json:"education" validate:"gte=0,lte=100"`
	Keywords   int `json:"keywords" validate:"gte=0,lte=100"`
}

// DefaultWeights returns the standard weighting used when no configuration is supplied.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		Skills:     40,
		Experience: 25,
		Location:   15,
		Education:  10,
		Keywords:   10,
	}
}

// Sum returns the total of all five weights.
func (w WeightConfig) Sum() int {
	return w.Skills + w.Experience + w.Location + w.Education + w.Keywords
}

// Validate checks that each weight is within [0,100] and that the weights sum to 100.
func (w WeightConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("invalid weight config: %w", err)
	}
	if sum := w.Sum(); sum != 100 {
		return &InvalidWeightConfigError{Sum: sum}
	}
	return nil
}

// InvalidWeightConfigError indicates the weights do not sum to 100.
// Analysis proceeds best-effort when this occurs; the overall score is then a
// scaled value rather than a percentage.
type InvalidWeightConfigError struct {
	Sum int
}

func (e *InvalidWeightConfigError) Error() string {
	return fmt.Sprintf("weight config sums to %d, expected 100", e.Sum)
}
