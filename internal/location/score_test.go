package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_RemoteJobAlwaysPerfect(t *testing.T) {
	job := Resolve("Senior Engineer. Remote. Skills: React.")

	// Regardless of candidate location, including none at all
	for _, resume := range []string{
		"Engineer in San Francisco, CA",
		"Engineer in Boston, MA",
		"Engineer with no location",
	} {
		result := Score(Resolve(resume), job)
		assert.Equal(t, 100, result.Score, "resume: %s", resume)
	}
}

func TestScore_ExplicitNotRemoteBlocksRule1(t *testing.T) {
	job := Resolve("No remote work. Office only. Chicago, IL.")
	result := Score(Resolve("Candidate in Boston, MA"), job)
	assert.Zero(t, result.Score)
}

func TestScore_SameCityAndState(t *testing.T) {
	job := Resolve("On-site in San Francisco, CA")
	candidate := Resolve("Lives in San Francisco, CA")

	result := Score(candidate, job)
	assert.Equal(t, 100, result.Score)
}

func TestScore_StateOverlapWithoutJobCity(t *testing.T) {
	job := Resolve("Role based in California")
	candidate := Resolve("Sacramento, CA resident")

	result := Score(candidate, job)
	assert.Equal(t, 100, result.Score)
}

func TestScore_ProximityCountsAsMatch(t *testing.T) {
	// San Francisco and San Jose are ~42 miles apart
	job := Resolve("On-site role in San Jose, CA")
	candidate := Resolve("Based in San Francisco, CA")

	result := Score(candidate, job)
	assert.Equal(t, 100, result.Score)
}

func TestScore_DistantCitiesDoNotMatch(t *testing.T) {
	job := Resolve("On-site role in New York, NY")
	candidate := Resolve("Based in Los Angeles, CA")

	result := Score(candidate, job)
	assert.Zero(t, result.Score)
	assert.Empty(t, result.MissingSide)
}

func TestScore_HybridWithoutLocationIsMissingData(t *testing.T) {
	job := Resolve("Hybrid role, great team.")
	candidate := Resolve("San Francisco, CA")

	result := Score(candidate, job)
	assert.Zero(t, result.Score)
	assert.Equal(t, MissingSideJob, result.MissingSide)
}

func TestScore_HybridWithLocationBehavesLikeOnsite(t *testing.T) {
	job := Resolve("Hybrid role in Denver, CO.")

	match := Score(Resolve("Denver, CO"), job)
	assert.Equal(t, 100, match.Score)

	miss := Score(Resolve("Miami, FL"), job)
	assert.Zero(t, miss.Score)
}

func TestScore_RelocationWillingness(t *testing.T) {
	job := Resolve("On-site in Seattle, WA")
	candidate := Resolve("Atlanta, GA. Open to relocation.")

	result := Score(candidate, job)
	assert.Equal(t, 85, result.Score)
}

func TestScore_MissingJobLocation(t *testing.T) {
	job := Resolve("Great opportunity, apply now!")
	candidate := Resolve("San Francisco, CA")

	result := Score(candidate, job)
	assert.Zero(t, result.Score)
	assert.Equal(t, MissingSideJob, result.MissingSide)
}

func TestScore_MissingResumeLocation(t *testing.T) {
	job := Resolve("On-site in Austin, TX")
	candidate := Resolve("Ten years of engineering.")

	result := Score(candidate, job)
	assert.Zero(t, result.Score)
	assert.Equal(t, MissingSideResume, result.MissingSide)
}

func TestDistance_KnownCities(t *testing.T) {
	d := Distance("San Francisco", "San Jose")
	assert.InDelta(t, 42, d, 5)

	assert.Equal(t, float64(-1), Distance("San Francisco", "Nowhereville"))
}
