package location

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// Missing-side labels used in LocationScore and re-derived by the guidance layer.
const (
	MissingSideResume = "resume"
	MissingSideJob    = "job"
)

const (
	earthRadiusMiles = 3959
	proximityMiles   = 50
)

// Score compares a candidate location against a job location. Rules are
// evaluated in a fixed priority order; the first matching rule wins.
// Cities within proximityMiles of each other count as an exact match under
// rule 2.
func Score(candidate, job types.LocationInfo) types.LocationScore {
	candidateLoc := candidate.DisplayLocation()
	jobLoc := job.DisplayLocation()

	cityMatch := job.City != "" && candidate.City != "" && strings.EqualFold(job.City, candidate.City)
	stateMatch := statesOverlap(job.States, candidate.States)
	nearby := withinProximity(candidate.City, job.City)

	// Rule 1: remote job fits any candidate.
	if job.IsRemote && !job.ExplicitlyNotRemote {
		return types.LocationScore{
			Score:        100,
			Reason:       fmt.Sprintf("Job is a remote position. Your location: %s. Perfect fit.", candidateLoc),
			MatchedCount: 1,
			TotalCount:   1,
		}
	}

	// Rule 2: same city+state, state overlap when the job names no city,
	// or cities within 50 miles of each other.
	if (cityMatch && stateMatch) || (stateMatch && job.City == "") || nearby {
		reason := fmt.Sprintf("Your location (%s) matches the job location (%s). Perfect match.", candidateLoc, jobLoc)
		if nearby && !(cityMatch && stateMatch) {
			reason = fmt.Sprintf("Your location (%s) is within %d miles of the job location (%s). Treated as a match.", candidateLoc, proximityMiles, jobLoc)
		}
		return types.LocationScore{
			Score:        100,
			Reason:       reason,
			MatchedCount: 1,
			TotalCount:   1,
		}
	}

	// Rule 3: hybrid job with no resolvable office location cannot be evaluated.
	if job.IsHybrid && !job.HasLocationInfo {
		return types.LocationScore{
			Score:       0,
			Reason:      fmt.Sprintf("Job is hybrid but the office location is not specified. Add the office location to the job description so it can be matched against your location (%s).", candidateLoc),
			MissingSide: MissingSideJob,
			TotalCount:  1,
		}
	}

	// Rule 4: candidate states relocation willingness.
	if relocationPattern.MatchString(candidate.OriginalText) {
		return types.LocationScore{
			Score:        85,
			Reason:       fmt.Sprintf("Your location (%s) differs from the job location (%s), but you're open to relocation.", candidateLoc, jobLoc),
			MatchedCount: 1,
			TotalCount:   1,
		}
	}

	// Rule 5: both sides resolvable but different, no relocation signal.
	if candidate.HasLocationInfo && job.HasLocationInfo {
		return types.LocationScore{
			Score:      0,
			Reason:     fmt.Sprintf("Your location (%s) differs from the job location (%s) and you have not indicated willingness to relocate.", candidateLoc, jobLoc),
			TotalCount: 1,
		}
	}

	// Rule 6: job location unresolved.
	if !job.HasLocationInfo {
		return types.LocationScore{
			Score:       0,
			Reason:      fmt.Sprintf("Job location is not specified. Add a location to the job description so it can be matched against your location (%s).", candidateLoc),
			MissingSide: MissingSideJob,
			TotalCount:  1,
		}
	}

	// Rule 7: resume location unresolved.
	if !candidate.HasLocationInfo {
		return types.LocationScore{
			Score:       0,
			Reason:      fmt.Sprintf("Your location is not specified in the resume. Add your location so it can be matched against the job location (%s).", jobLoc),
			MissingSide: MissingSideResume,
			TotalCount:  1,
		}
	}

	// Rule 8: fallback.
	return types.LocationScore{
		Score:      0,
		Reason:     "Location information incomplete. Unable to score location match.",
		TotalCount: 1,
	}
}

// Distance returns the great-circle distance in miles between two gazetteer
// cities, or -1 when either city has no known centroid.
func Distance(cityA, cityB string) float64 {
	a, okA := lookupCoordinates(cityA)
	b, okB := lookupCoordinates(cityB)
	if !okA || !okB {
		return -1
	}
	return haversine(a, b)
}

func withinProximity(candidateCity, jobCity string) bool {
	if candidateCity == "" || jobCity == "" {
		return false
	}
	d := Distance(candidateCity, jobCity)
	return d >= 0 && d <= proximityMiles
}

func lookupCoordinates(city string) (coordinates, bool) {
	for name, coords := range cityCoordinates {
		if strings.EqualFold(name, city) {
			return coords, true
		}
	}
	return coordinates{}, false
}

// haversine computes great-circle distance in miles.
func haversine(a, b coordinates) float64 {
	dLat := (b.lat - a.lat) * math.Pi / 180
	dLon := (b.lon - a.lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.lat*math.Pi/180)*math.Cos(b.lat*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMiles * c
}

func statesOverlap(jobStates, candidateStates []string) bool {
	if len(jobStates) == 0 || len(candidateStates) == 0 {
		return false
	}
	for _, js := range jobStates {
		for _, cs := range candidateStates {
			if js == cs {
				return true
			}
		}
	}
	return false
}
