// Package location extracts city, state, and work-arrangement signals from
// free text and scores candidate-vs-job location fit under a fixed rule
// chain. All pattern tables live in phrases.go, states.go, and cities.go.
package location

import (
	"strings"

	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// Resolve extracts location signals from one text blob. The returned value
// is immutable; OriginalText is retained for secondary scans such as
// relocation willingness.
func Resolve(text string) types.LocationInfo {
	explicitlyNotRemote := notRemotePattern.MatchString(text)
	isRemote := !explicitlyNotRemote && remotePattern.MatchString(text)
	isHybrid := !explicitlyNotRemote && hybridPattern.MatchString(text)

	states := extractStates(text)
	city := extractCity(text)

	info := types.LocationInfo{
		IsRemote:            isRemote,
		IsHybrid:            isHybrid,
		IsOnsite:            explicitlyNotRemote || (!isRemote && !isHybrid),
		ExplicitlyNotRemote: explicitlyNotRemote,
		States:              states,
		City:                city,
		HasLocationInfo:     len(states) > 0 || city != "",
		OriginalText:        text,
	}
	info.FormattedLocation = formatLocation(city, states)
	return info
}

// extractStates returns the deduplicated two-letter state codes found in
// text, full names normalized to codes, in detection order.
func extractStates(text string) []string {
	var codes []string
	seen := make(map[string]bool)

	add := func(code string) {
		if code != "" && !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	for _, m := range stateNamePattern.FindAllString(text, -1) {
		add(stateCodes[strings.ToLower(m)])
	}
	for _, m := range stateCodePattern.FindAllString(text, -1) {
		add(m)
	}
	return codes
}

// extractCity returns the canonical name of the first gazetteer entry that
// matches, or "" when none do.
func extractCity(text string) string {
	for _, entry := range cityGazetteer {
		if entry.pattern.MatchString(text) {
			return entry.name
		}
	}
	return ""
}

func formatLocation(city string, states []string) string {
	switch {
	case city != "" && len(states) > 0:
		return city + ", " + states[0]
	case city != "":
		return city
	case len(states) > 0:
		return states[0]
	default:
		return ""
	}
}
