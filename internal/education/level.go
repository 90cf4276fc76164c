// Package education resolves an ordinal education level from free text and
// scores resume education against a job's requirement. Levels compare as
// ordinals, never as keyword counts.
package education

import (
	"strings"

	"github.com/jonathan/jobfit-analyzer/internal/types"
)

// levelKeywords maps degree keywords to ordinal levels. Checked in order;
// the highest level whose keyword appears anywhere in the text wins, and
// ties keep the first keyword seen.
var levelKeywords = []struct {
	keyword string
	level   types.EducationLevel
}{
	{"phd", types.LevelDoctorate},
	{"doctorate", types.LevelDoctorate},
	{"doctoral", types.LevelDoctorate},
	{"master", types.LevelMaster},
	{"masters", types.LevelMaster},
	{"master's", types.LevelMaster},
	{"mba", types.LevelMaster},
	{"bachelor", types.LevelBachelor},
	{"bachelors", types.LevelBachelor},
	{"bachelor's", types.LevelBachelor},
	{"undergraduate", types.LevelBachelor},
	{"associate", types.LevelAssociate},
	{"diploma", types.LevelAssociate},
	{"high school", types.LevelHighSchool},
	{"hs diploma", types.LevelHighSchool},
}

// ResolveLevel returns the highest education level mentioned in text, or
// LevelUnspecified when no degree keyword appears.
func ResolveLevel(text string) types.EducationInfo {
	textLower := strings.ToLower(text)

	info := types.EducationInfo{Level: types.LevelUnspecified}
	for _, entry := range levelKeywords {
		if strings.Contains(textLower, entry.keyword) && entry.level > info.Level {
			info.Level = entry.level
			info.Name = entry.keyword
		}
	}
	return info
}
