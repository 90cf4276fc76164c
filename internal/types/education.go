package types

// EducationLevel is an ordinal education level. Higher values indicate more
// advanced degrees. LevelUnspecified means no education keyword was found.
type EducationLevel int

// Education level ordinals, lowest to highest.
const (
	LevelUnspecified EducationLevel = -1
	LevelHighSchool  EducationLevel = 0
	LevelAssociate   EducationLevel = 1
	LevelBachelor    EducationLevel = 2
	LevelMaster      EducationLevel = 3
	LevelDoctorate   EducationLevel = 4
)

// String returns a human-readable name for the level.
func (l EducationLevel) String() string {
	switch l {
	case LevelHighSchool:
		return "high school"
	case LevelAssociate:
		return "associate"
	case LevelBachelor:
		return "bachelor"
	case LevelMaster:
		return "master"
	case LevelDoctorate:
		return "doctorate"
	default:
		return "unspecified"
	}
}

// EducationInfo is the resolved education level for one text blob, along
// with the keyword that established it.
type EducationInfo struct {
	Level EducationLevel `json:"level"`
	Name  string         `json:"name,omitempty"` // keyword that set the level, e.g. "mba"
}

// EducationScore is the result of comparing resume education against the job requirement.
type EducationScore struct {
	Score            int    `json:"score"`
	Explanation      string `json:"explanation"`
	MissingDataAlert string `json:"missing_data_alert,omitempty"`
	MissingSide      string `json:"missing_side,omitempty"` // "resume", "job", "both", or ""
}
