package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisResult_FactorLookup(t *testing.T) {
	result := &AnalysisResult{
		Factors: []Factor{
			{Name: FactorSkills, Score: 75},
			{Name: FactorLocation, Score: 100},
		},
	}

	f := result.Factor(FactorLocation)
	require.NotNil(t, f)
	assert.Equal(t, 100, f.Score)

	assert.Nil(t, result.Factor(FactorEducation))
}

func TestEducationLevel_String(t *testing.T) {
	assert.Equal(t, "high school", LevelHighSchool.String())
	assert.Equal(t, "associate", LevelAssociate.String())
	assert.Equal(t, "bachelor", LevelBachelor.String())
	assert.Equal(t, "master", LevelMaster.String())
	assert.Equal(t, "doctorate", LevelDoctorate.String())
	assert.Equal(t, "unspecified", LevelUnspecified.String())
}

func TestEducationLevel_Ordering(t *testing.T) {
	assert.True(t, LevelDoctorate > LevelMaster)
	assert.True(t, LevelMaster > LevelBachelor)
	assert.True(t, LevelBachelor > LevelAssociate)
	assert.True(t, LevelAssociate > LevelHighSchool)
	assert.True(t, LevelHighSchool > LevelUnspecified)
}

func TestLocationInfo_DisplayLocation(t *testing.T) {
	assert.Equal(t, "Not specified", LocationInfo{}.DisplayLocation())
	assert.Equal(t, "San Francisco, CA", LocationInfo{FormattedLocation: "San Francisco, CA"}.DisplayLocation())
}

func TestSkillMatchResult_Unscoreable(t *testing.T) {
	assert.True(t, SkillMatchResult{}.Unscoreable())
	assert.False(t, SkillMatchResult{TotalRequired: 3}.Unscoreable())
}
