package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_RemoteDetection(t *testing.T) {
	info := Resolve("This role is fully remote. Work from anywhere.")
	assert.True(t, info.IsRemote)
	assert.False(t, info.IsOnsite)
	assert.False(t, info.ExplicitlyNotRemote)
}

func TestResolve_NotRemoteOverridesRemote(t *testing.T) {
	info := Resolve("This is not remote. Office only.")
	assert.True(t, info.ExplicitlyNotRemote)
	assert.False(t, info.IsRemote)
	assert.True(t, info.IsOnsite)
}

func TestResolve_HybridDetection(t *testing.T) {
	info := Resolve("Hybrid schedule, 3 days in office. San Francisco, CA")
	assert.True(t, info.IsHybrid)
	assert.False(t, info.IsRemote)
	assert.False(t, info.IsOnsite)
}

func TestResolve_OnsiteIsDefault(t *testing.T) {
	info := Resolve("Join our office in Boston, MA.")
	assert.True(t, info.IsOnsite)
	assert.False(t, info.IsRemote)
	assert.False(t, info.IsHybrid)
}

func TestResolve_StateCodeAndFullName(t *testing.T) {
	info := Resolve("Position based in California, also hiring in TX.")
	assert.Equal(t, []string{"CA", "TX"}, info.States)
}

func TestResolve_StateCodesAreCaseSensitive(t *testing.T) {
	// Lowercase "in" and "or" are ordinary words, not Indiana or Oregon
	info := Resolve("work in the office or at home")
	assert.Empty(t, info.States)
}

func TestResolve_MultiWordCityBeforeAbbreviation(t *testing.T) {
	info := Resolve("Our Los Angeles office is hiring.")
	assert.Equal(t, "Los Angeles", info.City)
}

func TestResolve_AbbreviationNeedsWordBoundary(t *testing.T) {
	// "la" inside "relations" must not resolve to Los Angeles
	info := Resolve("strong public relations skills required")
	assert.Empty(t, info.City)
}

func TestResolve_AbbreviationResolvesToCanonicalName(t *testing.T) {
	info := Resolve("Based in SF, hybrid schedule.")
	assert.Equal(t, "San Francisco", info.City)
}

func TestResolve_FormattedLocation(t *testing.T) {
	assert.Equal(t, "San Francisco, CA", Resolve("San Francisco, CA").FormattedLocation)
	assert.Equal(t, "Boston", Resolve("Boston office").FormattedLocation)
	assert.Equal(t, "TX", Resolve("anywhere in TX").FormattedLocation)
	assert.Empty(t, Resolve("no location here").FormattedLocation)
}

func TestResolve_HasLocationInfo(t *testing.T) {
	assert.True(t, Resolve("Chicago").HasLocationInfo)
	assert.True(t, Resolve("somewhere in Ohio").HasLocationInfo)
	assert.False(t, Resolve("fully remote team").HasLocationInfo)
}
