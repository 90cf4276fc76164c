package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://greenhouse.io/jobs/456", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://workday.com/jobs", PlatformWorkday},
		{"https://jobs.ashbyhq.com/company/role-id", PlatformAshby},
		{"https://jobs.smartrecruiters.com/Company/123-senior-engineer", PlatformSmartRecruiters},
		{"https://apply.workable.com/company/j/ABC123/", PlatformWorkable},
		{"https://www.linkedin.com/jobs/view/3754219", PlatformLinkedIn},
		{"https://www.indeed.com/viewjob?jk=abc123", PlatformIndeed},
		{"https://example.com/jobs", PlatformUnknown},
		{"https://careers.example.org/openings/42", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestDetectPlatform_RequiresDomainMatch(t *testing.T) {
	// An embedded platform name must not trigger detection.
	assert.Equal(t, PlatformUnknown, DetectPlatform("https://notgreenhouse.io/jobs/1"))
	assert.Equal(t, PlatformUnknown, DetectPlatform("https://greenhouse.io.evil.example/jobs/1"))
	assert.Equal(t, PlatformUnknown, DetectPlatform("://bad url"))
}

func TestPlatformContentSelectors(t *testing.T) {
	assert.Contains(t, PlatformContentSelectors(PlatformGreenhouse), ".job__description.body")
	assert.Contains(t, PlatformContentSelectors(PlatformWorkday), "[data-automation-id='jobDescription']")
	assert.Contains(t, PlatformContentSelectors(PlatformLinkedIn), ".show-more-less-html__markup")
	assert.Contains(t, PlatformContentSelectors(PlatformIndeed), "#jobDescriptionText")
	assert.Contains(t, PlatformContentSelectors(PlatformWorkable), "[data-ui='job-description']")
}

func TestPlatformContentSelectors_UnknownFallsBack(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformUnknown)
	assert.Contains(t, selectors, ".job-description")
	assert.Contains(t, selectors, "main")
}

func TestPlatformNoiseSelectors(t *testing.T) {
	greenhouse := PlatformNoiseSelectors(PlatformGreenhouse)
	assert.Contains(t, greenhouse, "form")
	assert.Contains(t, greenhouse, ".cookie-banner")
	assert.Contains(t, greenhouse, ".application--wrapper")

	linkedin := PlatformNoiseSelectors(PlatformLinkedIn)
	assert.Contains(t, linkedin, ".similar-jobs")
	assert.NotContains(t, linkedin, ".application--wrapper", "board-specific noise must not leak across boards")
}

func TestPlatformNoiseSelectors_UnknownGetsCommonSet(t *testing.T) {
	selectors := PlatformNoiseSelectors(PlatformUnknown)
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, "#application-form")
	assert.Contains(t, selectors, ".gdpr-notice")
}
