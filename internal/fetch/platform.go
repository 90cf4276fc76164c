// Package fetch - platform.go recognizes job board platforms by host and
// supplies CSS selectors tuned to each board's markup.
package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies a known job board.
type Platform string

const (
	PlatformGreenhouse      Platform = "greenhouse"
	PlatformLever           Platform = "lever"
	PlatformWorkday         Platform = "workday"
	PlatformAshby           Platform = "ashby"
	PlatformSmartRecruiters Platform = "smartrecruiters"
	PlatformWorkable        Platform = "workable"
	PlatformLinkedIn        Platform = "linkedin"
	PlatformIndeed          Platform = "indeed"
	PlatformUnknown         Platform = "unknown"
)

// platformDomains maps registrable domains to platforms. Matching is on the
// domain or any subdomain of it, never on an embedded substring, so
// "notgreenhouse.io" stays unknown.
var platformDomains = []struct {
	domain   string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"ashbyhq.com", PlatformAshby},
	{"smartrecruiters.com", PlatformSmartRecruiters},
	{"workable.com", PlatformWorkable},
	{"linkedin.com", PlatformLinkedIn},
	{"indeed.com", PlatformIndeed},
}

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Hostname())
	for _, pd := range platformDomains {
		if host == pd.domain || strings.HasSuffix(host, "."+pd.domain) {
			return pd.platform
		}
	}
	return PlatformUnknown
}

// platformContent holds the description containers per board, most specific
// first. Boards revise their markup; keep a generic fallback at the tail of
// each list.
var platformContent = map[Platform][]string{
	PlatformGreenhouse: {
		".job__description.body",
		".job__description",
		".job-description__content",
		"#content",
		".job-post-container",
	},
	PlatformLever: {
		".posting-page",
		".section-wrapper.page-full-width",
		".posting-description",
		".content",
	},
	PlatformWorkday: {
		"[data-automation-id='jobDescription']",
		".gwt-HTML",
		".job-description",
	},
	PlatformAshby: {
		"[class*='_descriptionText']",
		".ashby-job-posting-left-pane",
		"#overview",
		"main",
	},
	PlatformSmartRecruiters: {
		"#st-jobDescription",
		".job-sections",
		".jobad-main",
		"main",
	},
	PlatformWorkable: {
		"[data-ui='job-description']",
		".section--text",
		"main",
	},
	PlatformLinkedIn: {
		".description__text",
		".show-more-less-html__markup",
		".jobs-description__content",
	},
	PlatformIndeed: {
		"#jobDescriptionText",
		".jobsearch-JobComponent-description",
		".jobsearch-jobDescriptionText",
	},
}

// PlatformContentSelectors returns content selectors for a platform, falling
// back to the generic job posting set.
func PlatformContentSelectors(platform Platform) []string {
	if selectors, ok := platformContent[platform]; ok {
		return selectors
	}
	return JobPostingSelectors()
}

// commonNoise covers chrome shared across boards: application forms, legal
// disclosures, share widgets, consent banners.
var commonNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".apply-button-container",
	".voluntary-disclosure",
	".eeo-statement",
	".self-identification",
	".legal-disclosure",
	".social-share",
	".share-buttons",
	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

var platformNoise = map[Platform][]string{
	PlatformGreenhouse: {
		".application--wrapper",
		".voluntary-self-id",
		"#usa_self_id_section",
		".post-apply",
	},
	PlatformLever: {
		".apply-section",
		".lever-application-form",
		".posting-apply",
	},
	PlatformWorkday: {
		"[data-automation-id='applyButton']",
		".application-section",
	},
	PlatformAshby: {
		".ashby-application-form",
		"[class*='_applicationForm']",
	},
	PlatformSmartRecruiters: {
		"#st-apply",
		".js-apply-widget",
	},
	PlatformWorkable: {
		"[data-ui='application-form']",
		".application-form-section",
	},
	PlatformLinkedIn: {
		".apply-button",
		".top-card-layout__cta-container",
		".similar-jobs",
	},
	PlatformIndeed: {
		"#applyButtonLinkContainer",
		".jobsearch-CompanyReview",
	},
}

// PlatformNoiseSelectors returns the noise exclusion selectors for a
// platform: the shared set plus any board-specific additions.
func PlatformNoiseSelectors(platform Platform) []string {
	selectors := append([]string(nil), commonNoise...)
	return append(selectors, platformNoise[platform]...)
}
