// Package fetch - platform.go maps posting URLs to the job board serving
// them and carries per-board extraction selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies the job board behind a posting URL. Content and noise
// selectors are tuned per board so the text handed to the model is the
// posting, not the application chrome around it.
type Platform string

const (
	// PlatformGreenhouse covers greenhouse.io hosted boards
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever covers jobs.lever.co postings
	PlatformLever Platform = "lever"
	// PlatformWorkday covers myworkdayjobs.com tenant boards
	PlatformWorkday Platform = "workday"
	// PlatformAshby covers jobs.ashbyhq.com boards
	PlatformAshby Platform = "ashby"
	// PlatformLinkedIn covers linkedin.com job views
	PlatformLinkedIn Platform = "linkedin"
	// PlatformUnknown is any unrecognized host
	PlatformUnknown Platform = "unknown"
)

// hostPlatforms maps hostname fragments to boards. Order matters only in
// that more specific fragments should come first.
var hostPlatforms = []struct {
	fragment string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"ashbyhq.com", PlatformAshby},
	{"linkedin.com", PlatformLinkedIn},
}

// DetectPlatform identifies the job board from a posting URL. Unparseable
// URLs and unrecognized hosts both come back as PlatformUnknown.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for _, hp := range hostPlatforms {
		if strings.Contains(host, hp.fragment) {
			return hp.platform
		}
	}
	return PlatformUnknown
}

// platformContent lists description containers per board, most specific
// first. Extraction takes the first selector that matches.
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
		"._descriptionText",
		".ashby-job-posting-brief-description",
		"#overview",
	},
	PlatformLinkedIn: {
		".description__text",
		".show-more-less-html__markup",
		".jobs-description",
	},
}

// PlatformContentSelectors returns description selectors for a board,
// falling back to the generic posting selectors for unknown hosts
func PlatformContentSelectors(platform Platform) []string {
	if selectors, ok := platformContent[platform]; ok {
		return selectors
	}
	return JobPostingSelectors()
}

// commonNoise strips application forms, EEO boilerplate, share widgets, and
// consent chrome. All of it reads as posting text to the extractor but none
// of it describes the job.
var commonNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".application--container",
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

// platformNoise adds board-specific apply sections and widgets on top of
// commonNoise
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
		".ashby-application-form-container",
		"#application",
	},
	PlatformLinkedIn: {
		".top-card-layout__cta-container",
		".similar-jobs",
		".sign-in-modal",
	},
}

// PlatformNoiseSelectors returns the elements to strip before extraction:
// the common noise set plus whatever the board adds
func PlatformNoiseSelectors(platform Platform) []string {
	extra := platformNoise[platform]
	out := make([]string, 0, len(commonNoise)+len(extra))
	out = append(out, commonNoise...)
	return append(out, extra...)
}
