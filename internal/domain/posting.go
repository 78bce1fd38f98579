package domain

// Platform identifies which extraction strategy produced a posting.
type Platform string

const (
	PlatformICIMS      Platform = "icims"
	PlatformGreenhouse Platform = "greenhouse"
	PlatformGeneric    Platform = "generic"
	PlatformUnknown    Platform = "unknown"
)

// JobPosting is the extraction result for one job URL. Description may
// be empty; that means "manual extraction required" and callers must
// surface a warning rather than silently build a prompt from nothing.
type JobPosting struct {
	URL            string
	Company        string
	Title          string
	Location       string
	Description    string
	SourcePlatform Platform
}

// NeedsManualFollowUp reports whether extraction failed to find a
// description body.
func (p JobPosting) NeedsManualFollowUp() bool {
	return p.Description == ""
}
