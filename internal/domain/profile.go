package domain

// ApplicantProfile is a best-effort structured projection over the raw
// resume and instructions text. The raw text is always retained;
// downstream prompt building falls back to it when the structured
// fields came up empty.
type ApplicantProfile struct {
	Name        string
	Email       string
	Phone       string
	LinkedInURL string

	Skills       []string
	Achievements []string
	QuickHits    []string // bulleted instruction lines, verbatim, in order

	RawResumeText       string
	RawInstructionsText string
}

// HasStructuredContent reports whether parsing recovered anything
// beyond the raw text.
func (p ApplicantProfile) HasStructuredContent() bool {
	return len(p.Skills) > 0 || len(p.Achievements) > 0 || len(p.QuickHits) > 0
}
