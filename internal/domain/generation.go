package domain

// StyleConfig carries the letter-shaping directives loaded from the
// JSON style document. Zero values fall back to defaults at prompt
// build time.
type StyleConfig struct {
	Salutation     string `json:"salutation"`
	Signature      string `json:"signature"`
	ParagraphCount int    `json:"paragraph_count"`
	Tone           string `json:"tone"`
	WordTarget     int    `json:"word_target"`
}

// GenerationRequest is assembled once per run and treated as
// immutable after construction.
type GenerationRequest struct {
	Posting  JobPosting
	Profile  ApplicantProfile
	Style    StyleConfig
	Warnings []string // carried forward from fetch/extraction
}

// GenerationResult is what synthesis hands to the output writer.
type GenerationResult struct {
	CoverLetterText string
	ProviderUsed    string
	Warnings        []string
}
