// Package extract locates job title/company/location/description in a
// rendered page. Platform-specific strategies run first; a generic
// heuristic backstops everything.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"coverletter-engine/internal/browser"
	"coverletter-engine/internal/domain"
)

// Fields is one strategy's answer. Empty string means "not found";
// strategies never guess.
type Fields struct {
	Title       string
	Company     string
	Location    string
	Description string
}

// Strategy is a platform-specific rule set. Match inspects the URL and
// markup fingerprints; Extract pulls fields out of the document.
type Strategy interface {
	Platform() domain.Platform
	Match(pageURL string, doc *goquery.Document) bool
	Extract(pageURL string, doc *goquery.Document) Fields
}

// Selector applies strategies in a fixed priority order:
// platform-specific first, generic last. No scoring or voting.
type Selector struct {
	strategies []Strategy
}

func NewSelector() *Selector {
	return &Selector{strategies: []Strategy{
		&ICIMSStrategy{},
		&GreenhouseStrategy{},
		&GenericStrategy{},
	}}
}

// Extract runs the strategy list over the page and merges fields
// left-to-right: first non-empty extraction wins, unresolved fields
// stay empty. The platform is taken from the first strategy that
// produced a description; once one does, later strategies are skipped.
// An all-empty description is a valid degraded result, not an error.
func (s *Selector) Extract(page browser.RenderedPage) (domain.JobPosting, []string) {
	posting := domain.JobPosting{
		URL:            page.URL,
		SourcePlatform: domain.PlatformUnknown,
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil || strings.TrimSpace(page.HTML) == "" {
		return posting, []string{"page markup could not be parsed; manual extraction required"}
	}

	var warnings []string
	merged := Fields{}

	for _, st := range s.strategies {
		if !st.Match(page.URL, doc) {
			continue
		}
		got := st.Extract(page.URL, doc)
		mergeFields(&merged, got)

		if got.Description != "" {
			posting.SourcePlatform = st.Platform()
			break
		}
	}

	posting.Title = merged.Title
	posting.Company = merged.Company
	posting.Location = merged.Location
	posting.Description = merged.Description

	if posting.SourcePlatform == domain.PlatformGeneric {
		warnings = append(warnings, "no platform markers matched; used generic extraction")
	}
	if posting.Description == "" {
		posting.SourcePlatform = domain.PlatformUnknown
		warnings = append(warnings, "job description could not be extracted; manual follow-up required")
	}
	return posting, warnings
}

func mergeFields(dst *Fields, src Fields) {
	if dst.Title == "" {
		dst.Title = src.Title
	}
	if dst.Company == "" {
		dst.Company = src.Company
	}
	if dst.Location == "" {
		dst.Location = src.Location
	}
	if dst.Description == "" {
		dst.Description = src.Description
	}
}
