// Package profile projects free-text resume and instructions files
// into a structured applicant model. Everything here is best-effort:
// parsing never fails, and the raw text always rides along so
// generation can fall back to it.
package profile

import (
	"regexp"
	"strings"

	"coverletter-engine/internal/domain"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/in/[^\s]+`)
	headingRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z &/]{1,40}:?\s*$`)
)

// Parse builds an ApplicantProfile from the two input texts. Worst
// case the structured fields stay empty and only the raw text is
// populated; that is still valid input to synthesis.
func Parse(resumeText, instructionsText string) domain.ApplicantProfile {
	p := domain.ApplicantProfile{
		RawResumeText:       resumeText,
		RawInstructionsText: instructionsText,
	}

	combined := resumeText + "\n" + instructionsText
	p.Email = emailRe.FindString(combined)
	p.Phone = phoneRe.FindString(combined)
	p.LinkedInURL = strings.TrimRight(linkedinRe.FindString(combined), ".,;)")

	p.Name = guessName(resumeText)
	p.QuickHits = bulletLines(instructionsText)
	p.Skills = sectionItems(resumeText, "skills")
	p.Achievements = sectionItems(resumeText, "achievements", "accomplishments", "selected achievements")

	return p
}

// bulletLines captures instruction lines that start with a bullet
// marker, verbatim minus the marker, order preserved.
func bulletLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "• "):
			out = append(out, strings.TrimSpace(trimmed[len("• "):]))
		case strings.HasPrefix(trimmed, "•"):
			out = append(out, strings.TrimSpace(trimmed[len("•"):]))
		case strings.HasPrefix(trimmed, "- "):
			out = append(out, strings.TrimSpace(trimmed[2:]))
		}
	}
	return out
}

// sectionItems captures the block under a "Skills:"-style heading,
// terminated by a blank line or the next heading. Comma-separated
// lines are split; bullet markers are stripped.
func sectionItems(text string, headings ...string) []string {
	lines := strings.Split(text, "\n")
	var out []string
	capturing := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if !capturing {
			if matchesHeading(trimmed, headings) {
				capturing = true
				// Inline form: "Skills: Go, SQL"
				if i := strings.Index(trimmed, ":"); i >= 0 {
					if rest := strings.TrimSpace(trimmed[i+1:]); rest != "" {
						out = append(out, splitItems(rest)...)
					}
				}
			}
			continue
		}

		if trimmed == "" {
			break
		}
		if isHeading(trimmed) {
			break
		}
		out = append(out, splitItems(trimmed)...)
	}
	return out
}

func matchesHeading(line string, headings []string) bool {
	low := strings.ToLower(line)
	for _, h := range headings {
		if strings.HasPrefix(low, h+":") || low == h {
			return true
		}
	}
	return false
}

func isHeading(line string) bool {
	if !headingRe.MatchString(line) {
		return false
	}
	// Short labelled lines only; a sentence ending in ":" is content.
	return len(strings.Fields(line)) <= 4
}

func splitItems(line string) []string {
	line = strings.TrimPrefix(line, "• ")
	line = strings.TrimPrefix(line, "•")
	line = strings.TrimPrefix(line, "- ")
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if strings.Contains(line, ",") {
		var items []string
		for _, part := range strings.Split(line, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		return items
	}
	return []string{line}
}

// guessName takes the first short line near the top that doesn't look
// like contact info or a section label.
func guessName(resumeText string) string {
	var seen int
	for _, line := range strings.Split(resumeText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		words := strings.Fields(trimmed)
		if len(words) < 2 || len(words) > 3 || len(trimmed) >= 50 {
			continue
		}
		low := strings.ToLower(trimmed)
		if strings.ContainsAny(trimmed, "@:") ||
			strings.Contains(low, "phone") ||
			strings.Contains(low, "linkedin") ||
			strings.Contains(low, "experience") ||
			phoneRe.MatchString(trimmed) {
			continue
		}
		return trimmed
	}
	return ""
}
