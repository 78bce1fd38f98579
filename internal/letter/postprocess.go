package letter

import (
	"regexp"
	"strings"

	"coverletter-engine/internal/domain"
)

var (
	blankRunsRe  = regexp.MustCompile(`\n{3,}`)
	doubleSpaces = regexp.MustCompile(`[^\S\n]{2,}`)
)

// postProcess cleans up whitespace and makes sure the letter ends
// with a signature block. Models occasionally stop after the closing
// sentence; the applicant's name and contact lines are appended when
// missing so the saved file is ready to send.
func postProcess(draft string, profile domain.ApplicantProfile, style domain.StyleConfig) string {
	out := strings.TrimSpace(draft)

	if profile.Name != "" && !containsLine(out, profile.Name) {
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		out += "\n" + style.Signature + "\n\n" + profile.Name

		var contacts []string
		if profile.Email != "" {
			contacts = append(contacts, profile.Email)
		}
		if profile.Phone != "" {
			contacts = append(contacts, profile.Phone)
		}
		if profile.LinkedInURL != "" {
			contacts = append(contacts, profile.LinkedInURL)
		}
		if len(contacts) > 0 {
			out += "\n" + strings.Join(contacts, "\n")
		}
	}

	out = blankRunsRe.ReplaceAllString(out, "\n\n")
	out = doubleSpaces.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

func containsLine(text, want string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}
