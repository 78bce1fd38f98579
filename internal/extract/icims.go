package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"coverletter-engine/internal/domain"
)

// ICIMSStrategy handles iCIMS-hosted boards (careers-<tenant>.icims.com).
// iCIMS prefixes its widget classes with iCIMS_, which makes the
// markup fingerprint cheap to check.
type ICIMSStrategy struct{}

func (s *ICIMSStrategy) Platform() domain.Platform { return domain.PlatformICIMS }

func (s *ICIMSStrategy) Match(pageURL string, doc *goquery.Document) bool {
	if u, err := url.Parse(pageURL); err == nil {
		if strings.Contains(strings.ToLower(u.Host), "icims.com") {
			return true
		}
	}
	return doc.Find(`[class*="iCIMS_"]`).Length() > 0
}

func (s *ICIMSStrategy) Extract(pageURL string, doc *goquery.Document) Fields {
	var f Fields

	f.Title = firstText(doc,
		".iCIMS_Header h1",
		"h1.iCIMS_Header_Title",
		".iCIMS_JobHeader h1",
	)

	f.Location = firstText(doc,
		".iCIMS_JobHeaderTag",
		".iCIMS_JobHeaderData",
	)
	f.Location = strings.TrimPrefix(f.Location, "Job Locations")
	f.Location = CleanText(f.Location)

	for _, sel := range []string{
		".iCIMS_JobContent",
		".iCIMS_InfoMsg_Job",
		".iCIMS_Expandable_Container",
	} {
		if d := blockText(doc.Find(sel).First()); len(d) >= minDescriptionChars {
			f.Description = d
			break
		}
	}

	f.Company = metaContent(doc, `meta[property="og:site_name"]`)
	if f.Company == "" {
		f.Company = icimsTenant(pageURL)
	}
	return f
}

// icimsTenant recovers a display-ish company name from hosts like
// careers-acmecorp.icims.com. Best effort; empty when the host doesn't
// follow the pattern.
func icimsTenant(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Host)
	if !strings.HasSuffix(host, ".icims.com") {
		return ""
	}
	sub := strings.TrimSuffix(host, ".icims.com")
	sub = strings.TrimPrefix(sub, "careers-")
	sub = strings.TrimPrefix(sub, "jobs-")
	if sub == "" || strings.Contains(sub, ".") {
		return ""
	}
	return strings.ToUpper(sub[:1]) + sub[1:]
}
