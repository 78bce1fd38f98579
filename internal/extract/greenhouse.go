package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"coverletter-engine/internal/domain"
)

// GreenhouseStrategy handles boards.greenhouse.io job pages and
// Greenhouse embeds (#grnhse_app) on company career sites.
type GreenhouseStrategy struct{}

func (s *GreenhouseStrategy) Platform() domain.Platform { return domain.PlatformGreenhouse }

func (s *GreenhouseStrategy) Match(pageURL string, doc *goquery.Document) bool {
	if u, err := url.Parse(pageURL); err == nil {
		if strings.Contains(strings.ToLower(u.Host), "greenhouse.io") {
			return true
		}
	}
	return doc.Find("#grnhse_app").Length() > 0 ||
		doc.Find(".job__description").Length() > 0 ||
		doc.Find("#app_body .app-title").Length() > 0
}

func (s *GreenhouseStrategy) Extract(pageURL string, doc *goquery.Document) Fields {
	var f Fields

	f.Title = firstText(doc,
		"h1.app-title",
		".job__title h1",
		".app-title",
		"#header h1",
	)

	f.Location = firstText(doc,
		".job__location",
		".location",
		"#header .location",
	)
	f.Location = CleanText(strings.TrimPrefix(f.Location, "Location:"))

	for _, sel := range []string{
		".job__description.body",
		".job__description",
		"#content",
		"#app_body",
		".job-post-container",
	} {
		if d := blockText(doc.Find(sel).First()); len(d) >= minDescriptionChars {
			f.Description = d
			break
		}
	}

	f.Company = firstText(doc, ".company-name", "#header .company-name")
	f.Company = CleanText(strings.TrimPrefix(f.Company, "at "))
	if f.Company == "" {
		f.Company = metaContent(doc, `meta[property="og:site_name"]`)
	}
	if f.Company == "" {
		f.Company = greenhouseBoardSlug(pageURL)
	}
	return f
}

// greenhouseBoardSlug pulls the board slug out of
// boards.greenhouse.io/<slug>/jobs/<id> style URLs.
func greenhouseBoardSlug(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || !strings.Contains(strings.ToLower(u.Host), "greenhouse.io") {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" || parts[0] == "embed" || parts[0] == "jobs" {
		return ""
	}
	slug := parts[0]
	return strings.ToUpper(slug[:1]) + slug[1:]
}
