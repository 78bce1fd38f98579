package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"coverletter-engine/internal/domain"
)

// minDescriptionChars is the floor below which a candidate block is
// treated as navigation chrome rather than a job description.
const minDescriptionChars = 150

// genericContentSelectors is the sweep order for pages with no known
// platform markers: specific job-description hooks first, then broad
// content containers.
var genericContentSelectors = []string{
	`[data-testid="job-description"]`,
	`[data-testid="jobDescription"]`,
	".job-description",
	`[id*="job-description"]`,
	`[class*="job-description"]`,
	".job-details",
	".position-details",
	".job-posting",
	".posting-requirements",
	"main",
	"article",
	"#main-content",
	"#content",
	".content",
	".application-content",
}

// GenericStrategy is the last-resort heuristic. It always matches.
type GenericStrategy struct{}

func (s *GenericStrategy) Platform() domain.Platform { return domain.PlatformGeneric }

func (s *GenericStrategy) Match(string, *goquery.Document) bool { return true }

func (s *GenericStrategy) Extract(pageURL string, doc *goquery.Document) Fields {
	var f Fields

	f.Title = firstText(doc, "h1")
	if f.Title == "" {
		f.Title = CleanText(doc.Find("title").First().Text())
	}

	f.Company = metaContent(doc, `meta[property="og:site_name"]`)

	for _, sel := range genericContentSelectors {
		if d := blockText(doc.Find(sel).First()); len(d) >= minDescriptionChars {
			f.Description = d
			break
		}
	}
	if f.Description == "" {
		f.Description = densestParagraphCluster(doc)
	}
	return f
}

// densestParagraphCluster finds the parent element whose direct <p>
// children carry the most text. Catches hand-rolled career pages that
// use no recognizable container classes at all.
func densestParagraphCluster(doc *goquery.Document) string {
	bestLen := 0
	var best *goquery.Selection

	doc.Find("p").Parent().Each(func(_ int, parent *goquery.Selection) {
		total := 0
		parent.ChildrenFiltered("p").Each(func(_ int, p *goquery.Selection) {
			total += len(CleanText(p.Text()))
		})
		if total > bestLen {
			bestLen = total
			best = parent
		}
	})

	if best == nil || bestLen < minDescriptionChars {
		return ""
	}

	var out []string
	best.ChildrenFiltered("p").Each(func(_ int, p *goquery.Selection) {
		if t := CleanText(p.Text()); t != "" {
			out = append(out, t)
		}
	})
	return strings.Join(out, "\n")
}
