package extract

import (
	"reflect"
	"strings"
	"testing"

	"coverletter-engine/internal/browser"
	"coverletter-engine/internal/domain"
)

const greenhousePage = `<html><head><title>Backend Engineer - Acme</title></head><body>
<div id="grnhse_app">
  <h1 class="app-title">Backend Engineer</h1>
  <div class="location">Remote - US</div>
  <div id="content">
    <p>We are hiring a backend engineer to build and operate the services behind our core product.</p>
    <p>You will design APIs, own production systems, and work closely with a small team of experienced engineers.</p>
  </div>
</div>
</body></html>`

const icimsPage = `<html><head><title>Careers</title></head><body>
<div class="iCIMS_Header"><h1>Site Reliability Engineer</h1></div>
<div class="iCIMS_JobHeaderTag">Job Locations US-NY-New York</div>
<div class="iCIMS_JobContent">
  <p>Our infrastructure team keeps a global platform running around the clock for millions of users.</p>
  <p>You will automate deployments, improve observability, and drive incident response across the fleet.</p>
</div>
</body></html>`

const genericPage = `<html><head><title>Join us</title><meta property="og:site_name" content="Initech"></head><body>
<h1>Staff Software Engineer</h1>
<div class="job-description">
  <p>Initech is looking for a staff engineer to lead the design of our distributed billing platform.</p>
  <p>The role spans architecture, mentoring, and hands-on work in a modern cloud environment.</p>
</div>
</body></html>`

const emptyPage = `<html><head><title>404</title></head><body><p>Gone.</p></body></html>`

func page(url, html string) browser.RenderedPage {
	return browser.RenderedPage{URL: url, HTML: html}
}

func TestExtractGreenhouse(t *testing.T) {
	sel := NewSelector()
	posting, warnings := sel.Extract(page("https://boards.greenhouse.io/acme/jobs/123", greenhousePage))

	if posting.SourcePlatform != domain.PlatformGreenhouse {
		t.Fatalf("platform = %q, want greenhouse", posting.SourcePlatform)
	}
	if posting.Title != "Backend Engineer" {
		t.Errorf("title = %q", posting.Title)
	}
	if posting.Company != "Acme" {
		t.Errorf("company = %q", posting.Company)
	}
	if posting.Location != "Remote - US" {
		t.Errorf("location = %q", posting.Location)
	}
	if !strings.HasPrefix(posting.Description, "We are hiring a backend engineer") {
		t.Errorf("description = %q", posting.Description)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestExtractICIMS(t *testing.T) {
	sel := NewSelector()
	posting, warnings := sel.Extract(page("https://careers-acme.icims.com/jobs/1234/site-reliability-engineer/job", icimsPage))

	if posting.SourcePlatform != domain.PlatformICIMS {
		t.Fatalf("platform = %q, want icims", posting.SourcePlatform)
	}
	if posting.Title != "Site Reliability Engineer" {
		t.Errorf("title = %q", posting.Title)
	}
	if posting.Company != "Acme" {
		t.Errorf("company = %q", posting.Company)
	}
	if posting.Location != "US-NY-New York" {
		t.Errorf("location = %q", posting.Location)
	}
	if !strings.Contains(posting.Description, "incident response") {
		t.Errorf("description = %q", posting.Description)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestExtractGenericFallback(t *testing.T) {
	sel := NewSelector()
	posting, warnings := sel.Extract(page("https://initech.example.com/careers/42", genericPage))

	if posting.SourcePlatform != domain.PlatformGeneric {
		t.Fatalf("platform = %q, want generic", posting.SourcePlatform)
	}
	if posting.Title != "Staff Software Engineer" {
		t.Errorf("title = %q", posting.Title)
	}
	if posting.Company != "Initech" {
		t.Errorf("company = %q", posting.Company)
	}
	if !strings.Contains(posting.Description, "distributed billing platform") {
		t.Errorf("description = %q", posting.Description)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "generic extraction") {
		t.Errorf("warnings = %v, want one generic-fallback warning", warnings)
	}
}

func TestExtractUnknownNeverFails(t *testing.T) {
	sel := NewSelector()
	posting, warnings := sel.Extract(page("https://example.com/nothing", emptyPage))

	if posting.SourcePlatform != domain.PlatformUnknown {
		t.Fatalf("platform = %q, want unknown", posting.SourcePlatform)
	}
	if posting.Description != "" {
		t.Errorf("description = %q, want empty", posting.Description)
	}
	if !posting.NeedsManualFollowUp() {
		t.Error("expected manual follow-up flag")
	}
	if len(warnings) == 0 {
		t.Error("expected a manual-follow-up warning")
	}
}

func TestExtractEmptyHTML(t *testing.T) {
	sel := NewSelector()
	posting, warnings := sel.Extract(page("https://example.com/job", ""))
	if posting.SourcePlatform != domain.PlatformUnknown || posting.Description != "" {
		t.Fatalf("got %+v, want unknown/empty", posting)
	}
	if len(warnings) == 0 {
		t.Error("expected a warning")
	}
}

func TestDensestParagraphCluster(t *testing.T) {
	html := `<html><body>
<div><p>Short nav thing.</p></div>
<section>
  <p>This is the first long paragraph of an unlabelled job description, with enough text to clear the density floor used by the heuristic.</p>
  <p>And a second paragraph describing responsibilities, qualifications, and everything else a posting usually carries.</p>
</section>
</body></html>`
	sel := NewSelector()
	posting, _ := sel.Extract(page("https://example.com/plain", html))
	if posting.SourcePlatform != domain.PlatformGeneric {
		t.Fatalf("platform = %q, want generic", posting.SourcePlatform)
	}
	if !strings.Contains(posting.Description, "unlabelled job description") {
		t.Errorf("description = %q", posting.Description)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  a  b \n c ", "a b c"},
		{"x y", "x y"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMergeFields(t *testing.T) {
	dst := Fields{Title: "kept"}
	mergeFields(&dst, Fields{Title: "ignored", Company: "added"})
	want := Fields{Title: "kept", Company: "added"}
	if !reflect.DeepEqual(dst, want) {
		t.Errorf("merged = %+v, want %+v", dst, want)
	}
}
