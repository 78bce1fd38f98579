package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"coverletter-engine/internal/domain"
)

var fixedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func TestFolderNameDeterministic(t *testing.T) {
	tests := []struct {
		company string
		want    string
	}{
		{"Acme Corp", "Acme_Corp_20240102_030405"},
		{"Acme, Inc.", "Acme_Inc_20240102_030405"},
		{"  Spaced   Out  ", "Spaced_Out_20240102_030405"},
		{"", "Unknown_Company_20240102_030405"},
	}
	for _, tt := range tests {
		if got := FolderName(tt.company, fixedTime); got != tt.want {
			t.Errorf("FolderName(%q) = %q, want %q", tt.company, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root, func() time.Time { return fixedTime })

	profile := domain.ApplicantProfile{Name: "Jordan Lee"}
	posting := domain.JobPosting{
		URL:            "https://boards.greenhouse.io/acme/jobs/1",
		Company:        "Acme Corp",
		Title:          "Backend Engineer",
		Location:       "Remote",
		Description:    "We are hiring a backend engineer.",
		SourcePlatform: domain.PlatformGreenhouse,
	}
	result := domain.GenerationResult{CoverLetterText: "Dear Hiring Manager,\n\nHello."}

	art, err := w.Write(profile, posting, result)
	if err != nil {
		t.Fatal(err)
	}

	wantDir := filepath.Join(root, "Acme_Corp_20240102_030405")
	if art.Dir != wantDir {
		t.Errorf("dir = %q, want %q", art.Dir, wantDir)
	}

	entries, err := os.ReadDir(art.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("wrote %d files, want 2", len(entries))
	}

	letter, err := os.ReadFile(filepath.Join(wantDir, "JordanLee_Acme_Corp_CoverLetter.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(letter), "Dear Hiring Manager,") {
		t.Errorf("letter content = %q", letter)
	}

	desc, err := os.ReadFile(filepath.Join(wantDir, "Acme_Corp_JobDescription.txt"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Job Title: Backend Engineer",
		"Company: Acme Corp",
		"Source Platform: greenhouse",
		"We are hiring a backend engineer.",
	} {
		if !strings.Contains(string(desc), want) {
			t.Errorf("description file missing %q", want)
		}
	}
}

func TestWriteEmptyDescriptionStillProducesFile(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root, func() time.Time { return fixedTime })

	art, err := w.Write(
		domain.ApplicantProfile{},
		domain.JobPosting{URL: "https://example.com/job", SourcePlatform: domain.PlatformUnknown},
		domain.GenerationResult{CoverLetterText: "A letter."},
	)
	if err != nil {
		t.Fatal(err)
	}

	desc, err := os.ReadFile(art.DescriptionPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(desc), "could not be automatically extracted") {
		t.Errorf("missing manual follow-up note: %q", desc)
	}
	if !strings.Contains(art.CoverLetterPath, "Applicant_Unknown_Company_CoverLetter.txt") {
		t.Errorf("cover letter path = %q", art.CoverLetterPath)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Acme Corp", "Acme_Corp"},
		{"O'Reilly & Sons, Ltd.", "OReilly_Sons_Ltd"},
		{"a-b c", "a_b_c"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
