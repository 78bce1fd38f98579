// Package output persists the run artifacts: cover letter, extracted
// job description, and the optional PDF rendering.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"coverletter-engine/internal/config"
	"coverletter-engine/internal/domain"
)

var (
	dropCharsRe = regexp.MustCompile(`[^\w\s-]`)
	spaceRunsRe = regexp.MustCompile(`[-\s]+`)
)

// Writer writes one run's artifacts under a deterministic folder.
// The clock is injected so folder naming is testable.
type Writer struct {
	root string
	now  func() time.Time

	pdfEnabled bool
	pdfCfg     config.PDFConfig
}

// Artifacts lists what a run produced.
type Artifacts struct {
	Dir             string
	CoverLetterPath string
	DescriptionPath string
	PDFPath         string
}

func NewWriter(root string, now func() time.Time) *Writer {
	if now == nil {
		now = time.Now
	}
	return &Writer{root: root, now: now}
}

// EnablePDF turns on PDF rendering with the given formatting document.
func (w *Writer) EnablePDF(cfg config.PDFConfig) {
	w.pdfEnabled = true
	w.pdfCfg = cfg
}

// Write persists the cover letter and job description. An empty
// description still produces the file, with a manual follow-up note,
// so the folder is always a complete application package.
func (w *Writer) Write(profile domain.ApplicantProfile, posting domain.JobPosting, result domain.GenerationResult) (Artifacts, error) {
	company := posting.Company
	if company == "" {
		company = "Unknown Company"
	}
	cleanCompany := Sanitize(company)

	dir := filepath.Join(w.root, FolderName(company, w.now()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifacts{}, fmt.Errorf("create output folder: %w", err)
	}

	applicant := strings.ReplaceAll(profile.Name, " ", "")
	if applicant == "" {
		applicant = "Applicant"
	}

	art := Artifacts{Dir: dir}

	art.CoverLetterPath = filepath.Join(dir, fmt.Sprintf("%s_%s_CoverLetter.txt", applicant, cleanCompany))
	if err := os.WriteFile(art.CoverLetterPath, []byte(result.CoverLetterText+"\n"), 0o644); err != nil {
		return art, fmt.Errorf("write cover letter: %w", err)
	}

	art.DescriptionPath = filepath.Join(dir, fmt.Sprintf("%s_JobDescription.txt", cleanCompany))
	if err := os.WriteFile(art.DescriptionPath, []byte(descriptionDocument(posting, w.now())), 0o644); err != nil {
		return art, fmt.Errorf("write job description: %w", err)
	}

	if w.pdfEnabled {
		art.PDFPath = filepath.Join(dir, fmt.Sprintf("%s_%s_CoverLetter.pdf", applicant, cleanCompany))
		if err := RenderPDF(art.PDFPath, result.CoverLetterText, w.pdfCfg); err != nil {
			return art, fmt.Errorf("render pdf: %w", err)
		}
	}
	return art, nil
}

// FolderName builds {Company}_{YYYYMMDD}_{HHMMSS} with spaces and
// punctuation normalized to underscores.
func FolderName(company string, t time.Time) string {
	clean := Sanitize(company)
	if clean == "" {
		clean = "Unknown_Company"
	}
	return fmt.Sprintf("%s_%s", clean, t.Format("20060102_150405"))
}

// Sanitize strips filesystem-hostile characters and collapses
// space/hyphen runs into single underscores.
func Sanitize(s string) string {
	s = dropCharsRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return spaceRunsRe.ReplaceAllString(s, "_")
}

func descriptionDocument(posting domain.JobPosting, t time.Time) string {
	var sb strings.Builder

	sb.WriteString("=== JOB APPLICATION DETAILS ===\n")
	fmt.Fprintf(&sb, "Generated on: %s\n\n", t.Format("January 2, 2006 at 3:04 PM"))

	fmt.Fprintf(&sb, "Job Title: %s\n", orUnknown(posting.Title))
	fmt.Fprintf(&sb, "Company: %s\n", orUnknown(posting.Company))
	fmt.Fprintf(&sb, "Location: %s\n", orUnknown(posting.Location))
	fmt.Fprintf(&sb, "Source Platform: %s\n", posting.SourcePlatform)
	fmt.Fprintf(&sb, "Application URL: %s\n", posting.URL)

	sb.WriteString("\n=== FULL JOB DESCRIPTION ===\n\n")
	if posting.Description != "" {
		sb.WriteString(posting.Description)
		sb.WriteString("\n")
	} else {
		sb.WriteString(`Note: the full job description could not be automatically extracted.

To complete this application package:
1. Visit the application URL above
2. Close any chat overlays or cookie banners
3. Copy the complete job description
4. Paste it into this file
`)
	}
	return sb.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
