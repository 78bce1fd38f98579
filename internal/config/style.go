package config

import (
	"encoding/json"
	"os"

	"coverletter-engine/internal/domain"
)

// PDFConfig shapes the optional PDF rendering of the finished letter.
// Purely presentational; nothing downstream branches on it.
type PDFConfig struct {
	FontFamily  string  `json:"font_family"`
	FontSize    float64 `json:"font_size"`
	MarginMM    float64 `json:"margin_mm"`
	LineSpacing float64 `json:"line_spacing"`
}

// DefaultStyle is used when no style document is configured.
func DefaultStyle() domain.StyleConfig {
	return domain.StyleConfig{
		Salutation:     "Dear Hiring Manager,",
		Signature:      "Best regards,",
		ParagraphCount: 3,
		Tone:           "confident and professional",
		WordTarget:     350,
	}
}

// DefaultPDF is used when no PDF document is configured.
func DefaultPDF() PDFConfig {
	return PDFConfig{
		FontFamily:  "Helvetica",
		FontSize:    11,
		MarginMM:    20,
		LineSpacing: 1.4,
	}
}

// LoadStyle reads the JSON style document. An empty path returns the
// defaults; a broken document is an error so bad directives never
// reach the prompt silently.
func LoadStyle(path string) (domain.StyleConfig, error) {
	style := DefaultStyle()
	if path == "" {
		return style, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return style, err
	}
	if err := json.Unmarshal(b, &style); err != nil {
		return style, err
	}
	if style.ParagraphCount <= 0 {
		style.ParagraphCount = DefaultStyle().ParagraphCount
	}
	if style.WordTarget <= 0 {
		style.WordTarget = DefaultStyle().WordTarget
	}
	return style, nil
}

// LoadPDF reads the JSON PDF-formatting document.
func LoadPDF(path string) (PDFConfig, error) {
	pc := DefaultPDF()
	if path == "" {
		return pc, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return pc, err
	}
	if err := json.Unmarshal(b, &pc); err != nil {
		return pc, err
	}
	if pc.FontFamily == "" {
		pc.FontFamily = DefaultPDF().FontFamily
	}
	if pc.FontSize <= 0 {
		pc.FontSize = DefaultPDF().FontSize
	}
	if pc.MarginMM <= 0 {
		pc.MarginMM = DefaultPDF().MarginMM
	}
	if pc.LineSpacing <= 0 {
		pc.LineSpacing = DefaultPDF().LineSpacing
	}
	return pc, nil
}
