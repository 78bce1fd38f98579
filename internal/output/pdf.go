package output

import (
	"strings"

	"github.com/go-pdf/fpdf"

	"coverletter-engine/internal/config"
)

// RenderPDF writes the finalized letter text as a single-column PDF.
// Pure formatting: the text is already final and nothing here feeds
// back into the pipeline.
func RenderPDF(path, text string, cfg config.PDFConfig) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(cfg.MarginMM, cfg.MarginMM, cfg.MarginMM)
	pdf.SetAutoPageBreak(true, cfg.MarginMM)
	pdf.AddPage()
	pdf.SetFont(cfg.FontFamily, "", cfg.FontSize)

	// Points to millimeters, scaled by the configured line spacing.
	lineHeight := cfg.FontSize * 0.3528 * cfg.LineSpacing

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(lineHeight)
			continue
		}
		pdf.MultiCell(0, lineHeight, tr(line), "", "L", false)
	}

	return pdf.OutputFileAndClose(path)
}
