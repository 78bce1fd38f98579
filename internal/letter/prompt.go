package letter

import (
	"fmt"
	"strings"

	"coverletter-engine/internal/domain"
)

const systemPrompt = `You are an expert career coach and professional writer who creates compelling, personalized cover letters.

Requirements:
- Professional business letter format with an engaging opening and a strong closing that invites action.
- Demonstrate a clear match between the candidate's experience and the job requirements.
- Include specific achievements and quantified results where the resume provides them.
- Authentic and human; no generic template language, no cliches, no repeating the entire resume.`

// buildPrompt assembles the single generation prompt from job data,
// profile and style directives. The raw resume text is always
// injected; structured fields only sharpen the instructions.
func buildPrompt(req domain.GenerationRequest) string {
	var sb strings.Builder

	company := req.Posting.Company
	if company == "" {
		company = "the company"
	}
	title := req.Posting.Title
	if title == "" {
		title = "the position"
	}

	sb.WriteString("CANDIDATE:\n")
	writeIfSet(&sb, "Name", req.Profile.Name)
	writeIfSet(&sb, "Email", req.Profile.Email)
	writeIfSet(&sb, "Phone", req.Profile.Phone)
	writeIfSet(&sb, "LinkedIn", req.Profile.LinkedInURL)
	if len(req.Profile.Skills) > 0 {
		fmt.Fprintf(&sb, "Key skills: %s\n", strings.Join(req.Profile.Skills, ", "))
	}

	if len(req.Profile.QuickHits) > 0 {
		sb.WriteString("\nCANDIDATE-CURATED HIGHLIGHTS (work these in):\n")
		for _, qh := range req.Profile.QuickHits {
			fmt.Fprintf(&sb, "- %s\n", qh)
		}
	}
	if len(req.Profile.Achievements) > 0 {
		sb.WriteString("\nSELECTED ACHIEVEMENTS:\n")
		for _, a := range req.Profile.Achievements {
			fmt.Fprintf(&sb, "- %s\n", a)
		}
	}

	sb.WriteString("\nJOB:\n")
	fmt.Fprintf(&sb, "Position: %s\n", title)
	fmt.Fprintf(&sb, "Company: %s\n", company)
	writeIfSet(&sb, "Location", req.Posting.Location)

	sb.WriteString("\nJOB DESCRIPTION:\n")
	if req.Posting.Description != "" {
		sb.WriteString(req.Posting.Description)
		sb.WriteString("\n")
	} else {
		sb.WriteString("Not available. Write the letter from the position title and company alone; do not invent specific requirements.\n")
	}

	sb.WriteString("\nFULL RESUME:\n")
	sb.WriteString(req.Profile.RawResumeText)
	sb.WriteString("\n")

	if strings.TrimSpace(req.Profile.RawInstructionsText) != "" {
		sb.WriteString("\nADDITIONAL INSTRUCTIONS FROM THE CANDIDATE:\n")
		sb.WriteString(req.Profile.RawInstructionsText)
		sb.WriteString("\n")
	}

	sb.WriteString("\nSTRUCTURE:\n")
	fmt.Fprintf(&sb, "- Open with %q and close with %q followed by the candidate's name.\n",
		req.Style.Salutation, req.Style.Signature)
	fmt.Fprintf(&sb, "- Exactly %d body paragraphs.\n", req.Style.ParagraphCount)
	fmt.Fprintf(&sb, "- Tone: %s.\n", req.Style.Tone)
	fmt.Fprintf(&sb, "- Approximately %d words.\n", req.Style.WordTarget)
	sb.WriteString("\nWrite the complete cover letter now. Output only the letter itself.")

	return sb.String()
}

// stricterDirective is appended for the single validation retry.
const stricterDirective = `

IMPORTANT: Your previous answer was unusable. Output ONLY the finished cover letter as plain text. No placeholders, no template braces, no commentary, and it must be a complete letter of the requested length.`

func writeIfSet(sb *strings.Builder, label, val string) {
	if val != "" {
		fmt.Fprintf(sb, "%s: %s\n", label, val)
	}
}
