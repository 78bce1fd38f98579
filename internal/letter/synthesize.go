// Package letter turns a GenerationRequest into a finished cover
// letter via the configured letter tier.
package letter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"coverletter-engine/internal/domain"
	"coverletter-engine/internal/llm"
)

// minLetterChars is the floor below which a generation is considered
// degenerate. A real letter at the default word target is several
// times this length.
const minLetterChars = 200

var placeholderRe = regexp.MustCompile(`\{\{?[A-Za-z_ ][^{}]*\}?\}`)

type Synthesizer struct {
	client llm.Client
	opts   llm.Request
}

func NewSynthesizer(client llm.Client, opts llm.Request) *Synthesizer {
	return &Synthesizer{client: client, opts: opts}
}

// Synthesize builds the prompt, invokes the letter tier, validates
// the draft and retries once with a stricter directive before
// accepting the best available output with a warning. Only total
// provider failure returns an error: a reviewable draft always beats
// no output.
func (s *Synthesizer) Synthesize(ctx context.Context, req domain.GenerationRequest) (domain.GenerationResult, error) {
	result := domain.GenerationResult{
		ProviderUsed: s.client.Name(),
		Warnings:     append([]string(nil), req.Warnings...),
	}

	prompt := buildPrompt(req)

	draft, err := s.generate(ctx, prompt)
	if err != nil {
		return result, fmt.Errorf("cover letter generation failed: %w", err)
	}

	if reason := validateDraft(draft); reason != "" {
		retryDraft, retryErr := s.generate(ctx, prompt+stricterDirective)
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("draft rejected (%s); retried with stricter directive", reason))
		if retryErr == nil && betterDraft(retryDraft, draft) {
			draft = retryDraft
		}
		if validateDraft(draft) != "" {
			result.Warnings = append(result.Warnings,
				"final draft still failed validation; review before use")
		}
	}

	if strings.TrimSpace(draft) == "" {
		return result, fmt.Errorf("cover letter generation failed: %w", llm.ErrProviderUnavailable)
	}

	result.CoverLetterText = postProcess(draft, req.Profile, req.Style)
	return result, nil
}

func (s *Synthesizer) generate(ctx context.Context, prompt string) (string, error) {
	req := s.opts
	req.System = systemPrompt
	req.Prompt = prompt
	return s.client.Generate(ctx, req)
}

// validateDraft returns a non-empty reason when the output is
// unusable: empty, wildly short, or carrying unresolved placeholders.
func validateDraft(draft string) string {
	trimmed := strings.TrimSpace(draft)
	if trimmed == "" {
		return "empty output"
	}
	if len(trimmed) < minLetterChars {
		return fmt.Sprintf("output too short (%d chars)", len(trimmed))
	}
	if placeholderRe.MatchString(trimmed) {
		return "unresolved template placeholders"
	}
	return ""
}

// betterDraft prefers a valid draft over an invalid one, then the
// longer of two invalid ones.
func betterDraft(candidate, current string) bool {
	candOK := validateDraft(candidate) == ""
	currOK := validateDraft(current) == ""
	if candOK != currOK {
		return candOK
	}
	return len(strings.TrimSpace(candidate)) > len(strings.TrimSpace(current))
}
