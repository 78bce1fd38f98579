// Package run wires the pipeline: fetch and profile parse in
// parallel, then extraction, synthesis, and output.
package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"coverletter-engine/internal/browser"
	"coverletter-engine/internal/config"
	"coverletter-engine/internal/domain"
	"coverletter-engine/internal/extract"
	"coverletter-engine/internal/letter"
	"coverletter-engine/internal/llm"
	"coverletter-engine/internal/output"
	"coverletter-engine/internal/profile"
)

// PageFetcher is what the pipeline needs from the browser layer;
// tests substitute a fixture-backed implementation.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (browser.RenderedPage, error)
}

type Pipeline struct {
	cfg      config.Config
	style    domain.StyleConfig
	fetcher  PageFetcher
	selector *extract.Selector
	tiers    llm.Tiers
	writer   *output.Writer
}

func NewPipeline(cfg config.Config, style domain.StyleConfig, fetcher PageFetcher, tiers llm.Tiers, writer *output.Writer) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		style:    style,
		fetcher:  fetcher,
		selector: extract.NewSelector(),
		tiers:    tiers,
		writer:   writer,
	}
}

// Result is what one complete run produced.
type Result struct {
	Posting   domain.JobPosting
	Generated domain.GenerationResult
	Artifacts output.Artifacts
}

// Run executes one invocation end to end. Fetch/extraction failures
// degrade to an empty posting with warnings; only profile file errors
// and total generation failure abort the run.
func (p *Pipeline) Run(ctx context.Context, jobURL string) (Result, error) {
	var (
		prof     domain.ApplicantProfile
		page     browser.RenderedPage
		warnings []string
	)

	// The two input phases share no state, so they run concurrently:
	// one waits on browser I/O, the other on local file reads.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		prof, err = p.loadProfile()
		return err
	})

	var fetchErr error
	g.Go(func() error {
		page, fetchErr = p.fetcher.Fetch(gctx, jobURL)
		// Fetch failure is recoverable at the extraction layer; don't
		// cancel the profile goroutine over it.
		return nil
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	if fetchErr != nil {
		if errors.Is(fetchErr, browser.ErrFetchTimeout) {
			warnings = append(warnings, fmt.Sprintf("page fetch timed out: %v", fetchErr))
		} else {
			warnings = append(warnings, fmt.Sprintf("page fetch failed: %v", fetchErr))
		}
		slog.Warn("continuing with empty posting", "url", jobURL, "err", fetchErr)
		page = browser.RenderedPage{URL: jobURL}
	}

	posting, extractWarnings := p.selector.Extract(page)
	warnings = append(warnings, extractWarnings...)

	if posting.SourcePlatform == domain.PlatformGeneric {
		posting.Description = p.cleanDescription(ctx, posting.Description, &warnings)
	}

	req := domain.GenerationRequest{
		Posting:  posting,
		Profile:  prof,
		Style:    p.style,
		Warnings: warnings,
	}

	synth := letter.NewSynthesizer(p.tiers.Letter, p.tiers.LetterOpts)
	generated, err := synth.Synthesize(ctx, req)
	if err != nil {
		// No usable draft means nothing worth writing.
		return Result{Posting: posting}, err
	}

	artifacts, err := p.writer.Write(prof, posting, generated)
	if err != nil {
		return Result{Posting: posting, Generated: generated}, err
	}

	return Result{Posting: posting, Generated: generated, Artifacts: artifacts}, nil
}

// loadProfile reads the configured input files. A missing resume is
// fatal; missing instructions were already downgraded to a warning by
// config validation.
func (p *Pipeline) loadProfile() (domain.ApplicantProfile, error) {
	resume, err := os.ReadFile(p.cfg.Files.Resume)
	if err != nil {
		return domain.ApplicantProfile{}, fmt.Errorf("read resume: %w", err)
	}

	var instructions []byte
	if p.cfg.Files.Instructions != "" {
		instructions, err = os.ReadFile(p.cfg.Files.Instructions)
		if err != nil {
			return domain.ApplicantProfile{}, fmt.Errorf("read instructions: %w", err)
		}
	}

	return profile.Parse(string(resume), string(instructions)), nil
}

// cleanDescription asks the parsing tier to strip navigation and
// footer noise out of a generic body dump. Best effort: any failure
// leaves the raw text in place.
func (p *Pipeline) cleanDescription(ctx context.Context, desc string, warnings *[]string) string {
	if desc == "" || p.tiers.Parsing == nil {
		return desc
	}

	input := desc
	if len(input) > 3000 {
		input = input[:3000]
	}

	req := p.tiers.ParsingOpts
	req.System = "Extract job description content from webpage text. Return only the relevant job posting content, filtering out navigation, ads, and footer content."
	req.Prompt = "Extract the job description and requirements from this webpage text:\n\n" + input

	cleaned, err := p.tiers.Parsing.Generate(ctx, req)
	if err != nil {
		slog.Warn("description cleanup skipped", "provider", p.tiers.Parsing.Name(), "err", err)
		*warnings = append(*warnings, "llm description cleanup failed; using raw extracted text")
		return desc
	}
	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) < 150 {
		return desc
	}
	return cleaned
}
