package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"coverletter-engine/internal/browser"
	"coverletter-engine/internal/config"
	"coverletter-engine/internal/llm"
	"coverletter-engine/internal/output"
	"coverletter-engine/internal/run"
	"coverletter-engine/internal/secrets"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = cmdRun(os.Args[2:])
	case "auth":
		err = cmdAuth(os.Args[2:])
	case "config":
		err = cmdConfig(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  coverletter run <job_url> [resume_path]   generate a cover letter for a posting
  coverletter auth set <backend>            store an api key in the OS keychain
  coverletter auth delete <backend>         remove a stored api key
  coverletter config init                   write a default config.yml`)
}

func cmdRun(args []string) error {
	config.LoadEnvFiles(".env")

	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	config.ApplyEnv(&cfg)

	jobURL := cfg.Run.DefaultJobURL
	if len(args) >= 1 {
		jobURL = args[0]
	}
	if len(args) >= 2 {
		cfg.Files.Resume = args[1]
	}
	if strings.TrimSpace(jobURL) == "" {
		return fmt.Errorf("no job URL given and DEFAULT_JOB_URL is not set")
	}

	cfg, validation := config.NormalizeAndValidate(cfg)
	for _, w := range validation.Warnings {
		slog.Warn(w)
	}
	if !validation.OK() {
		return fmt.Errorf("configuration invalid:\n  - %s", strings.Join(validation.Errors, "\n  - "))
	}

	style, err := config.LoadStyle(cfg.Files.Style)
	if err != nil {
		return fmt.Errorf("load style config: %w", err)
	}

	// One run at a time per output root; two invocations interleaving
	// folder creation would be confusing at best.
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return err
	}
	lock := flock.New(filepath.Join(cfg.Output.Dir, ".coverletter.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another run is already writing to %s", cfg.Output.Dir)
	}
	defer lock.Unlock()

	tiers, err := llm.Resolve(cfg)
	if err != nil {
		return err
	}

	writer := output.NewWriter(cfg.Output.Dir, time.Now)
	if cfg.Output.PDF {
		pdfCfg, err := config.LoadPDF(cfg.Files.PDF)
		if err != nil {
			return fmt.Errorf("load pdf config: %w", err)
		}
		writer.EnablePDF(pdfCfg)
	}

	fetcher := browser.New(cfg.Browser.Headless, time.Duration(cfg.Browser.TimeoutMS)*time.Millisecond)
	pipeline := run.NewPipeline(cfg, style, fetcher, tiers, writer)

	ctx := context.Background()
	if cfg.Run.TimeoutMS > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Run.TimeoutMS)*time.Millisecond)
		defer cancel()
	}

	slog.Info("processing job application", "url", jobURL, "resume", cfg.Files.Resume)
	res, err := pipeline.Run(ctx, jobURL)
	if err != nil {
		return err
	}

	fmt.Println("Application package created:", res.Artifacts.Dir)
	fmt.Println("  cover letter:   ", res.Artifacts.CoverLetterPath)
	fmt.Println("  job description:", res.Artifacts.DescriptionPath)
	if res.Artifacts.PDFPath != "" {
		fmt.Println("  pdf:            ", res.Artifacts.PDFPath)
	}
	fmt.Println("  provider:       ", res.Generated.ProviderUsed)

	// Degraded-mode success: exit zero, but make every warning visible.
	for _, w := range res.Generated.Warnings {
		slog.Warn(w)
	}
	return nil
}

func cmdAuth(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: coverletter auth <set|delete> <backend>")
	}
	backend := strings.ToLower(args[1])
	switch args[0] {
	case "set":
		fmt.Fprintf(os.Stderr, "api key for %s: ", backend)
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return fmt.Errorf("no input")
		}
		if err := secrets.SetAPIKey(backend, strings.TrimSpace(scanner.Text())); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "stored in keychain")
		return nil
	case "delete":
		return secrets.DeleteAPIKey(backend)
	default:
		return fmt.Errorf("unknown auth action %q", args[0])
	}
}

func cmdConfig(args []string) error {
	if len(args) < 1 || args[0] != "init" {
		return fmt.Errorf("usage: coverletter config init")
	}
	path, err := config.EnsureUserConfig(".")
	if err != nil {
		return err
	}
	fmt.Println("config at", path)
	return nil
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yml"
}
