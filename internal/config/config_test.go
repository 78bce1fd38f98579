package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Providers.Ollama.Host != "http://localhost:11434" {
		t.Errorf("ollama host = %q", cfg.Providers.Ollama.Host)
	}
	if cfg.Tiers.Letter != BackendOllama {
		t.Errorf("letter tier = %q", cfg.Tiers.Letter)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", `
tiers:
  letter: openai
providers:
  openai:
    model: gpt-4o
browser:
  timeout_ms: 45000
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tiers.Letter != BackendOpenAI {
		t.Errorf("letter tier = %q", cfg.Tiers.Letter)
	}
	if cfg.Providers.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.Providers.OpenAI.Model)
	}
	if cfg.Browser.TimeoutMS != 45000 {
		t.Errorf("timeout = %d", cfg.Browser.TimeoutMS)
	}
}

func TestApplyEnvWins(t *testing.T) {
	t.Setenv("OLLAMA_MODEL", "mistral:7b")
	t.Setenv("BROWSER_HEADLESS", "false")
	t.Setenv("BROWSER_TIMEOUT", "12000")
	t.Setenv("LETTER_TIER", "openai")

	cfg := Default()
	ApplyEnv(&cfg)

	if cfg.Providers.Ollama.Model != "mistral:7b" {
		t.Errorf("model = %q", cfg.Providers.Ollama.Model)
	}
	if cfg.Browser.Headless {
		t.Error("headless should be false")
	}
	if cfg.Browser.TimeoutMS != 12000 {
		t.Errorf("timeout = %d", cfg.Browser.TimeoutMS)
	}
	if cfg.Tiers.Letter != "openai" {
		t.Errorf("letter tier = %q", cfg.Tiers.Letter)
	}
}

func TestLoadEnvFilesDoesNotOverwrite(t *testing.T) {
	t.Setenv("RESUME_PATH", "from-env.txt")
	path := writeFile(t, t.TempDir(), ".env", "RESUME_PATH=from-file.txt\nOLLAMA_MODEL=\"llama3.2\"\n# comment\n")

	LoadEnvFiles(path)

	if got := os.Getenv("RESUME_PATH"); got != "from-env.txt" {
		t.Errorf("RESUME_PATH = %q, env should win", got)
	}
	if got := os.Getenv("OLLAMA_MODEL"); got != "llama3.2" {
		t.Errorf("OLLAMA_MODEL = %q", got)
	}
	os.Unsetenv("OLLAMA_MODEL")
}

func TestValidateMissingResume(t *testing.T) {
	cfg := Default()
	cfg.Files.Resume = filepath.Join(t.TempDir(), "missing.txt")
	cfg.Files.Instructions = ""

	_, v := NormalizeAndValidate(cfg)
	if v.OK() {
		t.Fatal("expected validation error for missing resume")
	}
}

func TestValidateMissingInstructionsIsWarning(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Files.Resume = writeFile(t, dir, "resume.txt", "Jordan Lee\n")
	cfg.Files.Instructions = filepath.Join(dir, "missing.txt")

	out, v := NormalizeAndValidate(cfg)
	if !v.OK() {
		t.Fatalf("errors = %v", v.Errors)
	}
	if len(v.Warnings) == 0 {
		t.Error("expected a warning for missing instructions")
	}
	if out.Files.Instructions != "" {
		t.Errorf("instructions should be cleared, got %q", out.Files.Instructions)
	}
}

func TestValidateBadTier(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Files.Resume = writeFile(t, dir, "resume.txt", "x\n")
	cfg.Files.Instructions = ""
	cfg.Tiers.Letter = "claude"

	_, v := NormalizeAndValidate(cfg)
	if v.OK() {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLoadStyle(t *testing.T) {
	path := writeFile(t, t.TempDir(), "style.json", `{
  "salutation": "Dear Team,",
  "signature": "Sincerely,",
  "paragraph_count": 4,
  "tone": "warm",
  "word_target": 300
}`)
	style, err := LoadStyle(path)
	if err != nil {
		t.Fatal(err)
	}
	if style.Salutation != "Dear Team," || style.ParagraphCount != 4 {
		t.Errorf("style = %+v", style)
	}
}

func TestLoadStyleDefaults(t *testing.T) {
	style, err := LoadStyle("")
	if err != nil {
		t.Fatal(err)
	}
	if style.ParagraphCount != 3 || style.Salutation == "" {
		t.Errorf("defaults = %+v", style)
	}
}

func TestLoadPDFBackfillsZeroValues(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pdf.json", `{"font_family": "Times"}`)
	pc, err := LoadPDF(path)
	if err != nil {
		t.Fatal(err)
	}
	if pc.FontFamily != "Times" {
		t.Errorf("font = %q", pc.FontFamily)
	}
	if pc.FontSize <= 0 || pc.MarginMM <= 0 || pc.LineSpacing <= 0 {
		t.Errorf("zero values not backfilled: %+v", pc)
	}
}
