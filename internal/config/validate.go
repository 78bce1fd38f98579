package config

import (
	"fmt"
	"os"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims/normalizes a copy of cfg and checks it.
// Errors are fatal before any network activity; warnings are surfaced
// but the run proceeds.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Tiers.Parsing = strings.ToLower(strings.TrimSpace(out.Tiers.Parsing))
	out.Tiers.Letter = strings.ToLower(strings.TrimSpace(out.Tiers.Letter))
	out.Files.Resume = strings.TrimSpace(out.Files.Resume)
	out.Files.Instructions = strings.TrimSpace(out.Files.Instructions)

	if out.Files.Resume == "" {
		res.addErr("resume path is required (RESUME_PATH or files.resume)")
	} else if _, err := os.Stat(out.Files.Resume); err != nil {
		res.addErr("resume file not found at %s", out.Files.Resume)
	}

	// Missing instructions are tolerated: generation falls back to the
	// resume text alone.
	if out.Files.Instructions != "" {
		if _, err := os.Stat(out.Files.Instructions); err != nil {
			res.addWarn("instructions file not found at %s; proceeding without quick-hits", out.Files.Instructions)
			out.Files.Instructions = ""
		}
	}

	validTier := func(name, val string) {
		switch val {
		case BackendOllama, BackendOpenAI:
		default:
			res.addErr("tiers.%s must be %q or %q, got %q", name, BackendOllama, BackendOpenAI, val)
		}
	}
	validTier("parsing", out.Tiers.Parsing)
	validTier("letter", out.Tiers.Letter)

	if out.Browser.TimeoutMS <= 0 {
		res.addErr("browser.timeout_ms must be > 0")
	} else if out.Browser.TimeoutMS < 5000 {
		res.addWarn("browser.timeout_ms is very low (%d); dynamic pages may not finish rendering", out.Browser.TimeoutMS)
	}

	if out.Providers.Ollama.Host == "" && (out.Tiers.Parsing == BackendOllama || out.Tiers.Letter == BackendOllama) {
		res.addErr("providers.ollama.host is required when a tier uses ollama")
	}
	if out.Providers.Ollama.Temperature < 0 || out.Providers.Ollama.Temperature > 2 {
		res.addWarn("providers.ollama.temperature %.2f is outside the usual 0..2 range", out.Providers.Ollama.Temperature)
	}
	if out.Providers.OpenAI.Model == "" && (out.Tiers.Parsing == BackendOpenAI || out.Tiers.Letter == BackendOpenAI) {
		res.addErr("providers.openai.model is required when a tier uses openai")
	}

	return out, res
}
