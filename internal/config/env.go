package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// LoadEnvFiles loads simple KEY=VALUE pairs from the given files if
// they exist. Best-effort for local runs; errors are ignored and
// existing environment variables are never overwritten.
func LoadEnvFiles(paths ...string) {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(parts[0])
			val := strings.Trim(strings.TrimSpace(parts[1]), `"`)
			if key == "" {
				continue
			}
			if _, set := os.LookupEnv(key); !set {
				os.Setenv(key, val)
			}
		}
		_ = f.Close()
	}
}

// ApplyEnv overlays recognized environment variables onto cfg.
// Env always wins over file values.
func ApplyEnv(cfg *Config) {
	setStr := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	setFloat := func(dst *float64, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}
	setBool := func(dst *bool, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = strings.EqualFold(v, "true") || v == "1"
		}
	}

	setStr(&cfg.Files.Resume, "RESUME_PATH")
	setStr(&cfg.Files.Instructions, "COVER_LETTER_INSTRUCTIONS_PATH")
	setStr(&cfg.Files.Style, "STYLE_CONFIG_PATH")
	setStr(&cfg.Files.PDF, "PDF_CONFIG_PATH")

	setBool(&cfg.Browser.Headless, "BROWSER_HEADLESS")
	setInt(&cfg.Browser.TimeoutMS, "BROWSER_TIMEOUT")

	setStr(&cfg.Output.Dir, "OUTPUT_DIR")
	setBool(&cfg.Output.PDF, "PDF_OUTPUT")

	setStr(&cfg.Providers.Ollama.Host, "OLLAMA_HOST")
	setStr(&cfg.Providers.Ollama.Model, "OLLAMA_MODEL")
	setInt(&cfg.Providers.Ollama.MaxTokens, "OLLAMA_MAX_TOKENS")
	setFloat(&cfg.Providers.Ollama.Temperature, "OLLAMA_TEMPERATURE")

	setStr(&cfg.Providers.OpenAI.Host, "OPENAI_BASE_URL")
	setStr(&cfg.Providers.OpenAI.Model, "OPENAI_MODEL")
	setInt(&cfg.Providers.OpenAI.MaxTokens, "OPENAI_MAX_TOKENS")
	setFloat(&cfg.Providers.OpenAI.Temperature, "OPENAI_TEMPERATURE")

	setStr(&cfg.Tiers.Parsing, "PARSING_TIER")
	setStr(&cfg.Tiers.Letter, "LETTER_TIER")

	setStr(&cfg.Run.DefaultJobURL, "DEFAULT_JOB_URL")
	setInt(&cfg.Run.TimeoutMS, "LETTER_RUN_TIMEOUT_MS")
}
