package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in tier selection.
const (
	BackendOllama = "ollama"
	BackendOpenAI = "openai"
)

type Provider struct {
	Host        string  `yaml:"host"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

type Config struct {
	Files struct {
		Resume       string `yaml:"resume"`
		Instructions string `yaml:"instructions"`
		Style        string `yaml:"style"`
		PDF          string `yaml:"pdf"`
	} `yaml:"files"`

	Browser struct {
		Headless  bool `yaml:"headless"`
		TimeoutMS int  `yaml:"timeout_ms"`
	} `yaml:"browser"`

	Output struct {
		Dir string `yaml:"dir"`
		PDF bool   `yaml:"pdf"`
	} `yaml:"output"`

	Providers struct {
		Ollama Provider `yaml:"ollama"`
		OpenAI Provider `yaml:"openai"`
	} `yaml:"providers"`

	// Tiers map a pipeline role onto a backend name. Both may point at
	// the same backend; there is no automatic cross-tier failover.
	Tiers struct {
		Parsing string `yaml:"parsing"`
		Letter  string `yaml:"letter"`
	} `yaml:"tiers"`

	Run struct {
		DefaultJobURL string `yaml:"default_job_url"`
		TimeoutMS     int    `yaml:"timeout_ms"`
	} `yaml:"run"`
}

// Default returns the built-in configuration before any file or env
// overlay is applied.
func Default() Config {
	var cfg Config
	cfg.Files.Resume = "resume.txt"
	cfg.Files.Instructions = "instructions.txt"
	cfg.Browser.Headless = true
	cfg.Browser.TimeoutMS = 30000
	cfg.Output.Dir = "."
	cfg.Providers.Ollama = Provider{
		Host:        "http://localhost:11434",
		Model:       "llama3.2:latest",
		MaxTokens:   2000,
		Temperature: 0.7,
	}
	cfg.Providers.OpenAI = Provider{
		Model:       "gpt-4o-mini",
		MaxTokens:   2000,
		Temperature: 0.7,
	}
	cfg.Tiers.Parsing = BackendOllama
	cfg.Tiers.Letter = BackendOllama
	return cfg
}

// Load reads a yaml config file over the defaults. A missing file is
// not an error; the env overlay still applies on top.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
