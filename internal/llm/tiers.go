package llm

import (
	"fmt"

	"coverletter-engine/internal/config"
	"coverletter-engine/internal/secrets"
)

// Tiers holds the resolved clients for the two pipeline roles. Both
// may be the same backend; tier escalation is a caller decision and
// never happens inside the adapter.
type Tiers struct {
	Parsing Client
	Letter  Client

	ParsingOpts Request // temperature/token defaults for the tier
	LetterOpts  Request
}

// Resolve builds the per-tier clients once at startup from
// configuration. Only backends actually referenced by a tier are
// constructed, so an unused remote backend needs no API key.
func Resolve(cfg config.Config) (Tiers, error) {
	limiter := NewHostLimiter(2, 2)

	cache := map[string]Client{}
	build := func(backend string) (Client, config.Provider, error) {
		var prov config.Provider
		switch backend {
		case config.BackendOllama:
			prov = cfg.Providers.Ollama
		case config.BackendOpenAI:
			prov = cfg.Providers.OpenAI
		default:
			return nil, prov, fmt.Errorf("unknown backend %q", backend)
		}
		if c, ok := cache[backend]; ok {
			return c, prov, nil
		}

		var base Client
		switch backend {
		case config.BackendOllama:
			base = NewOllama(prov.Host, prov.Model)
		case config.BackendOpenAI:
			key, err := secrets.GetAPIKey(config.BackendOpenAI)
			if err != nil {
				return nil, prov, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
			}
			oc, err := NewOpenAI(key, prov.Model, prov.Host)
			if err != nil {
				return nil, prov, err
			}
			base = oc
		}

		host := prov.Host
		if host == "" {
			host = backend
		}
		c := WithRetry(base, limiter, host)
		cache[backend] = c
		return c, prov, nil
	}

	var t Tiers

	parsing, prov, err := build(cfg.Tiers.Parsing)
	if err != nil {
		return t, fmt.Errorf("resolve parsing tier: %w", err)
	}
	t.Parsing = parsing
	t.ParsingOpts = Request{Temperature: prov.Temperature, MaxTokens: prov.MaxTokens}

	letter, prov, err := build(cfg.Tiers.Letter)
	if err != nil {
		return t, fmt.Errorf("resolve letter tier: %w", err)
	}
	t.Letter = letter
	t.LetterOpts = Request{Temperature: prov.Temperature, MaxTokens: prov.MaxTokens}

	return t, nil
}
