package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "coverletter"

// GetAPIKey resolves the API key for a provider backend. Environment
// wins so CI and one-off runs don't need a keychain; the keychain is
// the durable local store.
func GetAPIKey(backend string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(envKeyFor(backend))); v != "" {
		return v, nil
	}
	key, err := keyring.Get(KeyringService, backend)
	if err == nil && strings.TrimSpace(key) != "" {
		return key, nil
	}
	return "", errors.New("api key for " + backend + " not found (set " + envKeyFor(backend) + " or store it with `coverletter auth set`)")
}

func SetAPIKey(backend, key string) error {
	if strings.TrimSpace(backend) == "" {
		return errors.New("backend name is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, backend, key)
}

func DeleteAPIKey(backend string) error {
	if strings.TrimSpace(backend) == "" {
		return errors.New("backend name is empty")
	}
	return keyring.Delete(KeyringService, backend)
}

func envKeyFor(backend string) string {
	return strings.ToUpper(backend) + "_API_KEY"
}
