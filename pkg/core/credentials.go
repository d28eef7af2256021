package core

import (
	"fmt"
	"io"
	"strings"
)

// Configuration map keys consumed by NewCredentials.
const (
	ConfigKeyAPIKey     = "key"
	ConfigKeySecret     = "secret"
	ConfigKeyPassphrase = "passphrase"
	ConfigKeyDemo       = "is_demo"
)

const redacted = "[REDACTED]"

// Secret is a string that never prints its value.
// Every fmt verb, JSON and text encoding yield a fixed placeholder; Expose returns the raw value.
type Secret string

// Expose returns the underlying secret value.
func (s Secret) Expose() string {
	return string(s)
}

// IsZero reports whether the secret is empty.
func (s Secret) IsZero() bool {
	return s == ""
}

func (s Secret) String() string {
	return redacted
}

func (s Secret) GoString() string {
	return `core.Secret("` + redacted + `")`
}

// Format implements fmt.Formatter so that %x, %q and friends cannot leak the value either.
func (s Secret) Format(f fmt.State, verb rune) {
	_, _ = io.WriteString(f, redacted)
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// Credentials holds API authentication material and the environment mode for one client.
// It is immutable after construction and safe to share across goroutines.
type Credentials struct {
	apiKey     string
	secret     Secret
	passphrase Secret
	sandbox    bool
}

// NewCredentials builds Credentials from a flat configuration mapping.
// The key, secret and passphrase entries are required; is_demo is optional and
// defaults to false when absent or not exactly "true" or "false".
func NewCredentials(cfg map[string]string) (*Credentials, error) {
	var missing []string
	for _, k := range []string{ConfigKeyAPIKey, ConfigKeySecret, ConfigKeyPassphrase} {
		if strings.TrimSpace(cfg[k]) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, NewExchangeError("", ErrorTypeConfiguration, 0,
			fmt.Sprintf("missing configuration keys: %s", strings.Join(missing, ", "))).
			WithCode(ErrCodeNoCredentials).
			WithCause(ErrMissingCredential)
	}

	return &Credentials{
		apiKey:     cfg[ConfigKeyAPIKey],
		secret:     Secret(cfg[ConfigKeySecret]),
		passphrase: Secret(cfg[ConfigKeyPassphrase]),
		sandbox:    parseDemoFlag(cfg[ConfigKeyDemo]),
	}, nil
}

// parseDemoFlag accepts only the literal "true"; "1", "TRUE" and garbage stay false.
func parseDemoFlag(v string) bool {
	return v == "true"
}

// APIKey returns the public API key identifier.
func (c *Credentials) APIKey() string {
	return c.apiKey
}

// Secret returns the signing secret.
func (c *Credentials) Secret() Secret {
	return c.secret
}

// Passphrase returns the API passphrase.
func (c *Credentials) Passphrase() Secret {
	return c.passphrase
}

// Sandbox reports whether requests target the simulated trading environment.
func (c *Credentials) Sandbox() bool {
	return c.sandbox
}

func (c *Credentials) String() string {
	return fmt.Sprintf("Credentials{Key:%s, Secret:%s, Passphrase:%s, Sandbox:%t}",
		maskKey(c.apiKey), c.secret, c.passphrase, c.sandbox)
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
