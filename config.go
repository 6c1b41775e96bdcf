package braspag

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

// Config selects the environment and credentials for a Client.
type Config struct {
	// MerchantID is the merchant's GUID assigned by Braspag.
	MerchantID string `koanf:"merchant_id" validate:"required"`

	// Sandbox selects the homologation environment instead of
	// production.
	Sandbox bool `koanf:"sandbox"`

	// Timeout bounds each HTTP round-trip. Zero means 20s. Ignored
	// when HTTPClient is set.
	Timeout time.Duration `koanf:"timeout"`

	// BaseURL overrides the environment selection entirely. Meant for
	// tests and local stubs.
	BaseURL string `koanf:"base_url"`

	HTTPClient *http.Client `koanf:"-"`
	Logger     *slog.Logger `koanf:"-"`
}

// LoadConfig reads the configuration from BRASPAG_-prefixed environment
// variables (a .env file is honored when present), e.g.
// BRASPAG_MERCHANT_ID and BRASPAG_SANDBOX.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("BRASPAG_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "BRASPAG_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
