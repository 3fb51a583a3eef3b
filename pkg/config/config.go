package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/paybyte/paybyte-sdk-go/pkg/retry"
)

// DefaultBaseURL is the production gateway endpoint used when Config.BaseURL
// is empty.
const DefaultBaseURL = "https://api.paybyte.io"

// Config holds all SDK settings required to talk to the gateway.
// Use Validate to fill implicit defaults and to check for required fields.
type Config struct {
	// MerchantID identifies the merchant account (required).
	MerchantID string `json:"merchant_id" yaml:"merchant_id"`
	// APIKey is the shared secret used to sign outbound requests (required).
	APIKey string `json:"api_key" yaml:"api_key"`
	// WebhookSecret is the shared secret used to verify inbound webhook
	// signatures (optional if the application never receives webhooks).
	WebhookSecret string `json:"webhook_secret" yaml:"webhook_secret"`
	// BaseURL is the gateway endpoint. Default: DefaultBaseURL.
	BaseURL string `json:"base_url" yaml:"base_url"`
	// Debug enables verbose request/response logging.
	Debug bool `json:"debug" yaml:"debug"`
	// Timeouts configures per-operation deadlines. See Timeouts.WithDefaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
	// Retry is the default retry policy applied to every API call. Zero
	// fields fall back to retry.DefaultPolicy values.
	Retry retry.Policy `json:"retry" yaml:"retry"`
}

// Timeouts controls SDK operation deadlines.
// Zero values will be replaced by sane defaults in WithDefaults.
type Timeouts struct {
	Dial time.Duration // TCP/TLS connect
	HTTP time.Duration // whole request/response round trip
}

// Validate normalizes the configuration by applying implicit defaults for
// BaseURL and verifies that MerchantID and APIKey are provided.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.MerchantID == "" {
		return errors.New("merchant ID is required")
	}
	if c.APIKey == "" {
		return errors.New("API key is required")
	}
	return nil
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Dial: 5s
//	HTTP: 30s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Dial == 0 {
		tt.Dial = 5 * time.Second
	}
	if tt.HTTP == 0 {
		tt.HTTP = 30 * time.Second
	}
	return tt
}

// FromEnv builds a Config from environment variables, loading a .env file
// first when one is present (missing .env is not an error):
//
//	PAYBYTE_MERCHANT_ID
//	PAYBYTE_API_KEY
//	PAYBYTE_WEBHOOK_SECRET
//	PAYBYTE_BASE_URL
//	PAYBYTE_DEBUG ("1"/"true")
//
// The returned config is not validated; call Validate before use.
func FromEnv() *Config {
	_ = godotenv.Load()

	debug, _ := strconv.ParseBool(os.Getenv("PAYBYTE_DEBUG"))
	return &Config{
		MerchantID:    os.Getenv("PAYBYTE_MERCHANT_ID"),
		APIKey:        os.Getenv("PAYBYTE_API_KEY"),
		WebhookSecret: os.Getenv("PAYBYTE_WEBHOOK_SECRET"),
		BaseURL:       os.Getenv("PAYBYTE_BASE_URL"),
		Debug:         debug,
	}
}
