// Package config defines the runtime configuration for the SDK: merchant
// credentials, gateway endpoint, webhook secret, debug mode, operation
// timeouts, and retry policy. It also provides validation, defaulting, and
// environment loading helpers.
//
// Validate applies implicit defaults (production BaseURL) and checks required
// fields; Timeouts.WithDefaults fills per-operation deadlines. FromEnv builds
// a Config from PAYBYTE_* environment variables, reading a .env file first
// when one is present:
//
//	cfg := config.FromEnv()
//	if err := cfg.Validate(); err != nil {
//		log.Fatal(err)
//	}
package config
