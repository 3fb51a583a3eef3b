// Package sdk is the entry point of the PayByte Go SDK.
//
// # Quick Start
//
//	cfg := &config.Config{
//		MerchantID: "your-merchant-id",
//		APIKey:     "your-api-key",
//	}
//	client, err := sdk.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	inv, err := client.CreateInvoice(ctx, api.CreateInvoiceRequest{
//		OrderID:  "order-1001",
//		Amount:   decimal.RequireFromString("49.90"),
//		Currency: "USDT",
//	})
//
// Credentials can also come from the environment (PAYBYTE_MERCHANT_ID,
// PAYBYTE_API_KEY, ...) via config.FromEnv.
//
// # Retries
//
// Every call goes through the retry executor: transient failures (network
// errors, 5xx) are re-attempted with exponential backoff, while 400/401/403
// responses surface immediately. The policy lives in Config.Retry; zero
// fields mean 3 retries starting at 1s and doubling. Creation endpoints
// attach an idempotency key that stays stable across the retries of one
// call, so a replayed POST cannot double-create an invoice or wallet.
//
// # Caching
//
// WithCache composes a TTL cache over any Client:
//
//	cached := sdk.WithCache(client, 30*time.Second)
//
// Balances, exchange rates, stats, and terminal invoice lookups are served
// from the cache; everything else passes through. Because the wrapper takes
// the Client interface, it stacks over mock.Client in tests the same way.
//
// # Webhooks
//
// Core binds a webhook.Verifier to the configured secret:
//
//	http.Handle("/paybyte/webhook", client.WebhookHandler(onEvent))
//
// # Logging
//
// The package installs a default global zap logger in init. Applications
// with their own logging call zap.ReplaceGlobals to take over; Config.Debug
// turns on request/response tracing.
//
// # Testing Applications
//
// mock.Client implements the same Client interface with one function field
// per method, and webhook.ComputeSignature builds valid webhook deliveries
// for handler tests.
package sdk
