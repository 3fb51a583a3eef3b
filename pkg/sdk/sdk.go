// Package sdk exposes the high-level PayByte SDK entry points. It wires
// together the signed REST transport, retry policy, webhook verification,
// and optional response caching.
package sdk

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/paybyte/paybyte-sdk-go/pkg/api"
	"github.com/paybyte/paybyte-sdk-go/pkg/config"
	"github.com/paybyte/paybyte-sdk-go/pkg/model"
	"github.com/paybyte/paybyte-sdk-go/pkg/webhook"
	"go.uber.org/zap"
)

// Client is the public surface of the SDK: every gateway operation an
// application performs. It is implemented by Core, by the caching wrapper
// returned from WithCache, and by mock.Client for tests.
type Client interface {
	// CreateInvoice registers a new payment request with the gateway.
	CreateInvoice(ctx context.Context, req api.CreateInvoiceRequest) (*model.Invoice, error)
	// GetInvoice fetches the current state of one invoice by gateway UUID.
	GetInvoice(ctx context.Context, invoiceUUID string) (*model.Invoice, error)
	// ListInvoices returns one page of invoices matching the filter.
	ListInvoices(ctx context.Context, req api.ListInvoicesRequest) (*model.InvoicePage, error)
	// CancelInvoice cancels a pending invoice.
	CancelInvoice(ctx context.Context, invoiceUUID string) (*model.Invoice, error)

	// Balances returns the merchant's funds per currency.
	Balances(ctx context.Context) ([]model.Balance, error)
	// Stats returns aggregated payment activity for a reporting window.
	Stats(ctx context.Context, req api.StatsRequest) (*model.Stats, error)
	// ExchangeRate returns the gateway's current conversion quote.
	ExchangeRate(ctx context.Context, from, to string) (*model.ExchangeRate, error)

	// CreateStaticWallet issues a persistent deposit address.
	CreateStaticWallet(ctx context.Context, req api.CreateStaticWalletRequest) (*model.StaticWallet, error)
	// ListStaticWallets returns all static wallets of the merchant.
	ListStaticWallets(ctx context.Context) ([]model.StaticWallet, error)
	// BlockStaticWallet stops crediting deposits to a wallet.
	BlockStaticWallet(ctx context.Context, walletUUID string) (*model.StaticWallet, error)
}

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Core is the concrete SDK implementation: the signed transport plus the
// webhook verifier built from the configured secret.
type Core struct {
	*api.Client

	cfg      *config.Config
	verifier *webhook.Verifier
}

// New initializes the SDK with validated configuration. Timeout defaults are
// applied; the returned Core is safe for concurrent use.
func New(cfg *config.Config, opts ...api.Option) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.Timeouts = cfg.Timeouts.WithDefaults()

	httpClient := &http.Client{
		Timeout: cfg.Timeouts.HTTP,
		Transport: &http.Transport{
			DialContext:         (&net.Dialer{Timeout: cfg.Timeouts.Dial}).DialContext,
			ForceAttemptHTTP2:   true,
			MaxIdleConnsPerHost: 8,
		},
	}

	base := []api.Option{
		api.WithHTTPClient(httpClient),
		api.WithRetryPolicy(cfg.Retry),
		api.WithDebug(cfg.Debug),
	}
	client := api.NewClient(cfg.BaseURL, cfg.MerchantID, cfg.APIKey, append(base, opts...)...)

	if cfg.Debug {
		zap.L().Debug("paybyte SDK initialized",
			zap.String("base_url", cfg.BaseURL),
			zap.String("merchant", cfg.MerchantID))
	}

	return &Core{
		Client:   client,
		cfg:      cfg,
		verifier: webhook.NewVerifier(cfg.WebhookSecret),
	}, nil
}

// Webhooks returns the verifier bound to the configured webhook secret.
func (c *Core) Webhooks() *webhook.Verifier {
	return c.verifier
}

// WebhookHandler returns an http.Handler that authenticates gateway
// deliveries with the configured secret and dispatches them to fn.
func (c *Core) WebhookHandler(fn webhook.EventFunc) http.Handler {
	return webhook.NewHandler(c.cfg.WebhookSecret, fn)
}
