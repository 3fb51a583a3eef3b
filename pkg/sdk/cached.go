package sdk

import (
	"context"
	"time"

	"github.com/paybyte/paybyte-sdk-go/pkg/api"
	"github.com/paybyte/paybyte-sdk-go/pkg/cache"
	"github.com/paybyte/paybyte-sdk-go/pkg/model"
)

// cachedClient serves read-mostly calls from a TTL store and delegates
// everything else to the wrapped client. The inner client is an injected
// capability: any Client works, including Core and mock.Client.
type cachedClient struct {
	inner Client
	store *cache.Store
}

// WithCache wraps inner so that Balances, ExchangeRate, Stats, and terminal
// invoice lookups are served from an in-process cache for ttl. Invoices whose
// status can still change are always fetched fresh; mutations through the
// wrapper invalidate the affected entries.
func WithCache(inner Client, ttl time.Duration) Client {
	return &cachedClient{
		inner: inner,
		store: cache.New(ttl),
	}
}

func (c *cachedClient) Balances(ctx context.Context) ([]model.Balance, error) {
	const key = "balances"
	if v, ok := c.store.Get(key); ok {
		return v.([]model.Balance), nil
	}
	balances, err := c.inner.Balances(ctx)
	if err != nil {
		return nil, err
	}
	c.store.Set(key, balances)
	return balances, nil
}

func (c *cachedClient) ExchangeRate(ctx context.Context, from, to string) (*model.ExchangeRate, error) {
	key := "rate:" + from + ":" + to
	if v, ok := c.store.Get(key); ok {
		return v.(*model.ExchangeRate), nil
	}
	rate, err := c.inner.ExchangeRate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	c.store.Set(key, rate)
	return rate, nil
}

func (c *cachedClient) Stats(ctx context.Context, req api.StatsRequest) (*model.Stats, error) {
	key := "stats:" + req.From.UTC().Format(time.RFC3339) + ":" + req.To.UTC().Format(time.RFC3339)
	if v, ok := c.store.Get(key); ok {
		return v.(*model.Stats), nil
	}
	stats, err := c.inner.Stats(ctx, req)
	if err != nil {
		return nil, err
	}
	c.store.Set(key, stats)
	return stats, nil
}

func (c *cachedClient) GetInvoice(ctx context.Context, invoiceUUID string) (*model.Invoice, error) {
	key := "invoice:" + invoiceUUID
	if v, ok := c.store.Get(key); ok {
		return v.(*model.Invoice), nil
	}
	inv, err := c.inner.GetInvoice(ctx, invoiceUUID)
	if err != nil {
		return nil, err
	}
	// Only terminal invoices are immutable; a pending one may flip to paid
	// between polls and must not be served stale.
	if inv.Status.Terminal() {
		c.store.Set(key, inv)
	}
	return inv, nil
}

func (c *cachedClient) CreateInvoice(ctx context.Context, req api.CreateInvoiceRequest) (*model.Invoice, error) {
	inv, err := c.inner.CreateInvoice(ctx, req)
	if err != nil {
		return nil, err
	}
	// New invoices change upcoming stats and balances.
	c.store.Delete("balances")
	return inv, nil
}

func (c *cachedClient) CancelInvoice(ctx context.Context, invoiceUUID string) (*model.Invoice, error) {
	inv, err := c.inner.CancelInvoice(ctx, invoiceUUID)
	if err != nil {
		return nil, err
	}
	c.store.Delete("invoice:" + invoiceUUID)
	return inv, nil
}

func (c *cachedClient) ListInvoices(ctx context.Context, req api.ListInvoicesRequest) (*model.InvoicePage, error) {
	return c.inner.ListInvoices(ctx, req)
}

func (c *cachedClient) CreateStaticWallet(ctx context.Context, req api.CreateStaticWalletRequest) (*model.StaticWallet, error) {
	return c.inner.CreateStaticWallet(ctx, req)
}

func (c *cachedClient) ListStaticWallets(ctx context.Context) ([]model.StaticWallet, error) {
	return c.inner.ListStaticWallets(ctx)
}

func (c *cachedClient) BlockStaticWallet(ctx context.Context, walletUUID string) (*model.StaticWallet, error) {
	return c.inner.BlockStaticWallet(ctx, walletUUID)
}
