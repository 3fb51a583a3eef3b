package sdk_test

import (
	"context"
	"testing"
	"time"

	"github.com/paybyte/paybyte-sdk-go/pkg/api"
	"github.com/paybyte/paybyte-sdk-go/pkg/mock"
	"github.com/paybyte/paybyte-sdk-go/pkg/model"
	"github.com/paybyte/paybyte-sdk-go/pkg/sdk"
	"github.com/shopspring/decimal"
)

func TestWithCache_BalancesServedFromCache(t *testing.T) {
	calls := 0
	inner := &mock.Client{
		BalancesFunc: func(context.Context) ([]model.Balance, error) {
			calls++
			return []model.Balance{{Currency: "BTC", Available: decimal.New(1, 0)}}, nil
		},
	}

	c := sdk.WithCache(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		balances, err := c.Balances(ctx)
		if err != nil {
			t.Fatalf("balances: %v", err)
		}
		if len(balances) != 1 || balances[0].Currency != "BTC" {
			t.Fatalf("unexpected balances: %+v", balances)
		}
	}
	if calls != 1 {
		t.Fatalf("expected a single upstream call within TTL, got %d", calls)
	}
}

func TestWithCache_ExpiryRefetches(t *testing.T) {
	calls := 0
	inner := &mock.Client{
		ExchangeRateFunc: func(_ context.Context, from, to string) (*model.ExchangeRate, error) {
			calls++
			return &model.ExchangeRate{From: from, To: to, Rate: decimal.New(int64(calls), 0)}, nil
		},
	}

	// A very short TTL plus a sleep keeps this deterministic enough.
	c := sdk.WithCache(inner, 10*time.Millisecond)
	ctx := context.Background()

	if _, err := c.ExchangeRate(ctx, "BTC", "USDT"); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if _, err := c.ExchangeRate(ctx, "BTC", "USDT"); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected cached second read, got %d calls", calls)
	}

	time.Sleep(20 * time.Millisecond)
	if _, err := c.ExchangeRate(ctx, "BTC", "USDT"); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected refetch after TTL, got %d calls", calls)
	}
}

func TestWithCache_DistinctRateKeys(t *testing.T) {
	calls := 0
	inner := &mock.Client{
		ExchangeRateFunc: func(_ context.Context, from, to string) (*model.ExchangeRate, error) {
			calls++
			return &model.ExchangeRate{From: from, To: to}, nil
		},
	}
	c := sdk.WithCache(inner, time.Minute)
	ctx := context.Background()

	c.ExchangeRate(ctx, "BTC", "USDT")
	c.ExchangeRate(ctx, "ETH", "USDT")
	c.ExchangeRate(ctx, "BTC", "USDT")

	if calls != 2 {
		t.Fatalf("expected one upstream call per pair, got %d", calls)
	}
}

func TestWithCache_OnlyTerminalInvoicesCached(t *testing.T) {
	statuses := []model.InvoiceStatus{
		model.InvoiceStatusPending,
		model.InvoiceStatusPaid,
		model.InvoiceStatusPaid,
	}
	calls := 0
	inner := &mock.Client{
		GetInvoiceFunc: func(_ context.Context, invoiceUUID string) (*model.Invoice, error) {
			st := statuses[calls]
			calls++
			return &model.Invoice{UUID: invoiceUUID, Status: st}, nil
		},
	}
	c := sdk.WithCache(inner, time.Minute)
	ctx := context.Background()

	// Pending: never cached, each lookup hits upstream.
	inv, _ := c.GetInvoice(ctx, "inv-1")
	if inv.Status != model.InvoiceStatusPending {
		t.Fatalf("unexpected status %s", inv.Status)
	}
	inv, _ = c.GetInvoice(ctx, "inv-1")
	if inv.Status != model.InvoiceStatusPaid {
		t.Fatalf("second lookup should hit upstream, got %s", inv.Status)
	}

	// Paid is terminal: the third lookup is served from cache.
	inv, _ = c.GetInvoice(ctx, "inv-1")
	if inv.Status != model.InvoiceStatusPaid || calls != 2 {
		t.Fatalf("terminal invoice not cached (calls=%d)", calls)
	}
}

func TestWithCache_CancelInvalidatesInvoice(t *testing.T) {
	gets := 0
	inner := &mock.Client{
		GetInvoiceFunc: func(_ context.Context, invoiceUUID string) (*model.Invoice, error) {
			gets++
			st := model.InvoiceStatusExpired
			if gets > 1 {
				st = model.InvoiceStatusCancelled
			}
			return &model.Invoice{UUID: invoiceUUID, Status: st}, nil
		},
		CancelInvoiceFunc: func(_ context.Context, invoiceUUID string) (*model.Invoice, error) {
			return &model.Invoice{UUID: invoiceUUID, Status: model.InvoiceStatusCancelled}, nil
		},
	}
	c := sdk.WithCache(inner, time.Minute)
	ctx := context.Background()

	c.GetInvoice(ctx, "inv-1") // cached (terminal)
	if _, err := c.CancelInvoice(ctx, "inv-1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	inv, _ := c.GetInvoice(ctx, "inv-1")
	if gets != 2 || inv.Status != model.InvoiceStatusCancelled {
		t.Fatalf("cancel must invalidate the cached invoice (gets=%d status=%s)", gets, inv.Status)
	}
}

func TestWithCache_PassThroughOps(t *testing.T) {
	lists := 0
	inner := &mock.Client{
		ListInvoicesFunc: func(_ context.Context, _ api.ListInvoicesRequest) (*model.InvoicePage, error) {
			lists++
			return &model.InvoicePage{}, nil
		},
	}
	c := sdk.WithCache(inner, time.Minute)
	ctx := context.Background()

	c.ListInvoices(ctx, api.ListInvoicesRequest{})
	c.ListInvoices(ctx, api.ListInvoicesRequest{})
	if lists != 2 {
		t.Fatalf("listings must not be cached, got %d upstream calls", lists)
	}
}
