package mock

import (
	"context"
	"fmt"

	"github.com/paybyte/paybyte-sdk-go/pkg/api"
	"github.com/paybyte/paybyte-sdk-go/pkg/model"
)

// Client implements sdk.Client by delegating each method to the matching
// function field. The zero value is usable: every call fails until its field
// is set.
type Client struct {
	CreateInvoiceFunc      func(ctx context.Context, req api.CreateInvoiceRequest) (*model.Invoice, error)
	GetInvoiceFunc         func(ctx context.Context, invoiceUUID string) (*model.Invoice, error)
	ListInvoicesFunc       func(ctx context.Context, req api.ListInvoicesRequest) (*model.InvoicePage, error)
	CancelInvoiceFunc      func(ctx context.Context, invoiceUUID string) (*model.Invoice, error)
	BalancesFunc           func(ctx context.Context) ([]model.Balance, error)
	StatsFunc              func(ctx context.Context, req api.StatsRequest) (*model.Stats, error)
	ExchangeRateFunc       func(ctx context.Context, from, to string) (*model.ExchangeRate, error)
	CreateStaticWalletFunc func(ctx context.Context, req api.CreateStaticWalletRequest) (*model.StaticWallet, error)
	ListStaticWalletsFunc  func(ctx context.Context) ([]model.StaticWallet, error)
	BlockStaticWalletFunc  func(ctx context.Context, walletUUID string) (*model.StaticWallet, error)
}

func notImplemented(method string) error {
	return fmt.Errorf("mock: %s not implemented", method)
}

func (c *Client) CreateInvoice(ctx context.Context, req api.CreateInvoiceRequest) (*model.Invoice, error) {
	if c.CreateInvoiceFunc == nil {
		return nil, notImplemented("CreateInvoice")
	}
	return c.CreateInvoiceFunc(ctx, req)
}

func (c *Client) GetInvoice(ctx context.Context, invoiceUUID string) (*model.Invoice, error) {
	if c.GetInvoiceFunc == nil {
		return nil, notImplemented("GetInvoice")
	}
	return c.GetInvoiceFunc(ctx, invoiceUUID)
}

func (c *Client) ListInvoices(ctx context.Context, req api.ListInvoicesRequest) (*model.InvoicePage, error) {
	if c.ListInvoicesFunc == nil {
		return nil, notImplemented("ListInvoices")
	}
	return c.ListInvoicesFunc(ctx, req)
}

func (c *Client) CancelInvoice(ctx context.Context, invoiceUUID string) (*model.Invoice, error) {
	if c.CancelInvoiceFunc == nil {
		return nil, notImplemented("CancelInvoice")
	}
	return c.CancelInvoiceFunc(ctx, invoiceUUID)
}

func (c *Client) Balances(ctx context.Context) ([]model.Balance, error) {
	if c.BalancesFunc == nil {
		return nil, notImplemented("Balances")
	}
	return c.BalancesFunc(ctx)
}

func (c *Client) Stats(ctx context.Context, req api.StatsRequest) (*model.Stats, error) {
	if c.StatsFunc == nil {
		return nil, notImplemented("Stats")
	}
	return c.StatsFunc(ctx, req)
}

func (c *Client) ExchangeRate(ctx context.Context, from, to string) (*model.ExchangeRate, error) {
	if c.ExchangeRateFunc == nil {
		return nil, notImplemented("ExchangeRate")
	}
	return c.ExchangeRateFunc(ctx, from, to)
}

func (c *Client) CreateStaticWallet(ctx context.Context, req api.CreateStaticWalletRequest) (*model.StaticWallet, error) {
	if c.CreateStaticWalletFunc == nil {
		return nil, notImplemented("CreateStaticWallet")
	}
	return c.CreateStaticWalletFunc(ctx, req)
}

func (c *Client) ListStaticWallets(ctx context.Context) ([]model.StaticWallet, error) {
	if c.ListStaticWalletsFunc == nil {
		return nil, notImplemented("ListStaticWallets")
	}
	return c.ListStaticWalletsFunc(ctx)
}

func (c *Client) BlockStaticWallet(ctx context.Context, walletUUID string) (*model.StaticWallet, error) {
	if c.BlockStaticWalletFunc == nil {
		return nil, notImplemented("BlockStaticWallet")
	}
	return c.BlockStaticWalletFunc(ctx, walletUUID)
}
