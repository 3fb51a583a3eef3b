package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/paybyte/paybyte-sdk-go/pkg/model"
)

// CreateStaticWalletRequest asks the gateway for a persistent deposit address.
type CreateStaticWalletRequest struct {
	Currency string `json:"currency"`
	// Network selects the chain when a currency exists on several, e.g.
	// USDT on "tron" vs "ethereum". Empty uses the gateway default.
	Network string `json:"network,omitempty"`
	// Label tags the wallet, typically with a customer identifier, and is
	// echoed back in wallet.deposit webhooks.
	Label       string `json:"label,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
}

// CreateStaticWallet issues a new static deposit wallet. Idempotent across
// retries of one call, like CreateInvoice.
func (c *Client) CreateStaticWallet(ctx context.Context, req CreateStaticWalletRequest) (*model.StaticWallet, error) {
	if req.Currency == "" {
		return nil, fmt.Errorf("wallet currency is required")
	}
	return call[model.StaticWallet](ctx, c, http.MethodPost, "/v1/wallets", nil, req, uuid.NewString())
}

// ListStaticWallets returns all static wallets of the merchant.
func (c *Client) ListStaticWallets(ctx context.Context) ([]model.StaticWallet, error) {
	res, err := call[[]model.StaticWallet](ctx, c, http.MethodGet, "/v1/wallets", nil, nil, "")
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// BlockStaticWallet stops crediting deposits to the wallet and returns its
// updated state. Funds already credited stay on the merchant balance.
func (c *Client) BlockStaticWallet(ctx context.Context, walletUUID string) (*model.StaticWallet, error) {
	if walletUUID == "" {
		return nil, fmt.Errorf("wallet UUID is required")
	}
	return call[model.StaticWallet](ctx, c, http.MethodPost, "/v1/wallets/"+url.PathEscape(walletUUID)+"/block", nil, nil, "")
}
