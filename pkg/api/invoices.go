package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/paybyte/paybyte-sdk-go/pkg/model"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest describes a new payment request. OrderID is the
// merchant-side reference the gateway echoes back in webhooks; it must be
// unique per merchant.
type CreateInvoiceRequest struct {
	OrderID  string          `json:"order_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	// PayCurrency pins the coin the payer must use; empty lets the payer
	// choose on the hosted payment page.
	PayCurrency string `json:"pay_currency,omitempty"`
	// LifetimeSeconds bounds the payment window. Zero means the gateway default.
	LifetimeSeconds int `json:"lifetime_seconds,omitempty"`
	// CallbackURL overrides the merchant's configured webhook endpoint for
	// this invoice only.
	CallbackURL string `json:"callback_url,omitempty"`
	Description string `json:"description,omitempty"`
}

// ListInvoicesRequest filters an invoice listing. The zero value lists
// everything from the beginning.
type ListInvoicesRequest struct {
	Status model.InvoiceStatus
	Cursor string
	Limit  int
}

// CreateInvoice registers a new invoice with the gateway.
//
// The request carries an idempotency key generated once per call, so a retry
// after a network failure cannot create a second invoice for the same
// attempt.
func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*model.Invoice, error) {
	return call[model.Invoice](ctx, c, http.MethodPost, "/v1/invoices", nil, req, uuid.NewString())
}

// GetInvoice fetches the current state of one invoice by gateway UUID.
func (c *Client) GetInvoice(ctx context.Context, invoiceUUID string) (*model.Invoice, error) {
	if invoiceUUID == "" {
		return nil, fmt.Errorf("invoice UUID is required")
	}
	return call[model.Invoice](ctx, c, http.MethodGet, "/v1/invoices/"+url.PathEscape(invoiceUUID), nil, nil, "")
}

// ListInvoices returns one page of invoices matching the filter. Pass the
// returned cursor back to continue; an empty cursor ends the listing.
func (c *Client) ListInvoices(ctx context.Context, req ListInvoicesRequest) (*model.InvoicePage, error) {
	q := url.Values{}
	if req.Status != "" {
		q.Set("status", string(req.Status))
	}
	if req.Cursor != "" {
		q.Set("cursor", req.Cursor)
	}
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	return call[model.InvoicePage](ctx, c, http.MethodGet, "/v1/invoices", q, nil, "")
}

// CancelInvoice cancels a pending invoice and returns its final state.
// Cancelling an already-terminal invoice fails with a 400-class gateway error.
func (c *Client) CancelInvoice(ctx context.Context, invoiceUUID string) (*model.Invoice, error) {
	if invoiceUUID == "" {
		return nil, fmt.Errorf("invoice UUID is required")
	}
	return call[model.Invoice](ctx, c, http.MethodPost, "/v1/invoices/"+url.PathEscape(invoiceUUID)+"/cancel", nil, nil, "")
}
