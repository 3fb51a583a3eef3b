package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice as reported by the
// gateway.
type InvoiceStatus string

const (
	// InvoiceStatusPending means the invoice was created and is awaiting payment.
	InvoiceStatusPending InvoiceStatus = "pending"
	// InvoiceStatusConfirming means a payment was detected and is waiting for
	// network confirmations.
	InvoiceStatusConfirming InvoiceStatus = "confirming"
	// InvoiceStatusPaid means the invoice was paid in full.
	InvoiceStatusPaid InvoiceStatus = "paid"
	// InvoiceStatusPartiallyPaid means a payment arrived below the requested amount.
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	// InvoiceStatusExpired means the payment window closed without payment.
	InvoiceStatusExpired InvoiceStatus = "expired"
	// InvoiceStatusCancelled means the merchant cancelled the invoice.
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Terminal reports whether the status can no longer change. Terminal invoices
// are safe to cache indefinitely and to reconcile against.
func (s InvoiceStatus) Terminal() bool {
	switch s {
	case InvoiceStatusPaid, InvoiceStatusExpired, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Invoice is a payment request tracked by the gateway. ID is the merchant-side
// order reference; UUID is the gateway-assigned identifier used in API paths.
type Invoice struct {
	ID       string          `json:"order_id"`
	UUID     string          `json:"uuid"`
	Status   InvoiceStatus   `json:"status"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	// PayAmount and PayCurrency describe what the payer actually sends, which
	// may differ from the priced amount when the gateway converts.
	PayAmount   decimal.Decimal `json:"pay_amount"`
	PayCurrency string          `json:"pay_currency"`
	// Paid accumulates confirmed payments toward the invoice.
	Paid      decimal.Decimal `json:"paid_amount"`
	Address   string          `json:"address,omitempty"`
	PayURL    string          `json:"pay_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// InvoicePage is one page of an invoice listing. Cursor is opaque; an empty
// cursor means the listing is exhausted.
type InvoicePage struct {
	Items  []Invoice `json:"items"`
	Cursor string    `json:"cursor,omitempty"`
}

// Balance is the merchant's funds in one currency. Available excludes Locked,
// which is held against in-flight withdrawals.
type Balance struct {
	Currency  string          `json:"currency"`
	Available decimal.Decimal `json:"available"`
	Locked    decimal.Decimal `json:"locked"`
}

// WalletStatus is the state of a static deposit wallet.
type WalletStatus string

const (
	// WalletStatusActive means the wallet accepts deposits.
	WalletStatusActive WalletStatus = "active"
	// WalletStatusBlocked means incoming deposits are no longer credited.
	WalletStatusBlocked WalletStatus = "blocked"
)

// StaticWallet is a persistent deposit address issued by the gateway for
// receiving repeated payments in one currency.
type StaticWallet struct {
	UUID     string       `json:"uuid"`
	Currency string       `json:"currency"`
	Network  string       `json:"network"`
	Address  string       `json:"address"`
	Status   WalletStatus `json:"status"`
	// Label is the merchant-supplied tag, typically a customer identifier.
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats aggregates payment activity over a reporting window.
type Stats struct {
	From           time.Time                  `json:"from"`
	To             time.Time                  `json:"to"`
	InvoiceCount   int                        `json:"invoice_count"`
	PaidCount      int                        `json:"paid_count"`
	TurnoverByCoin map[string]decimal.Decimal `json:"turnover_by_coin"`
	// Turnover is the total settled volume converted to the merchant's
	// settlement currency.
	Turnover           decimal.Decimal `json:"turnover"`
	SettlementCurrency string          `json:"settlement_currency"`
}

// ExchangeRate is a point-in-time conversion quote between two currencies.
type ExchangeRate struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate"`
	At   time.Time       `json:"at"`
}

// WebhookEvent is the payload of a gateway notification. Invoice events carry
// the full invoice snapshot at the time of the status change.
type WebhookEvent struct {
	Type    string        `json:"event"`
	Invoice *Invoice      `json:"invoice,omitempty"`
	Wallet  *StaticWallet `json:"wallet,omitempty"`
	At      time.Time     `json:"at"`
}

// Webhook event types emitted by the gateway.
const (
	EventInvoicePaid          = "invoice.paid"
	EventInvoicePartiallyPaid = "invoice.partially_paid"
	EventInvoiceConfirming    = "invoice.confirming"
	EventInvoiceExpired       = "invoice.expired"
	EventInvoiceCancelled     = "invoice.cancelled"
	EventWalletDeposit        = "wallet.deposit"
)
