package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestInvoiceStatus_Terminal(t *testing.T) {
	terminal := []InvoiceStatus{InvoiceStatusPaid, InvoiceStatusExpired, InvoiceStatusCancelled}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
	open := []InvoiceStatus{InvoiceStatusPending, InvoiceStatusConfirming, InvoiceStatusPartiallyPaid}
	for _, s := range open {
		if s.Terminal() {
			t.Fatalf("%s should not be terminal", s)
		}
	}
}

func TestInvoice_DecodeDecimalAmounts(t *testing.T) {
	raw := []byte(`{
		"order_id": "order-17",
		"uuid": "9f6c8c1e-6f0a-4f57-9c45-2c7b8f0a1d2e",
		"status": "partially_paid",
		"amount": "199.90",
		"currency": "USDT",
		"pay_amount": "0.00314159",
		"pay_currency": "BTC",
		"paid_amount": "0.001"
	}`)

	var inv Invoice
	if err := json.Unmarshal(raw, &inv); err != nil {
		t.Fatalf("decode invoice: %v", err)
	}

	if !inv.Amount.Equal(decimal.RequireFromString("199.90")) {
		t.Fatalf("amount parsed as %s", inv.Amount)
	}
	if !inv.PayAmount.Equal(decimal.RequireFromString("0.00314159")) {
		t.Fatalf("pay_amount parsed as %s", inv.PayAmount)
	}
	if inv.Status != InvoiceStatusPartiallyPaid {
		t.Fatalf("unexpected status %s", inv.Status)
	}
	// The underpayment must be representable exactly.
	due := inv.PayAmount.Sub(inv.Paid)
	if due.String() != "0.00214159" {
		t.Fatalf("remaining due = %s", due)
	}
}

func TestWebhookEvent_Decode(t *testing.T) {
	raw := []byte(`{"event":"invoice.paid","invoice":{"uuid":"u-1","status":"paid","amount":"10.5","currency":"USDT"}}`)

	var ev WebhookEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if ev.Type != EventInvoicePaid {
		t.Fatalf("unexpected type %q", ev.Type)
	}
	if ev.Invoice == nil || ev.Invoice.Status != InvoiceStatusPaid {
		t.Fatalf("invoice snapshot missing or wrong: %+v", ev.Invoice)
	}
	if ev.Wallet != nil {
		t.Fatal("wallet should be nil for invoice events")
	}
}
