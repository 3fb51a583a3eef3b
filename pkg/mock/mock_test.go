package mock_test

import (
	"context"
	"strings"
	"testing"

	"github.com/paybyte/paybyte-sdk-go/pkg/api"
	"github.com/paybyte/paybyte-sdk-go/pkg/mock"
	"github.com/paybyte/paybyte-sdk-go/pkg/model"
	"github.com/paybyte/paybyte-sdk-go/pkg/sdk"
)

// Compile-time check that the mock satisfies the SDK interface.
var _ sdk.Client = (*mock.Client)(nil)

func TestClient_UnsetMethodFails(t *testing.T) {
	var m mock.Client

	_, err := m.CreateInvoice(context.Background(), api.CreateInvoiceRequest{})
	if err == nil {
		t.Fatal("unset method should fail")
	}
	if !strings.Contains(err.Error(), "CreateInvoice") {
		t.Fatalf("error should name the method, got %q", err)
	}

	if _, err := m.Balances(context.Background()); err == nil || !strings.Contains(err.Error(), "Balances") {
		t.Fatalf("expected descriptive Balances error, got %v", err)
	}
}

func TestClient_DelegatesToFunc(t *testing.T) {
	m := &mock.Client{
		GetInvoiceFunc: func(_ context.Context, invoiceUUID string) (*model.Invoice, error) {
			return &model.Invoice{UUID: invoiceUUID, Status: model.InvoiceStatusPaid}, nil
		},
	}

	inv, err := m.GetInvoice(context.Background(), "inv-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.UUID != "inv-7" || inv.Status != model.InvoiceStatusPaid {
		t.Fatalf("unexpected invoice: %+v", inv)
	}
}
