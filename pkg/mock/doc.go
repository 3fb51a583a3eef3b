// Package mock provides a function-field test double for sdk.Client so
// applications can unit test payment flows without a live gateway.
//
// Set only the funcs a test needs; calls to unset methods fail with a
// descriptive error instead of panicking:
//
//	m := &mock.Client{
//		GetInvoiceFunc: func(_ context.Context, uuid string) (*model.Invoice, error) {
//			return &model.Invoice{UUID: uuid, Status: model.InvoiceStatusPaid}, nil
//		},
//	}
//	svc := billing.New(m) // anything taking sdk.Client
//
// Because sdk.WithCache also takes the Client interface, the caching wrapper
// can be composed over a mock to test cache behavior in isolation.
package mock
