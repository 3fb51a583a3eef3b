// Package model defines the data structures exchanged with the PayByte
// gateway: invoices, merchant balances, static deposit wallets, payment
// statistics, exchange rates, and webhook events. These structs mirror the
// JSON documents of the gateway's REST API.
//
// # Amounts
//
// All monetary figures are decimal.Decimal; float64 is never used for
// amounts. The gateway serializes amounts as JSON strings ("10.50"), which
// decimal decodes exactly — binary floating point would corrupt sub-satoshi
// crypto quantities.
//
// # Invoice Identity
//
// An invoice carries two identifiers: ID is the merchant-side order
// reference supplied at creation, UUID is assigned by the gateway and used
// in API paths and webhooks.
//
// # Lifecycle
//
// InvoiceStatus.Terminal reports whether a status can still change; paid,
// expired, and cancelled invoices are final and safe to cache or reconcile
// against.
package model
