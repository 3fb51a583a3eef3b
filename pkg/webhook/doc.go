// Package webhook authenticates and parses asynchronous notifications sent by
// the PayByte gateway when an invoice or static wallet changes state.
//
// # Delivery Format
//
// The gateway POSTs a JSON body and puts an HMAC-SHA256 hex digest of that
// exact body, keyed with the merchant's webhook secret, in the
// X-Paybyte-Signature header:
//
//	POST /your/webhook HTTP/1.1
//	Content-Type: application/json
//	X-Paybyte-Signature: 46905a0d034a3d19...
//
//	{"event":"invoice.paid","invoice":{...}}
//
// # Verifying
//
// Verification must run on the raw request bytes, before any JSON decoding.
// A payload that is parsed and re-serialized will usually re-order fields or
// change whitespace, and a byte-different body produces a different digest,
// so legitimate deliveries would be rejected.
//
//	body, _ := io.ReadAll(r.Body)
//	if !webhook.VerifySignature(secret, body, r.Header.Get(webhook.SignatureHeader)) {
//		w.WriteHeader(http.StatusUnauthorized)
//		return
//	}
//	ev, err := webhook.Parse(body)
//
// VerifySignature returns a plain bool and never an error: a false result is
// an authorization decision the caller must act on, not a condition to log
// and ignore. A missing signature fails before any digest is computed, and
// the comparison itself is constant-time, so response timing reveals nothing
// about the expected signature.
//
// # Handler
//
// NewHandler packages the read-raw/verify/parse sequence as an http.Handler:
//
//	http.Handle("/webhook", webhook.NewHandler(secret, func(r *http.Request, ev *model.WebhookEvent) error {
//		switch ev.Type {
//		case model.EventInvoicePaid:
//			return orders.MarkPaid(r.Context(), ev.Invoice.ID)
//		}
//		return nil
//	}))
//
// The handler responds 401 for unverifiable deliveries, 400 for undecodable
// bodies, 500 when the event func fails (the gateway redelivers later), and
// 200 once the event was handled.
//
// # Constructing Test Payloads
//
// ComputeSignature is exported so application tests can build valid
// deliveries without a live gateway:
//
//	sig := webhook.ComputeSignature(secret, body)
package webhook
