// Package api implements the low-level REST transport for the PayByte
// gateway. Applications normally use the higher-level sdk package; this one
// is for callers that need direct control over the transport.
//
// # Request Signing
//
// Every request carries the merchant identifier and an HMAC-SHA256 hex
// digest of the exact request body (an empty body signs zero bytes), keyed
// with the API key:
//
//	X-Merchant-Id:    merchant-42
//	X-Api-Signature:  9c2f41...
//
// The gateway rejects requests whose signature does not match, so a body can
// not be altered in transit without invalidating the call.
//
// # Idempotency
//
// CreateInvoice and CreateStaticWallet attach an X-Idempotency-Key generated
// once per logical call. The same key and the same body bytes are re-sent on
// every retry attempt, so a replayed POST after a network failure cannot
// create a duplicate resource.
//
// # Errors and Retries
//
// Non-2xx responses decode into *Error carrying the gateway code, message,
// HTTP status, and raw body. Error implements retry.StatusCoder, which is how
// the retry executor separates client faults (400/401/403, surfaced
// immediately) from transient failures (retried per the client's policy).
// Transport-level failures that never produced a status are retried too.
//
// # Envelope
//
// Success responses arrive as {"result": ...}; failures as
// {"code": "...", "message": "..."}. Decoding is internal to the package;
// methods return typed model values.
package api
