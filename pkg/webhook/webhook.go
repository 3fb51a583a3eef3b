package webhook

import (
	"encoding/json"
	"fmt"

	"github.com/paybyte/paybyte-sdk-go/pkg/model"
	"github.com/paybyte/paybyte-sdk-go/pkg/sign"
)

// compute is indirect so tests can assert that rejected-early paths never
// touch the hash function.
var compute = func(secret string, body []byte) string {
	return sign.HMACSHA256Hex([]byte(secret), body)
}

// ComputeSignature returns the hex HMAC-SHA256 digest of body keyed with
// secret. The gateway puts this value in the X-Paybyte-Signature header of
// every delivery; test tooling uses it to construct valid payloads.
func ComputeSignature(secret string, body []byte) string {
	return compute(secret, body)
}

// VerifySignature reports whether signature authenticates body.
//
// body must be the raw bytes exactly as received from the wire, before any
// JSON parsing. Re-serializing a parsed payload reorders fields and breaks
// verification for legitimate deliveries.
//
// An empty signature fails immediately without computing any digest. The
// comparison is length-checked and constant-time. VerifySignature never
// returns an error; false always means "reject the request".
func VerifySignature(secret string, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	return sign.Equal(ComputeSignature(secret, body), signature)
}

// Parse decodes a webhook body into a model.WebhookEvent. Parse does not
// verify anything; call VerifySignature on the same raw bytes first.
func Parse(body []byte) (*model.WebhookEvent, error) {
	var ev model.WebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, fmt.Errorf("decode webhook body: %w", err)
	}
	if ev.Type == "" {
		return nil, fmt.Errorf("webhook body has no event type")
	}
	return &ev, nil
}

// Verifier binds a webhook secret so call sites don't thread it through every
// verification. The zero value rejects everything.
type Verifier struct {
	secret string
}

// NewVerifier creates a Verifier for the given shared secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// Verify reports whether signature authenticates body. See VerifySignature.
func (v *Verifier) Verify(body []byte, signature string) bool {
	if v.secret == "" {
		return false
	}
	return VerifySignature(v.secret, body, signature)
}

// ParseAndVerify verifies the raw body first and decodes it only on success.
func (v *Verifier) ParseAndVerify(body []byte, signature string) (*model.WebhookEvent, error) {
	if !v.Verify(body, signature) {
		return nil, ErrBadSignature
	}
	return Parse(body)
}
