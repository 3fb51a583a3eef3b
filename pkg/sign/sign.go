package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HMACSHA256Hex computes the HMAC-SHA256 digest of payload keyed with secret
// and returns it as a lowercase hex string (64 characters).
func HMACSHA256Hex(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Equal reports whether two hex digests match. The comparison is length-checked
// and constant-time so that a mismatch position cannot be observed through
// response timing.
func Equal(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return hmac.Equal([]byte(a), []byte(b))
}
