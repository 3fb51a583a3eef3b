// Package sign implements the keyed-hash primitive shared by outbound request
// signing (pkg/api) and inbound webhook verification (pkg/webhook). The
// gateway signs and verifies every payload with HMAC-SHA256 over the exact
// byte sequence, hex-encoded to 64 lowercase characters.
package sign
