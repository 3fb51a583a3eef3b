package webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/paybyte/paybyte-sdk-go/pkg/model"
	"go.uber.org/zap"
)

// SignatureHeader is the header the gateway uses to deliver the HMAC digest.
const SignatureHeader = "X-Paybyte-Signature"

// ErrBadSignature is returned by ParseAndVerify when the signature is missing
// or does not authenticate the body.
var ErrBadSignature = errors.New("webhook signature verification failed")

// maxBodyBytes caps webhook bodies; gateway deliveries are a few KB.
const maxBodyBytes = 1 << 20

// EventFunc handles one verified webhook event. A non-nil error makes the
// handler respond 500 so the gateway redelivers.
type EventFunc func(r *http.Request, ev *model.WebhookEvent) error

// NewHandler returns an http.Handler that authenticates and dispatches
// gateway webhook deliveries. The body is read raw and verified before any
// parsing; unverified requests are rejected with 401 and never reach fn.
func NewHandler(secret string, fn EventFunc) http.Handler {
	v := NewVerifier(secret)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if !v.Verify(body, r.Header.Get(SignatureHeader)) {
			zap.L().Warn("rejected webhook with bad signature", zap.String("remote", r.RemoteAddr))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ev, err := Parse(body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := fn(r, ev); err != nil {
			zap.L().Error("webhook handler failed", zap.String("event", ev.Type), zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
