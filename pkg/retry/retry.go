package retry

import (
	"context"
	"errors"
	"math"
	"time"
)

// Policy controls one retry sequence. Zero fields are filled by WithDefaults;
// a Policy is a plain value and is never mutated by the executor.
type Policy struct {
	// MaxRetries is the number of re-attempts after the first one, so an
	// always-failing operation runs MaxRetries+1 times. Zero means "use the
	// default"; pass a negative value for explicitly no retries.
	MaxRetries int
	// InitialDelay is the wait before the first re-attempt.
	InitialDelay time.Duration
	// BackoffMultiplier is the geometric growth factor applied to the delay
	// between successive attempts. Must be > 1 for a growing schedule.
	BackoffMultiplier float64
}

// DefaultPolicy returns the policy applied when callers pass a zero Policy:
// 3 retries, 1s initial delay, doubling between attempts.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:        3,
		InitialDelay:      time.Second,
		BackoffMultiplier: 2,
	}
}

// WithDefaults returns a copy of p with zero values replaced by the
// DefaultPolicy values. A negative MaxRetries is normalized to 0 (single
// attempt, no retries); zero takes the default of 3.
func (p Policy) WithDefaults() Policy {
	pp := p
	def := DefaultPolicy()
	switch {
	case pp.MaxRetries < 0:
		pp.MaxRetries = 0
	case pp.MaxRetries == 0:
		pp.MaxRetries = def.MaxRetries
	}
	if pp.InitialDelay == 0 {
		pp.InitialDelay = def.InitialDelay
	}
	if pp.BackoffMultiplier == 0 {
		pp.BackoffMultiplier = def.BackoffMultiplier
	}
	return pp
}

// delay returns the wait before re-attempt number attempt (0-based):
// InitialDelay * BackoffMultiplier^attempt.
func (p Policy) delay(attempt int) time.Duration {
	d := float64(p.InitialDelay) * math.Pow(p.BackoffMultiplier, float64(attempt))
	return time.Duration(d)
}

// StatusCoder is implemented by errors that carry the HTTP status of a
// completed gateway response. Transport failures that never produced a status
// (DNS, refused connection, timeout) do not implement it and are classified
// as transient.
type StatusCoder interface {
	StatusCode() int
}

// Retryable reports whether err is worth another attempt. The decision is an
// explicit branch, not exception-type inspection:
//
//   - context cancellation / deadline errors are never retried;
//   - a StatusCoder with status 400, 401, or 403 is a client fault and is
//     never retried;
//   - everything else (network errors, 5xx, missing status) is transient.
func Retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var sc StatusCoder
	if errors.As(err, &sc) {
		switch sc.StatusCode() {
		case 400, 401, 403:
			return false
		}
	}
	return true
}

// sleep waits for d or until ctx is done. Overridable in tests to record the
// delay schedule without real waiting.
var sleep = func(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do runs op until it succeeds, fails fatally, or the policy is exhausted.
// A zero Policy means DefaultPolicy. The result of the successful attempt is
// returned as-is; on exhaustion the error of the last attempt is returned
// untouched. Cancelling ctx during an inter-attempt wait aborts the loop with
// ctx.Err().
//
// op may run up to MaxRetries+1 times, so it must be safe to repeat; callers
// issuing non-idempotent requests attach idempotency keys before entering the
// loop.
func Do[T any](ctx context.Context, p Policy, op func(context.Context) (T, error)) (T, error) {
	p = p.WithDefaults()

	var zero T
	for attempt := 0; ; attempt++ {
		res, err := op(ctx)
		if err == nil {
			return res, nil
		}
		if !Retryable(err) || attempt >= p.MaxRetries {
			return zero, err
		}
		if serr := sleep(ctx, p.delay(attempt)); serr != nil {
			return zero, serr
		}
	}
}
