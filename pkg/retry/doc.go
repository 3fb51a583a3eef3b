// Package retry executes gateway operations with exponential backoff.
//
// # Policy
//
// A Policy is a plain value: max retries, initial delay, and the geometric
// growth factor between attempts. Zero fields take the defaults (3 retries,
// 1s, doubling), so retry.Policy{} behaves like DefaultPolicy(). A negative
// MaxRetries disables retries entirely.
//
//	res, err := retry.Do(ctx, retry.Policy{}, func(ctx context.Context) (*Thing, error) {
//		return fetchThing(ctx)
//	})
//
// # Classification
//
// The executor owns the decision of which failures are worth repeating, as an
// explicit branch rather than error-type guessing:
//
//   - context cancellation and deadline errors abort immediately;
//   - errors implementing StatusCoder with HTTP status 400, 401, or 403 are
//     client faults — retrying cannot help, they surface untouched;
//   - everything else (network errors, 5xx, failures with no status at all)
//     is transient and retried up to the policy limit.
//
// On exhaustion the error of the last attempt is returned as-is; the executor
// never logs, wraps, or transforms errors.
//
// # Waiting
//
// The delay before re-attempt i is InitialDelay * BackoffMultiplier^i, with
// no jitter — callers needing jitter wrap the policy. The wait suspends only
// the calling goroutine and aborts as soon as the context is cancelled.
//
// # Repeated Side Effects
//
// An operation may run MaxRetries+1 times, so it must be safe to repeat.
// The transport attaches idempotency keys to creation requests before
// entering the loop for exactly this reason.
package retry
