package retry

import (
	"context"
	"time"
)

// SetSleep swaps the inter-attempt wait for tests and returns a restore func.
func SetSleep(fn func(context.Context, time.Duration) error) func() {
	prev := sleep
	sleep = fn
	return func() { sleep = prev }
}
