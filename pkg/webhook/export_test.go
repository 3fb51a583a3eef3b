package webhook

// SetCompute swaps the digest function for tests and returns a restore func.
func SetCompute(fn func(secret string, body []byte) string) func() {
	prev := compute
	compute = fn
	return func() { compute = prev }
}
