package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds tests that pass a zero timeout. It covers the
// tutor's default lesson delay several times over.
const DefaultTimeout = 5 * time.Second

// deadlineMargin is left between a context deadline and the test deadline so
// failures report from the test rather than the runner.
const deadlineMargin = time.Second

// Context returns a context cancelled when the test ends or timeout elapses,
// whichever is first.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline) - deadlineMargin; remaining > 0 {
			timeout = min(timeout, remaining)
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
