package testutil

import (
	"testing"
	"time"
)

// Eventually polls check until it returns nil. When timeout elapses the test
// fails with msg and the last error check reported.
func Eventually(t testing.TB, timeout, interval time.Duration, check func() error, msg string) {
	t.Helper()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		err := check()
		if err == nil {
			return
		}
		select {
		case <-deadline.C:
			if msg == "" {
				msg = "condition not met before timeout"
			}
			t.Fatalf("%s: %v", msg, err)
		case <-ticker.C:
		}
	}
}
