package testutil

import (
	"context"
	"testing"
	"time"
)

// Context returns a context that expires after d and is cancelled on test cleanup.
// Storage tests use it so a stuck container never hangs the run.
func Context(tb testing.TB, d time.Duration) context.Context {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), d)
	tb.Cleanup(cancel)
	return ctx
}
