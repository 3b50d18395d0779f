// Package leaktest checks tests for goroutines left running after the code
// under test was shut down.
package leaktest

import (
	"testing"

	"go.uber.org/goleak"
)

// ignored lists goroutines that outlive a test without being a leak.
// Idle keep-alive connections of the shared HTTP transport close on their
// own schedule.
var ignored = []goleak.Option{
	goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
	goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
}

// Options returns the goleak options used by Check.
func Options(extra ...goleak.Option) []goleak.Option {
	opts := make([]goleak.Option, 0, len(ignored)+len(extra))
	opts = append(opts, ignored...)
	return append(opts, extra...)
}

// Check records the goroutines running now and fails t at cleanup if any
// new ones are still alive. Call it first in a test so its cleanup runs
// after every other cleanup the test registers.
func Check(t testing.TB, extra ...goleak.Option) {
	t.Helper()
	opts := Options(append(extra, goleak.IgnoreCurrent())...)
	t.Cleanup(func() {
		goleak.VerifyNone(t, opts...)
	})
}
