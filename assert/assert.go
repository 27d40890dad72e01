//go:build !noassert

package assert

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

var disabled atomic.Bool

// Disable turns off assertion evaluation globally.
// This is concurrency safe, but it affects every goroutine that uses assertions, so it's mostly useful in tests that exercise error returns.
func Disable() {
	disabled.Store(true)
}

// Enable turns assertion evaluation back on after a call to Disable.
// Like Disable, this is a global switch.
func Enable() {
	disabled.Store(false)
}

func callerRef(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

// True panics with the label and caller location if result is false.
// Build with the 'noassert' tag to compile assertions out.
func True(label string, result bool) {
	if disabled.Load() {
		return
	}
	if !result {
		panic(fmt.Sprintf("assertion '%s' failed at %s", label, callerRef(2)))
	}
}

// TrueFunc is like [True], but the condition is only evaluated when assertions are enabled.
// Use this when computing the condition is too expensive for a hot path.
func TrueFunc(label string, assertion func() bool) {
	if disabled.Load() {
		return
	}
	if !assertion() {
		panic(fmt.Sprintf("assertion '%s' failed at %s", label, callerRef(2)))
	}
}
