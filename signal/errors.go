package signal

import "errors"

// Type mismatches on the erased attach and trigger paths wrap [typedesc.ErrTypeMismatch], so one sentinel covers verification failures everywhere.
// The errors here cover the failure modes that belong to signals themselves.
var (
	// ErrSignatureMismatch indicates an action whose signature doesn't equal the signal's. Use [Signal.Matches] to probe without failing.
	ErrSignatureMismatch = errors.New("action signature does not match signal")
	// ErrUnknownKey indicates a key that isn't registered with the signal: already removed, issued by another signal, or the zero Key.
	ErrUnknownKey = errors.New("no handler with the given key")
	// ErrNotTracked indicates a manager was asked to close a signal it isn't tracking.
	ErrNotTracked = errors.New("signal is not tracked by this manager")
	// ErrClosed indicates an operation on a signal after Close.
	ErrClosed = errors.New("signal is closed")
)
