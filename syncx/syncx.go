// Package syncx provides small helpers that scope a lock to a function body, so a forgotten Unlock can't happen.
package syncx

import "sync"

// LockFunc runs fn while holding mux.
func LockFunc(mux sync.Locker, fn func()) {
	mux.Lock()
	defer mux.Unlock()
	fn()
}

// LockFuncT runs fn while holding mux, passing through its return value.
func LockFuncT[T any](mux sync.Locker, fn func() T) T {
	mux.Lock()
	defer mux.Unlock()
	return fn()
}

// RLocker is the read-side locking surface of [sync.RWMutex].
type RLocker interface {
	RLock()
	RUnlock()
}

// RLockFunc runs fn while holding the read side of mux.
func RLockFunc(mux RLocker, fn func()) {
	mux.RLock()
	defer mux.RUnlock()
	fn()
}

// RLockFuncT runs fn while holding the read side of mux, passing through its return value.
func RLockFuncT[T any](mux RLocker, fn func() T) T {
	mux.RLock()
	defer mux.RUnlock()
	return fn()
}
