package syncx_test

import (
	"sync"
	"testing"

	"github.com/saylorsolutions/signals/syncx"
	"github.com/stretchr/testify/assert"
)

func TestLockFunc(t *testing.T) {
	var (
		mux     sync.Mutex
		counter int
		wg      sync.WaitGroup
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			syncx.LockFunc(&mux, func() {
				counter++
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, counter)
}

func TestLockFuncT(t *testing.T) {
	var mux sync.RWMutex
	val := syncx.LockFuncT(&mux, func() int {
		return 5
	})
	assert.Equal(t, 5, val)
	read := syncx.RLockFuncT(&mux, func() int {
		return val * 2
	})
	assert.Equal(t, 10, read)
	syncx.RLockFunc(&mux, func() {
		assert.Equal(t, 5, val)
	})
}
