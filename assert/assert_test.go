package assert_test

import (
	"testing"

	"github.com/saylorsolutions/signals/assert"
)

func TestTrue(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Error("Should not have panicked:", r)
		}
	}()
	assert.True("true", true)
	assert.TrueFunc("returns true", func() bool {
		return true
	})
}

func TestTrue_Failure(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Should have panicked")
		} else {
			t.Log(r)
		}
	}()
	assert.True("false", false)
}

func TestTrueFunc_Failure(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Should have panicked")
		} else {
			t.Log(r)
		}
	}()
	assert.TrueFunc("returns false", func() bool {
		return false
	})
}

func TestDisable(t *testing.T) {
	assert.Disable()
	t.Cleanup(func() {
		assert.Enable()
	})
	assert.True("false", false)
	assert.TrueFunc("also false", func() bool {
		t.Error("Condition should not be evaluated while disabled")
		return false
	})
}
