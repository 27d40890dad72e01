package signal_test

import (
	"testing"

	"github.com/saylorsolutions/signals/assert"
	"github.com/saylorsolutions/signals/signal"
	"github.com/saylorsolutions/signals/typedesc"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := signal.New[func(string, int)]("greeter")
	require.Equal(t, "greeter", s.Name())
	require.NotZero(t, s.ID())
	require.Equal(t, 2, s.Arity())
	require.Equal(t, 0, s.Len())
	require.Equal(t, "func(string, int)", s.Signature().String())
}

func TestNew_RejectsImpossibleShapes(t *testing.T) {
	require.Panics(t, func() {
		signal.New[int]("not-a-func")
	})
	require.Panics(t, func() {
		signal.New[func(...int)]("variadic")
	})
	require.Panics(t, func() {
		signal.New[func() (int, error)]("multi-return")
	})
}

func TestSignal_HandlersShareOneTrigger(t *testing.T) {
	s := signal.New[func(int)]("accumulate")
	var log []int
	for i := 0; i < 3; i++ {
		s.Attach(func(x int) {
			log = append(log, x)
		})
	}

	signal.Dispatch1(s, 42)
	require.Equal(t, []int{42, 42, 42}, log)
}

func TestSignal_CollectsResultsInOrder(t *testing.T) {
	s := signal.New[func(int) int]("transform")
	s.Attach(func(x int) int { return x + 1 })
	s.Attach(func(x int) int { return x * 2 })

	require.Equal(t, []int{6, 10}, signal.Collect1(s, 5))

	// The erased path sees the same handlers and the same order.
	erased, err := s.Trigger(5)
	require.NoError(t, err)
	require.Equal(t, []any{6, 10}, erased)
}

func TestSignal_TriggerVoidReturnsNoResults(t *testing.T) {
	s := signal.New[func(int)]("void")
	ran := 0
	s.Attach(func(int) {
		ran++
	})
	out, err := s.Trigger(1)
	require.NoError(t, err)
	require.Nil(t, out)
	require.Equal(t, 1, ran)
}

func TestSignal_KeysStrictlyIncrease(t *testing.T) {
	s := signal.New[func()]("keys")
	a := s.Attach(func() {})
	b := s.Attach(func() {})
	require.Equal(t, uint32(1), a.Seq())
	require.Equal(t, uint32(2), b.Seq())

	require.NoError(t, s.Remove(a))
	c := s.Attach(func() {})
	require.Equal(t, uint32(3), c.Seq(), "sequence numbers are never reused after removal")
	require.True(t, a.Less(b))
	require.True(t, b.Less(c))
}

func TestSignal_RemoveShiftsPriorities(t *testing.T) {
	s := signal.New[func()]("priorities")
	var log []string
	ka := s.Attach(func() { log = append(log, "a") })
	kb := s.Attach(func() { log = append(log, "b") })
	kc := s.Attach(func() { log = append(log, "c") })

	require.NoError(t, s.Remove(kb))
	require.Equal(t, 2, s.Len())
	require.False(t, s.Has(kb))

	pa, err := s.Priority(ka)
	require.NoError(t, err)
	pc, err := s.Priority(kc)
	require.NoError(t, err)
	require.Equal(t, 0, pa)
	require.Equal(t, 1, pc, "later handlers shift down to fill the gap")

	signal.Dispatch0(s)
	require.Equal(t, []string{"a", "c"}, log)
}

func TestSignal_UnknownKeys(t *testing.T) {
	assert.Disable()
	t.Cleanup(assert.Enable)

	s := signal.New[func()]("unknown-keys")
	other := signal.New[func()]("other")
	k := s.Attach(func() {})
	foreign := other.Attach(func() {})

	var zero signal.Key
	require.False(t, s.Has(zero))
	require.ErrorIs(t, s.Remove(zero), signal.ErrUnknownKey)
	require.ErrorIs(t, s.Remove(foreign), signal.ErrUnknownKey)
	_, err := s.Priority(foreign)
	require.ErrorIs(t, err, signal.ErrUnknownKey)

	require.NoError(t, s.Remove(k))
	require.ErrorIs(t, s.Remove(k), signal.ErrUnknownKey, "a removed key doesn't identify anything anymore")
	require.True(t, other.Has(foreign), "the foreign signal is untouched")
}

func TestSignal_RemovePanicsOnUnknownKeyByDefault(t *testing.T) {
	s := signal.New[func()]("remove-panics")
	k := s.Attach(func() {})
	require.NoError(t, s.Remove(k))
	require.Panics(t, func() {
		_ = s.Remove(k)
	})
}

func TestSignal_AttachNilPanics(t *testing.T) {
	s := signal.New[func()]("nil-handler")
	var fn func()
	require.Panics(t, func() {
		s.Attach(fn)
	})
}

func TestSignal_Clear(t *testing.T) {
	s := signal.New[func()]("clear")
	s.Attach(func() {})
	s.Attach(func() {})
	high := s.Attach(func() {})

	s.Clear()
	require.Equal(t, 0, s.Len())

	// The signal stays usable and sequencing picks up where it left off.
	next := s.Attach(func() {})
	require.True(t, high.Less(next))
	require.Equal(t, 1, s.Len())
}

func TestSignal_TriggerVerifiesBeforeDispatch(t *testing.T) {
	assert.Disable()
	t.Cleanup(assert.Enable)

	s := signal.New[func(int, string)]("verify")
	ran := 0
	s.Attach(func(int, string) {
		ran++
	})

	_, err := s.Trigger("one", 2)
	require.ErrorIs(t, err, typedesc.ErrTypeMismatch)
	require.ErrorContains(t, err, "argument 0")
	require.ErrorContains(t, err, "argument 1")

	_, err = s.Trigger(1)
	require.ErrorIs(t, err, typedesc.ErrTypeMismatch, "arity mismatches fail the same way")

	require.Zero(t, ran, "no handler runs when verification fails")

	_, err = s.Trigger(1, "two")
	require.NoError(t, err)
	require.Equal(t, 1, ran)
}

func TestSignal_TriggerPanicsOnMismatchByDefault(t *testing.T) {
	s := signal.New[func(int)]("verify-panics")
	require.Panics(t, func() {
		_, _ = s.Trigger("nope")
	})
}

func TestSignal_TriggerDereferencesPointers(t *testing.T) {
	s := signal.New[func(int)]("deref")
	var got []int
	s.Attach(func(x int) {
		got = append(got, x)
	})

	x := 42
	_, err := s.Trigger(&x)
	require.NoError(t, err)
	require.Equal(t, []int{42}, got)
}

func TestSignal_TriggerRejectsNilPointer(t *testing.T) {
	assert.Disable()
	t.Cleanup(assert.Enable)

	s := signal.New[func(int)]("nil-pointer")
	s.Attach(func(int) {
		t.Error("handler should not run")
	})
	var p *int
	_, err := s.Trigger(p)
	require.ErrorIs(t, err, typedesc.ErrTypeMismatch)
	require.ErrorContains(t, err, "nil")
}

func TestSignal_TriggerNilForNillableParams(t *testing.T) {
	assert.Disable()
	t.Cleanup(assert.Enable)

	lists := signal.New[func([]string)]("nillable")
	var got []string
	seen := false
	lists.Attach(func(vals []string) {
		seen = true
		got = vals
	})
	_, err := lists.Trigger(nil)
	require.NoError(t, err)
	require.True(t, seen)
	require.Nil(t, got)

	ints := signal.New[func(int)]("not-nillable")
	_, err = ints.Trigger(nil)
	require.ErrorIs(t, err, typedesc.ErrTypeMismatch, "nil can't stand in for a value type")
}

func TestSignal_AttachFunc(t *testing.T) {
	s := signal.New[func(string, int)]("adapt")
	var log []string

	_, err := s.AttachFunc(func(name string, count int) {
		log = append(log, "exact")
	})
	require.NoError(t, err)
	_, err = s.AttachFunc(func(name string) {
		log = append(log, "prefix:"+name)
	})
	require.NoError(t, err)
	_, err = s.AttachFunc(func() {
		log = append(log, "bare")
	})
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	signal.Dispatch2(s, "x", 7)
	require.Equal(t, []string{"exact", "prefix:x", "bare"}, log)
}

func TestSignal_AttachFuncRejectsNonPrefix(t *testing.T) {
	assert.Disable()
	t.Cleanup(assert.Enable)

	s := signal.New[func(string, int)]("reject")
	_, err := s.AttachFunc(func(string, int, bool) {})
	require.ErrorIs(t, err, typedesc.ErrTypeMismatch, "extra parameters can't be conjured at dispatch")

	_, err = s.AttachFunc(func(int) {})
	require.ErrorIs(t, err, typedesc.ErrTypeMismatch, "prefixes match by position")

	_, err = s.AttachFunc(func(string) string { return "" })
	require.ErrorIs(t, err, typedesc.ErrTypeMismatch, "return types must agree")

	_, err = s.AttachFunc(nil)
	require.ErrorIs(t, err, typedesc.ErrTypeMismatch)

	_, err = s.AttachFunc("not a func")
	require.ErrorIs(t, err, typedesc.ErrTypeMismatch)

	require.Equal(t, 0, s.Len())
}

func TestSignal_MutationDuringTrigger(t *testing.T) {
	s := signal.New[func()]("reentrant")
	var (
		log []string
		kb  signal.Key
	)
	s.Attach(func() {
		log = append(log, "a")
	})
	kb = s.Attach(func() {
		log = append(log, "b")
		_ = s.Remove(kb)
	})
	s.Attach(func() {
		log = append(log, "c")
	})

	// The pass in flight runs the handlers present when it started.
	signal.Dispatch0(s)
	require.Equal(t, []string{"a", "b", "c"}, log)
	require.Equal(t, 2, s.Len())

	log = nil
	signal.Dispatch0(s)
	require.Equal(t, []string{"a", "c"}, log)
}

func TestSignal_AttachDuringTrigger(t *testing.T) {
	s := signal.New[func()]("late-attach")
	var (
		log      []string
		attached bool
	)
	s.Attach(func() {
		log = append(log, "first")
		if attached {
			return
		}
		attached = true
		s.Attach(func() {
			log = append(log, "late")
		})
	})

	signal.Dispatch0(s)
	require.Equal(t, []string{"first"}, log, "handlers attached mid-trigger wait for the next one")

	log = nil
	signal.Dispatch0(s)
	require.Equal(t, []string{"first", "late"}, log)
}

func TestSignal_HandlerPanicPropagates(t *testing.T) {
	s := signal.New[func()]("panic")
	var log []string
	s.Attach(func() {
		log = append(log, "before")
	})
	s.Attach(func() {
		panic("boom")
	})
	s.Attach(func() {
		log = append(log, "after")
	})

	require.PanicsWithValue(t, "boom", func() {
		signal.Dispatch0(s)
	})
	require.Equal(t, []string{"before"}, log, "handlers after the panicking one don't run")
}

func TestSignal_Close(t *testing.T) {
	assert.Disable()
	t.Cleanup(assert.Enable)

	s := signal.New[func()]("close")
	s.Attach(func() {})
	s.Close()
	s.Close()
	require.Equal(t, 0, s.Len())

	_, err := s.Trigger()
	require.ErrorIs(t, err, signal.ErrClosed)
}

func TestSignal_UseAfterClosePanicsByDefault(t *testing.T) {
	s := signal.New[func()]("close-panics")
	s.Close()
	require.Panics(t, func() {
		s.Attach(func() {})
	})
	require.Panics(t, func() {
		_, _ = s.Trigger()
	})
}

func TestSignal_Clone(t *testing.T) {
	m := signal.NewManager()
	s := signal.New[func(int)]("clone", m)
	var log []int
	s.Attach(func(x int) {
		log = append(log, x)
	})
	s.Attach(func(x int) {
		log = append(log, x*2)
	})

	c := s.Clone()
	require.Equal(t, s.Name(), c.Name())
	require.NotEqual(t, s.ID(), c.ID())
	require.Equal(t, 2, c.Len())
	require.False(t, m.Has(c), "a clone starts unmanaged")

	signal.Dispatch1(c, 3)
	require.Equal(t, []int{3, 6}, log, "the clone carries the same handlers")

	// The handler lists are independent from here on.
	s.Attach(func(x int) {
		log = append(log, x*100)
	})
	log = nil
	signal.Dispatch1(c, 1)
	require.Equal(t, []int{1, 2}, log)
	require.Equal(t, 3, s.Len())
	require.Equal(t, 2, c.Len())
}
