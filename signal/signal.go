package signal

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/saylorsolutions/signals/assert"
	"github.com/saylorsolutions/signals/logging"
	"github.com/saylorsolutions/signals/typedesc"
)

var nextSignalID atomic.Uint32

// AnySignal is the type-erased view of a [Signal], letting signals of different shapes share one registry, collection, or API surface.
// Every erased operation verifies descriptors before touching handlers, so a mistyped call fails before anything runs.
type AnySignal interface {
	// Name returns the diagnostic name given at construction.
	Name() string
	// ID returns the process-unique signal ID.
	ID() uint32
	// Arity returns the number of declared parameters.
	Arity() int
	// Len returns the number of attached handlers.
	Len() int
	// Signature returns the declared parameter and return descriptors.
	Signature() typedesc.Signature
	// Has reports whether k currently identifies a handler on this signal.
	Has(k Key) bool
	// Priority returns the invocation rank of the handler identified by k, 0 being first.
	Priority(k Key) (int, error)
	// AttachFunc registers a handler supplied as a plain value, adapting a leading-prefix handler if needed.
	AttachFunc(fn any) (Key, error)
	// AttachAction registers the callable held by act if its signature matches exactly.
	AttachAction(act AnyAction) (Key, error)
	// Matches reports whether act could attach without error.
	Matches(act AnyAction) bool
	// Remove detaches the handler identified by k.
	Remove(k Key) error
	// Clear removes every handler, leaving the signal usable.
	Clear()
	// Trigger verifies args and invokes every handler in attachment order, collecting non-void results.
	Trigger(args ...any) ([]any, error)
	// Close tears the signal down and tells every registered manager to forget it.
	Close()

	closeVia(prime *Manager)
}

// Signal is a named dispatch channel for handlers of the exact function type F.
//
// F fixes the shape of every handler at compile time, so [Signal.Attach] and the Dispatch/Collect helpers need no runtime checks at all.
// The [AnySignal] surface covers the erased side: attaching and triggering with types only known at runtime.
//
// A Signal is not safe for concurrent use. It belongs to one goroutine, or to callers who synchronize around it; see the package documentation.
// The zero value is not usable, always construct signals with [New].
type Signal[F any] struct {
	name     string
	id       uint32
	seq      uint32
	keys     map[Key]int
	handlers HandlerSet[F]
	sig      typedesc.Signature
	fnType   reflect.Type
	managers []*Manager
	closed   bool
	log      zerolog.Logger
}

// New creates a Signal for handlers of type F and registers it with each given manager.
//
// F must be a non-variadic function type with at most one return value.
// Anything else panics, since the signal's shape is part of the program's design, the same way an impossible configuration value would.
func New[F any](name string, managers ...*Manager) *Signal[F] {
	sig, err := typedesc.SignatureFor[F]()
	if err != nil {
		panic(fmt.Sprintf("signal %q: %v", name, err))
	}
	s := &Signal[F]{
		name:   name,
		id:     nextSignalID.Add(1),
		keys:   map[Key]int{},
		sig:    sig,
		fnType: reflect.TypeFor[F](),
	}
	s.log = logging.Logger("signal").With().Str("signal", name).Uint32("id", s.id).Logger()
	for _, m := range managers {
		if m == nil || s.hasManager(m) {
			continue
		}
		s.managers = append(s.managers, m)
		m.NotifyConstruct(s)
	}
	s.log.Debug().Str("type", sig.String()).Msg("Signal created")
	return s
}

func (s *Signal[F]) hasManager(m *Manager) bool {
	for _, known := range s.managers {
		if known == m {
			return true
		}
	}
	return false
}

func (s *Signal[F]) mustOpen() {
	assert.True("signal is open", !s.closed)
}

func (s *Signal[F]) nextKey() Key {
	s.seq++
	return Key{signalID: s.id, seq: s.seq}
}

// Name returns the diagnostic name given at construction.
func (s *Signal[F]) Name() string {
	return s.name
}

// ID returns the process-unique signal ID. IDs are assigned in construction order starting at 1.
func (s *Signal[F]) ID() uint32 {
	return s.id
}

// Arity returns the number of declared parameters.
func (s *Signal[F]) Arity() int {
	return s.sig.NumArgs()
}

// Len returns the number of attached handlers.
func (s *Signal[F]) Len() int {
	return s.handlers.Len()
}

// Signature returns the declared parameter and return descriptors.
func (s *Signal[F]) Signature() typedesc.Signature {
	return s.sig
}

// Attach registers fn as the last handler and returns its Key.
// Keys from the same signal strictly increase across attachments, including re-attachments after removal.
func (s *Signal[F]) Attach(fn F) Key {
	s.mustOpen()
	assert.TrueFunc("handler is not nil", func() bool {
		return !reflect.ValueOf(fn).IsNil()
	})
	k := s.nextKey()
	pos := s.handlers.Add(fn)
	s.keys[k] = pos
	s.log.Trace().Stringer("key", k).Int("position", pos).Msg("Handler attached")
	return k
}

// AttachFunc registers a handler supplied as a plain value, used when the handler's type is only known at runtime.
//
// fn may have the signal's exact function type. It may also declare a leading prefix of the signal's parameters with the same return type; such handlers are wrapped in an adapter that accepts the full argument list and discards the trailing surplus, so every handler still sees the same trigger.
// Any other shape, including extra parameters, fails here at the attach site with an error wrapping [typedesc.ErrTypeMismatch].
func (s *Signal[F]) AttachFunc(fn any) (Key, error) {
	s.mustOpen()
	if exact, ok := fn.(F); ok {
		return s.Attach(exact), nil
	}
	adapted, err := s.adaptPrefix(fn)
	assert.True("handler fits the signal's signature", err == nil)
	if err != nil {
		return Key{}, err
	}
	return s.Attach(adapted), nil
}

func (s *Signal[F]) adaptPrefix(fn any) (F, error) {
	var none F
	fnSig, err := typedesc.SignatureOf(reflect.TypeOf(fn))
	if err != nil {
		return none, fmt.Errorf("%w: handler for signal %q: %w", typedesc.ErrTypeMismatch, s.name, err)
	}
	if !fnSig.PrefixOf(s.sig) {
		return none, fmt.Errorf("%w: handler %s is not a leading prefix of signal %q %s", typedesc.ErrTypeMismatch, fnSig, s.name, s.sig)
	}
	inner := reflect.ValueOf(fn)
	keep := fnSig.NumArgs()
	wrapper := reflect.MakeFunc(s.fnType, func(args []reflect.Value) []reflect.Value {
		return inner.Call(args[:keep])
	})
	return wrapper.Interface().(F), nil
}

// AttachAction registers the callable held by act.
// The action's signature must equal this signal's exactly, adaptation never applies to actions. A mismatch fails with [ErrSignatureMismatch]; probe with [Signal.Matches] first when failure isn't intended.
func (s *Signal[F]) AttachAction(act AnyAction) (Key, error) {
	s.mustOpen()
	matched := s.Matches(act)
	assert.True("action signature matches signal", matched)
	if !matched {
		if act == nil {
			return Key{}, fmt.Errorf("%w: nil action on signal %q", ErrSignatureMismatch, s.name)
		}
		return Key{}, fmt.Errorf("%w: action %q is %s, signal %q expects %s", ErrSignatureMismatch, act.Name(), act.Signature(), s.name, s.sig)
	}
	raw := act.callable()
	if exact, ok := raw.(F); ok {
		return s.Attach(exact), nil
	}
	// Same shape under a different named func type; signature equality makes this conversion safe.
	return s.Attach(reflect.ValueOf(raw).Convert(s.fnType).Interface().(F)), nil
}

// Matches reports whether act could attach to this signal without error. It never mutates the signal.
func (s *Signal[F]) Matches(act AnyAction) bool {
	return act != nil && act.Signature().Equal(s.sig)
}

// Has reports whether k currently identifies a handler on this signal.
func (s *Signal[F]) Has(k Key) bool {
	_, ok := s.keys[k]
	return ok
}

// Priority returns the current invocation rank of the handler identified by k, 0 being first.
// Removal of earlier handlers can lower a handler's rank over time.
func (s *Signal[F]) Priority(k Key) (int, error) {
	pos, ok := s.keys[k]
	assert.True("key is registered with this signal", ok)
	if !ok {
		return 0, fmt.Errorf("%w: key %s on signal %q", ErrUnknownKey, k, s.name)
	}
	return pos, nil
}

// Remove detaches the handler identified by k.
// Handlers attached after it shift down one rank, so positions stay dense and invocation order is preserved.
// Removing a key that isn't registered here fails with [ErrUnknownKey]; that includes the zero Key and keys already removed.
func (s *Signal[F]) Remove(k Key) error {
	s.mustOpen()
	pos, ok := s.keys[k]
	assert.True("key is registered with this signal", ok)
	if !ok {
		return fmt.Errorf("%w: key %s on signal %q", ErrUnknownKey, k, s.name)
	}
	delete(s.keys, k)
	s.handlers.RemoveAt(pos)
	for other, p := range s.keys {
		if p > pos {
			s.keys[other] = p - 1
		}
	}
	s.log.Trace().Stringer("key", k).Msg("Handler removed")
	return nil
}

// Clear removes every handler through the same path as [Signal.Remove], lowest key first.
// The signal stays usable, and key sequencing continues from where it left off.
func (s *Signal[F]) Clear() {
	s.mustOpen()
	removed := 0
	for len(s.keys) > 0 {
		var lowest Key
		for k := range s.keys {
			if !lowest.IsActive() || k.Less(lowest) {
				lowest = k
			}
		}
		// The key was just read from the map, so Remove can't fail.
		_ = s.Remove(lowest)
		removed++
	}
	s.log.Debug().Int("removed", removed).Msg("Signal cleared")
}

// Trigger verifies args against the declared parameters and invokes every handler in attachment order with the same arguments.
//
// Verification happens before any handler runs: the argument count must match, and each argument must have the declared type, or be a non-nil pointer to it, which is dereferenced for dispatch. Nil is accepted for parameters with a usable nil value. Failures wrap [typedesc.ErrTypeMismatch].
// On success the returned slice holds one value per handler for signals with a return type, and is nil for void signals.
//
// The handler list is snapshotted at trigger start, so handlers that attach or remove handlers affect the next trigger, not the running one.
// Panics from handlers are not recovered; see the package documentation for the failure model.
func (s *Signal[F]) Trigger(args ...any) ([]any, error) {
	s.mustOpen()
	if s.closed {
		return nil, fmt.Errorf("%w: %q", ErrClosed, s.name)
	}
	callArgs, err := s.callValues(args)
	assert.True("trigger arguments match signal parameters", err == nil)
	if err != nil {
		return nil, fmt.Errorf("signal %q: %w", s.name, err)
	}
	var out []any
	s.handlers.Each(func(fn F) {
		ret := reflect.ValueOf(fn).Call(callArgs)
		if s.sig.HasResult() {
			out = append(out, ret[0].Interface())
		}
	})
	return out, nil
}

// callValues verifies the dynamic types of args and converts them to call-ready values, dereferencing pointer stand-ins.
func (s *Signal[F]) callValues(args []any) ([]reflect.Value, error) {
	supplied := make([]typedesc.Descriptor, len(args))
	for i, arg := range args {
		supplied[i] = typedesc.OfValue(arg)
	}
	if err := s.sig.VerifyArgs(supplied); err != nil {
		return nil, err
	}
	vals := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := s.sig.Arg(i)
		got := supplied[i]
		switch {
		case got.Equal(want):
			vals[i] = reflect.ValueOf(arg)
		case got.IsNone():
			vals[i] = reflect.Zero(want.Type())
		default:
			ptr := reflect.ValueOf(arg)
			if ptr.IsNil() {
				return nil, fmt.Errorf("%w: argument %d is a nil %s, want %s", typedesc.ErrTypeMismatch, i, got, want)
			}
			vals[i] = ptr.Elem()
		}
	}
	return vals, nil
}

// Close tears the signal down: handlers are released, and every registered manager except the one driving the teardown is told to forget the signal.
// Close is idempotent. Using a signal after Close is a programmer error; mutating and dispatch operations assert against it.
func (s *Signal[F]) Close() {
	s.closeVia(nil)
}

func (s *Signal[F]) closeVia(prime *Manager) {
	if s.closed {
		return
	}
	s.closed = true
	for _, m := range s.managers {
		if m == prime {
			// The prime manager drove this teardown and already dropped its reference.
			continue
		}
		m.NotifyDestruct(s)
	}
	s.managers = nil
	s.handlers.clear()
	s.keys = map[Key]int{}
	s.log.Debug().Msg("Signal closed")
}

// Clone returns a new signal with the same name and handlers.
// The clone has a fresh ID, issues its own keys, and is not registered with any manager.
func (s *Signal[F]) Clone() *Signal[F] {
	c := New[F](s.name)
	for _, fn := range s.handlers.Snapshot() {
		c.Attach(fn)
	}
	return c
}
