package signal

import (
	"fmt"

	"github.com/saylorsolutions/signals/typedesc"
)

// The Dispatch and Collect helpers trigger a signal through its static function type, with no reflection and no runtime verification.
// The compiler has already proven the arguments fit, which makes them the right choice on hot paths.
// They share [Signal.Trigger]'s snapshot semantics because both walk the handler list the same way.

// Dispatch0 invokes every handler of a void nullary signal in attachment order.
func Dispatch0(s *Signal[func()]) {
	s.mustOpen()
	s.handlers.Each(func(fn func()) {
		fn()
	})
}

// Dispatch1 invokes every handler with a, in attachment order.
func Dispatch1[A any](s *Signal[func(A)], a A) {
	s.mustOpen()
	s.handlers.Each(func(fn func(A)) {
		fn(a)
	})
}

// Dispatch2 invokes every handler with (a, b), in attachment order.
func Dispatch2[A, B any](s *Signal[func(A, B)], a A, b B) {
	s.mustOpen()
	s.handlers.Each(func(fn func(A, B)) {
		fn(a, b)
	})
}

// Dispatch3 invokes every handler with (a, b, c), in attachment order.
func Dispatch3[A, B, C any](s *Signal[func(A, B, C)], a A, b B, c C) {
	s.mustOpen()
	s.handlers.Each(func(fn func(A, B, C)) {
		fn(a, b, c)
	})
}

// Dispatch4 invokes every handler with (a, b, c, d), in attachment order.
func Dispatch4[A, B, C, D any](s *Signal[func(A, B, C, D)], a A, b B, c C, d D) {
	s.mustOpen()
	s.handlers.Each(func(fn func(A, B, C, D)) {
		fn(a, b, c, d)
	})
}

// Dispatch5 invokes every handler with (a, b, c, d, e), in attachment order.
func Dispatch5[A, B, C, D, E any](s *Signal[func(A, B, C, D, E)], a A, b B, c C, d D, e E) {
	s.mustOpen()
	s.handlers.Each(func(fn func(A, B, C, D, E)) {
		fn(a, b, c, d, e)
	})
}

// Collect0 invokes every handler of a valued nullary signal in attachment order and returns their results, one per handler.
func Collect0[R any](s *Signal[func() R]) []R {
	s.mustOpen()
	out := make([]R, 0, s.handlers.Len())
	s.handlers.Each(func(fn func() R) {
		out = append(out, fn())
	})
	return out
}

// Collect1 invokes every handler with a and returns their results, one per handler, in attachment order.
func Collect1[A, R any](s *Signal[func(A) R], a A) []R {
	s.mustOpen()
	out := make([]R, 0, s.handlers.Len())
	s.handlers.Each(func(fn func(A) R) {
		out = append(out, fn(a))
	})
	return out
}

// Collect2 invokes every handler with (a, b) and returns their results, one per handler, in attachment order.
func Collect2[A, B, R any](s *Signal[func(A, B) R], a A, b B) []R {
	s.mustOpen()
	out := make([]R, 0, s.handlers.Len())
	s.handlers.Each(func(fn func(A, B) R) {
		out = append(out, fn(a, b))
	})
	return out
}

// Collect3 invokes every handler with (a, b, c) and returns their results, one per handler, in attachment order.
func Collect3[A, B, C, R any](s *Signal[func(A, B, C) R], a A, b B, c C) []R {
	s.mustOpen()
	out := make([]R, 0, s.handlers.Len())
	s.handlers.Each(func(fn func(A, B, C) R) {
		out = append(out, fn(a, b, c))
	})
	return out
}

// Collect4 invokes every handler with (a, b, c, d) and returns their results, one per handler, in attachment order.
func Collect4[A, B, C, D, R any](s *Signal[func(A, B, C, D) R], a A, b B, c C, d D) []R {
	s.mustOpen()
	out := make([]R, 0, s.handlers.Len())
	s.handlers.Each(func(fn func(A, B, C, D) R) {
		out = append(out, fn(a, b, c, d))
	})
	return out
}

// Collect5 invokes every handler with (a, b, c, d, e) and returns their results, one per handler, in attachment order.
func Collect5[A, B, C, D, E, R any](s *Signal[func(A, B, C, D, E) R], a A, b B, c C, d D, e E) []R {
	s.mustOpen()
	out := make([]R, 0, s.handlers.Len())
	s.handlers.Each(func(fn func(A, B, C, D, E) R) {
		out = append(out, fn(a, b, c, d, e))
	})
	return out
}

// TriggerAs triggers an erased signal and returns its results as R.
// The signal's declared return type must be exactly R, and args are verified the same way [AnySignal.Trigger] verifies them. Failures wrap [typedesc.ErrTypeMismatch].
func TriggerAs[R any](s AnySignal, args ...any) ([]R, error) {
	want := typedesc.Of[R]()
	ret := s.Signature().Ret()
	if !ret.Equal(want) {
		return nil, fmt.Errorf("%w: signal %q returns %s, want %s", typedesc.ErrTypeMismatch, s.Name(), ret, want)
	}
	raw, err := s.Trigger(args...)
	if err != nil {
		return nil, err
	}
	out := make([]R, len(raw))
	for i, v := range raw {
		if v == nil {
			// A nil interface result stays the zero value of R.
			continue
		}
		out[i] = v.(R)
	}
	return out, nil
}
