package signal

import (
	"fmt"
	"reflect"

	"github.com/saylorsolutions/signals/typedesc"
)

// AnyAction is the type-erased view of an [Action]: a named callable tagged with its [typedesc.Signature].
// Actions let call sites hold handlers of assorted shapes in one collection and probe signals with [Signal.Matches] before attaching.
//
// The interface is sealed. Use [NewAction] to create values.
type AnyAction interface {
	// Name returns the diagnostic name given at construction.
	Name() string
	// Signature returns the callable's parameter and return descriptors.
	Signature() typedesc.Signature

	callable() any
}

// Action pairs a callable of type F with a name and its resolved signature.
type Action[F any] struct {
	name string
	fn   F
	sig  typedesc.Signature
}

// NewAction wraps fn under the given diagnostic name.
// F must be a non-variadic function type with at most one return value, anything else panics.
func NewAction[F any](name string, fn F) *Action[F] {
	sig, err := typedesc.SignatureFor[F]()
	if err != nil {
		panic(fmt.Sprintf("action %q: %v", name, err))
	}
	if reflect.ValueOf(fn).IsNil() {
		panic(fmt.Sprintf("action %q: nil callable", name))
	}
	return &Action[F]{
		name: name,
		fn:   fn,
		sig:  sig,
	}
}

// Name returns the diagnostic name given at construction.
func (a *Action[F]) Name() string {
	return a.name
}

// Signature returns the callable's parameter and return descriptors.
func (a *Action[F]) Signature() typedesc.Signature {
	return a.sig
}

// Fn returns the wrapped callable for direct invocation or re-attachment.
func (a *Action[F]) Fn() F {
	return a.fn
}

func (a *Action[F]) callable() any {
	return a.fn
}
