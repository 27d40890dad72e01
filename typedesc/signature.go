package typedesc

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/saylorsolutions/signals/assert"
)

var (
	// ErrNotFunc indicates that a signature was requested for something other than a function type.
	ErrNotFunc = errors.New("not a function type")
	// ErrVariadic indicates a variadic function type, which can't serve as a handler shape.
	ErrVariadic = errors.New("variadic functions are not supported")
	// ErrMultiReturn indicates a function type with more than one return value.
	ErrMultiReturn = errors.New("multiple return values are not supported")
	// ErrTypeMismatch indicates that supplied arguments, or a supplied handler, don't fit a declared signature.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Signature describes the parameter and return types of a handler function.
// The zero Signature describes func().
type Signature struct {
	args []Descriptor
	ret  Descriptor
}

// SignatureOf derives a Signature from a function type.
// Variadic functions and functions with more than one return value are rejected, since neither can be dispatched uniformly.
func SignatureOf(t reflect.Type) (Signature, error) {
	if t == nil || t.Kind() != reflect.Func {
		return Signature{}, fmt.Errorf("%w: %v", ErrNotFunc, t)
	}
	if t.IsVariadic() {
		return Signature{}, fmt.Errorf("%w: %v", ErrVariadic, t)
	}
	if t.NumOut() > 1 {
		return Signature{}, fmt.Errorf("%w: %v", ErrMultiReturn, t)
	}
	var sig Signature
	for i := 0; i < t.NumIn(); i++ {
		sig.args = append(sig.args, OfType(t.In(i)))
	}
	if t.NumOut() == 1 {
		sig.ret = OfType(t.Out(0))
	}
	return sig, nil
}

// SignatureFor derives a Signature from the function type F.
func SignatureFor[F any]() (Signature, error) {
	return SignatureOf(reflect.TypeFor[F]())
}

// NumArgs returns the number of declared parameters.
func (s Signature) NumArgs() int {
	return len(s.args)
}

// Arg returns the Descriptor of the parameter at position i.
func (s Signature) Arg(i int) Descriptor {
	return s.args[i]
}

// Args returns a copy of the parameter descriptors.
func (s Signature) Args() []Descriptor {
	return slices.Clone(s.args)
}

// Ret returns the return Descriptor, which is none for void signatures.
func (s Signature) Ret() Descriptor {
	return s.ret
}

// HasResult reports whether the signature declares a return value.
func (s Signature) HasResult() bool {
	return !s.ret.IsNone()
}

// Equal reports whether both signatures declare the same parameters and return type.
func (s Signature) Equal(other Signature) bool {
	return s.ret == other.ret && slices.Equal(s.args, other.args)
}

// PrefixOf reports whether s declares the same return type as longer and s's parameters are a leading, possibly equal, subset of longer's.
// This is the attach-time rule for handlers that ignore trailing arguments.
func (s Signature) PrefixOf(longer Signature) bool {
	if s.ret != longer.ret || len(s.args) > len(longer.args) {
		return false
	}
	for i, a := range s.args {
		if a != longer.args[i] {
			return false
		}
	}
	return true
}

// VerifyArgs checks supplied argument descriptors against the declared parameters before a dispatch is allowed to run.
// Each supplied descriptor must equal the declared one, or be a pointer to it; the dispatch path dereferences those.
// A none descriptor, from a nil argument, is accepted for parameters with a usable nil value.
// Every offending position is reported in one error wrapping [ErrTypeMismatch].
func (s Signature) VerifyArgs(supplied []Descriptor) error {
	if len(supplied) != len(s.args) {
		return fmt.Errorf("%w: expected %d arguments, got %d", ErrTypeMismatch, len(s.args), len(supplied))
	}
	errs := assert.CollectErrors("; ")
	for i, got := range supplied {
		want := s.args[i]
		switch {
		case got.Equal(want):
		case got.Deref().Equal(want):
		case got.IsNone() && want.Nillable():
		default:
			errs.AddString("argument %d: have %s, want %s", i, got, want)
		}
	}
	if err := errs.Result(); err != nil {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}
	return nil
}

// String formats the signature like a Go function type, using registry names for the types.
func (s Signature) String() string {
	var buf strings.Builder
	buf.WriteString("func(")
	for i, a := range s.args {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(a.String())
	}
	buf.WriteString(")")
	if !s.ret.IsNone() {
		buf.WriteString(" ")
		buf.WriteString(s.ret.String())
	}
	return buf.String()
}
