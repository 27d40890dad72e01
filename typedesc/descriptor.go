package typedesc

import "reflect"

// Descriptor is a comparable identity for a single Go type.
// The zero Descriptor means "no type", and is reported by [Descriptor.IsNone].
type Descriptor struct {
	t reflect.Type
}

// Of returns the Descriptor for the type T.
func Of[T any]() Descriptor {
	return Descriptor{t: reflect.TypeFor[T]()}
}

// OfValue returns the Descriptor for the dynamic type of val.
// A nil val returns the none Descriptor, since a nil interface carries no type.
func OfValue(val any) Descriptor {
	if val == nil {
		return Descriptor{}
	}
	return Descriptor{t: reflect.TypeOf(val)}
}

// OfType wraps an already-obtained [reflect.Type]. A nil type returns the none Descriptor.
func OfType(t reflect.Type) Descriptor {
	return Descriptor{t: t}
}

// IsNone reports whether d describes no type at all.
func (d Descriptor) IsNone() bool {
	return d.t == nil
}

// Type returns the underlying [reflect.Type], or nil for the none Descriptor.
func (d Descriptor) Type() reflect.Type {
	return d.t
}

// Kind returns the [reflect.Kind] of the described type, or [reflect.Invalid] for the none Descriptor.
func (d Descriptor) Kind() reflect.Kind {
	if d.t == nil {
		return reflect.Invalid
	}
	return d.t.Kind()
}

// Equal reports whether two descriptors identify the same type. Plain == works too.
func (d Descriptor) Equal(other Descriptor) bool {
	return d == other
}

// Deref returns the Descriptor for the element type if d describes a pointer, removing exactly one level of indirection.
// Any other Descriptor is returned unchanged.
func (d Descriptor) Deref() Descriptor {
	if d.t != nil && d.t.Kind() == reflect.Pointer {
		return Descriptor{t: d.t.Elem()}
	}
	return d
}

// Nillable reports whether the described type has a usable nil value.
func (d Descriptor) Nillable() bool {
	switch d.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}

// String returns the registry name for the type, interning it as a side effect. The none Descriptor formats as "none".
func (d Descriptor) String() string {
	return Name(d)
}
