package set

// Set formalizes set semantics over a map with comparable keys.
// The zero value is not usable; use [New], or the value returned from [Set.Add].
type Set[T comparable] map[T]struct{}

// New creates a new [Set] from the given values.
// The returned [Set] will have no values if none are given.
func New[T comparable](vals ...T) Set[T] {
	s := Set[T]{}
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Slice returns the values of the [Set] in unspecified order, or nil if the [Set] is empty.
func (s Set[T]) Slice() []T {
	if len(s) == 0 {
		return nil
	}
	vals := make([]T, len(s))
	i := 0
	for val := range s {
		vals[i] = val
		i++
	}
	return vals
}

// Add inserts the given values, returning the possibly-replaced [Set] so a nil receiver stays usable.
func (s Set[T]) Add(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	s[val] = struct{}{}
	for _, v := range others {
		s[v] = struct{}{}
	}
	return s
}

// Remove deletes the given values if they're present.
func (s Set[T]) Remove(val T, others ...T) Set[T] {
	if s == nil {
		s = Set[T]{}
	}
	delete(s, val)
	for _, v := range others {
		delete(s, v)
	}
	return s
}

// Has reports whether val is in the [Set].
func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// Copy returns an independent [Set] with the same values.
func (s Set[T]) Copy() Set[T] {
	return New[T](s.Slice()...)
}
