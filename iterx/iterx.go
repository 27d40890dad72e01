// Package iterx provides a small slice iterator built on [iter.Seq], with numeric aggregates layered on top.
package iterx

import "iter"

// Filter is a function that returns true if the element of an [iter.Seq] should be yielded to the caller.
type Filter[T any] func(T) bool

// Any will create a [Filter] that matches all elements.
func Any[T any]() Filter[T] {
	return func(element T) bool {
		return true
	}
}

// And combines multiple [Filter] into one, where both must be true to yield the element.
func (f Filter[T]) And(other Filter[T]) Filter[T] {
	return func(element T) bool {
		return f(element) && other(element)
	}
}

// Or combines multiple [Filter] into one, where one or the other must be true to yield the element.
func (f Filter[T]) Or(other Filter[T]) Filter[T] {
	return func(element T) bool {
		return f(element) || other(element)
	}
}

type SliceIter[T any] iter.Seq[T]

// SelectAll will translate any slice into a [SliceIter].
func SelectAll[T any](slice []T) SliceIter[T] {
	return Select(slice, Any[T]())
}

// Select will use the provided [Filter] to select elements from a slice, returning a [SliceIter].
func Select[T any](slice []T, filter Filter[T]) SliceIter[T] {
	return func(yield func(T) bool) {
		if filter == nil {
			panic("nil filter")
		}
		for _, element := range slice {
			if filter(element) {
				if !yield(element) {
					return
				}
			}
		}
	}
}

func (i SliceIter[T]) Slice() []T {
	var elements []T
	i(func(element T) bool {
		elements = append(elements, element)
		return true
	})
	return elements
}

func (i SliceIter[T]) Filter(filter Filter[T]) SliceIter[T] {
	return func(yield func(T) bool) {
		i(func(element T) bool {
			if filter(element) {
				if !yield(element) {
					return false
				}
			}
			return true
		})
	}
}

func (i SliceIter[T]) ForEach(handler func(val T) bool) {
	if i == nil {
		return
	}
	i(handler)
}

func (i SliceIter[T]) Count() int {
	if i == nil {
		return 0
	}
	var count int
	i(func(_ T) bool {
		count++
		return true
	})
	return count
}

func (i SliceIter[T]) First() (T, bool) {
	var (
		val   T
		found bool
	)
	i(func(v T) bool {
		val = v
		found = true
		return false
	})
	return val, found
}
