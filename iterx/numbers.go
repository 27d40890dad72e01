package iterx

import (
	"math"
)

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Max will return the max value in the given iterator, or the zero value if the iterator is empty.
func Max[T Number](iter SliceIter[T]) T {
	var (
		_max  T
		first = true
	)
	iter(func(val T) bool {
		if first {
			_max = val
			first = false
			return true
		}
		_max = max(val, _max)
		return true
	})
	return _max
}

// Min will return the minimum value in the given iterator, or the zero value if the iterator is empty.
func Min[T Number](iter SliceIter[T]) T {
	var (
		_min  T
		first = true
	)
	iter(func(val T) bool {
		if first {
			_min = val
			first = false
			return true
		}
		_min = min(val, _min)
		return true
	})
	return _min
}

// Sum will return the sum of all numbers in the SliceIter.
// This function does not check for over/underflow conditions.
func Sum[T Number](iter SliceIter[T]) float64 {
	var sum float64
	iter(func(val T) bool {
		sum += float64(val)
		return true
	})
	return sum
}

// Average will return the average of all numbers in the SliceIter.
// An empty iterator yields NaN, since 0/0 has no meaningful average.
func Average[T Number](iter SliceIter[T]) float64 {
	var (
		sum, count float64
	)
	iter(func(val T) bool {
		sum += float64(val)
		count++
		return true
	})
	return sum / count
}

// StdDev calculates the standard deviation of a population as represented by the given SliceIter.
// An empty iterator yields NaN.
func StdDev[T Number](iter SliceIter[T]) float64 {
	var (
		sumsq float64
		count float64
	)
	average := Average(iter)
	iter(func(val T) bool {
		diff := float64(val) - average
		sumsq += diff * diff
		count++
		return true
	})
	return math.Sqrt(sumsq / count)
}
