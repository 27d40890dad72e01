package iterx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	numbers := []int{1, 2, 3, 4, 5}
	even := Select(numbers, func(i int) bool {
		return i%2 == 0
	})
	assert.Equal(t, []int{2, 4}, even.Slice())
	assert.Equal(t, 2, even.Count())
	assert.Equal(t, 5, SelectAll(numbers).Count())
}

func TestSliceIter_Filter(t *testing.T) {
	numbers := SelectAll([]int{1, 2, 3, 4, 5})
	big := numbers.Filter(func(i int) bool {
		return i > 3
	})
	assert.Equal(t, []int{4, 5}, big.Slice())
}

func TestSliceIter_First(t *testing.T) {
	first, ok := SelectAll([]int{7, 8}).First()
	assert.True(t, ok)
	assert.Equal(t, 7, first)

	_, ok = SelectAll[int](nil).First()
	assert.False(t, ok)
}

func TestFilter_AndOr(t *testing.T) {
	positive := Filter[int](func(i int) bool {
		return i > 0
	})
	even := Filter[int](func(i int) bool {
		return i%2 == 0
	})
	assert.Equal(t, []int{2, 4}, Select([]int{-2, -1, 0, 1, 2, 3, 4}, positive.And(even)).Slice())
	assert.Equal(t, []int{-2, 1, 2, 3, 4}, Select([]int{-2, -1, 0, 1, 2, 3, 4}, positive.Or(even)).Slice())
}

func TestSum(t *testing.T) {
	numbers := []int{2, 3, 7}
	assert.Equal(t, 12.0, Sum(SelectAll(numbers)))
}

func TestAverage(t *testing.T) {
	numbers := []int{2, 3, 7}
	assert.Equal(t, 4.0, Average(SelectAll(numbers)))
	assert.True(t, math.IsNaN(Average(SelectAll[int](nil))))
}

func TestStdDev(t *testing.T) {
	numbers := []int{2, 2, 4, 4}
	assert.Equal(t, 1.0, StdDev(SelectAll(numbers)))
}

func TestMinMax(t *testing.T) {
	numbers := []float64{4.5, -2.25, 9.75}
	assert.Equal(t, -2.25, Min(SelectAll(numbers)))
	assert.Equal(t, 9.75, Max(SelectAll(numbers)))

	// All-positive minimums and all-negative maximums should not report zero.
	assert.Equal(t, 2, Min(SelectAll([]int{4, 2, 8})))
	assert.Equal(t, -2, Max(SelectAll([]int{-4, -2, -8})))

	assert.Zero(t, Min(SelectAll[int](nil)))
	assert.Zero(t, Max(SelectAll[int](nil)))
}
