package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapFilterFirst(t *testing.T) {
	nums := []int{1, 2, 3, 4}

	doubled := Map(nums, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6, 8}, doubled)

	even := Filter(nums, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	v, ok := First(nums, func(n int) bool { return n > 2 })
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = First(nums, func(n int) bool { return n > 10 })
	assert.False(t, ok)
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"navy", "bordeaux"}, Unique([]string{"navy", "bordeaux", "navy"}))
	assert.Nil(t, Unique([]int{}))
}

func TestSortBy(t *testing.T) {
	got := SortBy([]int{3, 1, 2}, func(a, b int) bool { return a < b })
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestReduceAndSum(t *testing.T) {
	total := Reduce([]int{1, 2, 3}, 10, func(acc, n int) int { return acc + n })
	assert.Equal(t, 16, total)

	sum := Sum([]float64{1.5, 2.5}, func(v float64) float64 { return v })
	assert.Equal(t, 4.0, sum)
}

func TestKeyBy(t *testing.T) {
	type item struct{ ID, Name string }
	m := KeyBy([]item{{"a", "one"}, {"b", "two"}}, func(i item) string { return i.ID })
	assert.Equal(t, "two", m["b"].Name)
}

func TestPaginate(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(s, 1, 2))
	assert.Equal(t, []int{3, 4}, Paginate(s, 2, 2))
	assert.Equal(t, []int{5}, Paginate(s, 3, 2))
	assert.Nil(t, Paginate(s, 4, 2))
	assert.Equal(t, []int{1, 2}, Paginate(s, 0, 2), "page below 1 clamps to the first page")
}
