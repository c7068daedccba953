package query

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func ints(vals ...int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

func TestLimitPassthrough(t *testing.T) {
	src := ints(1, 2, 3)

	assert.Equal(t, []int{1, 2, 3}, collect(Limit(src, 0)))
	assert.Equal(t, []int{1, 2, 3}, collect(Limit(src, -1)))
}

func TestLimitBounds(t *testing.T) {
	src := ints(1, 2, 3, 4, 5)

	assert.Equal(t, []int{1, 2}, collect(Limit(src, 2)))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(Limit(src, 10)),
		"limit beyond length yields everything")
	assert.Equal(t, []int{1}, collect(Limit(src, 1)))
}

func TestLimitIsRestartable(t *testing.T) {
	limited := Limit(ints(1, 2, 3), 2)
	assert.Equal(t, []int{1, 2}, collect(limited))
	assert.Equal(t, []int{1, 2}, collect(limited), "a fresh range re-scans from the start")
}

func TestLimitIsLazy(t *testing.T) {
	pulled := 0
	endless := func(yield func(int) bool) {
		for i := 0; ; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	got := collect(Limit(iter.Seq[int](endless), 3))
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 3, pulled, "upstream must not be pulled past the limit")
}
