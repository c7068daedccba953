package query

import "iter"

// Limit bounds a lazy sequence to at most n items. When n is zero or
// negative the sequence passes through unmodified. Limiting is itself lazy:
// the upstream sequence is never pulled past the n items the consumer asks
// for, so it is safe over very large inputs.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		remaining := n
		for v := range seq {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}
