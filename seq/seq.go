// Package seq implements lazy helpers over iter.Seq / iter.Seq2.
// See doc.go for the laziness and early-stop contract.
package seq

import "iter"

// Limit returns a sequence of at most n leading elements of s.
// n ≤ 0 yields an empty sequence. The upstream sequence is never advanced
// past the n-th element.
func Limit[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		// remaining counts down inside a single range pass; the closure is
		// re-created on every range, so Limit itself is restartable.
		remaining := n
		for v := range s {
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

// TakeWhile returns the longest prefix of s whose elements satisfy keep.
// The first failing element terminates the sequence and is not emitted;
// the upstream sequence is not advanced past it.
func TakeWhile[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if !keep(v) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Filter returns the elements of s that satisfy keep, in order.
func Filter[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Map returns the sequence of f applied to each element of s.
func Map[T, U any](s iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Collect drains s into a slice. Do not call on an unbounded sequence
// without an upstream Limit or TakeWhile.
func Collect[T any](s iter.Seq[T]) []T {
	var out []T
	for v := range s {
		out = append(out, v)
	}

	return out
}

// Keys returns the first components of the pair sequence s.
func Keys[K, V any](s iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns the second components of the pair sequence s.
func Values[K, V any](s iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Collect2 drains the pair sequence s into parallel slices.
func Collect2[K, V any](s iter.Seq2[K, V]) ([]K, []V) {
	var ks []K
	var vs []V
	for k, v := range s {
		ks = append(ks, k)
		vs = append(vs, v)
	}

	return ks, vs
}

// Pairs zips two parallel slices into a pair sequence.
// Panics if the slices differ in length; parallel slices of unequal length
// indicate a construction bug, not a runtime condition.
func Pairs[K, V any](ks []K, vs []V) iter.Seq2[K, V] {
	if len(ks) != len(vs) {
		panic("seq: Pairs called with slices of unequal length")
	}

	return func(yield func(K, V) bool) {
		for i, k := range ks {
			if !yield(k, vs[i]) {
				return
			}
		}
	}
}

// Empty2 returns a pair sequence with no elements. Useful as the neighbor
// sequence of a node with no outgoing edges.
func Empty2[K, V any]() iter.Seq2[K, V] {
	return func(func(K, V) bool) {}
}
