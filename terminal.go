package goiterables

import "iter"

// ConsumerFunc consumes element elem.
type ConsumerFunc[T any] func(elem T)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc,
// or a new accumulator.
type AccumulatorFunc[T any, A any] func(acc A, elem T) A

// ReducerFunc folds element elem into the accumulator acc, returning Some of
// the new accumulator to continue the fold, or None to stop it.
type ReducerFunc[T any, A any] func(acc A, elem T) Optional[A]

// Reduce calls accumulate for each element produced by seq, folding it into
// accumulator acc, and returns the final accumulator. It consumes seq
// entirely, so seq must be finite.
func Reduce[T any, A any](seq iter.Seq[T], initial A, accumulate AccumulatorFunc[T, A]) A {
	acc := initial

	for elem := range seq {
		acc = accumulate(acc, elem)
	}

	return acc
}

// ReduceWhile calls reduce for each element produced by seq. While reduce
// returns Some, the new accumulator is carried forward. On the first None the
// fold stops immediately: the element that produced it is discarded and no
// further elements are consumed. ReduceWhile returns the accumulator so far,
// which is initial if seq is empty or the first call returns None.
func ReduceWhile[T any, A any](seq iter.Seq[T], initial A, reduce ReducerFunc[T, A]) A {
	acc := initial

	for elem := range seq {
		next, ok := reduce(acc, elem).Get()
		if !ok {
			break
		}

		acc = next
	}

	return acc
}

// Each calls each for every element produced by seq, in order, consuming seq
// entirely.
func Each[T any](seq iter.Seq[T], each ConsumerFunc[T]) {
	for elem := range seq {
		each(elem)
	}
}

// Head returns the first element produced by seq, or None if seq is empty.
// At most one element is consumed.
func Head[T any](seq iter.Seq[T]) Optional[T] {
	for elem := range seq {
		return Some(elem)
	}

	return None[T]()
}

// Last consumes seq entirely and returns its final element, or None if seq is
// empty.
func Last[T any](seq iter.Seq[T]) Optional[T] {
	result := None[T]()

	for elem := range seq {
		result = Some(elem)
	}

	return result
}

// Find returns the first element produced by seq for which predicate returns
// true, or None if no element matches. No elements beyond the match are
// consumed.
func Find[T any](seq iter.Seq[T], predicate PredicateFunc[T]) Optional[T] {
	for elem := range seq {
		if predicate(elem) {
			return Some(elem)
		}
	}

	return None[T]()
}

// FindIndex returns the index of the first element produced by seq for which
// predicate returns true, or None if no element matches. No elements beyond
// the match are consumed.
func FindIndex[T any](seq iter.Seq[T], predicate PredicateFunc[T]) Optional[int] {
	for index, elem := range ZipIndex(seq) {
		if predicate(elem) {
			return Some(index)
		}
	}

	return None[int]()
}

// IndexOf returns the smallest index at which seq produces elem, or None if
// seq never produces it. No elements beyond the match are consumed.
func IndexOf[T comparable](seq iter.Seq[T], elem T) Optional[int] {
	return FindIndex(seq, func(candidate T) bool {
		return candidate == elem
	})
}

// LastIndexOf returns the largest index at which seq produces elem, or None if
// seq never produces it. It consumes seq entirely, since no index is final
// until the end.
func LastIndexOf[T comparable](seq iter.Seq[T], elem T) Optional[int] {
	result := None[int]()

	for index, candidate := range ZipIndex(seq) {
		if candidate == elem {
			result = Some(index)
		}
	}

	return result
}

// AnyMatch returns true as soon as predicate returns true for an element
// produced by seq, consuming no further elements. It returns false on an
// empty sequence.
func AnyMatch[T any](seq iter.Seq[T], predicate PredicateFunc[T]) bool {
	return Find(seq, predicate).IsSome()
}

// AllMatch returns true if predicate returns true for all elements produced by
// seq. The first failing element stops consumption. It returns true on an
// empty sequence.
func AllMatch[T any](seq iter.Seq[T], predicate PredicateFunc[T]) bool {
	return !AnyMatch(seq, func(elem T) bool {
		return !predicate(elem)
	})
}

// NoneMatch returns true if predicate returns false for all elements produced
// by seq. The first matching element stops consumption. It returns true on an
// empty sequence.
func NoneMatch[T any](seq iter.Seq[T], predicate PredicateFunc[T]) bool {
	return !AnyMatch(seq, predicate)
}

// Contains returns true as soon as seq produces elem, consuming no further
// elements. It returns false on an empty sequence.
func Contains[T comparable](seq iter.Seq[T], elem T) bool {
	return IndexOf(seq, elem).IsSome()
}

// Join concatenates a sequence of strings, with separator between every pair
// of adjacent elements. It consumes seq entirely.
func Join(seq iter.Seq[string], separator string) string {
	return Reduce(Intersperse(seq, separator), "", func(acc string, elem string) string {
		return acc + elem
	})
}
