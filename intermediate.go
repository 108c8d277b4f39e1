package goiterables

import "iter"

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) bool

// Map returns a sequence that calls mapp for each element produced by seq,
// mapping it to type U.
func Map[T any, U any](seq iter.Seq[T], mapp Function[T, U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for elem := range seq {
			if !yield(mapp(elem)) {
				return
			}
		}
	}
}

// Filter returns a sequence that calls filter for each element produced by
// seq, and only produces elements for which filter returns true.
func Filter[T any](seq iter.Seq[T], filter PredicateFunc[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := range seq {
			if !filter(elem) {
				continue
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// FlatMap returns a sequence that calls mapp for each element produced by seq,
// mapping it to an intermediate sequence of type U. The new sequence produces
// all elements produced by the intermediate sequences, in order. An
// intermediate sequence may be empty.
func FlatMap[T any, U any](seq iter.Seq[T], mapp Function[T, iter.Seq[U]]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for elem := range seq {
			for out := range mapp(elem) {
				if !yield(out) {
					return
				}
			}
		}
	}
}

// ZipIndex pairs each element produced by seq with its 0-based index, in
// production order. The index increments by exactly 1 per element.
func ZipIndex[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0

		for elem := range seq {
			if !yield(index, elem) {
				return
			}

			index++
		}
	}
}

// Tap returns a sequence that calls tap for each element produced by seq, in
// order, before producing that same element.
func Tap[T any](seq iter.Seq[T], tap ConsumerFunc[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := range seq {
			tap(elem)

			if !yield(elem) {
				return
			}
		}
	}
}

// Scan returns the sequence of intermediate accumulators of folding seq with
// accumulate, starting at initial. Every new accumulator is produced, one per
// element of seq; the initial accumulator itself is not.
func Scan[T any, A any](seq iter.Seq[T], initial A, accumulate AccumulatorFunc[T, A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		acc := initial

		for elem := range seq {
			acc = accumulate(acc, elem)

			if !yield(acc) {
				return
			}
		}
	}
}

// ScanWhile is Scan with early termination. While reduce returns Some, the new
// accumulator is produced and carried forward. The sequence ends on the first
// None, producing nothing for that element and consuming no further input.
func ScanWhile[T any, A any](seq iter.Seq[T], initial A, reduce ReducerFunc[T, A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		acc := initial

		for elem := range seq {
			next, ok := reduce(acc, elem).Get()
			if !ok {
				return
			}

			acc = next

			if !yield(acc) {
				return
			}
		}
	}
}

// Take returns a sequence of the first count elements produced by seq.
// No elements beyond the first count are consumed from seq.
func Take[T any](seq iter.Seq[T], count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if count <= 0 {
			return
		}

		taken := 0

		for elem := range seq {
			if !yield(elem) {
				return
			}

			taken++
			if taken == count {
				return
			}
		}
	}
}

// TakeWhile returns a sequence of the leading elements of seq for which
// predicate returns true. The first failing element ends the sequence and is
// not produced; no further input is consumed.
func TakeWhile[T any](seq iter.Seq[T], predicate PredicateFunc[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := range seq {
			if !predicate(elem) {
				return
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Drop returns a sequence of the elements produced by seq, in order, skipping
// the first count elements.
func Drop[T any](seq iter.Seq[T], count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for index, elem := range ZipIndex(seq) {
			if index < count {
				continue
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// DropWhile returns a sequence that skips the leading run of elements of seq
// for which predicate returns true, then produces everything from the first
// failing element onward. Once production starts it never stops again, even
// if predicate would hold for a later element.
func DropWhile[T any](seq iter.Seq[T], predicate PredicateFunc[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		open := false

		for elem := range seq {
			if !open && predicate(elem) {
				continue
			}

			open = true

			if !yield(elem) {
				return
			}
		}
	}
}

// DropRepeats returns a sequence that collapses each run of consecutive equal
// elements of seq to a single occurrence. Only adjacent duplicates are
// removed.
func DropRepeats[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true

		var prev T

		for elem := range seq {
			if !first && elem == prev {
				continue
			}

			first = false
			prev = elem

			if !yield(elem) {
				return
			}
		}
	}
}

// DropLast returns a sequence of the elements produced by seq, in order,
// withholding the final count elements. It buffers count elements, so
// production lags seq by count.
func DropLast[T any](seq iter.Seq[T], count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if count <= 0 {
			for elem := range seq {
				if !yield(elem) {
					return
				}
			}

			return
		}

		buffer := make([]T, count)
		seen := 0

		for elem := range seq {
			if seen >= count {
				if !yield(buffer[seen%count]) {
					return
				}
			}

			buffer[seen%count] = elem
			seen++
		}
	}
}

// Tail returns a sequence of all elements of seq but the first.
func Tail[T any](seq iter.Seq[T]) iter.Seq[T] {
	return Drop(seq, 1)
}

// Init returns a sequence of all elements of seq but the last.
func Init[T any](seq iter.Seq[T]) iter.Seq[T] {
	return DropLast(seq, 1)
}

// Intersperse returns a sequence that produces separator between every pair of
// adjacent elements of seq. No separator is produced before the first element
// or after the last.
func Intersperse[T any](seq iter.Seq[T], separator T) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true

		for elem := range seq {
			if !first {
				if !yield(separator) {
					return
				}
			}

			first = false

			if !yield(elem) {
				return
			}
		}
	}
}

// Insert returns a sequence that produces elem immediately before the element
// of seq at the given index, in production order. If index is beyond the end
// of seq, nothing is inserted; there is no trailing append.
func Insert[T any](seq iter.Seq[T], index int, elem T) iter.Seq[T] {
	return InsertAll(seq, index, []T{elem})
}

// InsertAll returns a sequence that produces all of elems, in order,
// immediately before the element of seq at the given index. If index is
// beyond the end of seq, nothing is inserted; there is no trailing append.
func InsertAll[T any](seq iter.Seq[T], index int, elems []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for at, elem := range ZipIndex(seq) {
			if at == index {
				for _, inserted := range elems {
					if !yield(inserted) {
						return
					}
				}
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Remove returns a sequence of the elements of seq, in order, dropping the
// count elements starting at index start.
func Remove[T any](seq iter.Seq[T], start int, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for index, elem := range ZipIndex(seq) {
			if index >= start && index < start+count {
				continue
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Adjust returns a sequence that produces modify applied to the element of seq
// at the given index, and every other element unchanged. If index is beyond
// the end of seq, the sequence is unchanged.
func Adjust[T any](seq iter.Seq[T], index int, modify Function[T, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for at, elem := range ZipIndex(seq) {
			if at == index {
				elem = modify(elem)
			}

			if !yield(elem) {
				return
			}
		}
	}
}
