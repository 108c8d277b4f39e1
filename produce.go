package goiterables

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// GeneratorFunc produces the next step of a sequence from seed.
// Returning None ends the sequence.
type GeneratorFunc[S any, V any] func(seed S) Optional[UnfoldStep[V, S]]

// UnfoldStep is a single step of an Unfold: the element to produce,
// and the seed to generate the element after it from.
type UnfoldStep[V any, S any] struct {
	Elem V
	Seed S
}

// Produce returns a sequence of the elements of the given slices, in order.
// The sequence can be iterated more than once; each iteration traverses the
// slices from the start.
func Produce[T any](slices ...[]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, slice := range slices {
			for _, elem := range slice {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Single returns a sequence of exactly one element.
func Single[T any](elem T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(elem)
	}
}

// Concat returns a sequence of all elements of the given sequences, in order.
// A later sequence is not consumed until the one before it is exhausted, so if
// an earlier sequence is infinite, later ones are never reached.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for elem := range seq {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Append returns a sequence of all elements of seq followed by elem.
func Append[T any](seq iter.Seq[T], elem T) iter.Seq[T] {
	return Concat(seq, Single(elem))
}

// Prepend returns a sequence of elem followed by all elements of seq.
func Prepend[T any](elem T, seq iter.Seq[T]) iter.Seq[T] {
	return Concat(Single(elem), seq)
}

// Range returns the sequence of integers from from (inclusive) to to
// (exclusive), ascending. It is empty if from >= to.
func Range[I constraints.Integer](from I, to I) iter.Seq[I] {
	return func(yield func(I) bool) {
		for i := from; i < to; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat returns a sequence of count copies of elem.
// count must not be negative.
func Repeat[T any](elem T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(elem) {
				return
			}
		}
	}
}

// Times returns the sequence gen(0), gen(1), ..., gen(count-1).
// count must not be negative.
func Times[T any](gen Function[int, T], count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(gen(i)) {
				return
			}
		}
	}
}

// Unfold returns the sequence produced by repeatedly calling gen, starting
// with seed. Each step produced by gen contributes its element to the
// sequence, and its seed is passed to the next call. The sequence ends on the
// first None; it is infinite if gen never returns one.
func Unfold[S any, V any](gen GeneratorFunc[S, V], seed S) iter.Seq[V] {
	return func(yield func(V) bool) {
		next := seed

		for {
			step, ok := gen(next).Get()
			if !ok {
				return
			}

			if !yield(step.Elem) {
				return
			}

			next = step.Seed
		}
	}
}
