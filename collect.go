package goiterables

import (
	"iter"

	"golang.org/x/exp/maps"
)

// Pair is a key/value entry of a record, in sequence form.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// ToPairs returns a sequence of the entries of record. The order of entries is
// undefined, matching map iteration order.
func ToPairs[K comparable, V any](record map[K]V) iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for key, value := range record {
			if !yield(Pair[K, V]{Key: key, Value: value}) {
				return
			}
		}
	}
}

// FromPairs collects a sequence of entries into a record. If a key occurs more
// than once, later entries overwrite earlier ones.
func FromPairs[K comparable, V any](seq iter.Seq[Pair[K, V]]) map[K]V {
	return Reduce(seq, map[K]V{}, func(acc map[K]V, entry Pair[K, V]) map[K]V {
		acc[entry.Key] = entry.Value
		return acc
	})
}

// IndexBy collects the elements of seq into a record keyed by key. If key maps
// two elements to the same key, later elements overwrite earlier ones.
func IndexBy[T any, K comparable](seq iter.Seq[T], key Function[T, K]) map[K]T {
	return FromPairs(Map(seq, func(elem T) Pair[K, T] {
		return Pair[K, T]{Key: key(elem), Value: elem}
	}))
}

// Pluck projects the field named key out of each record produced by seq.
// A record without the key contributes the zero value of V.
func Pluck[K comparable, V any](seq iter.Seq[map[K]V], key K) iter.Seq[V] {
	return Map(seq, func(record map[K]V) V {
		return record[key]
	})
}

// MergeAll merges a sequence of records into a single record, left to right.
// On key collision, later records overwrite earlier ones. Input records are
// not modified.
func MergeAll[K comparable, V any](seq iter.Seq[map[K]V]) map[K]V {
	return Reduce(seq, map[K]V{}, func(acc map[K]V, record map[K]V) map[K]V {
		maps.Copy(acc, record)
		return acc
	})
}
