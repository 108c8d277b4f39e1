package goiterables

import (
	"slices"
	"testing"

	"github.com/matryer/is"
	"golang.org/x/exp/maps"
)

func TestToPairs(t *testing.T) {
	is := is.New(t)

	pairs := slices.Collect(ToPairs(map[string]int{"a": 1, "b": 2}))

	is.Equal(len(pairs), 2)
	is.True(slices.Contains(pairs, Pair[string, int]{Key: "a", Value: 1}))
	is.True(slices.Contains(pairs, Pair[string, int]{Key: "b", Value: 2}))
}

func TestFromPairs(t *testing.T) {
	is := is.New(t)

	record := FromPairs(Produce([]Pair[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
	}))

	is.Equal(record, map[string]int{
		"a": 1,
		"b": 2,
	})
}

func TestFromPairs_LaterOverwrites(t *testing.T) {
	is := is.New(t)

	record := FromPairs(Produce([]Pair[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "a", Value: 3},
	}))

	is.Equal(record, map[string]int{
		"a": 3,
		"b": 2,
	})
}

func TestToPairs_FromPairs_RoundTrip(t *testing.T) {
	is := is.New(t)

	record := map[string]int{"a": 1, "b": 2, "c": 3}

	is.Equal(FromPairs(ToPairs(record)), record)
}

func TestIndexBy(t *testing.T) {
	is := is.New(t)

	record := IndexBy(Produce([]string{"apple", "banana", "avocado"}), func(elem string) string {
		return elem[:1]
	})

	// later elements overwrite earlier ones on key collision
	is.Equal(record, map[string]string{
		"a": "avocado",
		"b": "banana",
	})

	keys := maps.Keys(record)
	slices.Sort(keys)

	is.Equal(keys, []string{"a", "b"})
}

func TestPluck(t *testing.T) {
	is := is.New(t)

	records := []map[string]string{
		{"name": "ada", "role": "engineer"},
		{"name": "grace", "role": "admiral"},
		{"role": "unknown"},
	}

	names := slices.Collect(Pluck(Produce(records), "name"))

	// a record without the key contributes the zero value
	is.Equal(names, []string{"ada", "grace", ""})
}

func TestMergeAll(t *testing.T) {
	is := is.New(t)

	merged := MergeAll(Produce([]map[string]int{
		{"a": 1, "b": 2},
		{"b": 20, "c": 3},
		{"d": 4},
	}))

	is.Equal(merged, map[string]int{
		"a": 1,
		"b": 20,
		"c": 3,
		"d": 4,
	})
}

func TestMergeAll_InputsUntouched(t *testing.T) {
	is := is.New(t)

	first := map[string]int{"a": 1}
	second := map[string]int{"a": 2}

	merged := MergeAll(Produce([]map[string]int{first, second}))

	is.Equal(merged["a"], 2)
	is.Equal(first["a"], 1)
	is.Equal(second["a"], 2)
}

func TestPluck_ComposesWithJoin(t *testing.T) {
	is := is.New(t)

	records := []map[string]string{
		{"name": "ada"},
		{"name": "grace"},
	}

	is.Equal(Join(Pluck(Produce(records), "name"), ", "), "ada, grace")
}
