// Package goiterables provides a set of lazy operations on sequences of elements.
// Sequences form a pipeline of operations that elements are pulled through.
//
// Sequences are constructed from slices, single values, integer ranges, or
// arbitrary generator functions. A sequence is an iter.Seq, so every pipeline
// composes with range-over-func loops and with the standard slices and maps
// packages.
//
// Elements may then be operated upon using mapping, filtering, and slicing
// operations (which are intermediate sequences). Finally, the elements are
// consumed by terminal operations, such as reductions, searches, matching
// checks, or map collectors.
//
// Absence and early termination are expressed with Optional rather than nil
// sentinels: searches return None when nothing matches, and a reducer returns
// None to stop a reduction without consuming further input.
//
// Sequences are always lazy, meaning that a sequence will produce a new element
// only after a downstream sequence or consumer has consumed the previous
// element. Each operation consumes its input at most once, left to right, and a
// consumer cancels a pipeline simply by breaking out of its loop.
package goiterables
