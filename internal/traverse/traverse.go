// Package traverse provides fail-fast sequence and traverse combinators over
// slices, key-ordered maps, single pairs and lazy iterator sequences.
//
// Every combinator reports success with a trailing bool. A false result means
// at least one element was absent; no partial result is returned.
package traverse

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Option is a value that may be absent.
type Option[A any] struct {
	value A
	ok    bool
}

// Some wraps a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, ok: true}
}

// None returns an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPair builds an Option from the usual Go (value, ok) pair.
func FromPair[A any](a A, ok bool) Option[A] {
	if !ok {
		return None[A]()
	}
	return Some(a)
}

// Get returns the wrapped value and whether it is present.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// IsPresent reports whether the option holds a value.
func (o Option[A]) IsPresent() bool {
	return o.ok
}

// Pair is a single key-value entry.
type Pair[K, A any] struct {
	Key   K
	Value A
}

// Sequence turns a slice of options into an optional slice. It succeeds only
// if every element is present.
func Sequence[A any](xs []Option[A]) ([]A, bool) {
	return Traverse(xs, Option[A].Get)
}

// Traverse applies f to every element in order and collects the results,
// stopping at the first failure.
func Traverse[A, B any](xs []A, f func(A) (B, bool)) ([]B, bool) {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		b, ok := f(x)
		if !ok {
			return nil, false
		}
		out = append(out, b)
	}
	return out, true
}

// SequenceMap turns a map of options into an optional map with the same keys.
func SequenceMap[K cmp.Ordered, A any](m map[K]Option[A]) (map[K]A, bool) {
	return TraverseMap(m, Option[A].Get)
}

// TraverseMap transforms the values of m, keeping keys. Values are visited in
// ascending key order so the first failing key is deterministic.
func TraverseMap[K cmp.Ordered, A, B any](m map[K]A, f func(A) (B, bool)) (map[K]B, bool) {
	out := make(map[K]B, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		b, ok := f(m[k])
		if !ok {
			return nil, false
		}
		out[k] = b
	}
	return out, true
}

// SequencePair lifts the absence of a pair's value to the pair itself.
func SequencePair[K, A any](p Pair[K, Option[A]]) (Pair[K, A], bool) {
	return TraversePair(p, Option[A].Get)
}

// TraversePair transforms the value of p, keeping its key.
func TraversePair[K, A, B any](p Pair[K, A], f func(A) (B, bool)) (Pair[K, B], bool) {
	b, ok := f(p.Value)
	if !ok {
		return Pair[K, B]{}, false
	}
	return Pair[K, B]{Key: p.Key, Value: b}, true
}

// SequenceSeq drains a lazy sequence of options. The sequence is pulled one
// element at a time and iteration stops at the first absent element, so an
// unbounded sequence with a failing element at a finite position terminates.
func SequenceSeq[A any](seq iter.Seq[Option[A]]) ([]A, bool) {
	return TraverseSeq(seq, Option[A].Get)
}

// TraverseSeq applies f to each element of a lazy sequence as it is produced.
// Elements after the first failure are never requested.
func TraverseSeq[A, B any](seq iter.Seq[A], f func(A) (B, bool)) ([]B, bool) {
	out := []B{}
	ok := true
	for a := range seq {
		var b B
		if b, ok = f(a); !ok {
			break
		}
		out = append(out, b)
	}
	if !ok {
		return nil, false
	}
	return out, true
}

// FoldLeft threads an accumulator through xs, stopping as soon as f fails.
func FoldLeft[A, B any](xs []A, seed B, f func(B, A) (B, bool)) (B, bool) {
	acc := seed
	for _, x := range xs {
		next, ok := f(acc, x)
		if !ok {
			var zero B
			return zero, false
		}
		acc = next
	}
	return acc, true
}
