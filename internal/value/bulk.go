package value

import "github.com/mcncl/jsontree/internal/traverse"

// MapOrFail applies f to every element of the array v, in order. It succeeds
// only when v is an array and f succeeds for every element.
func MapOrFail[A any](v Value, f func(Value) (A, bool)) ([]A, bool) {
	arr, ok := v.(arrayValue)
	if !ok {
		return nil, false
	}
	return traverse.Traverse(arr.items, f)
}

// FoldOrFail left-folds the elements of the array v into seed, stopping as
// soon as f fails.
func FoldOrFail[A any](v Value, seed A, f func(A, Value) (A, bool)) (A, bool) {
	arr, ok := v.(arrayValue)
	if !ok {
		var zero A
		return zero, false
	}
	return traverse.FoldLeft(arr.items, seed, f)
}
