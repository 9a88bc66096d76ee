package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// AnyWithin returns true if an element of s lies strictly less than tol away from x.
func AnyWithin[T constraints.Float](s []T, x, tol T) bool {
	for _, si := range s {
		if Abs(si-x) < tol {
			return true
		}
	}
	return false
}

// MaxSlice returns the maximum value in the slice, or the zero value if the slice is empty.
func MaxSlice[V constraints.Ordered](slice []V) (max V) {
	if len(slice) == 0 {
		return
	}
	max = slice[0]
	for _, c := range slice[1:] {
		if c > max {
			max = c
		}
	}
	return
}

// Abs returns |x|.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
