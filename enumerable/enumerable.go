// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package enumerable

func Filter[T any](slice []T, predicate func(T) bool) []T {
	filtered := make([]T, 0)
	for _, elem := range slice {
		if predicate(elem) {
			filtered = append(filtered, elem)
		}
	}
	return filtered
}

func Map[T, R any](slice []T, mapper func(T) R) []R {
	mapped := make([]R, len(slice))
	for i, elem := range slice {
		mapped[i] = mapper(elem)
	}
	return mapped
}

// Reduce folds the slice left to right starting from initial.
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	result := initial
	for _, elem := range slice {
		result = reducer(result, elem)
	}
	return result
}

// LastIndex returns the index of the last element satisfying predicate, or -1.
func LastIndex[T any](slice []T, predicate func(T) bool) int {
	for i := len(slice) - 1; i >= 0; i-- {
		if predicate(slice[i]) {
			return i
		}
	}
	return -1
}

// GroupBy splits the slice into groups of consecutive elements with the same key.
func GroupBy[T any, K comparable](slice []T, key func(T) K) [][]T {
	var groups [][]T
	for i, elem := range slice {
		if i == 0 || key(slice[i-1]) != key(elem) {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], elem)
	}
	return groups
}
