// Package permutations enumerates orderings of a slice through the
// backtrack contract.
//
// State is the sequence of item indices chosen so far; a choice is the next
// index. Indices are offered in increasing order, so the n! solutions come
// out in lexicographic index order starting with the identity ordering.
package permutations

import (
	"github.com/katalvlaran/searchspace/backtrack"
)

// Problem implements backtrack.Problem over n item indices.
type Problem struct {
	indices []int // 0..n-1, shared read-only choice slice
}

// New constructs a permutation problem over n indices. n == 0 yields a
// single empty permutation.
func New(n int) Problem {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return Problem{indices: idx}
}

// Choices returns every index, in increasing order, or nothing once the
// permutation is complete.
func (p Problem) Choices(chosen []int) []int {
	if len(chosen) == len(p.indices) {
		return nil
	}

	return p.indices
}

// Valid rejects indices already used in the partial permutation.
func (p Problem) Valid(chosen []int, idx int) bool {
	for _, c := range chosen {
		if c == idx {
			return false
		}
	}

	return true
}

// Apply returns a fresh sequence extended by idx; the input is never
// mutated.
func (p Problem) Apply(chosen []int, idx int) []int {
	next := make([]int, len(chosen)+1)
	copy(next, chosen)
	next[len(chosen)] = idx

	return next
}

// Goal reports whether every index has been placed.
func (p Problem) Goal(chosen []int) bool {
	return len(chosen) == len(p.indices)
}

// Enumerate returns all permutations of items, in lexicographic index
// order. Each permutation is an independent slice.
func Enumerate[T any](items []T) ([][]T, error) {
	res, err := backtrack.Search(New(len(items)), []int(nil), backtrack.FindAll)
	if err != nil {
		return nil, err
	}

	out := make([][]T, 0, len(res.Solutions))
	for _, sol := range res.Solutions {
		perm := make([]T, len(sol))
		for i, idx := range sol {
			perm[i] = items[idx]
		}
		out = append(out, perm)
	}

	return out, nil
}
