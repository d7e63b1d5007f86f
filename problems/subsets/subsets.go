// Package subsets enumerates every subset of a slice through the backtrack
// contract.
//
// This problem shows the "goal everywhere" pattern: every node of the
// decision tree is a solution, including the root (the empty subset), and
// exploration continues below recorded solutions. State is the next index
// eligible for inclusion; a choice is an index to include, offered in
// increasing order so each subset is generated exactly once, as its sorted
// index sequence.
package subsets

import (
	"github.com/katalvlaran/searchspace/backtrack"
)

// Problem implements backtrack.Problem over n item indices.
type Problem struct {
	n int
}

// New constructs a subset problem over n indices.
func New(n int) Problem {
	return Problem{n: n}
}

// Choices returns the indices still eligible after the last inclusion:
// start..n-1, in increasing order.
func (p Problem) Choices(start int) []int {
	if start >= p.n {
		return nil
	}
	out := make([]int, 0, p.n-start)
	for i := start; i < p.n; i++ {
		out = append(out, i)
	}

	return out
}

// Valid accepts every eligible index; Choices already excludes duplicates.
func (p Problem) Valid(int, int) bool {
	return true
}

// Apply moves the eligibility cursor past the included index.
func (p Problem) Apply(_ int, idx int) int {
	return idx + 1
}

// Goal holds at every node: each partial inclusion sequence is a subset.
func (p Problem) Goal(int) bool {
	return true
}

// Enumerate returns all 2^n subsets of items, from the empty subset up,
// each as an independent slice preserving item order.
func Enumerate[T any](items []T) ([][]T, error) {
	res, err := backtrack.Search(New(len(items)), 0, backtrack.FindAll)
	if err != nil {
		return nil, err
	}

	out := make([][]T, 0, len(res.Solutions))
	for _, sol := range res.Solutions {
		sub := make([]T, len(sol))
		for i, idx := range sol {
			sub[i] = items[idx]
		}
		out = append(out, sub)
	}

	return out, nil
}
