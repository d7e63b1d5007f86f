package frontier_test

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/searchspace/frontier"
)

// ring builds an implicit cycle graph 0—1—…—n-1—0.
func ring(n int) frontier.Funcs[int, int] {
	return frontier.Funcs[int, int]{
		NeighborsFn: func(v int) []int {
			return []int{(v + 1) % n, (v - 1 + n) % n}
		},
		KeyFn: func(v int) int { return v },
	}
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	// nil graph
	if _, err := frontier.Search[int, int](nil, []int{0}, nil); !errors.Is(err, frontier.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	// no sources
	if _, err := frontier.Search(ring(4), nil, nil); !errors.Is(err, frontier.ErrNoSources) {
		t.Errorf("no sources: want ErrNoSources, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := frontier.Search(ring(4), []int{0}, nil, frontier.WithMaxDepth(-1)); !errors.Is(err, frontier.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestSearch_RingDistances checks level-synchronous distances on a cycle.
func TestSearch_RingDistances(t *testing.T) {
	res, err := frontier.Search(ring(8), []int{0}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 5: 3, 6: 2, 7: 1}
	for v, d := range want {
		if got := res.DistanceTo(v); got != d {
			t.Errorf("DistanceTo(%d) = %d; want %d", v, got, d)
		}
	}
	// First dequeued key is the source itself.
	if res.Order[0] != 0 {
		t.Errorf("Order[0] = %d; want 0", res.Order[0])
	}
}

// TestSearch_GoalShortCircuit checks the search stops at the first dequeued
// goal and reports its distance.
func TestSearch_GoalShortCircuit(t *testing.T) {
	visited := 0
	res, err := frontier.Search(ring(100), []int{0}, func(v int) bool { return v == 3 },
		frontier.WithOnVisit(func(int) error { visited++; return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !res.GoalReached || res.GoalState != 3 || res.GoalDist != 3 {
		t.Errorf("goal: reached=%v state=%d dist=%d; want true/3/3", res.GoalReached, res.GoalState, res.GoalDist)
	}
	// Level-synchronous: only distances 0..3 are ever dequeued.
	if visited > 7 {
		t.Errorf("visited %d nodes; want ≤ 7", visited)
	}
}

// TestSearch_UnreachableGoal checks a drained frontier is a normal outcome.
func TestSearch_UnreachableGoal(t *testing.T) {
	res, err := frontier.Search(ring(4), []int{0}, func(v int) bool { return v == 42 })
	if err != nil {
		t.Fatalf("unreachable goal must not error, got %v", err)
	}
	if res.GoalReached {
		t.Error("GoalReached = true; want false")
	}
	if res.GoalDist != frontier.Unreachable {
		t.Errorf("GoalDist = %d; want Unreachable", res.GoalDist)
	}
	if d := res.DistanceTo(42); d != frontier.Unreachable {
		t.Errorf("DistanceTo(42) = %d; want Unreachable", d)
	}
}

// TestSearch_MultiSource seeds several origins at distance 0.
func TestSearch_MultiSource(t *testing.T) {
	res, err := frontier.Search(ring(12), []int{0, 6}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := res.DistanceTo(3); d != 3 {
		t.Errorf("DistanceTo(3) = %d; want 3", d)
	}
	if d := res.DistanceTo(9); d != 3 {
		t.Errorf("DistanceTo(9) = %d; want 3", d)
	}
	// Duplicate sources collapse to one enqueue.
	res, err = frontier.Search(ring(4), []int{1, 1, 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 4 {
		t.Errorf("order length = %d; want 4", len(res.Order))
	}
}

// TestSearch_PathTo verifies parent-link reconstruction and its
// first-discovery tie-break.
func TestSearch_PathTo(t *testing.T) {
	res, err := frontier.Search(ring(8), []int{0}, nil)
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(3) = %v; want %v", path, want)
	}
	// Unreached key
	if _, err = res.PathTo(99); !errors.Is(err, frontier.ErrNoPath) {
		t.Errorf("PathTo(99): want ErrNoPath, got %v", err)
	}
}

// TestSearch_OrderInvariance shuffles neighbor output and asserts the
// reported shortest distance never changes.
func TestSearch_OrderInvariance(t *testing.T) {
	edges := map[int][]int{
		0: {1, 2}, 1: {0, 3}, 2: {0, 3, 4}, 3: {1, 2, 5}, 4: {2, 5}, 5: {3, 4},
	}
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		g := frontier.Funcs[int, int]{
			NeighborsFn: func(v int) []int {
				out := append([]int(nil), edges[v]...)
				rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

				return out
			},
			KeyFn: func(v int) int { return v },
		}
		res, err := frontier.Search(g, []int{0}, func(v int) bool { return v == 5 })
		if err != nil {
			t.Fatal(err)
		}
		if res.GoalDist != 3 {
			t.Fatalf("trial %d: GoalDist = %d; want 3", trial, res.GoalDist)
		}
	}
}

// TestSearch_CompositeKeys lets the same position coexist under different
// auxiliary budgets: the key distinguishes them, the raw position would not.
func TestSearch_CompositeKeys(t *testing.T) {
	type node struct{ pos, budget int }
	// positions 0..3 in a line; moving right costs one budget unit at
	// position 2 only
	g := frontier.Funcs[node, node]{
		NeighborsFn: func(n node) []node {
			if n.pos == 3 {
				return nil
			}
			if n.pos == 2 && n.budget == 0 {
				return nil
			}
			next := node{pos: n.pos + 1, budget: n.budget}
			if n.pos == 2 {
				next.budget--
			}

			return []node{next}
		},
		KeyFn: func(n node) node { return n },
	}
	res, err := frontier.Search(g, []node{{pos: 0, budget: 1}, {pos: 2, budget: 0}}, func(n node) bool { return n.pos == 3 })
	if err != nil {
		t.Fatal(err)
	}
	if !res.GoalReached {
		t.Fatal("goal not reached")
	}
	// (2,0) is a dead end, but (2,1) — same position, different budget — is
	// a distinct node the registry must not conflate.
	if d := res.DistanceTo(node{pos: 2, budget: 1}); d != 2 {
		t.Errorf("DistanceTo((2,1)) = %d; want 2", d)
	}
	if d := res.DistanceTo(node{pos: 2, budget: 0}); d != 0 {
		t.Errorf("DistanceTo((2,0)) = %d; want 0", d)
	}
}

// TestSearch_MaxDepth verifies WithMaxDepth stops expansion past the limit.
func TestSearch_MaxDepth(t *testing.T) {
	res, err := frontier.Search(ring(100), []int{0}, nil, frontier.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 5 { // 0, two at distance 1, two at distance 2
		t.Errorf("order length = %d; want 5", len(res.Order))
	}
}

// TestSearch_SeenAtEnqueue asserts a key reachable through two same-level
// paths is enqueued exactly once.
func TestSearch_SeenAtEnqueue(t *testing.T) {
	// diamond: 0 → {1, 2} → 3
	edges := map[int][]int{0: {1, 2}, 1: {3}, 2: {3}, 3: {}}
	g := frontier.Funcs[int, int]{
		NeighborsFn: func(v int) []int { return edges[v] },
		KeyFn:       func(v int) int { return v },
	}
	enqueued := 0
	res, err := frontier.Search(g, []int{0}, nil, frontier.WithOnEnqueue(func(int) { enqueued++ }))
	if err != nil {
		t.Fatal(err)
	}
	if enqueued != 4 {
		t.Errorf("enqueued %d times; want 4 (3 must not be enqueued twice)", enqueued)
	}
	// parent of 3 is 1, its first discoverer
	if p := res.Parent[3]; p != 1 {
		t.Errorf("Parent[3] = %d; want 1", p)
	}
}

// TestSearch_HookErrorAborts propagates an OnVisit error with context.
func TestSearch_HookErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	_, err := frontier.Search(ring(8), []int{0}, nil, frontier.WithOnVisit(func(d int) error {
		if d == 2 {
			return boom
		}

		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want wrapped boom, got %v", err)
	}
}

// TestSearch_ContextCancel aborts a long search.
func TestSearch_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	_, err := frontier.Search(ring(1000), []int{0}, nil,
		frontier.WithContext(ctx),
		frontier.WithOnDequeue(func(int) {
			n++
			if n == 5 {
				cancel()
			}
		}),
	)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

// TestSearch_LargeGrid sanity-checks distances on an implicit 50×50 grid.
func TestSearch_LargeGrid(t *testing.T) {
	type pt struct{ x, y int }
	const side = 50
	g := frontier.Funcs[pt, pt]{
		NeighborsFn: func(p pt) []pt {
			cand := []pt{{p.x, p.y - 1}, {p.x + 1, p.y}, {p.x, p.y + 1}, {p.x - 1, p.y}}
			out := cand[:0]
			for _, c := range cand {
				if c.x >= 0 && c.x < side && c.y >= 0 && c.y < side {
					out = append(out, c)
				}
			}

			return out
		},
		KeyFn: func(p pt) pt { return p },
	}
	res, err := frontier.Search(g, []pt{{0, 0}}, func(p pt) bool { return p == pt{side - 1, side - 1} })
	if err != nil {
		t.Fatal(err)
	}
	if want := 2 * (side - 1); res.GoalDist != want {
		t.Errorf("GoalDist = %d; want %d", res.GoalDist, want)
	}
}
