package interval_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// cyclic3 is the canonical n=3 instance with a Hamiltonian cycle
// X0–Y0–X1–Y1–X2–Y2–X0.
func cyclic3(t *testing.T) *interval.Graph {
	t.Helper()
	g, err := interval.NewGraph(3, []interval.YVertex{
		{First: interval.NewInterval(0, 1)},
		{First: interval.NewInterval(1, 2)},
		{First: interval.NewInterval(0, 0), Second: interval.NewInterval(2, 2)},
	})
	if err != nil {
		t.Fatalf("NewGraph error: %v", err)
	}

	return g
}

// TestNewGraph_Errors verifies that every structural violation fails
// closed with the right sentinel, all matching ErrInvalidStructure.
func TestNewGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		n    int
		ys   []interval.YVertex
		err  error
	}{
		{
			"VertexCountMismatch", 3,
			[]interval.YVertex{{First: interval.NewInterval(0, 1)}},
			interval.ErrVertexCount,
		},
		{
			"RightBoundTooLarge", 2,
			[]interval.YVertex{{First: interval.NewInterval(0, 2)}, {}},
			interval.ErrIntervalBounds,
		},
		{
			"NegativeLeftBound", 2,
			[]interval.YVertex{{First: interval.NewInterval(-1, 0)}, {}},
			interval.ErrIntervalBounds,
		},
		{
			"InvertedInterval", 3,
			[]interval.YVertex{{First: interval.NewInterval(2, 1)}, {}, {}},
			interval.ErrIntervalBounds,
		},
		{
			"SecondOutOfRange", 3,
			[]interval.YVertex{{First: interval.NewInterval(0, 0), Second: interval.NewInterval(2, 3)}, {}, {}},
			interval.ErrIntervalBounds,
		},
		{
			"TouchingIntervals", 3,
			[]interval.YVertex{{First: interval.NewInterval(0, 1), Second: interval.NewInterval(1, 2)}, {}, {}},
			interval.ErrIntervalOrder,
		},
		{
			"OverlappingIntervals", 4,
			[]interval.YVertex{{First: interval.NewInterval(0, 2), Second: interval.NewInterval(1, 3)}, {}, {}, {}},
			interval.ErrIntervalOrder,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := interval.NewGraph(tc.n, tc.ys)
			if g != nil {
				t.Error("NewGraph returned a partially-built graph on error")
			}
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGraph error = %v; want %v", err, tc.err)
			}
			if !errors.Is(err, interval.ErrInvalidStructure) {
				t.Errorf("error %v does not match ErrInvalidStructure", err)
			}
		})
	}
}

// TestNewGraph_Adjacency checks cached adjacency and the edge set on
// the canonical instance.
func TestNewGraph_Adjacency(t *testing.T) {
	g := cyclic3(t)

	wantNeighbors := [][]int{
		{0, 2}, // x0: Y0 first, Y2 first
		{0, 1}, // x1: Y0 first, Y1 first
		{1, 2}, // x2: Y1 first, Y2 second
	}
	for i, want := range wantNeighbors {
		if got := g.NeighborsOfX(i); !reflect.DeepEqual(got, want) {
			t.Errorf("NeighborsOfX(%d) = %v; want %v", i, got, want)
		}
	}

	wantEdges := []interval.Edge{
		{X: 0, Y: 0}, {X: 0, Y: 2},
		{X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 2, Y: 1}, {X: 2, Y: 2},
	}
	if got := g.Edges(); !reflect.DeepEqual(got, wantEdges) {
		t.Errorf("Edges() = %v; want %v", got, wantEdges)
	}
	if got := g.EdgeCount(); got != len(wantEdges) {
		t.Errorf("EdgeCount() = %d; want %d", got, len(wantEdges))
	}
}

// TestNewGraph_OutOfRangeQueries checks the tolerant query paths.
func TestNewGraph_OutOfRangeQueries(t *testing.T) {
	g := cyclic3(t)

	if got := g.NeighborsOfX(-1); len(got) != 0 {
		t.Errorf("NeighborsOfX(-1) = %v; want empty", got)
	}
	if got := g.NeighborsOfX(3); len(got) != 0 {
		t.Errorf("NeighborsOfX(3) = %v; want empty", got)
	}
	if g.HasEdge(0, -1) || g.HasEdge(0, 3) {
		t.Error("HasEdge accepted an out-of-range Y-index")
	}
}

// TestNewGraph_Idempotent verifies that identical input yields
// value-identical adjacency and edge sets.
func TestNewGraph_Idempotent(t *testing.T) {
	a := cyclic3(t)
	b := cyclic3(t)

	for i := 0; i < a.N(); i++ {
		if !reflect.DeepEqual(a.NeighborsOfX(i), b.NeighborsOfX(i)) {
			t.Errorf("adjacency of x%d differs between identical constructions", i)
		}
	}
	if !reflect.DeepEqual(a.Edges(), b.Edges()) {
		t.Error("edge sets differ between identical constructions")
	}
	if !reflect.DeepEqual(a.YVertices(), b.YVertices()) {
		t.Error("Y-vertex lists differ between identical constructions")
	}
}

// TestHasEdge spans both interval roles.
func TestHasEdge(t *testing.T) {
	g := cyclic3(t)

	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},  // Y0 first
		{2, 2, true},  // Y2 second
		{0, 2, true},  // Y2 first
		{1, 2, false}, // the gap of Y2
		{2, 0, false},
	}
	for _, tc := range cases {
		if got := g.HasEdge(tc.x, tc.y); got != tc.want {
			t.Errorf("HasEdge(%d,%d) = %v; want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

//----------------------------------------------------------------------------//
// Interval Value Type Tests
//----------------------------------------------------------------------------//

// TestInterval_Queries covers membership and endpoint predicates,
// including the empty sentinel.
func TestInterval_Queries(t *testing.T) {
	iv := interval.NewInterval(2, 5)
	empty := interval.EmptyInterval()

	if empty.Contains(0) || empty.IsLeftEndpoint(0) || empty.IsRightEndpoint(0) || empty.StrictlyInside(0) {
		t.Error("empty interval answered true to a point query")
	}
	if !empty.Empty() {
		t.Error("EmptyInterval().Empty() = false")
	}
	if (interval.Interval{}).Empty() != true {
		t.Error("zero-value Interval is not empty")
	}

	if !iv.Contains(2) || !iv.Contains(5) || iv.Contains(6) || iv.Contains(1) {
		t.Error("Contains misclassified a boundary point")
	}
	if !iv.IsLeftEndpoint(2) || iv.IsLeftEndpoint(3) {
		t.Error("IsLeftEndpoint misclassified")
	}
	if !iv.IsRightEndpoint(5) || iv.IsRightEndpoint(4) {
		t.Error("IsRightEndpoint misclassified")
	}
	if !iv.StrictlyInside(3) || iv.StrictlyInside(2) || iv.StrictlyInside(5) {
		t.Error("StrictlyInside misclassified")
	}
	if l, r := iv.Bounds(); l != 2 || r != 5 {
		t.Errorf("Bounds() = (%d,%d); want (2,5)", l, r)
	}
}
