package interval

import (
	"fmt"
	"sort"
)

// Graph is a bipartite graph G = (X, Y, E) with a 2-interval structure
// on side X: n X-vertices indexed 0..n-1, n Y-vertices, and an edge
// (x_i, y_j) whenever i is covered by one of y_j's intervals.
// Immutable once built; adjacency lists and the edge set are derived at
// construction and cached.
type Graph struct {
	n          int
	ys         []YVertex
	neighborsX [][]int
	edges      []Edge
}

// NewGraph validates the 2-interval structure and builds the graph.
// It fails closed: any violation yields a nil graph and an error
// wrapping ErrInvalidStructure.
//
// Complexity: O(n + m) where m is the number of edges.
func NewGraph(n int, ys []YVertex) (*Graph, error) {
	// 1. Shape: exactly n Y-vertices.
	if len(ys) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVertexCount, len(ys), n)
	}

	// 2. Per-vertex structural checks.
	var err error
	for y, yv := range ys {
		for _, iv := range [2]Interval{yv.First, yv.Second} {
			if err = checkBounds(iv, n, y); err != nil {
				return nil, err
			}
		}
		if !yv.First.Empty() && !yv.Second.Empty() {
			r1 := yv.First.hi
			l2 := yv.Second.lo
			if r1 >= l2 {
				return nil, fmt.Errorf("%w: y=%d has first=%v, second=%v", ErrIntervalOrder, y, yv.First, yv.Second)
			}
		}
	}

	g := &Graph{
		n:          n,
		ys:         append([]YVertex(nil), ys...),
		neighborsX: make([][]int, n),
	}

	// 3. Derive adjacency and the edge set. The outer loop runs over
	// ascending y, so each neighborsX[i] comes out sorted ascending and
	// duplicate-free (a vertex's two intervals are disjoint).
	for y, yv := range g.ys {
		for _, iv := range [2]Interval{yv.First, yv.Second} {
			if iv.Empty() {
				continue
			}
			for i := iv.lo; i <= iv.hi; i++ {
				g.neighborsX[i] = append(g.neighborsX[i], y)
				g.edges = append(g.edges, Edge{X: i, Y: y})
			}
		}
	}

	// 4. Canonical edge order: by X, then by Y.
	sort.Slice(g.edges, func(a, b int) bool {
		if g.edges[a].X != g.edges[b].X {
			return g.edges[a].X < g.edges[b].X
		}

		return g.edges[a].Y < g.edges[b].Y
	})

	return g, nil
}

// checkBounds verifies 0 <= l <= r < n for a non-empty interval.
func checkBounds(iv Interval, n, y int) error {
	if iv.Empty() {
		return nil
	}
	if iv.lo < 0 || iv.hi >= n || iv.lo > iv.hi {
		return fmt.Errorf("%w: y=%d has %v with n=%d", ErrIntervalBounds, y, iv, n)
	}

	return nil
}

// N returns the number of vertices per side.
func (g *Graph) N() int { return g.n }

// Y returns the y-th Y-vertex. Panics if y is out of range, matching
// slice semantics.
func (g *Graph) Y(y int) YVertex { return g.ys[y] }

// YVertices returns a copy of the Y-vertex list.
func (g *Graph) YVertices() []YVertex {
	return append([]YVertex(nil), g.ys...)
}

// NeighborsOfX returns the Y-indices adjacent to X-index i, sorted
// ascending and duplicate-free. Out-of-range i yields an empty list.
// The returned slice is the graph's cached adjacency; callers must not
// modify it.
func (g *Graph) NeighborsOfX(i int) []int {
	if i < 0 || i >= g.n {
		return nil
	}

	return g.neighborsX[i]
}

// HasEdge reports whether (x_i, y_j) is an edge.
func (g *Graph) HasEdge(i, y int) bool {
	if y < 0 || y >= g.n {
		return false
	}
	yv := g.ys[y]

	return yv.First.Contains(i) || yv.Second.Contains(i)
}

// Edges returns the full edge set sorted by (X, Y). The result is a
// copy and safe to modify.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
