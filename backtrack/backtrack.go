package backtrack

import (
	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

// FindCycle searches g exhaustively for a Hamiltonian cycle and returns
// it as an alternating side-tagged sequence of length 2n. The boolean
// reports whether a cycle exists; absence is a normal outcome, not an
// error. A 0-vertex graph yields the empty cycle, trivially satisfied.
//
// The search tries every X-vertex as a start, descends along unvisited
// vertices of the opposite side in neighbor-list order, and on reaching
// depth 2n checks the closing edge back to the start. Visited markers
// are fully rolled back between starts. Exponential in the worst case;
// this is the DP engine's independent correctness oracle, not a solver
// meant for large instances.
func FindCycle(g *interval.Graph) (Cycle, bool, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, false, ErrGraphNil
	}
	n := g.N()
	if n == 0 {
		return Cycle{}, true, nil
	}

	// 2. Build the Y-side adjacency once; the graph caches only X→Y.
	yNeighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		for _, y := range g.NeighborsOfX(i) {
			yNeighbors[y] = append(yNeighbors[y], i)
		}
	}

	w := &searcher{
		g:          g,
		n:          n,
		yNeighbors: yNeighbors,
		visitedX:   make([]bool, n),
		visitedY:   make([]bool, n),
		path:       make(Cycle, 0, 2*n),
	}

	// 3. Try every X-vertex as the starting point, resetting all search
	// state after each failed attempt.
	for start := 0; start < n; start++ {
		w.resetTo(start)
		if w.descend(Vertex{Side: SideX, Index: start}) {
			return append(Cycle(nil), w.path...), true, nil
		}
	}

	return nil, false, nil
}

// searcher holds the state of one FindCycle invocation.
type searcher struct {
	g          *interval.Graph
	n          int
	yNeighbors [][]int
	visitedX   []bool
	visitedY   []bool
	path       Cycle
}

// resetTo clears all markers and seeds the path with X-vertex start.
func (w *searcher) resetTo(start int) {
	for i := 0; i < w.n; i++ {
		w.visitedX[i] = false
		w.visitedY[i] = false
	}
	w.path = w.path[:0]
	w.visitedX[start] = true
	w.path = append(w.path, Vertex{Side: SideX, Index: start})
}

// descend extends the alternating path from cur. At full length it
// checks the closing edge to the path's start; otherwise it tries every
// unvisited neighbor on the opposite side, acquiring the marker on the
// way down and releasing it on backtrack.
func (w *searcher) descend(cur Vertex) bool {
	if len(w.path) == 2*w.n {
		first := w.path[0]
		if cur.Side == first.Side {
			return false
		}
		if cur.Side == SideX {
			return w.g.HasEdge(cur.Index, first.Index)
		}

		return w.g.HasEdge(first.Index, cur.Index)
	}

	if cur.Side == SideX {
		for _, y := range w.g.NeighborsOfX(cur.Index) {
			if w.visitedY[y] {
				continue
			}
			w.visitedY[y] = true
			w.path = append(w.path, Vertex{Side: SideY, Index: y})
			if w.descend(Vertex{Side: SideY, Index: y}) {
				return true
			}
			w.path = w.path[:len(w.path)-1]
			w.visitedY[y] = false
		}

		return false
	}

	for _, i := range w.yNeighbors[cur.Index] {
		if w.visitedX[i] {
			continue
		}
		w.visitedX[i] = true
		w.path = append(w.path, Vertex{Side: SideX, Index: i})
		if w.descend(Vertex{Side: SideX, Index: i}) {
			return true
		}
		w.path = w.path[:len(w.path)-1]
		w.visitedX[i] = false
	}

	return false
}
