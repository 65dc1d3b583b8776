package dp

import (
	"sort"

	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

// Solver decides Hamiltonian-cycle existence on a 2-interval bipartite
// graph by dynamic programming over (k, O, L) states. A Solver owns its
// reachability and provenance maps exclusively; Run clears and rebuilds
// them, so the same instance may be run repeatedly.
//
// Not safe for concurrent use; construct one Solver per goroutine.
type Solver struct {
	g *interval.Graph
	n int

	reachable     map[State]struct{}
	pred          map[State]Predecessor
	layers        map[int][]State // discovery order per layer k
	perTransition map[Transition]int
}

// NewSolver returns a Solver over g, or ErrGraphNil.
func NewSolver(g *interval.Graph) (*Solver, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return &Solver{g: g, n: g.N()}, nil
}

// reset drops all per-run state.
func (s *Solver) reset() {
	s.reachable = make(map[State]struct{})
	s.pred = make(map[State]Predecessor)
	s.layers = make(map[int][]State)
	s.perTransition = make(map[Transition]int)
}

// discover inserts st if unseen, appending it to its layer's discovery
// list and, when prev is non-nil, recording provenance and counting the
// transition. First discovery wins: a state reached again later keeps
// its original record, whatever rule or edge set produced the repeat.
func (s *Solver) discover(st State, prev *Predecessor) {
	if _, seen := s.reachable[st]; seen {
		return
	}
	s.reachable[st] = struct{}{}
	s.layers[st.K] = append(s.layers[st.K], st)
	if prev != nil {
		s.pred[st] = *prev
		s.perTransition[prev.Via]++
	}
}

// seed initializes layer 1, i.e. the DP after processing x0:
//
//   - the loose state (1, ∅, 1), x0 kept as an unmatched end;
//   - for each neighbor y of x0, the state where x0 is attached to y.
//     y becomes open only if its second interval is non-empty and
//     starts strictly right of x0; otherwise the attachment is already
//     complete and the open set stays empty.
func (s *Solver) seed() {
	s.discover(State{K: 1, Loose: true}, nil)

	for _, y := range s.g.NeighborsOfX(0) {
		var open OpenSet
		if second := s.g.Y(y).Second; !second.Empty() {
			if l, _ := second.Bounds(); l > 0 {
				open, _ = NewOpenSet(y)
			}
		}
		s.discover(State{K: 1, Open: open, Loose: true}, &Predecessor{
			Prev:  State{K: 0, Loose: true},
			Via:   TransitionInit,
			Added: []interval.Edge{{X: 0, Y: y}},
		})
	}
}

// Run executes the DP across x_0..x_{n-1} and returns its statistics.
//
// Layer k states are expanded in discovery order; each fired rule
// yields a layer k+1 candidate, inserted under first-discovery-wins.
// Acceptance is reachability of (n, ∅, 0): all X-vertices processed,
// nothing open, no loose end.
//
// Complexity: the open-set cap and the binary loose flag bound each
// layer by O(n²) states, so a full run is polynomial in n.
func (s *Solver) Run() Stats {
	// 1. Fresh per-run containers.
	s.reset()

	// 2. Layer 1.
	s.seed()

	// 3. Advance layer by layer. New discoveries always land in layer
	// k+1, so iterating the layer-k slice while appending is safe.
	statesPerLayer := make(map[int]int, s.n)
	for k := 1; k < s.n; k++ {
		layer := s.layers[k]
		statesPerLayer[k] = len(layer)
		for _, st := range layer {
			for _, c := range s.expand(st) {
				s.discover(c.next, &Predecessor{Prev: st, Via: c.via, Added: c.added})
			}
		}
	}

	// 4. Acceptance and aggregates.
	_, accepted := s.reachable[State{K: s.n}]

	maxPerLayer := 0
	for _, c := range statesPerLayer {
		if c > maxPerLayer {
			maxPerLayer = c
		}
	}

	perTransition := make(map[Transition]int, len(s.perTransition))
	for t, c := range s.perTransition {
		perTransition[t] = c
	}

	return Stats{
		TotalStates:    len(s.reachable),
		StatesPerLayer: statesPerLayer,
		MaxPerLayer:    maxPerLayer,
		PerTransition:  perTransition,
		Accepted:       accepted,
	}
}

// HasHamiltonianCycle runs the DP and returns the acceptance flag.
func (s *Solver) HasHamiltonianCycle() bool {
	return s.Run().Accepted
}

// States returns every state reached by the most recent Run, grouped
// by layer ascending, in discovery order within each layer.
func (s *Solver) States() []State {
	keys := make([]int, 0, len(s.layers))
	for k := range s.layers {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]State, 0, len(s.reachable))
	for _, k := range keys {
		out = append(out, s.layers[k]...)
	}

	return out
}

// Predecessor returns the provenance record of st from the most recent
// Run, if st was reached through a recorded transition. Seed states
// without provenance (and unreached states) report false.
func (s *Solver) Predecessor(st State) (Predecessor, bool) {
	p, ok := s.pred[st]

	return p, ok
}

// Chain walks the provenance records from st back toward a seed state,
// most recent first. An empty chain means st has no recorded
// predecessor.
func (s *Solver) Chain(st State) []Predecessor {
	var chain []Predecessor
	cur := st
	for {
		p, ok := s.pred[cur]
		if !ok {
			return chain
		}
		chain = append(chain, p)
		cur = p.Prev
	}
}
