package dp

import (
	"slices"

	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

// candidate is one fired transition: the successor state, the rule that
// produced it, and the edges that rule adds to the partial structure.
type candidate struct {
	next  State
	via   Transition
	added []interval.Edge
}

// stackOrder is the non-crossing precondition for keeping two vertices
// open at once: with yOld opened earlier and yNew opened now, yOld's
// second interval must lie entirely to the right of yNew's first
// interval (l(second_old) > r(first_new)). False when either required
// interval is empty.
func (s *Solver) stackOrder(yOld, yNew int) bool {
	old := s.g.Y(yOld)
	cur := s.g.Y(yNew)
	if old.Second.Empty() || cur.First.Empty() {
		return false
	}
	l2, _ := old.Second.Bounds()
	_, r1 := cur.First.Bounds()

	return l2 > r1
}

// expand enumerates every transition applicable to st at X-index i = K.
// Rules fire in the fixed order T1..T5; within a rule, Y-indices are
// visited ascending. Both orders are what make repeated runs produce
// identical statistics under the first-discovery-wins policy.
//
// An X-index with no adjacent Y-vertices is a dead end: no rule fires,
// not even the boundary-free advance.
func (s *Solver) expand(st State) []candidate {
	if st.K >= s.n {
		return nil
	}
	i := st.K
	nbrs := s.g.NeighborsOfX(i)
	if len(nbrs) == 0 {
		return nil
	}
	ev := s.g.ClassifyEventsAt(i)

	var out []candidate
	out = s.ruleCloseSecond(st, i, ev, out)
	out = s.ruleOpenFirst(st, i, ev, out)
	out = s.ruleCloseOpen(st, i, ev, out)
	out = s.ruleAttachConvex(st, i, nbrs, out)
	out = s.ruleAdvanceQuiet(st, ev, out)

	return out
}

// ruleCloseSecond (T1): with a loose end present, connect x_i to an
// open vertex whose second interval starts exactly at i, closing it.
// The loose end is consumed.
func (s *Solver) ruleCloseSecond(st State, i int, ev interval.Events, out []candidate) []candidate {
	if !st.Loose {
		return out
	}
	for _, y := range st.Open.Values() {
		if !slices.Contains(ev.SecondLeft, y) {
			continue
		}
		out = append(out, candidate{
			next:  State{K: st.K + 1, Open: st.Open.Without(y), Loose: false},
			via:   TransitionT1,
			added: []interval.Edge{{X: i, Y: y}},
		})
	}

	return out
}

// ruleOpenFirst (T2): with a loose end present, connect x_i to a
// not-yet-open vertex that has a first-interval boundary at i, opening
// it. When one vertex is already open the stack-order precondition must
// hold; a full open set blocks the rule.
func (s *Solver) ruleOpenFirst(st State, i int, ev interval.Events, out []candidate) []candidate {
	if !st.Loose {
		return out
	}
	for _, yOpen := range mergeAscending(ev.FirstLeft, ev.FirstRight) {
		if st.Open.Contains(yOpen) {
			continue
		}
		if st.Open.Len() >= openCap {
			continue
		}
		if st.Open.Len() == 1 && !s.stackOrder(st.Open.Sole(), yOpen) {
			continue
		}
		next, ok := st.Open.With(yOpen)
		if !ok {
			continue
		}
		out = append(out, candidate{
			next:  State{K: st.K + 1, Open: next, Loose: false},
			via:   TransitionT2,
			added: []interval.Edge{{X: i, Y: yOpen}},
		})
	}

	return out
}

// ruleCloseOpen (T3): with no loose end, connect x_i both to an open
// vertex whose second interval starts at i (closing it) and to a
// not-yet-open vertex whose first interval ends at i (opening it).
// After the close, at most one vertex may remain open, and keeping it
// alongside the newly opened one requires stack order.
func (s *Solver) ruleCloseOpen(st State, i int, ev interval.Events, out []candidate) []candidate {
	if st.Loose {
		return out
	}
	for _, yClose := range st.Open.Values() {
		if !slices.Contains(ev.SecondLeft, yClose) {
			continue
		}
		rem := st.Open.Without(yClose)
		for _, yOpen := range ev.FirstRight {
			if st.Open.Contains(yOpen) {
				continue
			}
			if rem.Len() > 1 {
				continue
			}
			if rem.Len() == 1 && !s.stackOrder(rem.Sole(), yOpen) {
				continue
			}
			next, ok := rem.With(yOpen)
			if !ok {
				continue
			}
			out = append(out, candidate{
				next: State{K: st.K + 1, Open: next, Loose: false},
				via:  TransitionT3,
				added: []interval.Edge{
					{X: i, Y: yClose},
					{X: i, Y: yOpen},
				},
			})
		}
	}

	return out
}

// ruleAttachConvex (T4): with a loose end present, connect x_i to any
// neighbor whose whole neighborhood lies within 0..i. The open set is
// untouched and the loose end survives.
func (s *Solver) ruleAttachConvex(st State, i int, nbrs []int, out []candidate) []candidate {
	if !st.Loose {
		return out
	}
	for _, y := range nbrs {
		if !s.g.IsConvexAt(y, i) {
			continue
		}
		out = append(out, candidate{
			next:  State{K: st.K + 1, Open: st.Open, Loose: true},
			via:   TransitionT4,
			added: []interval.Edge{{X: i, Y: y}},
		})
	}

	return out
}

// ruleAdvanceQuiet (T5): when no interval boundary touches x_i, advance
// one layer with the state unchanged. Intentionally minimalistic: the
// rule checks only the absence of boundary events, with no degree
// bookkeeping beyond that.
func (s *Solver) ruleAdvanceQuiet(st State, ev interval.Events, out []candidate) []candidate {
	if !ev.None() {
		return out
	}

	return append(out, candidate{
		next: State{K: st.K + 1, Open: st.Open, Loose: st.Loose},
		via:  TransitionT5,
	})
}

// mergeAscending merges two ascending duplicate-free slices into one
// ascending duplicate-free slice.
func mergeAscending(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
