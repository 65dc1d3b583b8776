// Package dp defines the state space, transition tags, and result types
// of the Hamiltonian-cycle dynamic program, plus its sentinel errors.
package dp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

// ErrGraphNil is returned when a nil *interval.Graph is passed to
// NewSolver.
var ErrGraphNil = errors.New("dp: graph is nil")

// Transition tags the rule that produced a DP state. INIT covers the
// seeding of layer 1; T1 through T5 are the frontier-advance rules
// named after Lemma 1 of the underlying construction.
type Transition uint8

const (
	// TransitionInit attaches X0 to a neighbor while seeding layer 1.
	TransitionInit Transition = iota
	// TransitionT1 closes an open vertex whose second interval starts here.
	TransitionT1
	// TransitionT2 opens a fresh vertex with a first-interval boundary here.
	TransitionT2
	// TransitionT3 closes one vertex and opens another in the same step.
	TransitionT3
	// TransitionT4 attaches a loose end to a vertex convex at this index.
	TransitionT4
	// TransitionT5 advances past an index with no interval boundaries.
	TransitionT5
)

// String returns the canonical tag name: INIT, T1..T5.
func (t Transition) String() string {
	switch t {
	case TransitionInit:
		return "INIT"
	case TransitionT1:
		return "T1"
	case TransitionT2:
		return "T2"
	case TransitionT3:
		return "T3"
	case TransitionT4:
		return "T4"
	case TransitionT5:
		return "T5"
	default:
		return fmt.Sprintf("Transition(%d)", uint8(t))
	}
}

// State is a DP state (k, O, L):
//
//	K     – number of X-vertices already processed, 0..n;
//	Open  – the open Y-vertices, |Open| <= 2, canonically ordered;
//	Loose – whether the partial path has a loose (unmatched) end in X.
//
// State is a comparable value type; two states are equal iff all three
// fields are, which makes it directly usable as a map key.
type State struct {
	K     int
	Open  OpenSet
	Loose bool
}

// String renders "(k, {y...}, L)" with L as 0/1.
func (s State) String() string {
	l := 0
	if s.Loose {
		l = 1
	}

	return fmt.Sprintf("(%d, %s, %d)", s.K, s.Open, l)
}

// Predecessor records how a state was first reached: the state it came
// from, the transition rule, and the edges that rule added. Provenance
// only; acceptance never consults it.
type Predecessor struct {
	Prev  State
	Via   Transition
	Added []interval.Edge
}

// Stats aggregates one DP run.
type Stats struct {
	// TotalStates counts distinct states ever reached, all layers.
	TotalStates int
	// StatesPerLayer maps each enumerated layer k (1..n-1) to its size.
	StatesPerLayer map[int]int
	// MaxPerLayer is the largest StatesPerLayer value, 0 when none.
	MaxPerLayer int
	// PerTransition counts recorded first discoveries per rule.
	PerTransition map[Transition]int
	// Accepted reports whether the accepting state (n, ∅, 0) is reachable.
	Accepted bool
}

// String gives a one-line summary, handy in logs and examples.
func (st Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "accepted=%v states=%d maxLayer=%d", st.Accepted, st.TotalStates, st.MaxPerLayer)

	return b.String()
}
