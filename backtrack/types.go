// Package backtrack defines the cycle types and sentinel errors of the
// exhaustive Hamiltonian-cycle search.
package backtrack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

var (
	// ErrGraphNil is returned when a nil *interval.Graph is passed to
	// FindCycle.
	ErrGraphNil = errors.New("backtrack: graph is nil")

	// ErrBadCycle is the base sentinel for Cycle.Verify failures.
	ErrBadCycle = errors.New("backtrack: invalid hamiltonian cycle")
)

// Side tags which part of the bipartition an index refers to.
type Side uint8

const (
	// SideX is the interval-covered side, indices 0..n-1.
	SideX Side = iota
	// SideY is the interval-owning side, indices 0..n-1.
	SideY
)

// String returns "X" or "Y".
func (s Side) String() string {
	if s == SideX {
		return "X"
	}

	return "Y"
}

// Vertex is a side-tagged vertex index.
type Vertex struct {
	Side  Side
	Index int
}

// String renders "X3" / "Y0".
func (v Vertex) String() string {
	return fmt.Sprintf("%s%d", v.Side, v.Index)
}

// Cycle is an alternating sequence of 2n side-tagged vertices,
// understood as cyclic: the last vertex connects back to the first.
type Cycle []Vertex

// String renders the cycle in arrow form with the closing step shown,
// e.g. "X0 → Y0 → X1 → Y1 → X0". Empty cycles render as "∅".
func (c Cycle) String() string {
	if len(c) == 0 {
		return "∅"
	}
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteString(" → ")
		}
		b.WriteString(v.String())
	}
	b.WriteString(" → ")
	b.WriteString(c[0].String())

	return b.String()
}

// Verify checks that c is a Hamiltonian cycle of g: length 2n, strict
// X/Y alternation, every vertex of each side visited exactly once, and
// every step (including the closing one) an edge of g. The empty cycle
// verifies against the empty graph.
func (c Cycle) Verify(g *interval.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.N()
	if len(c) != 2*n {
		return fmt.Errorf("%w: length %d, want %d", ErrBadCycle, len(c), 2*n)
	}
	if n == 0 {
		return nil
	}

	seenX := make([]bool, n)
	seenY := make([]bool, n)
	for p, v := range c {
		if v.Index < 0 || v.Index >= n {
			return fmt.Errorf("%w: %s out of range", ErrBadCycle, v)
		}
		if v.Side != c[0].Side && p%2 == 0 || v.Side == c[0].Side && p%2 == 1 {
			return fmt.Errorf("%w: alternation broken at position %d", ErrBadCycle, p)
		}
		seen := seenX
		if v.Side == SideY {
			seen = seenY
		}
		if seen[v.Index] {
			return fmt.Errorf("%w: %s visited twice", ErrBadCycle, v)
		}
		seen[v.Index] = true
	}

	for p, v := range c {
		w := c[(p+1)%len(c)]
		x, y := v, w
		if x.Side == SideY {
			x, y = w, v
		}
		if !g.HasEdge(x.Index, y.Index) {
			return fmt.Errorf("%w: %s–%s is not an edge", ErrBadCycle, v, w)
		}
	}

	return nil
}
