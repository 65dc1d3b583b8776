// Package interval defines the 2-interval bipartite graph model:
// value types for intervals and Y-vertices, sentinel errors, and the
// immutable Graph built from them.
package interval

import (
	"errors"
	"fmt"
)

// ErrInvalidStructure is the base sentinel for every structural
// invariant violation detected at graph construction. All concrete
// construction errors wrap it, so callers may match the whole class
// with errors.Is(err, ErrInvalidStructure).
var ErrInvalidStructure = errors.New("interval: structural invariant violated")

var (
	// ErrVertexCount indicates that the number of Y-vertices differs from n.
	ErrVertexCount = fmt.Errorf("%w: number of Y-vertices must equal n", ErrInvalidStructure)
	// ErrIntervalBounds indicates a non-empty interval with endpoints
	// outside [0, n-1] or with l > r.
	ErrIntervalBounds = fmt.Errorf("%w: interval endpoints must satisfy 0 <= l <= r < n", ErrInvalidStructure)
	// ErrIntervalOrder indicates a Y-vertex whose two non-empty intervals
	// are not disjoint and ordered with a gap (first.r < second.l).
	ErrIntervalOrder = fmt.Errorf("%w: first and second intervals must be disjoint and ordered", ErrInvalidStructure)
)

// Interval is a closed integer range [l, r] on the X side, or the empty
// interval. The zero value is empty. Immutable value type.
type Interval struct {
	lo, hi int
	set    bool
}

// NewInterval returns the closed interval [l, r]. Bounds are validated
// against n at graph construction, not here.
func NewInterval(l, r int) Interval {
	return Interval{lo: l, hi: r, set: true}
}

// EmptyInterval returns the empty interval. Equivalent to Interval{}.
func EmptyInterval() Interval { return Interval{} }

// Empty reports whether the interval covers no points.
func (iv Interval) Empty() bool { return !iv.set }

// Bounds returns the endpoints (l, r). Meaningless for an empty interval.
func (iv Interval) Bounds() (l, r int) { return iv.lo, iv.hi }

// Contains reports whether i lies in [l, r].
func (iv Interval) Contains(i int) bool {
	return iv.set && iv.lo <= i && i <= iv.hi
}

// IsLeftEndpoint reports whether i is the left endpoint.
func (iv Interval) IsLeftEndpoint(i int) bool { return iv.set && iv.lo == i }

// IsRightEndpoint reports whether i is the right endpoint.
func (iv Interval) IsRightEndpoint(i int) bool { return iv.set && iv.hi == i }

// StrictlyInside reports whether i lies strictly between the endpoints.
func (iv Interval) StrictlyInside(i int) bool {
	return iv.set && iv.lo < i && i < iv.hi
}

// String renders "[l,r]" or "∅" for the empty interval.
func (iv Interval) String() string {
	if !iv.set {
		return "∅"
	}

	return fmt.Sprintf("[%d,%d]", iv.lo, iv.hi)
}

// YVertex is a vertex of the Y side. Its X-neighborhood is the union of
// the integer points covered by its non-empty intervals.
// Invariant (enforced by NewGraph): if both intervals are non-empty,
// First.r < Second.l.
type YVertex struct {
	First  Interval
	Second Interval
}

// Edge is an X–Y edge of the bipartite graph. The side of each index is
// fixed by its field, so edges carry no separate side tags.
type Edge struct {
	X, Y int
}

// Events holds the four endpoint-event sets at one X-index i, each a
// sorted ascending list of Y-indices:
//
//   - FirstLeft:   i is the left endpoint of the vertex's first interval
//   - FirstRight:  i is the right endpoint of the first interval
//   - SecondLeft:  i is the left endpoint of the second interval
//   - SecondRight: i is the right endpoint of the second interval
//
// The sets are computed independently per interval role, so one
// Y-vertex may appear in several of them.
type Events struct {
	FirstLeft   []int
	FirstRight  []int
	SecondLeft  []int
	SecondRight []int
}

// None reports whether no interval boundary touches the X-index.
func (e Events) None() bool {
	return len(e.FirstLeft) == 0 && len(e.FirstRight) == 0 &&
		len(e.SecondLeft) == 0 && len(e.SecondRight) == 0
}
