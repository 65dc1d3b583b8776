package dp

import (
	"fmt"
	"strings"
)

// openCap bounds the number of simultaneously open Y-vertices. The DP
// is polynomial precisely because this bound holds.
const openCap = 2

// OpenSet is a fixed-capacity ordered set of at most two Y-indices.
//
// Representation: each slot stores y+1, with 0 meaning vacant; occupied
// slots sit at the front in ascending y order. The zero value is the
// canonical empty set, and because canonical form is maintained by
// every operation, plain == (and map-key equality) is set equality.
type OpenSet struct {
	slots [openCap]int
}

// NewOpenSet builds a set from the given Y-indices. It returns false
// when more than openCap distinct indices are supplied.
func NewOpenSet(ys ...int) (OpenSet, bool) {
	var s OpenSet
	var ok bool
	for _, y := range ys {
		if s, ok = s.With(y); !ok {
			return OpenSet{}, false
		}
	}

	return s, true
}

// Len returns the number of open vertices.
func (s OpenSet) Len() int {
	n := 0
	for _, v := range s.slots {
		if v != 0 {
			n++
		}
	}

	return n
}

// Contains reports whether y is open.
func (s OpenSet) Contains(y int) bool {
	for _, v := range s.slots {
		if v == y+1 {
			return true
		}
	}

	return false
}

// Values returns the open Y-indices in ascending order.
func (s OpenSet) Values() []int {
	out := make([]int, 0, openCap)
	for _, v := range s.slots {
		if v != 0 {
			out = append(out, v-1)
		}
	}

	return out
}

// With returns a copy with y inserted, keeping canonical order.
// It returns false (and the receiver unchanged) when the set is full or
// already contains y.
func (s OpenSet) With(y int) (OpenSet, bool) {
	if s.Contains(y) {
		return s, false
	}
	v := y + 1
	switch {
	case s.slots[0] == 0:
		s.slots[0] = v
	case s.slots[1] == 0:
		s.slots[1] = v
		if s.slots[1] < s.slots[0] {
			s.slots[0], s.slots[1] = s.slots[1], s.slots[0]
		}
	default:
		return s, false
	}

	return s, true
}

// Without returns a copy with y removed; removing an absent index is a
// no-op. Canonical order is preserved by shifting the survivor forward.
func (s OpenSet) Without(y int) OpenSet {
	v := y + 1
	switch {
	case s.slots[0] == v:
		s.slots[0], s.slots[1] = s.slots[1], 0
	case s.slots[1] == v:
		s.slots[1] = 0
	}

	return s
}

// Sole returns the single open vertex. It must only be called when
// Len() == 1.
func (s OpenSet) Sole() int { return s.slots[0] - 1 }

// String renders "{}" / "{y}" / "{y1,y2}".
func (s OpenSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, y := range s.Values() {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", y)
	}
	b.WriteByte('}')

	return b.String()
}
