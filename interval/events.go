package interval

// ClassifyEventsAt returns the four endpoint-event sets at X-index i.
// Each set lists, ascending, the Y-vertices for which i is the left or
// right endpoint of the corresponding interval role. The sets drive the
// DP transition rules; an index touched by no set at all is a
// "boundary-free" position.
//
// Complexity: O(n).
func (g *Graph) ClassifyEventsAt(i int) Events {
	var ev Events
	for y, yv := range g.ys {
		if yv.First.IsLeftEndpoint(i) {
			ev.FirstLeft = append(ev.FirstLeft, y)
		}
		if yv.First.IsRightEndpoint(i) {
			ev.FirstRight = append(ev.FirstRight, y)
		}
		if yv.Second.IsLeftEndpoint(i) {
			ev.SecondLeft = append(ev.SecondLeft, y)
		}
		if yv.Second.IsRightEndpoint(i) {
			ev.SecondRight = append(ev.SecondRight, y)
		}
	}

	return ev
}

// IsConvexAt reports whether the whole neighborhood of Y-vertex y lies
// within X-indices 0..i. In the 2-interval representation this is
// max(r1, r2) <= i over the non-empty intervals. False when both
// intervals are empty or y is out of range.
func (g *Graph) IsConvexAt(y, i int) bool {
	if y < 0 || y >= g.n {
		return false
	}
	yv := g.ys[y]

	maxR := -1
	if !yv.First.Empty() {
		maxR = yv.First.hi
	}
	if !yv.Second.Empty() && yv.Second.hi > maxR {
		maxR = yv.Second.hi
	}
	if maxR < 0 {
		return false
	}

	return maxR <= i
}
