// Package interval models bipartite graphs G = (X, Y, E) whose X-side
// adjacency is generated by a 2-interval structure: every Y-vertex owns
// up to two disjoint, ordered closed integer intervals on X, and is
// adjacent to exactly the X-indices those intervals cover.
//
// What:
//
//   - Interval: closed range [l, r] or the empty sentinel, with
//     membership and endpoint queries.
//   - YVertex: a pair (First, Second) of intervals; Second may be empty.
//   - Graph: immutable n-by-n bipartite graph built once from n
//     Y-vertices, with cached X-adjacency lists and edge set.
//   - ClassifyEventsAt: the four endpoint-event sets at an X-index,
//     computed independently per interval role.
//   - IsConvexAt: whether a Y-vertex's whole neighborhood lies within
//     X-indices 0..i.
//
// Why:
//
//	The 2-interval structure is what makes Hamiltonian-cycle existence
//	decidable by a polynomial DP: interval endpoints induce a small,
//	ordered event alphabet per X-index, and the DP in package dp reads
//	the graph exclusively through ClassifyEventsAt, NeighborsOfX and
//	IsConvexAt.
//
// Invariants (enforced at construction, fail-closed):
//
//   - exactly n Y-vertices;
//   - every non-empty interval satisfies 0 <= l <= r < n;
//   - per vertex, both intervals non-empty implies First.r < Second.l.
//
// Complexity:
//
//   - NewGraph: O(n + m) time and memory (m = number of edges)
//   - NeighborsOfX, HasEdge, IsConvexAt: O(1) beyond cached data
//   - ClassifyEventsAt: O(n)
//
// Errors:
//
//   - ErrVertexCount, ErrIntervalBounds, ErrIntervalOrder, all wrapping
//     ErrInvalidStructure.
//
// The Graph is read-only after construction and safe for concurrent
// readers.
package interval
