// Package backtrack constructs explicit Hamiltonian cycles in
// 2-interval bipartite graphs by exhaustive depth-first search.
//
// What:
//
//   - FindCycle: tries every X-vertex as a start and grows an
//     alternating X→Y→X… path over unvisited vertices, closing back to
//     the start at length 2n. Returns the cycle or an explicit
//     not-found result.
//   - Cycle: the side-tagged cyclic vertex sequence, with String
//     (arrow form) and Verify (structural check against a graph).
//
// Why:
//
//	The DP engine in package dp answers only existence, through an
//	abstraction whose soundness is worth cross-checking. This search is
//	the independent oracle: textbook DFS over the same graph model,
//	sharing no state with the DP. It is exponential by nature and
//	intended for the small instances used in validation.
//
// Guarantees:
//
//   - neighbor exploration follows input neighbor-list order; no
//     optimality or minimality of the returned cycle;
//   - visited markers and the path buffer are local to one call and
//     fully rolled back between starts;
//   - n = 0 yields the empty cycle, trivially satisfied.
//
// Errors:
//
//   - ErrGraphNil: nil graph.
//   - ErrBadCycle: wrapped by every Cycle.Verify failure.
//
// "No cycle exists" is reported through the boolean result, never as an
// error.
package backtrack
