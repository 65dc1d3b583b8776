// Package dp decides Hamiltonian-cycle existence on 2-interval
// bipartite graphs in polynomial time, by dynamic programming over a
// compact abstraction of partial alternating paths.
//
// What:
//
//	A DP state (k, O, L) captures everything the search needs about a
//	partial structure after processing X-vertices x_0..x_{k-1}:
//
//	  - k: how many X-vertices are already processed;
//	  - O: which Y-vertices are "open" (their matching has begun but
//	    not closed), at most two at a time;
//	  - L: whether an unmatched loose end currently exists on the X side.
//
//	The frontier advances one X-index per layer through five rules:
//
//	  - T1: consume the loose end by closing an open vertex whose
//	    second interval starts here;
//	  - T2: consume the loose end by opening a vertex with a
//	    first-interval boundary here (stack order permitting);
//	  - T3: close one vertex and open another in a single step;
//	  - T4: attach the loose end to a vertex already convex here,
//	    keeping it loose;
//	  - T5: advance past an index no interval boundary touches.
//
//	Acceptance is reachability of (n, ∅, 0). Each newly reached state
//	keeps a Predecessor record (previous state, rule, added edges) for
//	audit; first discovery wins.
//
// Why:
//
//	The open-set cap of two and the binary loose flag bound every layer
//	polynomially, which is what makes a DP tractable where the general
//	Hamiltonian-cycle problem calls for exhaustive search. The stack
//	order precondition (l(second_old) > r(first_new)) encodes the
//	geometric non-crossing requirement for two simultaneously open
//	vertices' second intervals.
//
// Determinism:
//
//	Run produces identical Stats on every invocation over the same
//	graph: layers are expanded in discovery order, events arrive as
//	sorted slices, and rules fire in a fixed order, so the
//	first-discovery-wins bookkeeping never depends on map iteration.
//
// Known simplification:
//
//	T5 fires purely on the absence of boundary events at the index; it
//	does not track degree consistency. A fully rigorous variant needs
//	extra per-state bookkeeping and is deliberately left as future
//	work. Do not "fix" it silently.
//
// Errors:
//
//   - ErrGraphNil: nil graph passed to NewSolver.
//
// Everything else is an ordinary return value; a rejecting run is a
// normal outcome, not an error.
package dp
