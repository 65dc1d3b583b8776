// Package hamiltondp decides Hamiltonian-cycle existence in bipartite
// graphs with a 2-interval structure, and reconstructs explicit cycles
// to cross-check the decision.
//
// 🚀 What is hamilton-dp-bipartite?
//
//	A small, focused library around one structured problem:
//		• interval/  — the 2-interval bipartite graph model: validated
//		  construction, cached adjacency, endpoint-event classification
//		• dp/        — the polynomial DP engine over (k, O, L) states,
//		  transition rules T1–T5, provenance records and run statistics
//		• backtrack/ — exhaustive DFS building an explicit alternating
//		  Hamiltonian cycle, the DP's independent correctness oracle
//		• report/    — Markdown summaries and SVG diagrams of a run
//		• instance/  — YAML instance descriptors for the CLI
//		• cmd/hamdp  — solve / cycle / report commands
//
// ✨ Why this shape?
//
//   - The graph model is immutable after construction and safe to share
//     across concurrent solver instances
//   - The DP and the backtracking search consume the same model but no
//     shared state, so each can audit the other
//   - Absence of a cycle is a result, never an error; only structural
//     invariant violations fail construction
//
// Quick example (the canonical n=3 cyclic instance):
//
//	ys := []interval.YVertex{
//		{First: interval.NewInterval(0, 1)},
//		{First: interval.NewInterval(1, 2)},
//		{First: interval.NewInterval(0, 0), Second: interval.NewInterval(2, 2)},
//	}
//	g, _ := interval.NewGraph(3, ys)
//	solver, _ := dp.NewSolver(g)
//	stats := solver.Run()          // stats.Accepted == true
//	cycle, ok, _ := backtrack.FindCycle(g)
//	fmt.Println(ok, cycle)         // true X0 → Y0 → X1 → Y1 → X2 → Y2 → X0
//
// See each package's doc.go for contracts, complexity, and error sets.
package hamiltondp
