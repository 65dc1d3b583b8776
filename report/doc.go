// Package report turns solver results into human-readable artifacts.
//
// What:
//
//   - Markdown: a run summary with graph size, DP verdict, per-layer
//     and per-transition tables, and the found cycle (or an explicit
//     not-found note).
//   - IntervalSVG / CycleSVG: self-contained SVG diagrams of the
//     2-interval structure and of a found cycle's bipartite layout.
//   - RunFull: the DP → diagrams → backtracking → Markdown pipeline,
//     writing <prefix>.md and the SVG files next to it.
//
// Why:
//
//	The core packages (interval, dp, backtrack) deal in plain data and
//	never touch the file system. This package is the rendering
//	collaborator on the other side of that boundary; keeping it
//	separate keeps the solvers pure and the renderers replaceable.
//
// All rendering is deterministic for a given input: tables iterate
// sorted keys and diagrams depend only on the graph and cycle.
package report
