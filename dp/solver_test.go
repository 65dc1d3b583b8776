package dp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ilyacartwright/hamilton-dp-bipartite/dp"
	"github.com/ilyacartwright/hamilton-dp-bipartite/interval"
)

// cyclic3 builds the canonical Hamiltonian n=3 instance:
// X0–Y0–X1–Y1–X2–Y2–X0.
func cyclic3(t require.TestingT) *interval.Graph {
	g, err := interval.NewGraph(3, []interval.YVertex{
		{First: interval.NewInterval(0, 1)},
		{First: interval.NewInterval(1, 2)},
		{First: interval.NewInterval(0, 0), Second: interval.NewInterval(2, 2)},
	})
	require.NoError(t, err)

	return g
}

// broken3 removes the X2–Y2 edge (no second interval on Y2), leaving
// no Hamiltonian cycle.
func broken3(t require.TestingT) *interval.Graph {
	g, err := interval.NewGraph(3, []interval.YVertex{
		{First: interval.NewInterval(0, 1)},
		{First: interval.NewInterval(1, 2)},
		{First: interval.NewInterval(0, 0)},
	})
	require.NoError(t, err)

	return g
}

// SolverSuite exercises the DP engine end to end.
type SolverSuite struct {
	suite.Suite
}

// TestNilGraph verifies the only error path.
func (s *SolverSuite) TestNilGraph() {
	_, err := dp.NewSolver(nil)
	require.ErrorIs(s.T(), err, dp.ErrGraphNil)
}

// TestCanonicalAccepts pins the full statistics of the canonical
// instance, layer by layer and rule by rule.
func (s *SolverSuite) TestCanonicalAccepts() {
	solver, err := dp.NewSolver(cyclic3(s.T()))
	require.NoError(s.T(), err)

	stats := solver.Run()
	require.True(s.T(), stats.Accepted)
	require.Equal(s.T(), 11, stats.TotalStates)
	require.Equal(s.T(), map[int]int{1: 2, 2: 5}, stats.StatesPerLayer)
	require.Equal(s.T(), 5, stats.MaxPerLayer)
	require.Equal(s.T(), map[dp.Transition]int{
		dp.TransitionInit: 1,
		dp.TransitionT1:   1,
		dp.TransitionT2:   4,
		dp.TransitionT4:   4,
	}, stats.PerTransition)
}

// TestSeedLayer verifies the k=1 frontier: the loose state plus one
// INIT state for the single X0-neighbor whose second interval starts
// right of 0. The neighbor without a second interval collapses onto
// the loose state and records nothing.
func (s *SolverSuite) TestSeedLayer() {
	solver, err := dp.NewSolver(cyclic3(s.T()))
	require.NoError(s.T(), err)
	solver.Run()

	openY2, ok := dp.NewOpenSet(2)
	require.True(s.T(), ok)

	var layer1 []dp.State
	for _, st := range solver.States() {
		if st.K == 1 {
			layer1 = append(layer1, st)
		}
	}
	require.Equal(s.T(), []dp.State{
		{K: 1, Loose: true},
		{K: 1, Open: openY2, Loose: true},
	}, layer1)

	pred, ok := solver.Predecessor(dp.State{K: 1, Open: openY2, Loose: true})
	require.True(s.T(), ok)
	require.Equal(s.T(), dp.TransitionInit, pred.Via)
	require.Equal(s.T(), []interval.Edge{{X: 0, Y: 2}}, pred.Added)
	require.Equal(s.T(), dp.State{K: 0, Loose: true}, pred.Prev)

	_, ok = solver.Predecessor(dp.State{K: 1, Loose: true})
	require.False(s.T(), ok, "the loose seed must carry no provenance")
}

// TestNegativeRejects removes one crucial edge and expects rejection.
func (s *SolverSuite) TestNegativeRejects() {
	solver, err := dp.NewSolver(broken3(s.T()))
	require.NoError(s.T(), err)

	stats := solver.Run()
	require.False(s.T(), stats.Accepted)
	require.Equal(s.T(), 6, stats.TotalStates)
	require.NotContains(s.T(), stats.PerTransition, dp.TransitionInit,
		"both X0-neighbors collapse onto the loose seed, so no INIT record")
}

// TestDeterminism runs the same engine repeatedly and demands
// identical statistics every time.
func (s *SolverSuite) TestDeterminism() {
	solver, err := dp.NewSolver(cyclic3(s.T()))
	require.NoError(s.T(), err)

	first := solver.Run()
	for i := 0; i < 10; i++ {
		require.Equal(s.T(), first, solver.Run(), "run %d diverged", i)
	}
}

// TestStateInvariants checks every discovered state against the state
// bounds.
func (s *SolverSuite) TestStateInvariants() {
	for name, g := range map[string]*interval.Graph{
		"cyclic": cyclic3(s.T()),
		"broken": broken3(s.T()),
	} {
		solver, err := dp.NewSolver(g)
		require.NoError(s.T(), err)
		solver.Run()

		for _, st := range solver.States() {
			require.GreaterOrEqual(s.T(), st.K, 0, "%s: %v", name, st)
			require.LessOrEqual(s.T(), st.K, g.N(), "%s: %v", name, st)
			require.LessOrEqual(s.T(), st.Open.Len(), 2, "%s: %v", name, st)
		}
	}
}

// TestProvenanceChain walks the audit trail of the accepting state:
// T1 closed Y2 at x2, T4 attached x1 while Y2 stayed open, INIT opened
// Y2 at x0.
func (s *SolverSuite) TestProvenanceChain() {
	solver, err := dp.NewSolver(cyclic3(s.T()))
	require.NoError(s.T(), err)
	require.True(s.T(), solver.Run().Accepted)

	chain := solver.Chain(dp.State{K: 3})
	require.Len(s.T(), chain, 3)
	require.Equal(s.T(), dp.TransitionT1, chain[0].Via)
	require.Equal(s.T(), []interval.Edge{{X: 2, Y: 2}}, chain[0].Added)
	require.Equal(s.T(), dp.TransitionT4, chain[1].Via)
	require.Equal(s.T(), dp.TransitionInit, chain[2].Via)
}

// TestDeadEnd: an X-index with no neighbors stops every path through
// it, even the boundary-free advance.
func (s *SolverSuite) TestDeadEnd() {
	g, err := interval.NewGraph(3, []interval.YVertex{
		{First: interval.NewInterval(0, 0)},
		{First: interval.NewInterval(0, 0)},
		{},
	})
	require.NoError(s.T(), err)

	solver, err := dp.NewSolver(g)
	require.NoError(s.T(), err)

	stats := solver.Run()
	require.False(s.T(), stats.Accepted)
	require.Equal(s.T(), 1, stats.TotalStates, "only the loose seed is reachable")
}

// TestQuietAdvance: boundary-free indices advance states unchanged via
// T5, and only via T5.
func (s *SolverSuite) TestQuietAdvance() {
	g, err := interval.NewGraph(4, []interval.YVertex{
		{First: interval.NewInterval(0, 3)},
		{First: interval.NewInterval(0, 3)},
		{First: interval.NewInterval(0, 3)},
		{First: interval.NewInterval(0, 3)},
	})
	require.NoError(s.T(), err)

	solver, err := dp.NewSolver(g)
	require.NoError(s.T(), err)

	stats := solver.Run()
	require.False(s.T(), stats.Accepted)
	require.Equal(s.T(), 2, stats.PerTransition[dp.TransitionT5],
		"x1 and x2 carry no boundaries and must advance quietly")

	pred, ok := solver.Predecessor(dp.State{K: 2, Loose: true})
	require.True(s.T(), ok)
	require.Equal(s.T(), dp.TransitionT5, pred.Via)
	require.Empty(s.T(), pred.Added, "a quiet advance adds no edges")
}

// TestHasHamiltonianCycle covers the convenience wrapper on both
// verdicts.
func (s *SolverSuite) TestHasHamiltonianCycle() {
	pos, err := dp.NewSolver(cyclic3(s.T()))
	require.NoError(s.T(), err)
	require.True(s.T(), pos.HasHamiltonianCycle())

	neg, err := dp.NewSolver(broken3(s.T()))
	require.NoError(s.T(), err)
	require.False(s.T(), neg.HasHamiltonianCycle())
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}
