package rbfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/core"
)

// ------------------------------------------------------------------------
// Route graph with exact goal distances as a consistent heuristic; the
// optimal A→G path costs 9. Same shape as the bestfirst suite so RBFS
// results can be compared against A*'s.
// ------------------------------------------------------------------------

type routeEdge struct {
	To   string
	Cost float64
}

type routeGraph struct {
	start, goal string
	edges       map[string][]routeEdge
}

func (g routeGraph) Initial() string                     { return g.start }
func (g routeGraph) Actions(s string) []routeEdge        { return g.edges[s] }
func (g routeGraph) Result(_ string, e routeEdge) string { return e.To }
func (g routeGraph) IsGoal(s string) bool                { return s == g.goal }
func (g routeGraph) StepCost(c float64, _ string, e routeEdge, _ string) float64 {
	return c + e.Cost
}

type informedRoute struct {
	routeGraph
	estimates map[string]float64
}

func (g informedRoute) Estimate(s string) float64 { return g.estimates[s] }

func newRouteGraph() routeGraph {
	return routeGraph{
		start: "A",
		goal:  "G",
		edges: map[string][]routeEdge{
			"A": {{To: "B", Cost: 1}, {To: "C", Cost: 5}, {To: "D", Cost: 10}},
			"B": {{To: "C", Cost: 2}, {To: "E", Cost: 6}},
			"C": {{To: "E", Cost: 3}, {To: "D", Cost: 4}},
			"D": {{To: "G", Cost: 2}},
			"E": {{To: "G", Cost: 4}},
		},
	}
}

func newInformedRoute() informedRoute {
	return informedRoute{
		routeGraph: newRouteGraph(),
		estimates: map[string]float64{
			"A": 9, "B": 8, "C": 6, "D": 2, "E": 4, "G": 0,
		},
	}
}

// ------------------------------------------------------------------------
// River crossing fixture, identical puzzle to the bestfirst suite.
// ------------------------------------------------------------------------

type riverState struct {
	M, C, Boat int
}

type riverMove struct {
	DM, DC, DB int
}

var riverLoads = []riverMove{
	{1, 0, 1}, {2, 0, 1}, {0, 1, 1}, {0, 2, 1}, {1, 1, 1},
}

type riverCrossing struct {
	core.Base[riverState, riverMove]
}

func newRiverCrossing() riverCrossing {
	return riverCrossing{Base: core.Base[riverState, riverMove]{
		Start: riverState{M: 3, C: 3, Boat: 1},
		Goals: []riverState{{M: 0, C: 0, Boat: 0}},
	}}
}

func (riverCrossing) Actions(s riverState) []riverMove {
	moves := make([]riverMove, 0, len(riverLoads))
	for _, m := range riverLoads {
		if s.Boat == 1 {
			m = riverMove{DM: -m.DM, DC: -m.DC, DB: -m.DB}
		}
		if riverSafe(applyMove(s, m)) {
			moves = append(moves, m)
		}
	}

	return moves
}

func (riverCrossing) Result(s riverState, m riverMove) riverState { return applyMove(s, m) }

func (riverCrossing) Estimate(s riverState) float64 { return float64(s.M+s.C) / 2 }

func applyMove(s riverState, m riverMove) riverState {
	return riverState{M: s.M + m.DM, C: s.C + m.DC, Boat: s.Boat + m.DB}
}

func riverSafe(s riverState) bool {
	if s.M < 0 || s.M > 3 || s.C < 0 || s.C > 3 || s.Boat < 0 || s.Boat > 1 {
		return false
	}

	return bankSafe(s.M, s.C) && bankSafe(3-s.M, 3-s.C)
}

func bankSafe(m, c int) bool { return m == 0 || m >= c }

func replayRiver(t *testing.T, p riverCrossing, solution []riverMove) riverState {
	t.Helper()
	s := p.Initial()
	for _, m := range solution {
		s = p.Result(s, m)
		require.True(t, riverSafe(s), "unsafe intermediate state %v", s)
	}

	return s
}
