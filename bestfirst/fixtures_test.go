package bestfirst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/core"
)

// ------------------------------------------------------------------------
// River crossing: three missionaries and three cannibals must cross with
// a two-seat boat, and cannibals may never outnumber missionaries on
// either bank. Optimal solutions take 11 crossings.
// ------------------------------------------------------------------------

// riverState counts the people on the starting bank plus the boat's side
// (1 = starting bank, 0 = far bank). The far bank is implied: 3-M, 3-C.
type riverState struct {
	M, C, Boat int
}

// riverMove is the signed change one crossing applies to riverState.
type riverMove struct {
	DM, DC, DB int
}

// riverLoads enumerates the boat loads of one or two people, phrased as
// additions to the starting bank (the boat returning). Departures are
// the same moves negated.
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
			// boat leaves the starting bank: people depart
			m = riverMove{DM: -m.DM, DC: -m.DC, DB: -m.DB}
		}
		if riverSafe(applyMove(s, m)) {
			moves = append(moves, m)
		}
	}

	return moves
}

func (riverCrossing) Result(s riverState, m riverMove) riverState { return applyMove(s, m) }

// Estimate is the classic admissible bound: the boat moves at most two
// people per crossing, so ferrying M+C people needs at least (M+C)/2.
func (riverCrossing) Estimate(s riverState) float64 { return float64(s.M+s.C) / 2 }

func applyMove(s riverState, m riverMove) riverState {
	return riverState{M: s.M + m.DM, C: s.C + m.DC, Boat: s.Boat + m.DB}
}

// riverSafe checks bounds and the safety invariant on both banks.
func riverSafe(s riverState) bool {
	if s.M < 0 || s.M > 3 || s.C < 0 || s.C > 3 || s.Boat < 0 || s.Boat > 1 {
		return false
	}

	return bankSafe(s.M, s.C) && bankSafe(3-s.M, 3-s.C)
}

func bankSafe(m, c int) bool { return m == 0 || m >= c }

// replayRiver replays a solution from the initial state, asserting the
// safety invariant at every intermediate state, and returns the final
// state reached.
func replayRiver(t *testing.T, p riverCrossing, solution []riverMove) riverState {
	t.Helper()
	s := p.Initial()
	for _, m := range solution {
		s = p.Result(s, m)
		require.True(t, riverSafe(s), "unsafe intermediate state %v", s)
	}

	return s
}

// ------------------------------------------------------------------------
// Route graph: an explicit weighted digraph behind the Problem contract,
// small enough to verify against brute-force path enumeration.
// ------------------------------------------------------------------------

// routeEdge is one directed step and its cost; it doubles as the action.
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

// informedRoute adds exact goal distances as a (consistent, admissible)
// heuristic.
type informedRoute struct {
	routeGraph
	estimates map[string]float64
}

func (g informedRoute) Estimate(s string) float64 { return g.estimates[s] }

// newRouteGraph builds the test graph. The optimal A→G path is
// A→B→C→D→G with cost 9; C and D both get replaced in the frontier by
// cheaper paths along the way, exercising replace-on-improve.
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

// newInformedRoute wraps newRouteGraph with exact distances to G, which
// are trivially consistent.
func newInformedRoute() informedRoute {
	return informedRoute{
		routeGraph: newRouteGraph(),
		estimates: map[string]float64{
			"A": 9, "B": 8, "C": 6, "D": 2, "E": 4, "G": 0,
		},
	}
}

// bruteForceMin enumerates every simple path from `from` to the goal and
// returns the minimal total cost.
func bruteForceMin(g routeGraph, from string, visited map[string]bool) (float64, bool) {
	if g.IsGoal(from) {
		return 0, true
	}
	visited[from] = true
	defer delete(visited, from)

	best := math.Inf(1)
	found := false
	for _, e := range g.edges[from] {
		if visited[e.To] {
			continue
		}
		rest, ok := bruteForceMin(g, e.To, visited)
		if ok && e.Cost+rest < best {
			best = e.Cost + rest
			found = true
		}
	}

	return best, found
}
