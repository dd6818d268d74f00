package iddfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/core"
)

// ------------------------------------------------------------------------
// Adjacency problem: an explicit unweighted digraph behind the Problem
// contract. Actions are destination states; core.Base supplies the goal
// test and unit step costs.
// ------------------------------------------------------------------------

type adjacency struct {
	core.Base[string, string]
	next map[string][]string
}

func (g adjacency) Actions(s string) []string        { return g.next[s] }
func (g adjacency) Result(_ string, a string) string { return a }

// newChain builds a→b→c with the given goal.
func newChain(goal string) adjacency {
	return adjacency{
		Base: core.Base[string, string]{Start: "a", Goals: []string{goal}},
		next: map[string][]string{
			"a": {"b"},
			"b": {"c"},
		},
	}
}

// newDiamond builds a→{b,c}, b→d, c→d: two routes into the same state.
func newDiamond(goal string) adjacency {
	return adjacency{
		Base: core.Base[string, string]{Start: "a", Goals: []string{goal}},
		next: map[string][]string{
			"a": {"b", "c"},
			"b": {"d"},
			"c": {"d"},
		},
	}
}

// ------------------------------------------------------------------------
// River crossing fixture, identical puzzle to the bestfirst suite: three
// missionaries, three cannibals, a two-seat boat, no bank where
// cannibals outnumber missionaries. Optimal solutions take 11 crossings.
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
