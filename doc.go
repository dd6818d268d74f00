// Package wayfind is a generic state-space search toolkit: describe a
// problem once (start state, legal moves, move results, costs and an
// optional heuristic) and solve it with classic informed and uninformed
// search algorithms.
//
// 🚀 What is wayfind?
//
//	A small, dependency-light library that brings together:
//		• Problem contract: opaque states & actions behind one interface
//		• Search tree: nodes carrying parent links, path cost and depth
//		• Frontier: state-keyed min-priority queue with replace-on-improve
//		• Uniform-cost search: optimal for non-negative step costs
//		• Greedy best-first & A*: heuristic-guided exploration
//		• Depth-limited & iterative-deepening search: bounded DFS with an
//		  explicit cutoff outcome
//		• Recursive best-first search (RBFS): linear-space informed search
//
// ✨ Why choose wayfind?
//
//   - Problem-agnostic – any comparable state type, any action type
//   - Explicit outcomes – failure and cutoff are sentinel errors, never panics
//   - Observable – injectable OnVisit/OnExpand/OnExplored hooks for tracing
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	core/      — Problem contract, search-tree Node, state-keyed Frontier
//	bestfirst/ — generic best-first graph search: UniformCost, Greedy, AStar
//	iddfs/     — DepthLimited and IterativeDeepening search
//	rbfs/      — recursive best-first search
//
// Quick sketch:
//
//	    start
//	   /  |  \
//	  s1  s2  s3     expand, evaluate, pop the cheapest, repeat
//	      |
//	     goal
//
// Dive into examples/ for runnable scenarios, from river-crossing puzzles
// to route planning.
//
//	go get github.com/katalvlaran/wayfind
package wayfind
