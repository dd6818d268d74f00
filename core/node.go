// This file declares the search-tree Node and its constructors: Root,
// Child, Expand, and the Solution/Path reconstruction helpers.
package core

// Node is one vertex of the search tree: a state plus the path that
// discovered it. Two nodes reached via different paths but holding the
// same state are interchangeable for membership purposes: containers in
// this library key nodes by State, never by pointer identity.
type Node[S comparable, A any] struct {
	// State is the problem state this node wraps.
	State S

	// Parent is the node this one was expanded from; nil for the root.
	// The link is non-owning: a node keeps only its ancestors alive.
	Parent *Node[S, A]

	// Action produced this node from Parent; the zero value for the root.
	Action A

	// Cost is the cumulative path cost g from the root to this node.
	Cost float64

	// Depth is the number of actions from the root (0 for the root).
	Depth int

	// F caches the evaluation value assigned by an informed search.
	// Best-first search stores f(n) here; RBFS stores the backed-up
	// f-value, which may rise as subtrees are exhausted.
	F float64
}

// Root returns the root node for the given start state.
func Root[S comparable, A any](state S) *Node[S, A] {
	return &Node[S, A]{State: state}
}

// Child builds the node reached by applying action via in parent's state:
// its state is p.Result, its cost p.StepCost accumulated onto the
// parent's, its depth the parent's plus one.
func Child[S comparable, A any](p Problem[S, A], parent *Node[S, A], via A) *Node[S, A] {
	next := p.Result(parent.State, via)

	return &Node[S, A]{
		State:  next,
		Parent: parent,
		Action: via,
		Cost:   p.StepCost(parent.Cost, parent.State, via, next),
		Depth:  parent.Depth + 1,
	}
}

// Expand returns one child per legal action in n's state, in the order
// p.Actions reports them.
func Expand[S comparable, A any](p Problem[S, A], n *Node[S, A]) []*Node[S, A] {
	actions := p.Actions(n.State)
	children := make([]*Node[S, A], 0, len(actions))
	for _, a := range actions {
		children = append(children, Child(p, n, a))
	}

	return children
}

// Solution returns the actions leading from the root to n, in execution
// order. The root's (absent) action is dropped; a root node yields an
// empty slice.
func (n *Node[S, A]) Solution() []A {
	actions := make([]A, 0, n.Depth)
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		actions = append(actions, cur.Action)
	}
	// reverse: the walk above collected goal → root
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}

	return actions
}

// Path returns the nodes from the root to n inclusive, in root-first
// order.
func (n *Node[S, A]) Path() []*Node[S, A] {
	path := make([]*Node[S, A], 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
