// This file declares the Frontier: a state-keyed min-priority queue with
// the replace-on-improve operation graph search requires.
package core

import (
	"container/heap"
	"errors"
)

// Sentinel errors for frontier operations.
var (
	// ErrEmptyFrontier indicates Pop was called on an empty frontier.
	ErrEmptyFrontier = errors.New("core: frontier is empty")

	// ErrDuplicateState indicates Push was called for a state that is
	// already queued; callers must use Replace to improve an entry.
	ErrDuplicateState = errors.New("core: state already in frontier")

	// ErrStateNotFound indicates Replace was called for a state that is
	// not currently queued.
	ErrStateNotFound = errors.New("core: state not in frontier")
)

// frontierItem is one queued node together with its evaluation value and
// heap bookkeeping. seq breaks f-ties in insertion order: states are
// opaque, so no total order over them exists, and a monotonic sequence
// number gives the heap the strict, deterministic, path-independent order
// it needs.
type frontierItem[S comparable, A any] struct {
	node *Node[S, A]
	f    float64
	seq  uint64
	pos  int // current index in the heap slice, maintained by Swap
}

// frontierHeap implements heap.Interface over frontier items, ordered by
// (f, seq) ascending.
type frontierHeap[S comparable, A any] []*frontierItem[S, A]

func (h frontierHeap[S, A]) Len() int { return len(h) }

func (h frontierHeap[S, A]) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].seq < h[j].seq
}

func (h frontierHeap[S, A]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].pos = i
	h[j].pos = j
}

func (h *frontierHeap[S, A]) Push(x any) {
	item := x.(*frontierItem[S, A])
	item.pos = len(*h)
	*h = append(*h, item)
}

func (h *frontierHeap[S, A]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the slot
	item.pos = -1
	*h = old[:n-1]

	return item
}

// Frontier is a min-priority queue of search-tree nodes ordered by an
// evaluation value f, holding at most one entry per state. Unlike the
// lazy decrease-key pattern (push duplicates, skip stale pops), the
// frontier keeps a state → entry index so membership is O(1) and a
// cheaper path to a queued state replaces the stale entry in place.
//
// A Frontier is created fresh per search invocation and owned by it
// exclusively; it is not safe for concurrent use.
type Frontier[S comparable, A any] struct {
	heap  frontierHeap[S, A]
	index map[S]*frontierItem[S, A]
	seq   uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier[S comparable, A any]() *Frontier[S, A] {
	return &Frontier[S, A]{
		heap:  make(frontierHeap[S, A], 0),
		index: make(map[S]*frontierItem[S, A]),
	}
}

// Len returns the number of queued nodes.
func (fr *Frontier[S, A]) Len() int { return len(fr.heap) }

// Push queues n with evaluation value f. O(log n).
// Returns ErrDuplicateState if n's state is already queued.
func (fr *Frontier[S, A]) Push(n *Node[S, A], f float64) error {
	if _, ok := fr.index[n.State]; ok {
		return ErrDuplicateState
	}
	item := &frontierItem[S, A]{node: n, f: f, seq: fr.seq}
	fr.seq++
	heap.Push(&fr.heap, item)
	fr.index[n.State] = item

	return nil
}

// Pop removes and returns the node with the smallest evaluation value,
// breaking ties in insertion order. O(log n).
func (fr *Frontier[S, A]) Pop() (*Node[S, A], error) {
	if len(fr.heap) == 0 {
		return nil, ErrEmptyFrontier
	}
	item := heap.Pop(&fr.heap).(*frontierItem[S, A])
	delete(fr.index, item.node.State)

	return item.node, nil
}

// Contains reports whether a node for state s is queued. O(1).
func (fr *Frontier[S, A]) Contains(s S) bool {
	_, ok := fr.index[s]

	return ok
}

// Lookup returns the queued node for state s and its evaluation value.
// O(1).
func (fr *Frontier[S, A]) Lookup(s S) (*Node[S, A], float64, bool) {
	item, ok := fr.index[s]
	if !ok {
		return nil, 0, false
	}

	return item.node, item.f, true
}

// Replace removes the stale entry for state s and queues n with the new
// evaluation value f. O(log n). n must carry state s; callers invoke
// Replace only when f improves on the stored value.
// Returns ErrStateNotFound if s is not queued.
func (fr *Frontier[S, A]) Replace(s S, n *Node[S, A], f float64) error {
	old, ok := fr.index[s]
	if !ok {
		return ErrStateNotFound
	}
	heap.Remove(&fr.heap, old.pos)
	delete(fr.index, s)

	return fr.Push(n, f)
}
