package graph

import (
	"fmt"
	"iter"
)

// Edge represents an edge between two nodes of a Digraph. From and To are
// internal node IDs.
type Edge[E any] struct {
	From  int
	To    int
	Label E
}

// Digraph is an immutable directed graph. It is safe to share a Digraph
// between concurrent searches.
type Digraph[N comparable, E any] struct {
	Nodes []N
	Nexts [][]int
	Edges []Edge[E]

	ids map[N]int
}

// NewDigraph creates a new directed graph with the specified nodes and edges.
// Node i of the slice gets ID i. It is important to ensure that edges are only
// between IDs within the range [0, len(nodes)); otherwise, the function will
// panic. Nodes must be unique.
func NewDigraph[N comparable, E any](nodes []N, edges []Edge[E]) *Digraph[N, E] {
	dg := &Digraph[N, E]{
		Nodes: make([]N, len(nodes)),
		Nexts: make([][]int, len(nodes)),
		Edges: make([]Edge[E], len(edges)),
		ids:   make(map[N]int, len(nodes)),
	}
	for i, n := range nodes {
		dg.Nodes[i] = n
		dg.ids[n] = i
	}
	for i, e := range edges {
		dg.Edges[i] = e
		dg.Nexts[e.From] = append(dg.Nexts[e.From], i)
	}
	return dg
}

// InternalNode returns the handle of n.
func (dg *Digraph[N, E]) InternalNode(n N) (InternalNode[N], error) {
	id, ok := dg.ids[n]
	if !ok {
		return InternalNode[N]{}, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
	}
	return InternalNode[N]{id: id, node: n}, nil
}

// NodeByID returns the handle with the given ID. It panics if the ID is not
// within [0, Order()).
func (dg *Digraph[N, E]) NodeByID(id int) InternalNode[N] {
	return InternalNode[N]{id: id, node: dg.Nodes[id]}
}

// Order returns the number of nodes.
func (dg *Digraph[N, E]) Order() int {
	return len(dg.Nodes)
}

// Size returns the number of edges.
func (dg *Digraph[N, E]) Size() int {
	return len(dg.Edges)
}

// OutgoingEdges yields the edges leaving u, in insertion order, for which r
// returns true. A nil r allows every edge.
func (dg *Digraph[N, E]) OutgoingEdges(u InternalNode[N], r Reachability[N, E]) iter.Seq2[InternalNode[N], E] {
	return func(yield func(InternalNode[N], E) bool) {
		for _, e := range dg.Nexts[u.id] {
			edge := dg.Edges[e]
			v := dg.NodeByID(edge.To)
			if r != nil && !r.Reachable(u, v, edge.Label) {
				continue
			}
			if !yield(v, edge.Label) {
				return
			}
		}
	}
}

// Builder accumulates nodes and edges and assigns internal IDs in the order
// nodes are first seen.
type Builder[N comparable, E any] struct {
	nodes []N
	edges []Edge[E]
	ids   map[N]int
}

// NewBuilder returns an empty Builder.
func NewBuilder[N comparable, E any]() *Builder[N, E] {
	return &Builder[N, E]{ids: map[N]int{}}
}

// AddNode registers n (if not already known) and returns its internal ID.
func (b *Builder[N, E]) AddNode(n N) int {
	if id, ok := b.ids[n]; ok {
		return id
	}
	id := len(b.nodes)
	b.ids[n] = id
	b.nodes = append(b.nodes, n)
	return id
}

// AddEdge adds a directed edge from -> to. Unknown nodes are registered.
func (b *Builder[N, E]) AddEdge(from N, to N, label E) {
	b.edges = append(b.edges, Edge[E]{
		From:  b.AddNode(from),
		To:    b.AddNode(to),
		Label: label,
	})
}

// AddBidirectionalEdge adds edges from -> to and to -> from with the same label.
func (b *Builder[N, E]) AddBidirectionalEdge(from N, to N, label E) {
	b.AddEdge(from, to, label)
	b.AddEdge(to, from, label)
}

// Build returns the Digraph. The builder can still be used afterwards; later
// changes do not affect graphs that were already built.
func (b *Builder[N, E]) Build() *Digraph[N, E] {
	return NewDigraph(b.nodes, b.edges)
}
