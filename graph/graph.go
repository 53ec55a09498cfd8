// Package graph defines the contracts consumed by the shortest path engine
// (graphs, internal nodes, edge labels and contextual reachability) together
// with Digraph, an immutable in-memory implementation of those contracts.
package graph

import (
	"errors"
	"iter"
	"math"
)

// ErrNodeNotFound is returned when a node is not part of a graph.
var ErrNodeNotFound = errors.New("node not found")

// InternalNode is the handle a graph assigns to each of its nodes. IDs are
// dense: a graph with n nodes uses IDs 0 to n-1.
type InternalNode[N any] struct {
	id   int
	node N
}

// ID returns the internal identifier of the node.
func (in InternalNode[N]) ID() int {
	return in.id
}

// WrappedNode returns the application node wrapped by the handle.
func (in InternalNode[N]) WrappedNode() N {
	return in.node
}

// Equal returns true if both handles designate the same node.
func (in InternalNode[N]) Equal(other InternalNode[N]) bool {
	return in.id == other.id
}

// NoPredecessor is the predecessor ID of the root of a predecessor tree.
const NoPredecessor = -1

// PredGraph is the predecessor record of a node: the weight of the best path
// found so far from the origin to Node, and the ID of the node preceding it on
// that path.
type PredGraph struct {
	Node        int
	Weight      float64
	Predecessor int
}

// HasPredecessor returns false for the origin of a search.
func (pg PredGraph) HasPredecessor() bool {
	return pg.Predecessor != NoPredecessor
}

// EdgeLabel carries the weights of an edge. Weights must be non-negative.
type EdgeLabel interface {
	Weight(index int) float64
}

// Weights is an EdgeLabel holding one weight per index.
type Weights []float64

// Weight returns the weight at the given index or +Inf if the label has no
// such weight, which makes the edge unusable for that index.
func (w Weights) Weight(index int) float64 {
	if index < 0 || len(w) <= index {
		return math.Inf(1)
	}
	return w[index]
}

// Graph is a directed graph whose nodes are addressed by InternalNode.
type Graph[N comparable, E any] interface {
	// InternalNode returns the handle of n or an error wrapping
	// ErrNodeNotFound.
	InternalNode(n N) (InternalNode[N], error)

	// NodeByID returns the handle with the given ID.
	NodeByID(id int) InternalNode[N]

	// Order returns the number of nodes in the graph.
	Order() int

	// OutgoingEdges returns the edges leaving u that r considers reachable.
	// The sequence is lazy and can only be consumed once.
	OutgoingEdges(u InternalNode[N], r Reachability[N, E]) iter.Seq2[InternalNode[N], E]
}
