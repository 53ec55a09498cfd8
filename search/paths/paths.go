// Package paths provides the representation of a path returned by a shortest
// path search.
package paths

import (
	"fmt"
	"strings"
)

// Path represents a path between two nodes of a graph.
//
// A valid Path respects the following invariants:
//
//   - Minimum length: 1 (a path from a node to itself)
//   - Source node: First element of the sequence
//   - Destination node: Last element of the sequence
//   - Weight: the sum of the weights of the edges along the path
//
// The zero value is an invalid path. It is returned when no path exists and
// is distinct from a valid path of length 1 and weight 0.
type Path[N any] struct {
	nodes  []N
	weight float64
	valid  bool
}

// New returns a valid path going through the given nodes, in order. It panics
// if nodes is empty.
func New[N any](nodes []N, weight float64) Path[N] {
	if len(nodes) == 0 {
		panic("paths: a valid path needs at least one node")
	}
	return Path[N]{nodes: nodes, weight: weight, valid: true}
}

// Invalid returns a path that represents the absence of a path.
func Invalid[N any]() Path[N] {
	return Path[N]{}
}

// Valid returns true if the path exists.
func (p Path[N]) Valid() bool {
	return p.valid
}

// Length returns the length of the path in terms of nodes.
func (p Path[N]) Length() int {
	return len(p.nodes)
}

// Weight returns the total weight of the path.
func (p Path[N]) Weight() float64 {
	return p.weight
}

// Node returns the node at position pos starting from 0 (the source) and
// ending at Length()-1 (the destination).
func (p Path[N]) Node(pos int) N {
	return p.nodes[pos]
}

// Nodes returns the sequence of nodes in the path (including the path's source
// and destination).
//
// Important: the slice is a view on the path's internal structure and should
// only be used in read-only operations.
func (p Path[N]) Nodes() []N {
	return p.nodes
}

// Source returns the first node of the path. It panics on an invalid path.
func (p Path[N]) Source() N {
	return p.nodes[0]
}

// Destination returns the last node of the path. It panics on an invalid
// path.
func (p Path[N]) Destination() N {
	return p.nodes[len(p.nodes)-1]
}

// String returns a string representation of the path as a sequence of nodes
// separated by " -> ". For example: "0 -> 4 -> 3 -> 1". Invalid paths are
// represented by "<invalid>".
func (p Path[N]) String() string {
	if !p.valid {
		return "<invalid>"
	}
	sb := strings.Builder{}
	for i := 0; i < len(p.nodes)-1; i++ {
		sb.WriteString(fmt.Sprintf("%v -> ", p.nodes[i]))
	}
	sb.WriteString(fmt.Sprintf("%v", p.nodes[len(p.nodes)-1]))
	return sb.String()
}
