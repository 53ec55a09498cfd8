package search

import (
	"fmt"
	"maps"
	"slices"

	"github.com/rhartert/spsearch/graph"
	"github.com/rhartert/spsearch/search/paths"
)

// GraphTree is a shortest path tree rooted at the origin of a search.
type GraphTree[N comparable] struct {
	root    N
	order   []N
	dists   map[N]float64
	parents map[N]N
}

func newGraphTree[N comparable](root N) *GraphTree[N] {
	return &GraphTree[N]{
		root:    root,
		dists:   map[N]float64{root: 0},
		parents: map[N]N{},
	}
}

// Root returns the origin of the tree.
func (t *GraphTree[N]) Root() N {
	return t.root
}

// Len returns the number of nodes in the tree, root included.
func (t *GraphTree[N]) Len() int {
	return len(t.dists)
}

// Nodes returns the nodes of the tree in the order their distance became
// final, starting with the root. The returned slice is a copy.
func (t *GraphTree[N]) Nodes() []N {
	return slices.Clone(t.order)
}

// Distance returns the distance from the root to n.
func (t *GraphTree[N]) Distance(n N) (float64, bool) {
	d, ok := t.dists[n]
	return d, ok
}

// Parent returns the node preceding n on its shortest path from the root.
// The root has no parent.
func (t *GraphTree[N]) Parent(n N) (N, bool) {
	p, ok := t.parents[n]
	return p, ok
}

// PathTo returns the branch of the tree from the root to n, or an invalid
// path if n is not in the tree.
func (t *GraphTree[N]) PathTo(n N) paths.Path[N] {
	d, ok := t.dists[n]
	if !ok {
		return paths.Invalid[N]()
	}
	nodes := []N{n}
	for p, ok := t.parents[n]; ok; p, ok = t.parents[p] {
		nodes = append(nodes, p)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return paths.New(nodes, d)
}

// ToMap returns a copy of the map from each node of the tree to its distance
// from the root.
func (t *GraphTree[N]) ToMap() map[N]float64 {
	return maps.Clone(t.dists)
}

// BFS is a distance-limited traversal from an origin. It visits nodes in
// order of increasing distance and builds the tree of their shortest paths,
// stopping at the first node farther than the maximum distance. With
// ModusHops the distance is the number of edges; with the default ModusWeight
// it is the sum of the edge weights at the configured weight index.
type BFS[N comparable, E graph.EdgeLabel] struct {
	engine      *Engine[N, E]
	maxDistance float64
	tree        *GraphTree[N]
	executed    bool
}

// NewBFS returns a traversal of the nodes whose distance from origin is at
// most maxDistance. It returns an error wrapping graph.ErrNodeNotFound if
// origin is not in g, or ErrBadMaxDistance.
func NewBFS[N comparable, E graph.EdgeLabel](g graph.Graph[N, E], origin N, maxDistance float64, cfg Config[N, E]) (*BFS[N, E], error) {
	if !validMaxDistance(maxDistance) {
		return nil, fmt.Errorf("%w: %f", ErrBadMaxDistance, maxDistance)
	}
	b := &BFS[N, E]{maxDistance: maxDistance}
	engine, err := NewEngine(g, origin, cfg, Hooks{
		IsDone:        b.isDone,
		WeightUpdated: b.weightUpdated,
	})
	if err != nil {
		return nil, err
	}
	b.engine = engine
	return b, nil
}

func (b *BFS[N, E]) isDone(pu graph.PredGraph) bool {
	if pu.Weight > b.maxDistance {
		return true
	}
	b.tree.order = append(b.tree.order, b.node(pu.Node))
	return false
}

func (b *BFS[N, E]) weightUpdated(pv graph.PredGraph) {
	if pv.Weight > b.maxDistance {
		return
	}
	n := b.node(pv.Node)
	b.tree.dists[n] = pv.Weight
	b.tree.parents[n] = b.node(pv.Predecessor)
}

func (b *BFS[N, E]) node(id int) N {
	return b.engine.graph.NodeByID(id).WrappedNode()
}

// Execute runs the traversal.
func (b *BFS[N, E]) Execute() error {
	if b.executed {
		return ErrAlreadyExecuted
	}
	b.tree = newGraphTree(b.engine.origin.WrappedNode())
	if err := b.engine.Execute(); err != nil {
		return err
	}
	b.executed = true
	return nil
}

// Result returns the traversal tree. It returns ErrNotExecuted if the
// traversal has not run yet.
func (b *BFS[N, E]) Result() (*GraphTree[N], error) {
	if !b.executed {
		return nil, ErrNotExecuted
	}
	return b.tree, nil
}

// MaxDistance returns the distance bound of the traversal.
func (b *BFS[N, E]) MaxDistance() float64 {
	return b.maxDistance
}

// Engine returns the underlying engine.
func (b *BFS[N, E]) Engine() *Engine[N, E] {
	return b.engine
}
