package search

import (
	"github.com/rhartert/spsearch/graph"
	"github.com/rhartert/spsearch/search/paths"
)

// Algorithm is a single-use graph algorithm producing a result of type R.
// Result is only valid after Execute has returned.
type Algorithm[R any] interface {
	Execute() error
	Result() (R, error)
}

var _ Algorithm[paths.Path[string]] = (*Dijkstra[string, graph.Weights])(nil)

var _ Algorithm[map[string]float64] = (*DijkstraMap[string, graph.Weights])(nil)

var _ Algorithm[*GraphTree[string]] = (*BFS[string, graph.Weights])(nil)
