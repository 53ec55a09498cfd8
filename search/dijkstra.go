package search

import (
	"github.com/rhartert/spsearch/graph"
	"github.com/rhartert/spsearch/search/paths"
)

// Dijkstra computes a shortest path between two nodes. The search stops as
// soon as the destination is closed.
type Dijkstra[N comparable, E graph.EdgeLabel] struct {
	engine      *Engine[N, E]
	destination graph.InternalNode[N]
	result      paths.Path[N]
	executed    bool
}

// NewDijkstra returns a search for the shortest path from origin to
// destination. The configured reachability is told about both nodes before
// the search starts. It returns an error wrapping graph.ErrNodeNotFound if
// either node is not in g.
func NewDijkstra[N comparable, E graph.EdgeLabel](g graph.Graph[N, E], origin N, destination N, cfg Config[N, E]) (*Dijkstra[N, E], error) {
	o, err := g.InternalNode(origin)
	if err != nil {
		return nil, err
	}
	d, err := g.InternalNode(destination)
	if err != nil {
		return nil, err
	}

	cfg = cfg.withDefaults()
	cfg.Reachability.SetOriginDestination(o.WrappedNode(), d.WrappedNode())

	dj := &Dijkstra[N, E]{destination: d}
	dj.engine, err = NewEngine(g, origin, cfg, Hooks{IsDone: dj.isDone})
	if err != nil {
		return nil, err
	}
	return dj, nil
}

func (dj *Dijkstra[N, E]) isDone(pu graph.PredGraph) bool {
	if pu.Node != dj.destination.ID() {
		return false
	}
	dj.result = paths.New(dj.engine.Trace(pu), pu.Weight)
	return true
}

// Execute runs the search.
func (dj *Dijkstra[N, E]) Execute() error {
	if err := dj.engine.Execute(); err != nil {
		return err
	}
	dj.executed = true
	return nil
}

// Result returns the shortest path from the origin to the destination. The
// path is invalid if the destination is not reachable. It returns
// ErrNotExecuted if the search has not run yet.
func (dj *Dijkstra[N, E]) Result() (paths.Path[N], error) {
	if !dj.executed {
		return paths.Invalid[N](), ErrNotExecuted
	}
	return dj.result, nil
}

// Engine returns the underlying engine.
func (dj *Dijkstra[N, E]) Engine() *Engine[N, E] {
	return dj.engine
}
