package search

import (
	"fmt"
	"maps"

	"github.com/rhartert/spsearch/graph"
)

// DijkstraMap computes the shortest distance from an origin to every node
// within a maximum distance (an isochrone).
type DijkstraMap[N comparable, E graph.EdgeLabel] struct {
	engine      *Engine[N, E]
	maxDistance float64
	result      map[N]float64
	executed    bool
}

// NewDijkstraMap returns a search for all the nodes whose distance from
// origin is at most maxDistance. It returns an error wrapping
// graph.ErrNodeNotFound if origin is not in g, or ErrBadMaxDistance.
func NewDijkstraMap[N comparable, E graph.EdgeLabel](g graph.Graph[N, E], origin N, maxDistance float64, cfg Config[N, E]) (*DijkstraMap[N, E], error) {
	if !validMaxDistance(maxDistance) {
		return nil, fmt.Errorf("%w: %f", ErrBadMaxDistance, maxDistance)
	}
	dm := &DijkstraMap[N, E]{maxDistance: maxDistance}
	engine, err := NewEngine(g, origin, cfg, Hooks{
		IsDone:        dm.isDone,
		WeightUpdated: dm.weightUpdated,
	})
	if err != nil {
		return nil, err
	}
	dm.engine = engine
	return dm, nil
}

// Records are extracted by non-decreasing weight: once one exceeds the bound,
// every record left in the queue does too.
func (dm *DijkstraMap[N, E]) isDone(pu graph.PredGraph) bool {
	return pu.Weight > dm.maxDistance
}

func (dm *DijkstraMap[N, E]) weightUpdated(pv graph.PredGraph) {
	if pv.Weight <= dm.maxDistance {
		dm.result[dm.engine.graph.NodeByID(pv.Node).WrappedNode()] = pv.Weight
	}
}

// Execute runs the search.
func (dm *DijkstraMap[N, E]) Execute() error {
	if dm.executed {
		return ErrAlreadyExecuted
	}
	// The origin is never relaxed as a neighbor.
	dm.result = map[N]float64{dm.engine.origin.WrappedNode(): 0}
	if err := dm.engine.Execute(); err != nil {
		return err
	}
	dm.executed = true
	return nil
}

// Result returns a copy of the map from each node within the bound to its
// distance from the origin. It returns ErrNotExecuted if the search has not
// run yet.
func (dm *DijkstraMap[N, E]) Result() (map[N]float64, error) {
	if !dm.executed {
		return nil, ErrNotExecuted
	}
	return maps.Clone(dm.result), nil
}

// MaxDistance returns the distance bound of the search.
func (dm *DijkstraMap[N, E]) MaxDistance() float64 {
	return dm.maxDistance
}

// Engine returns the underlying engine.
func (dm *DijkstraMap[N, E]) Engine() *Engine[N, E] {
	return dm.engine
}
