// Package search implements Dijkstra's shortest path algorithm over the
// contracts of package graph, and three searches built on the same engine:
// point-to-point shortest paths (Dijkstra), reachability maps within a
// distance bound (DijkstraMap) and distance-limited traversal trees (BFS).
//
// All searches are single-use and not safe for concurrent use. Graphs are
// only read and can be shared between searches.
package search

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/rhartert/sparsesets"
	"github.com/rhartert/spsearch/graph"
)

// Config holds the parameters shared by all searches. The zero value uses
// weight index 0, ModusWeight, a StandardRelaxer and no reachability
// constraint.
type Config[N comparable, E graph.EdgeLabel] struct {
	// WeightIndex selects which weight of the edge labels is used.
	WeightIndex int

	// Modus selects how edge costs are derived from their label.
	Modus Modus

	Relaxer      Relaxer[E]
	Reachability graph.Reachability[N, E]

	// Logger receives debug records about the search. Nil disables logging.
	Logger *log.Logger
}

func (c Config[N, E]) withDefaults() Config[N, E] {
	if c.Relaxer == nil {
		c.Relaxer = StandardRelaxer[E]{}
	}
	if c.Reachability == nil {
		c.Reachability = graph.EmptyReachability[N, E]{}
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c
}

// Hooks let a search observe and stop the engine.
type Hooks struct {
	// IsDone is called on each record extracted from the queue, after its
	// node is closed and before its edges are relaxed. Returning true stops
	// the search. Nil never stops.
	IsDone func(pu graph.PredGraph) bool

	// WeightUpdated is called each time the weight of a record decreases.
	// Nil does nothing.
	WeightUpdated func(pv graph.PredGraph)
}

// State is the state of an Engine.
type State int

const (
	StateReady State = iota
	StateRunning
	StateDone      // stopped by Hooks.IsDone
	StateExhausted // the queue ran empty
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Stats counts the work done by an Engine.
type Stats struct {
	Expanded int // records extracted from the queue
	Relaxed  int // successful relaxations
}

// Engine runs Dijkstra's algorithm from an origin node. Searches configure
// it with Hooks.
type Engine[N comparable, E graph.EdgeLabel] struct {
	graph  graph.Graph[N, E]
	origin graph.InternalNode[N]
	cfg    Config[N, E]
	hooks  Hooks

	queue  *PMinQueue
	closed *sparsesets.Set
	state  State
	stats  Stats
}

// NewEngine returns an engine searching g from origin. It returns an error
// wrapping graph.ErrNodeNotFound if origin is not in g.
func NewEngine[N comparable, E graph.EdgeLabel](g graph.Graph[N, E], origin N, cfg Config[N, E], hooks Hooks) (*Engine[N, E], error) {
	o, err := g.InternalNode(origin)
	if err != nil {
		return nil, err
	}
	if hooks.IsDone == nil {
		hooks.IsDone = func(graph.PredGraph) bool { return false }
	}
	if hooks.WeightUpdated == nil {
		hooks.WeightUpdated = func(graph.PredGraph) {}
	}
	return &Engine[N, E]{
		graph:  g,
		origin: o,
		cfg:    cfg.withDefaults(),
		hooks:  hooks,
	}, nil
}

// Execute runs the search until Hooks.IsDone returns true or all the nodes
// reachable from the origin have been closed. It returns ErrAlreadyExecuted
// if called more than once.
func (e *Engine[N, E]) Execute() error {
	if e.state != StateReady {
		return ErrAlreadyExecuted
	}
	e.state = StateRunning

	nNodes := e.graph.Order()
	e.queue = NewPMinQueue(nNodes)
	e.closed = sparsesets.New(nNodes)

	e.queue.Add(graph.PredGraph{
		Node:        e.origin.ID(),
		Predecessor: graph.NoPredecessor,
	}, 0)

	for !e.queue.IsEmpty() {
		pu := e.queue.ExtractMin()
		e.closed.Insert(pu.Node)
		e.stats.Expanded++
		e.cfg.Logger.Debug("expand", "node", e.graph.NodeByID(pu.Node).WrappedNode(), "weight", pu.Weight)

		if e.hooks.IsDone(pu) {
			e.state = StateDone
			e.cfg.Logger.Debug("search stopped", "node", e.graph.NodeByID(pu.Node).WrappedNode(), "weight", pu.Weight, "expanded", e.stats.Expanded)
			return nil
		}

		u := e.graph.NodeByID(pu.Node)
		e.cfg.Reachability.SetContext(pu)
		for v, label := range e.graph.OutgoingEdges(u, e.cfg.Reachability) {
			if e.closed.Contains(v.ID()) {
				continue
			}
			pv, queued := e.queue.Get(v.ID())
			if !queued {
				pv = newRecord(v.ID())
			}
			w, ok := e.cfg.Relaxer.Relax(pu, pv, label, e.cfg.WeightIndex, e.cfg.Modus)
			if !ok {
				continue
			}
			// Nodes only enter the queue once a finite path reaches them.
			if queued {
				pv = e.queue.Update(v.ID(), w, pu.Node)
			} else {
				pv.Predecessor = pu.Node
				e.queue.Add(pv, w)
				pv, _ = e.queue.Get(v.ID())
			}
			e.stats.Relaxed++
			e.hooks.WeightUpdated(pv)
		}
	}

	e.state = StateExhausted
	e.cfg.Logger.Debug("search exhausted", "origin", e.origin.WrappedNode(), "expanded", e.stats.Expanded)
	return nil
}

// State returns the current state of the engine.
func (e *Engine[N, E]) State() State {
	return e.state
}

// Stats returns the work done so far.
func (e *Engine[N, E]) Stats() Stats {
	return e.stats
}

// PredGraph returns the predecessor record of the node with the given ID if
// the search discovered it.
func (e *Engine[N, E]) PredGraph(id int) (graph.PredGraph, bool) {
	if e.queue == nil {
		return graph.PredGraph{}, false
	}
	return e.queue.Record(id)
}

// Closed returns true if the weight of the node with the given ID is final.
func (e *Engine[N, E]) Closed(id int) bool {
	return e.closed != nil && e.closed.Contains(id)
}

// Trace returns the nodes on the predecessor chain from the origin to the
// record pg, in order.
func (e *Engine[N, E]) Trace(pg graph.PredGraph) []N {
	nodes := []N{e.graph.NodeByID(pg.Node).WrappedNode()}
	for pg.HasPredecessor() {
		pg, _ = e.queue.Record(pg.Predecessor)
		nodes = append(nodes, e.graph.NodeByID(pg.Node).WrappedNode())
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}

func (e *Engine[N, E]) Graph() graph.Graph[N, E] {
	return e.graph
}

func (e *Engine[N, E]) Origin() graph.InternalNode[N] {
	return e.origin
}

func (e *Engine[N, E]) Relaxer() Relaxer[E] {
	return e.cfg.Relaxer
}

func (e *Engine[N, E]) WeightIndex() int {
	return e.cfg.WeightIndex
}

func (e *Engine[N, E]) Modus() Modus {
	return e.cfg.Modus
}

func (e *Engine[N, E]) Reachability() graph.Reachability[N, E] {
	return e.cfg.Reachability
}

func validMaxDistance(d float64) bool {
	return d >= 0 && !math.IsNaN(d)
}
