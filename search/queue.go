package search

import (
	"fmt"
	"math"

	"github.com/rhartert/spsearch/graph"
	"github.com/rhartert/yagh"
)

type entryState uint8

const (
	unseen entryState = iota
	queued
	extracted
)

// PMinQueue is an indexed min-priority queue of predecessor records keyed by
// their weight. Records are stored in an arena indexed by internal node ID;
// a record is created the first time its node is added and lives until the
// queue is discarded.
//
// The queue is the only place where a record's weight changes, which keeps the
// key of an entry and the weight of its record in sync.
type PMinQueue struct {
	heap    *yagh.IntMap[float64]
	records []graph.PredGraph
	states  []entryState
	size    int
}

// NewPMinQueue returns an empty queue for node IDs in [0, nNodes).
func NewPMinQueue(nNodes int) *PMinQueue {
	return &PMinQueue{
		heap:    yagh.New[float64](nNodes),
		records: make([]graph.PredGraph, nNodes),
		states:  make([]entryState, nNodes),
	}
}

// Add inserts pg with the given key. The record's weight is set to key. It
// panics if the node was already added.
func (q *PMinQueue) Add(pg graph.PredGraph, key float64) {
	if q.states[pg.Node] != unseen {
		panic(fmt.Sprintf("search: node %d added twice to the queue", pg.Node))
	}
	pg.Weight = key
	q.records[pg.Node] = pg
	q.states[pg.Node] = queued
	q.heap.Put(pg.Node, key)
	q.size++
}

// Get returns the record of node if it is currently in the queue.
func (q *PMinQueue) Get(node int) (graph.PredGraph, bool) {
	if q.states[node] != queued {
		return graph.PredGraph{}, false
	}
	return q.records[node], true
}

// Record returns the record of node if the node was ever added to the queue,
// whether or not it has been extracted since.
func (q *PMinQueue) Record(node int) (graph.PredGraph, bool) {
	if q.states[node] == unseen {
		return graph.PredGraph{}, false
	}
	return q.records[node], true
}

// Update decreases the key of a queued node to key, sets its predecessor and
// returns the updated record. Keys only ever decrease during a search; it
// panics if the node is not in the queue or if key is larger than its
// current key.
func (q *PMinQueue) Update(node int, key float64, predecessor int) graph.PredGraph {
	if q.states[node] != queued {
		panic(fmt.Sprintf("search: node %d is not in the queue", node))
	}
	if key > q.records[node].Weight {
		panic(fmt.Sprintf("search: key of node %d increased from %f to %f", node, q.records[node].Weight, key))
	}
	q.records[node].Weight = key
	q.records[node].Predecessor = predecessor
	q.heap.Put(node, key)
	return q.records[node]
}

// ExtractMin removes and returns the record with the smallest key. Ties are
// broken deterministically for a given sequence of operations. It panics if
// the queue is empty.
func (q *PMinQueue) ExtractMin() graph.PredGraph {
	if q.size == 0 {
		panic("search: extract from an empty queue")
	}
	entry := q.heap.Pop()
	q.states[entry.Elem] = extracted
	q.size--
	return q.records[entry.Elem]
}

// IsEmpty returns true if the queue has no entry.
func (q *PMinQueue) IsEmpty() bool {
	return q.size == 0
}

// Len returns the number of entries in the queue.
func (q *PMinQueue) Len() int {
	return q.size
}

func newRecord(node int) graph.PredGraph {
	return graph.PredGraph{
		Node:        node,
		Weight:      math.Inf(1),
		Predecessor: graph.NoPredecessor,
	}
}
