package graph

// Reachability decides which outgoing edges can be followed from the node
// currently being expanded. SetContext is called once per expansion, before
// the node's outgoing edges are enumerated.
type Reachability[N any, E any] interface {
	SetOriginDestination(origin N, destination N)
	SetContext(current PredGraph)
	Reachable(from InternalNode[N], to InternalNode[N], label E) bool
}

// EmptyReachability allows every edge and ignores its context.
type EmptyReachability[N any, E any] struct{}

func (EmptyReachability[N, E]) SetOriginDestination(N, N) {}

func (EmptyReachability[N, E]) SetContext(PredGraph) {}

func (EmptyReachability[N, E]) Reachable(InternalNode[N], InternalNode[N], E) bool {
	return true
}

// Turn is a sequence of three nodes: entering Via from From, then leaving Via
// towards To.
type Turn[N any] struct {
	From N
	Via  N
	To   N
}

type turnKey struct {
	from, via, to int
}

// TurnRestrictions forbids a set of turns. Whether an edge can be followed
// depends on the node the expanded node was entered from, which is read from
// the context.
//
// Searches close nodes rather than edges: a node reached through a forbidden
// turn is not revisited from another direction once closed.
type TurnRestrictions[N comparable, E any] struct {
	forbidden map[turnKey]bool
	current   PredGraph
}

// NewTurnRestrictions returns a reachability forbidding the given turns. It
// returns an error wrapping ErrNodeNotFound if a turn refers to a node that is
// not in g.
func NewTurnRestrictions[N comparable, E any](g Graph[N, E], turns []Turn[N]) (*TurnRestrictions[N, E], error) {
	tr := &TurnRestrictions[N, E]{forbidden: make(map[turnKey]bool, len(turns))}
	for _, t := range turns {
		from, err := g.InternalNode(t.From)
		if err != nil {
			return nil, err
		}
		via, err := g.InternalNode(t.Via)
		if err != nil {
			return nil, err
		}
		to, err := g.InternalNode(t.To)
		if err != nil {
			return nil, err
		}
		tr.forbidden[turnKey{from.ID(), via.ID(), to.ID()}] = true
	}
	return tr, nil
}

// Len returns the number of forbidden turns.
func (tr *TurnRestrictions[N, E]) Len() int {
	return len(tr.forbidden)
}

func (tr *TurnRestrictions[N, E]) SetOriginDestination(N, N) {}

func (tr *TurnRestrictions[N, E]) SetContext(current PredGraph) {
	tr.current = current
}

func (tr *TurnRestrictions[N, E]) Reachable(from InternalNode[N], to InternalNode[N], _ E) bool {
	if from.ID() != tr.current.Node || !tr.current.HasPredecessor() {
		return true
	}
	return !tr.forbidden[turnKey{tr.current.Predecessor, from.ID(), to.ID()}]
}

// ReachabilityFunc adapts a context-free edge predicate to Reachability.
type ReachabilityFunc[N any, E any] func(from InternalNode[N], to InternalNode[N], label E) bool

func (f ReachabilityFunc[N, E]) SetOriginDestination(N, N) {}

func (f ReachabilityFunc[N, E]) SetContext(PredGraph) {}

func (f ReachabilityFunc[N, E]) Reachable(from InternalNode[N], to InternalNode[N], label E) bool {
	return f(from, to, label)
}
