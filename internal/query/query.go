// Package query runs searches against a loaded network. It is shared by the
// command line and the HTTP server.
package query

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rhartert/spsearch/graph"
	"github.com/rhartert/spsearch/internal/netfile"
	"github.com/rhartert/spsearch/search"
)

// ErrBadParams is returned when query parameters are invalid.
var ErrBadParams = errors.New("bad query parameters")

// Params holds the parameters of a query. Fields that do not apply to a
// query are ignored.
type Params struct {
	From        string
	To          string
	MaxDistance float64

	// Weight is a weight name or index. Empty means index 0.
	Weight string

	// Modus is a search.Modus name. Empty means "weight".
	Modus string

	// Turns enables the turn restrictions declared by the network.
	Turns bool

	// Avoid lists nodes that cannot be entered.
	Avoid []string
}

// RouteResult is the result of a point-to-point query.
type RouteResult struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Found    bool     `json:"found"`
	Nodes    []string `json:"nodes,omitempty"`
	Weight   float64  `json:"weight"`
	Expanded int      `json:"expanded"`
}

// Reached is a node and its distance from the origin of a query.
type Reached struct {
	Node     string  `json:"node"`
	Distance float64 `json:"distance"`
	Parent   string  `json:"parent,omitempty"`
}

// ReachResult is the result of a reachability map query. Nodes are sorted by
// distance, then by name.
type ReachResult struct {
	From        string    `json:"from"`
	MaxDistance float64   `json:"max_distance"`
	Nodes       []Reached `json:"nodes"`
	Expanded    int       `json:"expanded"`
}

// TreeResult is the result of a traversal query. Nodes are listed in the order
// their distance became final.
type TreeResult struct {
	From        string    `json:"from"`
	MaxDistance float64   `json:"max_distance"`
	Nodes       []Reached `json:"nodes"`
	Expanded    int       `json:"expanded"`

	Tree *search.GraphTree[string] `json:"-"`
}

// Runner runs queries against a network. A Runner is safe for concurrent
// use: every query builds its own search.
type Runner struct {
	net    *netfile.Network
	logger *log.Logger
}

// NewRunner returns a Runner over net. A nil logger disables logging.
func NewRunner(net *netfile.Network, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{net: net, logger: logger}
}

// Network returns the network queried by the runner.
func (r *Runner) Network() *netfile.Network {
	return r.net
}

// Route computes the shortest path from p.From to p.To.
func (r *Runner) Route(p Params) (RouteResult, error) {
	cfg, err := r.config(p)
	if err != nil {
		return RouteResult{}, err
	}
	start := time.Now()
	dj, err := search.NewDijkstra(r.net.Graph, p.From, p.To, cfg)
	if err != nil {
		return RouteResult{}, err
	}
	if err := dj.Execute(); err != nil {
		return RouteResult{}, err
	}
	path, err := dj.Result()
	if err != nil {
		return RouteResult{}, err
	}

	res := RouteResult{
		From:     p.From,
		To:       p.To,
		Found:    path.Valid(),
		Expanded: dj.Engine().Stats().Expanded,
	}
	if path.Valid() {
		res.Nodes = path.Nodes()
		res.Weight = path.Weight()
	}
	r.logger.Info("route", "from", p.From, "to", p.To, "found", res.Found, "weight", res.Weight, "expanded", res.Expanded, "elapsed", time.Since(start))
	return res, nil
}

// Reach computes the distance from p.From to every node within p.MaxDistance.
func (r *Runner) Reach(p Params) (ReachResult, error) {
	cfg, err := r.config(p)
	if err != nil {
		return ReachResult{}, err
	}
	start := time.Now()
	dm, err := search.NewDijkstraMap(r.net.Graph, p.From, p.MaxDistance, cfg)
	if err != nil {
		return ReachResult{}, wrapBound(err)
	}
	if err := dm.Execute(); err != nil {
		return ReachResult{}, err
	}
	dists, err := dm.Result()
	if err != nil {
		return ReachResult{}, err
	}

	res := ReachResult{
		From:        p.From,
		MaxDistance: p.MaxDistance,
		Nodes:       make([]Reached, 0, len(dists)),
		Expanded:    dm.Engine().Stats().Expanded,
	}
	for n, d := range dists {
		res.Nodes = append(res.Nodes, Reached{Node: n, Distance: d})
	}
	slices.SortFunc(res.Nodes, func(a, b Reached) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.Node, b.Node)
	})
	r.logger.Info("reach", "from", p.From, "max", p.MaxDistance, "nodes", len(res.Nodes), "expanded", res.Expanded, "elapsed", time.Since(start))
	return res, nil
}

// Tree computes the traversal tree of the nodes within p.MaxDistance of
// p.From.
func (r *Runner) Tree(p Params) (TreeResult, error) {
	cfg, err := r.config(p)
	if err != nil {
		return TreeResult{}, err
	}
	start := time.Now()
	bfs, err := search.NewBFS(r.net.Graph, p.From, p.MaxDistance, cfg)
	if err != nil {
		return TreeResult{}, wrapBound(err)
	}
	if err := bfs.Execute(); err != nil {
		return TreeResult{}, err
	}
	tree, err := bfs.Result()
	if err != nil {
		return TreeResult{}, err
	}

	res := TreeResult{
		From:        p.From,
		MaxDistance: p.MaxDistance,
		Nodes:       make([]Reached, 0, tree.Len()),
		Expanded:    bfs.Engine().Stats().Expanded,
		Tree:        tree,
	}
	for _, n := range tree.Nodes() {
		d, _ := tree.Distance(n)
		parent, _ := tree.Parent(n)
		res.Nodes = append(res.Nodes, Reached{Node: n, Distance: d, Parent: parent})
	}
	r.logger.Info("tree", "from", p.From, "max", p.MaxDistance, "nodes", len(res.Nodes), "expanded", res.Expanded, "elapsed", time.Since(start))
	return res, nil
}

func (r *Runner) config(p Params) (search.Config[string, graph.Weights], error) {
	cfg := search.Config[string, graph.Weights]{Logger: r.logger}

	if p.Weight != "" {
		i, err := r.net.WeightIndex(p.Weight)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s", ErrBadParams, err)
		}
		cfg.WeightIndex = i
	}
	if p.Modus != "" {
		m, err := search.ParseModus(p.Modus)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s", ErrBadParams, err)
		}
		cfg.Modus = m
	}

	reach := &constraints{}
	if p.Turns && len(r.net.Turns) > 0 {
		tr, err := r.net.TurnRestrictions()
		if err != nil {
			return cfg, err
		}
		reach.turns = tr
	}
	for _, n := range p.Avoid {
		in, err := r.net.Graph.InternalNode(n)
		if err != nil {
			return cfg, err
		}
		if reach.avoid == nil {
			reach.avoid = map[int]bool{}
		}
		reach.avoid[in.ID()] = true
	}
	if reach.turns != nil || reach.avoid != nil {
		cfg.Reachability = reach
	}
	return cfg, nil
}

func wrapBound(err error) error {
	if errors.Is(err, search.ErrBadMaxDistance) {
		return fmt.Errorf("%w: %s", ErrBadParams, err)
	}
	return err
}

// constraints combines turn restrictions with a set of nodes that cannot be
// entered.
type constraints struct {
	turns *graph.TurnRestrictions[string, graph.Weights]
	avoid map[int]bool
}

func (c *constraints) SetOriginDestination(origin string, destination string) {
	if c.turns != nil {
		c.turns.SetOriginDestination(origin, destination)
	}
}

func (c *constraints) SetContext(current graph.PredGraph) {
	if c.turns != nil {
		c.turns.SetContext(current)
	}
}

func (c *constraints) Reachable(from graph.InternalNode[string], to graph.InternalNode[string], label graph.Weights) bool {
	if c.avoid[to.ID()] {
		return false
	}
	return c.turns == nil || c.turns.Reachable(from, to, label)
}
