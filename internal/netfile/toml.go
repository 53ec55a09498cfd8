package netfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rhartert/spsearch/graph"
)

type tomlFile struct {
	Name    string     `toml:"name"`
	Weights []string   `toml:"weights"`
	Nodes   []string   `toml:"nodes"`
	Edges   []tomlEdge `toml:"edges"`
	Turns   []tomlTurn `toml:"turns"`
}

type tomlEdge struct {
	From          string    `toml:"from"`
	To            string    `toml:"to"`
	Weights       []float64 `toml:"weights"`
	Bidirectional bool      `toml:"bidirectional"`
}

type tomlTurn struct {
	From string `toml:"from"`
	Via  string `toml:"via"`
	To   string `toml:"to"`
}

// ParseTOML reads a network in TOML format:
//
//	name = "square"
//	weights = ["length", "time"]
//	nodes = ["a"]                  # optional, for isolated nodes
//
//	[[edges]]
//	from = "a"
//	to = "b"
//	weights = [1.0, 2.5]
//	bidirectional = true
//
//	[[turns]]                      # forbidden turn a -> b -> c
//	from = "a"
//	via = "b"
//	to = "c"
//
// Node IDs are assigned in order of first appearance.
func ParseTOML(r io.Reader) (*Network, error) {
	var f tomlFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidNetwork, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidNetwork, strings.Join(keys, ", "))
	}

	b := graph.NewBuilder[string, graph.Weights]()
	for _, n := range f.Nodes {
		if n == "" {
			return nil, fmt.Errorf("%w: empty node name", ErrInvalidNetwork)
		}
		b.AddNode(n)
	}
	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %d: missing endpoint", ErrInvalidNetwork, i)
		}
		if len(e.Weights) == 0 {
			return nil, fmt.Errorf("%w: edge %d (%s -> %s): no weights", ErrInvalidNetwork, i, e.From, e.To)
		}
		if len(f.Weights) > 0 && len(e.Weights) != len(f.Weights) {
			return nil, fmt.Errorf("%w: edge %d (%s -> %s): want %d weights, got %d", ErrInvalidNetwork, i, e.From, e.To, len(f.Weights), len(e.Weights))
		}
		for _, w := range e.Weights {
			if !validWeight(w) {
				return nil, fmt.Errorf("%w: edge %d (%s -> %s): weight %f is not a finite non-negative number", ErrInvalidNetwork, i, e.From, e.To, w)
			}
		}
		if e.Bidirectional {
			b.AddBidirectionalEdge(e.From, e.To, graph.Weights(e.Weights))
		} else {
			b.AddEdge(e.From, e.To, graph.Weights(e.Weights))
		}
	}

	net := &Network{
		Name:        f.Name,
		WeightNames: f.Weights,
		Graph:       b.Build(),
	}
	for _, t := range f.Turns {
		net.Turns = append(net.Turns, graph.Turn[string]{From: t.From, Via: t.Via, To: t.To})
	}
	if _, err := net.TurnRestrictions(); err != nil {
		return nil, fmt.Errorf("%w: turns: %s", ErrInvalidNetwork, err)
	}
	return net, nil
}
