// Package netfile loads networks from files. Two formats are supported: a
// TOML description of nodes, edges and turn restrictions, and the
// line-oriented REPETITA ".graph" format.
package netfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rhartert/spsearch/graph"
)

// ErrInvalidNetwork is returned when a network file is malformed.
var ErrInvalidNetwork = errors.New("invalid network")

// Network is a graph loaded from a file together with its metadata.
type Network struct {
	Name string

	// WeightNames names the weight indices of the edge labels.
	WeightNames []string

	Graph *graph.Digraph[string, graph.Weights]

	// Turns lists the forbidden turns declared by the file.
	Turns []graph.Turn[string]
}

// WeightIndex resolves a weight index given either by name or by position.
func (n *Network) WeightIndex(s string) (int, error) {
	for i, name := range n.WeightNames {
		if name == s {
			return i, nil
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 || (len(n.WeightNames) > 0 && i >= len(n.WeightNames)) {
		return 0, fmt.Errorf("unknown weight %q (available: %v)", s, n.WeightNames)
	}
	return i, nil
}

// TurnRestrictions returns the reachability enforcing the network's turns.
func (n *Network) TurnRestrictions() (*graph.TurnRestrictions[string, graph.Weights], error) {
	return graph.NewTurnRestrictions[string, graph.Weights](n.Graph, n.Turns)
}

// Load reads the network file at path. Files with a ".toml" extension are
// parsed as TOML, any other file as REPETITA.
func Load(path string) (*Network, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var net *Network
	if filepath.Ext(path) == ".toml" {
		net, err = ParseTOML(file)
	} else {
		net, err = ParseRepetita(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if net.Name == "" {
		net.Name = filepath.Base(path)
	}
	return net, nil
}
