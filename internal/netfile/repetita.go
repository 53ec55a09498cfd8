package netfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rhartert/spsearch/graph"
)

// repetitaWeights names the weights of edges read from REPETITA files.
var repetitaWeights = []string{"weight", "bandwidth", "delay"}

// ParseRepetita reads a network in the REPETITA format:
//
//	NODES 2
//	label x y
//	a 0.0 0.0
//	b 1.0 0.0
//
//	EDGES 1
//	label src dest weight bw delay
//	e0 0 1 10 1000 3
//
// Edges refer to nodes by their position in the NODES section and carry three
// weights: "weight", "bandwidth" and "delay".
func ParseRepetita(r io.Reader) (*Network, error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	next := func() (string, bool) {
		for scanner.Scan() {
			lineNum++
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				return line, true
			}
		}
		return "", false
	}
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: line %d: %s", ErrInvalidNetwork, lineNum, fmt.Sprintf(format, args...))
	}

	nNodes, err := parseSectionHeader(next, "NODES")
	if err != nil {
		return nil, invalid("%s", err)
	}
	next() // skip headers

	b := graph.NewBuilder[string, graph.Weights]()
	labels := make([]string, nNodes)
	for i := 0; i < nNodes; i++ {
		line, ok := next()
		if !ok {
			return nil, invalid("want %d nodes, got %d", nNodes, i)
		}
		labels[i] = strings.Fields(line)[0]
		if b.AddNode(labels[i]) != i {
			return nil, invalid("duplicate node %q", labels[i])
		}
	}

	nEdges, err := parseSectionHeader(next, "EDGES")
	if err != nil {
		return nil, invalid("%s", err)
	}
	next() // skip headers

	for i := 0; i < nEdges; i++ {
		line, ok := next()
		if !ok {
			return nil, invalid("want %d edges, got %d", nEdges, i)
		}
		parts := strings.Fields(line)
		if len(parts) != 6 {
			return nil, invalid("invalid edge: want 6 fields, got %d", len(parts))
		}
		from, err := parseNodeIndex(parts[1], nNodes)
		if err != nil {
			return nil, invalid("invalid edge: %s", err)
		}
		to, err := parseNodeIndex(parts[2], nNodes)
		if err != nil {
			return nil, invalid("invalid edge: %s", err)
		}
		weights := make(graph.Weights, 3)
		for k, s := range parts[3:] {
			w, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, invalid("invalid edge: %s", err)
			}
			if !validWeight(w) {
				return nil, invalid("invalid edge: %s %f is not a finite non-negative number", repetitaWeights[k], w)
			}
			weights[k] = w
		}
		b.AddEdge(labels[from], labels[to], weights)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Network{
		WeightNames: repetitaWeights,
		Graph:       b.Build(),
	}, nil
}

func parseSectionHeader(next func() (string, bool), name string) (int, error) {
	line, ok := next()
	if !ok {
		return 0, fmt.Errorf("missing %s section", name)
	}
	parts := strings.Fields(line)
	if len(parts) != 2 || parts[0] != name {
		return 0, fmt.Errorf("want %q, got %q", name+" <count>", line)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s count %q", name, parts[1])
	}
	return n, nil
}

func parseNodeIndex(s string, nNodes int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 || nNodes <= i {
		return 0, fmt.Errorf("node %d is not in [0, %d)", i, nNodes)
	}
	return i, nil
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1)
}
