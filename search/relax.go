package search

import (
	"fmt"

	"github.com/rhartert/spsearch/graph"
)

// Modus selects how the cost of an edge is derived from its label.
type Modus int

const (
	// ModusWeight uses the label's weight at the configured weight index.
	ModusWeight Modus = iota

	// ModusHops counts each edge as 1, whatever its label.
	ModusHops

	// ModusHopsWeighted counts each edge as 1 plus its weight at the
	// configured weight index.
	ModusHopsWeighted
)

var modusNames = map[Modus]string{
	ModusWeight:       "weight",
	ModusHops:         "hops",
	ModusHopsWeighted: "hops-weighted",
}

func (m Modus) String() string {
	if s, ok := modusNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Modus(%d)", int(m))
}

// ParseModus returns the Modus whose String representation is s.
func ParseModus(s string) (Modus, error) {
	for m, name := range modusNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown modus %q", s)
}

// Cost returns the cost of traversing an edge with the given label.
func (m Modus) Cost(label graph.EdgeLabel, weightIndex int) float64 {
	switch m {
	case ModusHops:
		return 1
	case ModusHopsWeighted:
		return 1 + label.Weight(weightIndex)
	default:
		return label.Weight(weightIndex)
	}
}

// Relaxer encapsulates the relaxation step of a shortest path search: testing
// whether the best known path to v can be improved by going through u.
//
// Relax returns the weight of the path to v through u and true if it is
// strictly smaller than v's current weight. Ties do not improve: the first
// path found among equal weight paths is kept. Negative costs are not
// supported and lead to undefined results.
type Relaxer[E graph.EdgeLabel] interface {
	Relax(u graph.PredGraph, v graph.PredGraph, label E, weightIndex int, modus Modus) (float64, bool)
}

// StandardRelaxer relaxes edges using Modus.Cost. It is stateless and can be
// shared.
type StandardRelaxer[E graph.EdgeLabel] struct{}

func (StandardRelaxer[E]) Relax(u graph.PredGraph, v graph.PredGraph, label E, weightIndex int, modus Modus) (float64, bool) {
	w := u.Weight + modus.Cost(label, weightIndex)
	if w < v.Weight {
		return w, true
	}
	return v.Weight, false
}

// RelaxerFunc adapts an edge cost function to Relaxer with the standard
// strict improvement rule. The weight index and modus are passed through.
type RelaxerFunc[E graph.EdgeLabel] func(label E, weightIndex int, modus Modus) float64

func (f RelaxerFunc[E]) Relax(u graph.PredGraph, v graph.PredGraph, label E, weightIndex int, modus Modus) (float64, bool) {
	w := u.Weight + f(label, weightIndex, modus)
	if w < v.Weight {
		return w, true
	}
	return v.Weight, false
}
