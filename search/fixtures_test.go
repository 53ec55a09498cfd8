package search

import (
	"math"
	"math/rand"

	"github.com/rhartert/spsearch/graph"
)

type testGraph = graph.Digraph[int, graph.Weights]

type testConfig = Config[int, graph.Weights]

// squareGraph returns the following graph where all edges exist in both
// directions:
//
//	0 ------10------ 3
//	 \               /
//	  1             1
//	   \           /
//	    1 ---1--- 2
func squareGraph() *testGraph {
	b := graph.NewBuilder[int, graph.Weights]()
	b.AddEdge(0, 3, graph.Weights{10})
	b.AddEdge(0, 1, graph.Weights{1})
	b.AddEdge(1, 2, graph.Weights{1})
	b.AddEdge(2, 3, graph.Weights{1})
	b.AddEdge(3, 0, graph.Weights{10})
	b.AddEdge(1, 0, graph.Weights{1})
	b.AddEdge(2, 1, graph.Weights{1})
	b.AddEdge(3, 2, graph.Weights{1})
	return b.Build()
}

// randomGraph returns a random digraph with nNodes nodes labeled 0 to
// nNodes-1 and integer weights in [0, 10) on two weight indices.
func randomGraph(rng *rand.Rand, nNodes int, nEdges int) *testGraph {
	b := graph.NewBuilder[int, graph.Weights]()
	for n := 0; n < nNodes; n++ {
		b.AddNode(n)
	}
	for i := 0; i < nEdges; i++ {
		b.AddEdge(rng.Intn(nNodes), rng.Intn(nNodes), graph.Weights{
			float64(rng.Intn(10)),
			float64(rng.Intn(10)),
		})
	}
	return b.Build()
}

// bellmanFord returns the distances from src to every node of g, indexed by
// node label (labels are equal to IDs in the graphs built by randomGraph).
func bellmanFord(g *testGraph, src int, weightIndex int) []float64 {
	dists := make([]float64, g.Order())
	for i := range dists {
		dists[i] = math.Inf(1)
	}
	dists[src] = 0
	for i := 0; i < g.Order(); i++ {
		for _, e := range g.Edges {
			if d := dists[e.From] + e.Label.Weight(weightIndex); d < dists[e.To] {
				dists[e.To] = d
			}
		}
	}
	return dists
}

// edgeWeight returns the smallest weight of the edges from -> to, or +Inf.
func edgeWeight(g *testGraph, from int, to int, weightIndex int) float64 {
	w := math.Inf(1)
	for _, e := range g.Edges {
		if e.From == from && e.To == to {
			w = math.Min(w, e.Label.Weight(weightIndex))
		}
	}
	return w
}
