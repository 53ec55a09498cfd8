package search

import (
	"math"
	"testing"

	"github.com/rhartert/spsearch/graph"
)

func TestStandardRelaxer_Relax(t *testing.T) {
	u := graph.PredGraph{Node: 0, Weight: 3, Predecessor: graph.NoPredecessor}
	label := graph.Weights{2, 5}

	testCases := []struct {
		desc        string
		v           graph.PredGraph
		weightIndex int
		modus       Modus
		wantWeight  float64
		wantOK      bool
	}{
		{
			desc:       "undiscovered node",
			v:          newRecord(1),
			wantWeight: 5,
			wantOK:     true,
		},
		{
			desc:       "strict improvement",
			v:          graph.PredGraph{Node: 1, Weight: 6},
			wantWeight: 5,
			wantOK:     true,
		},
		{
			desc:       "tie does not improve",
			v:          graph.PredGraph{Node: 1, Weight: 5},
			wantWeight: 5,
			wantOK:     false,
		},
		{
			desc:       "worse path",
			v:          graph.PredGraph{Node: 1, Weight: 4},
			wantWeight: 4,
			wantOK:     false,
		},
		{
			desc:        "second weight index",
			v:           newRecord(1),
			weightIndex: 1,
			wantWeight:  8,
			wantOK:      true,
		},
		{
			desc:        "missing weight index",
			v:           newRecord(1),
			weightIndex: 2,
			wantWeight:  math.Inf(1),
			wantOK:      false,
		},
		{
			desc:       "hops",
			v:          newRecord(1),
			modus:      ModusHops,
			wantWeight: 4,
			wantOK:     true,
		},
		{
			desc:        "weighted hops",
			v:           newRecord(1),
			weightIndex: 1,
			modus:       ModusHopsWeighted,
			wantWeight:  9,
			wantOK:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			r := StandardRelaxer[graph.Weights]{}

			gotWeight, gotOK := r.Relax(u, tc.v, label, tc.weightIndex, tc.modus)

			if gotWeight != tc.wantWeight || gotOK != tc.wantOK {
				t.Errorf("Relax(): want (%f, %t), got (%f, %t)", tc.wantWeight, tc.wantOK, gotWeight, gotOK)
			}
		})
	}
}

func TestRelaxerFunc_Relax(t *testing.T) {
	double := RelaxerFunc[graph.Weights](func(l graph.Weights, i int, _ Modus) float64 {
		return 2 * l.Weight(i)
	})
	u := graph.PredGraph{Node: 0, Weight: 1}

	if w, ok := double.Relax(u, newRecord(1), graph.Weights{3}, 0, ModusWeight); !ok || w != 7 {
		t.Errorf("Relax(): want (7, true), got (%f, %t)", w, ok)
	}
	if _, ok := double.Relax(u, graph.PredGraph{Node: 1, Weight: 7}, graph.Weights{3}, 0, ModusWeight); ok {
		t.Errorf("Relax(): ties should not improve")
	}
}

func TestParseModus(t *testing.T) {
	for _, m := range []Modus{ModusWeight, ModusHops, ModusHopsWeighted} {
		got, err := ParseModus(m.String())
		if err != nil {
			t.Fatalf("ParseModus(%q): unexpected error: %s", m, err)
		}
		if got != m {
			t.Errorf("ParseModus(%q): want %v, got %v", m, m, got)
		}
	}

	if _, err := ParseModus("teleport"); err == nil {
		t.Errorf("ParseModus(teleport): want error, got nil")
	}
	if got := Modus(42).String(); got != "Modus(42)" {
		t.Errorf("String(): want %q, got %q", "Modus(42)", got)
	}
}
