package search

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rhartert/spsearch/graph"
)

func TestDijkstraMap_Result(t *testing.T) {
	testCases := []struct {
		desc        string
		origin      int
		maxDistance float64
		cfg         testConfig
		want        map[int]float64
	}{
		{
			desc:        "all nodes within bound",
			origin:      0,
			maxDistance: 10,
			want:        map[int]float64{0: 0, 1: 1, 2: 2, 3: 3},
		},
		{
			desc:        "bound cuts the square",
			origin:      0,
			maxDistance: 1.5,
			want:        map[int]float64{0: 0, 1: 1},
		},
		{
			desc:        "bound is inclusive",
			origin:      0,
			maxDistance: 2,
			want:        map[int]float64{0: 0, 1: 1, 2: 2},
		},
		{
			desc:        "zero bound",
			origin:      2,
			maxDistance: 0,
			want:        map[int]float64{2: 0},
		},
		{
			desc:        "hops",
			origin:      0,
			maxDistance: 1,
			cfg:         testConfig{Modus: ModusHops},
			want:        map[int]float64{0: 0, 1: 1, 3: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			dm, err := NewDijkstraMap(squareGraph(), tc.origin, tc.maxDistance, tc.cfg)
			if err != nil {
				t.Fatalf("NewDijkstraMap(): unexpected error: %s", err)
			}
			if err := dm.Execute(); err != nil {
				t.Fatalf("Execute(): unexpected error: %s", err)
			}

			got, err := dm.Result()
			if err != nil {
				t.Fatalf("Result(): unexpected error: %s", err)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Result(): mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDijkstraMap_stopsEarly(t *testing.T) {
	dm, _ := NewDijkstraMap(squareGraph(), 0, 1.5, testConfig{})
	dm.Execute()

	if dm.Engine().State() != StateDone {
		t.Errorf("State(): want %s, got %s", StateDone, dm.Engine().State())
	}
	if got := dm.MaxDistance(); got != 1.5 {
		t.Errorf("MaxDistance(): want 1.5, got %f", got)
	}
}

func TestNewDijkstraMap_errors(t *testing.T) {
	g := squareGraph()

	if _, err := NewDijkstraMap(g, 42, 1, testConfig{}); !errors.Is(err, graph.ErrNodeNotFound) {
		t.Errorf("unknown origin: want ErrNodeNotFound, got %v", err)
	}
	for _, d := range []float64{-1, math.NaN()} {
		if _, err := NewDijkstraMap(g, 0, d, testConfig{}); !errors.Is(err, ErrBadMaxDistance) {
			t.Errorf("max distance %f: want ErrBadMaxDistance, got %v", d, err)
		}
	}
}

func TestDijkstraMap_lifecycle(t *testing.T) {
	dm, _ := NewDijkstraMap(squareGraph(), 0, 10, testConfig{})

	if _, err := dm.Result(); !errors.Is(err, ErrNotExecuted) {
		t.Errorf("Result() before Execute(): want ErrNotExecuted, got %v", err)
	}

	dm.Execute()
	first, _ := dm.Result()
	if err := dm.Execute(); !errors.Is(err, ErrAlreadyExecuted) {
		t.Errorf("second Execute(): want ErrAlreadyExecuted, got %v", err)
	}
	second, _ := dm.Result()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Result(): mismatch between calls (-first +second):\n%s", diff)
	}
}

func TestDijkstraMap_Result_boundedAndComplete(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		g := randomGraph(rng, 25, 70)
		maxDistance := float64(rng.Intn(15))

		dm, _ := NewDijkstraMap(g, 0, maxDistance, testConfig{})
		dm.Execute()
		got, _ := dm.Result()

		want := map[int]float64{}
		for n, d := range bellmanFord(g, 0, 0) {
			if d <= maxDistance {
				want[n] = d
			}
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("graph %d, bound %f: mismatch (-want +got):\n%s", i, maxDistance, diff)
		}
	}
}
