package query

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhartert/spsearch/graph"
	"github.com/rhartert/spsearch/internal/netfile"
)

func loadSquare(t *testing.T) *netfile.Network {
	t.Helper()
	net, err := netfile.Load("../netfile/testdata/square.toml")
	require.NoError(t, err)
	return net
}

func TestRunner_Route(t *testing.T) {
	r := NewRunner(loadSquare(t), nil)

	testCases := []struct {
		desc   string
		params Params
		want   RouteResult
	}{
		{
			desc:   "default weight",
			params: Params{From: "a", To: "d"},
			want:   RouteResult{From: "a", To: "d", Found: true, Nodes: []string{"a", "b", "c", "d"}, Weight: 3},
		},
		{
			desc:   "weight by name",
			params: Params{From: "a", To: "d", Weight: "time"},
			want:   RouteResult{From: "a", To: "d", Found: true, Nodes: []string{"a", "d"}, Weight: 1},
		},
		{
			desc:   "hops",
			params: Params{From: "a", To: "d", Modus: "hops"},
			want:   RouteResult{From: "a", To: "d", Found: true, Nodes: []string{"a", "d"}, Weight: 1},
		},
		{
			desc:   "turn restrictions",
			params: Params{From: "a", To: "d", Turns: true},
			want:   RouteResult{From: "a", To: "d", Found: true, Nodes: []string{"a", "d"}, Weight: 10},
		},
		{
			desc:   "avoid",
			params: Params{From: "a", To: "c", Avoid: []string{"b"}},
			want:   RouteResult{From: "a", To: "c", Found: true, Nodes: []string{"a", "d", "c"}, Weight: 11},
		},
		{
			desc:   "isolated destination",
			params: Params{From: "a", To: "e"},
			want:   RouteResult{From: "a", To: "e"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := r.Route(tc.params)
			require.NoError(t, err)

			got.Expanded = 0
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRunner_Route_errors(t *testing.T) {
	r := NewRunner(loadSquare(t), nil)

	_, err := r.Route(Params{From: "a", To: "z"})
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)

	_, err = r.Route(Params{From: "a", To: "d", Avoid: []string{"z"}})
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)

	_, err = r.Route(Params{From: "a", To: "d", Weight: "speed"})
	assert.ErrorIs(t, err, ErrBadParams)

	_, err = r.Route(Params{From: "a", To: "d", Modus: "fastest"})
	assert.ErrorIs(t, err, ErrBadParams)
}

func TestRunner_Reach(t *testing.T) {
	r := NewRunner(loadSquare(t), nil)

	got, err := r.Reach(Params{From: "a", MaxDistance: 2})
	require.NoError(t, err)

	want := []Reached{
		{Node: "a", Distance: 0},
		{Node: "b", Distance: 1},
		{Node: "c", Distance: 2},
	}
	assert.Equal(t, want, got.Nodes)
	assert.Equal(t, 2.0, got.MaxDistance)

	_, err = r.Reach(Params{From: "a", MaxDistance: -1})
	assert.ErrorIs(t, err, ErrBadParams)
}

func TestRunner_Tree(t *testing.T) {
	r := NewRunner(loadSquare(t), nil)

	got, err := r.Tree(Params{From: "a", MaxDistance: 1, Modus: "hops"})
	require.NoError(t, err)

	require.Len(t, got.Nodes, 3)
	assert.Equal(t, Reached{Node: "a", Distance: 0}, got.Nodes[0])
	assert.ElementsMatch(t,
		[]Reached{{Node: "b", Distance: 1, Parent: "a"}, {Node: "d", Distance: 1, Parent: "a"}},
		got.Nodes[1:])
	assert.Equal(t, "a", got.Tree.Root())

	_, err = r.Tree(Params{From: "z", MaxDistance: 1})
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestRunner_logs(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(loadSquare(t), log.New(&buf))

	_, err := r.Route(Params{From: "a", To: "d"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "route")
	assert.Contains(t, buf.String(), "from=a")
}
