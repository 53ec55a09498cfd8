package search

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rhartert/spsearch/graph"
)

func TestPMinQueue_extractsByIncreasingKey(t *testing.T) {
	q := NewPMinQueue(5)
	q.Add(newRecord(0), 4)
	q.Add(newRecord(1), 1)
	q.Add(newRecord(2), 3)
	q.Add(newRecord(3), 2)
	q.Update(0, 0, 3)

	want := []graph.PredGraph{
		{Node: 0, Weight: 0, Predecessor: 3},
		{Node: 1, Weight: 1, Predecessor: graph.NoPredecessor},
		{Node: 3, Weight: 2, Predecessor: graph.NoPredecessor},
		{Node: 2, Weight: 3, Predecessor: graph.NoPredecessor},
	}

	got := []graph.PredGraph{}
	for !q.IsEmpty() {
		got = append(got, q.ExtractMin())
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractMin(): mismatch (-want +got):\n%s", diff)
	}
}

func TestPMinQueue_Get(t *testing.T) {
	q := NewPMinQueue(3)
	q.Add(newRecord(1), 5)

	if _, ok := q.Get(0); ok {
		t.Errorf("Get(0): node 0 was never added")
	}
	if pg, ok := q.Get(1); !ok || pg.Weight != 5 {
		t.Errorf("Get(1): want (weight 5, true), got (%v, %t)", pg, ok)
	}

	q.ExtractMin()

	if _, ok := q.Get(1); ok {
		t.Errorf("Get(1): extracted nodes are not in the queue")
	}
	if pg, ok := q.Record(1); !ok || pg.Weight != 5 {
		t.Errorf("Record(1): want (weight 5, true), got (%v, %t)", pg, ok)
	}
}

func TestPMinQueue_keyAndWeightInSync(t *testing.T) {
	q := NewPMinQueue(2)
	q.Add(graph.PredGraph{Node: 0, Weight: 99, Predecessor: graph.NoPredecessor}, math.Inf(1))

	pg, _ := q.Get(0)
	if !math.IsInf(pg.Weight, 1) {
		t.Errorf("Add(): weight should be set to the key, got %f", pg.Weight)
	}

	got := q.Update(0, 7, 1)
	if got.Weight != 7 || got.Predecessor != 1 {
		t.Errorf("Update(): want weight 7 and predecessor 1, got %+v", got)
	}
	if pg, _ := q.Get(0); pg != got {
		t.Errorf("Get(): want %+v, got %+v", got, pg)
	}
}

func TestPMinQueue_deterministicTies(t *testing.T) {
	run := func() []int {
		q := NewPMinQueue(6)
		for n := 0; n < 6; n++ {
			q.Add(newRecord(n), 1)
		}
		order := []int{}
		for !q.IsEmpty() {
			order = append(order, q.ExtractMin().Node)
		}
		return order
	}

	want := run()
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(want, run()); diff != "" {
			t.Fatalf("ExtractMin(): order changed between runs (-want +got):\n%s", diff)
		}
	}
}

func TestPMinQueue_panics(t *testing.T) {
	testCases := []struct {
		desc string
		fn   func(q *PMinQueue)
	}{
		{
			desc: "extract from empty queue",
			fn:   func(q *PMinQueue) { q.ExtractMin() },
		},
		{
			desc: "add twice",
			fn: func(q *PMinQueue) {
				q.Add(newRecord(0), 1)
				q.Add(newRecord(0), 1)
			},
		},
		{
			desc: "update unknown node",
			fn:   func(q *PMinQueue) { q.Update(0, 1, 1) },
		},
		{
			desc: "increase key",
			fn: func(q *PMinQueue) {
				q.Add(newRecord(0), 1)
				q.Update(0, 2, 1)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected a panic")
				}
			}()
			tc.fn(NewPMinQueue(2))
		})
	}
}
