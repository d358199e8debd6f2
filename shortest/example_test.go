// Package shortest_test provides runnable examples for the lazy shortest-path
// stream. Each example is runnable via "go test -run Example", showing both
// code and expected output. Example graphs use distinct distances so the
// emission order is deterministic.
package shortest_test

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/pathstream/seq"
	"github.com/katalvlaran/pathstream/shortest"
)

// roads is a small directed road map used by the examples:
//
//	A→B(1), A→C(4), B→C(1), B→D(5), C→D(1)
func roads(from string) iter.Seq2[string, float64] {
	edges := map[string][]struct {
		to string
		km float64
	}{
		"A": {{"B", 1}, {"C", 4}},
		"B": {{"C", 1}, {"D", 5}},
		"C": {{"D", 1}},
	}

	return func(yield func(string, float64) bool) {
		for _, e := range edges[from] {
			if !yield(e.to, e.km) {
				return
			}
		}
	}
}

// ExampleFrom demonstrates the basic contract: paths come out one at a time,
// ordered by distance, starting with the zero-distance path to the start.
func ExampleFrom() {
	// 1) Start a search at "A". Nothing is explored yet.
	paths, err := shortest.From("A", roads)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Pull every result. Each pull finalizes exactly one node.
	for paths.Next() {
		p := paths.Path()
		fmt.Printf("%s dist=%v via %s\n", p.To(), p.Distance(), p)
	}

	// 3) A nil Err means the frontier was exhausted cleanly.
	if err := paths.Err(); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// A dist=0 via A
	// B dist=1 via A→B
	// C dist=2 via A→B→C
	// D dist=3 via A→B→C→D
}

// ExampleStream_All demonstrates a bounded nearest-k query: only the explored
// prefix of the graph is ever touched, however large the rest may be.
func ExampleStream_All() {
	paths, err := shortest.From("A", roads)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Take the two nearest nodes other than the start itself.
	notStart := func(p *shortest.Path[string]) bool { return p.To() != "A" }
	for p := range seq.Limit(seq.Filter(paths.All(), notStart), 2) {
		fmt.Println(p.To())
	}
	// Output:
	// B
	// C
}

// ExampleStream_All_withinDistance demonstrates a radius query with
// seq.TakeWhile: the stream's non-decreasing order makes "everything within
// d" a prefix.
func ExampleStream_All_withinDistance() {
	paths, err := shortest.From("A", roads)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	within := func(p *shortest.Path[string]) bool { return p.Distance() <= 2 }
	near := seq.Collect(seq.Map(
		seq.TakeWhile(paths.All(), within),
		(*shortest.Path[string]).To,
	))
	fmt.Println(strings.Join(near, ", "))
	// Output:
	// A, B, C
}

// ExamplePath_Nodes demonstrates materializing a full route with the
// cumulative distance at every stop.
func ExamplePath_Nodes() {
	paths, err := shortest.From("A", roads)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Advance to the farthest node, D.
	var last *shortest.Path[string]
	for paths.Next() {
		last = paths.Path()
	}

	for node, dist := range last.Nodes() {
		fmt.Printf("%s at %v\n", node, dist)
	}
	// Output:
	// A at 0
	// B at 1
	// C at 2
	// D at 3
}

// ExampleFrom_unboundedGraph demonstrates searching a graph that is never
// materialized: the nodes are all non-negative integers, each connected to
// its doubled and incremented successors.
func ExampleFrom_unboundedGraph() {
	successors := func(i int) iter.Seq2[int, float64] {
		return func(yield func(int, float64) bool) {
			if !yield(i+1, 1) {
				return
			}
			yield(i*2, 3)
		}
	}

	paths, err := shortest.From(1, successors)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for p := range seq.Limit(paths.All(), 5) {
		fmt.Printf("%d dist=%v\n", p.To(), p.Distance())
	}
	// Output:
	// 1 dist=0
	// 2 dist=1
	// 3 dist=2
	// 4 dist=3
	// 5 dist=4
}
