package shortest

import (
	"fmt"
	"iter"
	"strings"
)

// Path is an immutable shortest path from the stream's start node to a
// destination node, together with its cumulative distance.
//
// A Path holds a link to its predecessor Path; extending a Path allocates a
// new value and never mutates the original, so one finalized node's Path is
// safely shared as the prefix of every path relaxed through it. The full
// route is materialized on demand by walking the predecessor chain.
type Path[N comparable] struct {
	node N
	prev *Path[N] // nil for the start node
	dist float64
}

// startPath builds the zero-distance path that seeds a search.
func startPath[N comparable](start N) *Path[N] {
	return &Path[N]{node: start}
}

// extend returns a new Path reaching next through p with one edge of the
// given weight. p is not modified.
func (p *Path[N]) extend(next N, weight float64) *Path[N] {
	return &Path[N]{node: next, prev: p, dist: p.dist + weight}
}

// To returns the destination node of this path.
func (p *Path[N]) To() N { return p.node }

// Distance returns the cumulative distance from the start node to To.
// Zero for the first path emitted by a stream, whose To is the start node.
func (p *Path[N]) Distance() float64 { return p.dist }

// Len returns the number of nodes on this path, including both endpoints.
// A path from the start node to itself has length 1.
func (p *Path[N]) Len() int {
	n := 0
	for q := p; q != nil; q = q.prev {
		n++
	}

	return n
}

// Nodes returns the nodes of this path in start→destination order, paired
// with the cumulative distance from the start up to each node.
//
// The predecessor chain is walked and reversed on every call (O(Len));
// nothing is cached.
func (p *Path[N]) Nodes() iter.Seq2[N, float64] {
	return func(yield func(N, float64) bool) {
		chain := make([]*Path[N], 0, p.Len())
		for q := p; q != nil; q = q.prev {
			chain = append(chain, q)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			if !yield(chain[i].node, chain[i].dist) {
				return
			}
		}
	}
}

// Steps returns the nodes of this path in start→destination order.
func (p *Path[N]) Steps() []N {
	steps := make([]N, 0, p.Len())
	for node := range p.Nodes() {
		steps = append(steps, node)
	}

	return steps
}

// String renders the path as its nodes joined by arrows, e.g. "A→B→C".
func (p *Path[N]) String() string {
	var sb strings.Builder
	first := true
	for node := range p.Nodes() {
		if !first {
			sb.WriteString("→")
		}
		first = false
		fmt.Fprintf(&sb, "%v", node)
	}

	return sb.String()
}
