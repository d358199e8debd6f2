// Package shortest implements Dijkstra's algorithm as a demand-driven stream:
// one pop-relax-expand cycle per pull, lazy decrease-key on the frontier,
// neighbor discovery through a caller-supplied callback.
//
// Complexity, for an explored region of V finalized nodes and E relaxed edges:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted from the frontier at most once: V extractions.
//   - Each relaxation may push one new frontier entry: up to E pushes.
//   - Each heap operation costs O(log N) with N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for the visited set and best-known map.
//   - O(E) worst-case frontier entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Stale frontier entries are never removed eagerly; they are skipped at
//     pop time by consulting the visited set. Eager removal would need a
//     decrease-key operation the heap deliberately does not provide.
//   - A node's neighbors are expanded before its Path is yielded, so a bad
//     edge (negative or NaN weight) aborts the stream before the offending
//     node is emitted.
//   - Weight validation happens lazily, at the edge's first processing.
//     Defects in regions of the graph the consumer never asks about are
//     never observed.
package shortest

import (
	"container/heap"
	"fmt"
	"iter"
	"math"
)

// NeighborFunc reports the direct neighbors of a node together with the
// weight of the connecting edge. The returned sequence must be finite; it is
// fully drained during the expansion of node.
//
// The engine calls a NeighborFunc at most once per node, and only for nodes
// it finalizes, in finalization order. The function may be slow, may read
// external state, and may panic; the engine imposes no timeout and catches
// nothing.
type NeighborFunc[N comparable] func(node N) iter.Seq2[N, float64]

// From starts a shortest-path search at start and returns the lazy stream of
// paths ordered by non-decreasing distance. The first path emitted is the
// zero-distance path to start itself.
//
// No part of the graph is explored until the stream is pulled; From only
// validates its arguments and seeds the frontier. The returned stream is
// single-pass and must not be shared across goroutines. Returns
// ErrNilNeighborFunc if neighbors is nil.
func From[N comparable](start N, neighbors NeighborFunc[N], opts ...Option) (*Stream[N], error) {
	if neighbors == nil {
		return nil, ErrNilNeighborFunc
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Stream[N]{
		neighbors: neighbors,
		opts:      cfg,
		visited:   make(map[N]struct{}),
		best:      map[N]float64{start: 0},
		frontier:  frontier[N]{startPath(start)},
	}
	heap.Init(&s.frontier)

	return s, nil
}

// Stream is a single-pass sequence of shortest paths, pulled one at a time
// with Next. It owns the mutable search state: the frontier, the visited set
// and the best-known distance map. All state is private to the stream and
// must only be touched from one goroutine.
type Stream[N comparable] struct {
	neighbors NeighborFunc[N] // caller-supplied neighbor discovery
	opts      Options         // distance cap and impassable-edge threshold
	frontier  frontier[N]     // min-heap of candidate paths, may hold stale entries
	visited   map[N]struct{}  // nodes whose distance is finalized
	best      map[N]float64   // best distance discovered so far per unfinalized node
	current   *Path[N]        // result of the last successful Next
	err       error           // abort cause, nil after plain exhaustion
	done      bool            // terminal; repeated Next stays false
}

// Next advances the stream by one result: it extracts the closest unfinalized
// node from the frontier, finalizes it, relaxes its neighbors, and makes its
// Path available via Path. It reports false when the stream is exhausted or
// aborted; check Err to distinguish the two. Next keeps reporting false once
// it has reported false.
func (s *Stream[N]) Next() bool {
	if s.done {
		return false
	}

	for s.frontier.Len() > 0 {
		// 1) Pop the minimum-distance candidate.
		p := heap.Pop(&s.frontier).(*Path[N])

		// 2) Skip stale entries superseded by an earlier, shorter path.
		//    This is the pop-time half of the lazy decrease-key policy.
		if _, ok := s.visited[p.node]; ok {
			continue
		}

		// 3) The frontier minimum is past the cap: every remaining candidate
		//    is at least as far, so the stream ends without finalizing p.
		if p.dist > s.opts.MaxDistance {
			break
		}

		// 4) Finalize. p.dist is now the true shortest distance to p.node.
		s.visited[p.node] = struct{}{}
		delete(s.best, p.node)

		// 5) Relax all edges out of p.node before yielding, so that a bad
		//    edge aborts the stream without emitting p.
		if err := s.relax(p); err != nil {
			s.err = err
			s.done = true

			return false
		}

		// 6) Yield.
		s.current = p

		return true
	}

	s.done = true

	return false
}

// relax drains the neighbor sequence of p's node and attempts to improve the
// best-known distance of each unfinalized neighbor. A strictly shorter
// candidate records the new best and pushes an extended path onto the
// frontier; ties never replace. Assumes p was just finalized.
func (s *Stream[N]) relax(p *Path[N]) error {
	for neighbor, weight := range s.neighbors(p.node) {
		if weight < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, p.node, neighbor, weight)
		}
		// NaN would compare false against every distance and corrupt both
		// the heap order and the relaxation rule.
		if math.IsNaN(weight) {
			return fmt.Errorf("%w: edge %v→%v", ErrBadWeight, p.node, neighbor)
		}

		// Skip impassable edges.
		if weight >= s.opts.InfEdgeThreshold {
			continue
		}

		// Finalized neighbors cannot improve.
		if _, ok := s.visited[neighbor]; ok {
			continue
		}

		candidate := p.dist + weight
		if known, ok := s.best[neighbor]; ok && candidate >= known {
			continue
		}

		s.best[neighbor] = candidate
		// Push-time half of lazy decrease-key: the superseded entry, if any,
		// stays in the heap and is skipped when popped.
		heap.Push(&s.frontier, p.extend(neighbor, weight))
	}

	return nil
}

// Path returns the path produced by the last successful Next. It is only
// valid after Next has reported true and remains valid (the value is
// immutable) after the stream advances or ends.
func (s *Stream[N]) Path() *Path[N] { return s.current }

// Err returns the error that aborted the stream, or nil if the stream is
// still running or ended by exhausting the frontier.
func (s *Stream[N]) Err() error { return s.err }

// All adapts the stream to a range-over-func sequence. The sequence shares
// the stream's single-pass state: breaking out of a range loop and ranging
// again resumes where the previous range stopped. On abort the sequence ends
// and the cause is available via Err.
func (s *Stream[N]) All() iter.Seq[*Path[N]] {
	return func(yield func(*Path[N]) bool) {
		for s.Next() {
			if !yield(s.current) {
				return
			}
		}
	}
}

// frontier is a min-heap of candidate paths ordered by cumulative distance.
// The order among equal distances is unspecified. Under lazy decrease-key a
// node may be represented by several entries at once; all but the shortest
// are stale and resolved at pop time.
type frontier[N comparable] []*Path[N]

func (f frontier[N]) Len() int           { return len(f) }
func (f frontier[N]) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier[N]) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

// Push appends x; called by container/heap only.
func (f *frontier[N]) Push(x any) { *f = append(*f, x.(*Path[N])) }

// Pop removes and returns the last element; called by container/heap only.
func (f *frontier[N]) Pop() any {
	old := *f
	n := len(old)
	p := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return p
}
