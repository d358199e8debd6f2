// Package shortest provides Dijkstra's shortest-path algorithm as a lazy,
// incrementally-computed stream of paths over an implicit weighted graph.
//
// Overview:
//
//   - From(start, neighbors) returns a Stream that emits one Path per pull,
//     in strictly non-decreasing distance order, starting with the
//     zero-distance path to start itself.
//   - The graph is implicit: the engine learns about edges only through the
//     caller-supplied NeighborFunc, which it invokes at most once per node,
//     and only for nodes it actually finalizes. Graphs may therefore be very
//     large or unbounded; a bounded query ("first k paths", "all paths within
//     distance d") explores only the region it needs.
//   - Each pull performs exactly one pop-relax-expand cycle: extract the
//     closest frontier entry, finalize its node, relax that node's neighbors,
//     yield its Path.
//
// When to use:
//
//   - Nearest-k queries over a large or on-the-fly graph ("3 nearest sushi
//     places") without traversing the whole graph.
//   - Radius queries ("all gas stations within 5 miles") via seq.TakeWhile
//     over the stream.
//   - As the exact-search core under heuristic searches or routing layers.
//
// Key properties:
//
//   - A node is finalized at most once; its emitted Path and distance are
//     final. No node appears twice in the stream.
//   - Stale frontier entries (superseded by a shorter path) are not removed
//     eagerly; they are skipped at extraction time via the visited set. This
//     "lazy decrease-key" policy trades a larger heap for not requiring
//     decrease-key support, and is kept deliberately.
//   - Ties between equal-distance entries are broken in an unspecified order;
//     callers must not rely on a particular order among equal distances.
//   - A Stream is single-pass and must not be shared across goroutines.
//
// Complexity, for an explored region of V finalized nodes and E relaxed
// edges:
//
//   - Time:  O((V + E) log V) total, amortized over at most V successful
//     pulls; NeighborFunc is called exactly V times.
//   - Space: O(V + E): O(V) for the visited set and best-known map, O(E)
//     worst-case heap entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilNeighborFunc:
//     Returned by From when the neighbor function is nil.
//   - ErrNegativeWeight:
//     Reported by Stream.Err when a negative edge weight is encountered.
//     Detected lazily, when the offending edge is first processed; paths
//     emitted before that point remain valid, no further paths are produced.
//   - ErrBadWeight:
//     Reported by Stream.Err for a NaN edge weight, under the same lazy
//     detection. NaN breaks distance ordering exactly like a negative weight
//     and is rejected rather than silently mis-sorted.
//   - ErrBadMaxDistance, ErrBadInfThreshold:
//     Panics raised by the option constructors on invalid configuration.
//
// Failures inside the caller's NeighborFunc are not caught, wrapped or
// retried; a panic there unwinds through the pulling goroutine as usual.
package shortest
