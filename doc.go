// Package pathstream turns Dijkstra's shortest-path search into a lazy,
// demand-driven stream: paths are discovered one at a time, in order of
// increasing distance, only as the consumer asks for them.
//
// 🚀 What is pathstream?
//
//	A small, focused library that brings together:
//		• shortest/ — the incremental search engine: pull one Path at a time,
//		  each pull performs exactly one pop-relax-expand step
//		• seq/      — lazy-sequence helpers over the Go 1.23 iterator protocol,
//		  the plumbing that makes bounded queries compose
//
// ✨ Why choose pathstream?
//
//   - Demand-driven – "first k results" or "everything within distance d"
//     never forces a full traversal of the graph
//   - Storage-agnostic – the graph is just a callback from node to neighbors;
//     nodes can live in memory, a database, or be computed on the fly
//   - Generic – works with any comparable node type, no ID stringification
//   - Pure Go – no cgo, the only dependency is the test harness
//
// Quick taste — three nearest matches around a starting point:
//
//	paths, _ := shortest.From(myLocation, locationsAround)
//	for p := range seq.Limit(seq.Filter(paths.All(), isSushiPlace), 3) {
//	    fmt.Println(p)
//	}
//
// The engine expands a node's neighbors at most once per node and only for
// nodes it actually finalizes, so the cost of a bounded query is proportional
// to the explored region, not to the graph.
//
// Dive into shortest/doc.go for the algorithm contract and seq/doc.go for the
// sequence helpers.
//
//	go get github.com/katalvlaran/pathstream
package pathstream
