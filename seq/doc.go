// Package seq provides small, allocation-light helpers over the standard
// iterator protocol (iter.Seq and iter.Seq2) for working with lazy,
// potentially unbounded sequences.
//
// Overview:
//
//   - Every helper is lazy: no element is produced, and no upstream work is
//     performed, before the consumer ranges over the result.
//   - Every helper is stop-aware: when the consumer stops early (break,
//     Limit, TakeWhile), the upstream sequence observes the stop immediately
//     and performs no further work. This is what keeps bounded queries over
//     expensive sequences cheap.
//   - Sequences returned by these helpers are as restartable as their input;
//     a single-pass input yields a single-pass output.
//
// When to use:
//
//   - To express "first k elements" (Limit) or "elements while a predicate
//     holds" (TakeWhile) over a stream whose full materialization would be
//     expensive or infinite — e.g. the path stream produced by
//     pathstream/shortest.
//   - To adapt between pair sequences (iter.Seq2) and plain sequences
//     (Keys, Values, Pairs).
//
// Complexity: every helper is O(1) per element on top of its input; Collect
// and Collect2 are O(n) in the consumed prefix.
package seq
