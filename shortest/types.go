// Package shortest defines the error and configuration surface of the lazy
// shortest-path stream.
//
// Options:
//
//	– MaxDistance:      stop exploring once the closest frontier entry is
//	                    farther than this cap. Must be ≥ 0. Default +Inf.
//	– InfEdgeThreshold: treat edges with weight ≥ this threshold as
//	                    impassable. Must be > 0. Default +Inf.
//
// Errors (sentinel):
//
//	– ErrNilNeighborFunc if the neighbor function passed to From is nil.
//	– ErrNegativeWeight  if a negative edge weight is encountered.
//	– ErrBadWeight       if a NaN edge weight is encountered.
//	– ErrBadMaxDistance  if MaxDistance is negative or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold is non-positive or NaN.
package shortest

import (
	"errors"
	"math"
)

// Sentinel errors returned by the shortest-path stream.
var (
	// ErrNilNeighborFunc indicates that a nil NeighborFunc was passed to From.
	ErrNilNeighborFunc = errors.New("shortest: neighbor function is nil")

	// ErrNegativeWeight indicates that the neighbor function produced an edge
	// with a negative weight. Dijkstra's finalization rule is unsound under
	// negative weights, so the search is aborted at that edge.
	ErrNegativeWeight = errors.New("shortest: negative edge weight encountered")

	// ErrBadWeight indicates that the neighbor function produced an edge with
	// a NaN weight, which cannot be ordered against any distance.
	ErrBadWeight = errors.New("shortest: edge weight is NaN")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or
	// NaN value, which is not meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("shortest: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to a
	// non-positive or NaN value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("shortest: InfEdgeThreshold must be positive")
)

// Options configures the behavior of a single search stream.
//
// MaxDistance      – cap on explored distances. Once the minimum distance in
// the frontier exceeds the cap, the stream ends; the node that tripped the
// cap is not finalized. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped during
// relaxation, as if absent. Default is +Inf (no edges treated as impassable).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring a search stream.
type Option func(*Options)

// WithMaxDistance sets a maximum distance cap. Nodes whose shortest distance
// exceeds the cap are never finalized or emitted. Must pass a non-negative,
// non-NaN value; invalid values panic with ErrBadMaxDistance.
// Default (if not set) is +Inf (explore everything reachable).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early, before any search runs.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped
// entirely during relaxation. Must pass a positive, non-NaN value; invalid
// values panic with ErrBadInfThreshold.
// Default (if not set) is +Inf (no edges treated as impassable).
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with the neutral configuration:
// no distance cap and no impassable-edge threshold.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
