package pregel

import "math"

// Reducer folds messages sent to the same target within a superstep into
// a single scalar, used by the reducing messenger.
type Reducer interface {
	Identity() float64
	Reduce(current, incoming float64) float64
}

// SumReducer folds messages by addition.
type SumReducer struct{}

// Identity returns 0.0.
func (SumReducer) Identity() float64 { return 0.0 }

// Reduce returns current + incoming.
func (SumReducer) Reduce(current, incoming float64) float64 { return current + incoming }

// MinReducer folds messages by minimum.
type MinReducer struct{}

// Identity returns positive infinity.
func (MinReducer) Identity() float64 { return math.Inf(1) }

// Reduce returns the smaller of current and incoming.
func (MinReducer) Reduce(current, incoming float64) float64 { return math.Min(current, incoming) }

// MaxReducer folds messages by maximum.
type MaxReducer struct{}

// Identity returns negative infinity.
func (MaxReducer) Identity() float64 { return math.Inf(-1) }

// Reduce returns the larger of current and incoming.
func (MaxReducer) Reduce(current, incoming float64) float64 { return math.Max(current, incoming) }

// CountReducer counts the number of messages sent to a target, ignoring
// their values.
type CountReducer struct{}

// Identity returns 0.0.
func (CountReducer) Identity() float64 { return 0.0 }

// Reduce returns current + 1, regardless of incoming.
func (CountReducer) Reduce(current, incoming float64) float64 { return current + 1 }
