package common

import (
	"time"
)

// AlgorithmFunc runs an algorithm once on an input of the given size.
// The result of the computation is discarded; only failures are reported.
type AlgorithmFunc func(size int) error

// AlgorithmSpec describes one entry of the fixed algorithm registry.
type AlgorithmSpec struct {
	Key        string
	Name       string
	Complexity string
	Run        AlgorithmFunc
}

// Title is the label used for plots of this algorithm.
func (a AlgorithmSpec) Title() string {
	return a.Name + " - " + a.Complexity
}

// AnalysisRequest is a validated sweep request. Start is zero when the sweep
// should begin at Step.
type AnalysisRequest struct {
	Algorithm AlgorithmSpec
	MaxSize   int
	Step      int
	Start     int
}

// FirstSize returns the first input size sampled by the sweep.
func (r AnalysisRequest) FirstSize() int {
	if r.Start > 0 {
		return r.Start
	}
	return r.Step
}

// TimingSeries holds sampled sizes and the wall-clock time measured for each.
// Elapsed[i] belongs to Sizes[i].
type TimingSeries struct {
	Sizes   []int
	Elapsed []time.Duration
}

func (s *TimingSeries) Len() int {
	return len(s.Sizes)
}

// Seconds returns the elapsed values as float seconds.
func (s *TimingSeries) Seconds() []float64 {
	out := make([]float64, len(s.Elapsed))
	for i, e := range s.Elapsed {
		out[i] = e.Seconds()
	}
	return out
}

// Total is the sum of all measured durations.
func (s *TimingSeries) Total() time.Duration {
	var total time.Duration
	for _, e := range s.Elapsed {
		total += e
	}
	return total
}
