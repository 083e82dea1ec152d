package scheduling

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"

	"wavesplit/internal/domain"
)

// Strategy names accepted by New
const (
	StrategyLPT        = "lpt"
	StrategyRoundRobin = "round-robin"
)

// ErrUnknownStrategy is returned by New for an unsupported strategy name
var ErrUnknownStrategy = errors.New("unknown scheduling strategy")

// Scheduler distributes suites across waves
type Scheduler interface {
	Name() string
	// Schedule assigns every suite to one of waveCount waves and returns the
	// waves in index order. The suites' Wave fields are set in place.
	Schedule(suites []*domain.SuiteRecord, waveCount int) []*domain.Wave
}

// New returns the scheduler registered under name
func New(name string) (Scheduler, error) {
	switch name {
	case "", StrategyLPT:
		return NewLPTScheduler(), nil
	case StrategyRoundRobin:
		return NewRoundRobinScheduler(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownStrategy, name, StrategyLPT, StrategyRoundRobin)
	}
}

// Strategies lists the supported strategy names
func Strategies() []string {
	return []string{StrategyLPT, StrategyRoundRobin}
}

func newWaves(count int) []*domain.Wave {
	waves := make([]*domain.Wave, count)
	for i := range waves {
		waves[i] = &domain.Wave{Index: i + 1}
	}
	return waves
}

// Balance assigns waves to records using LPT and returns records.
// A non-positive numWaves leaves the records untouched.
func Balance(records []*domain.SuiteRecord, numWaves int) []*domain.SuiteRecord {
	NewLPTScheduler().Schedule(records, numWaves)
	return records
}

// LPTScheduler places the longest suites first, each onto the least loaded wave
type LPTScheduler struct{}

// NewLPTScheduler creates a new LPTScheduler
func NewLPTScheduler() *LPTScheduler {
	return &LPTScheduler{}
}

// Name returns the strategy name
func (s *LPTScheduler) Name() string {
	return StrategyLPT
}

// Schedule implements longest-processing-time-first. Suites with equal
// runtime keep their pool order, and ties between equally loaded waves go
// to the lowest index.
func (s *LPTScheduler) Schedule(suites []*domain.SuiteRecord, waveCount int) []*domain.Wave {
	if waveCount <= 0 {
		return nil
	}

	waves := newWaves(waveCount)
	if len(suites) == 0 {
		return waves
	}

	sorted := make([]*domain.SuiteRecord, len(suites))
	copy(sorted, suites)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Runtime > sorted[j].Runtime
	})

	h := make(waveHeap, len(waves))
	copy(h, waves)
	heap.Init(&h)

	for _, suite := range sorted {
		h[0].Add(suite)
		heap.Fix(&h, 0)
	}

	return waves
}

// waveHeap orders waves by (accumulated runtime, index)
type waveHeap []*domain.Wave

func (h waveHeap) Len() int { return len(h) }

func (h waveHeap) Less(i, j int) bool {
	if h[i].Runtime != h[j].Runtime {
		return h[i].Runtime < h[j].Runtime
	}
	return h[i].Index < h[j].Index
}

func (h waveHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *waveHeap) Push(x any) { *h = append(*h, x.(*domain.Wave)) }

func (h *waveHeap) Pop() any {
	old := *h
	n := len(old)
	w := old[n-1]
	*h = old[:n-1]
	return w
}

// RoundRobinScheduler deals suites onto waves in pool order, ignoring runtime
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Name returns the strategy name
func (s *RoundRobinScheduler) Name() string {
	return StrategyRoundRobin
}

// Schedule distributes suites evenly across waves using round-robin
func (s *RoundRobinScheduler) Schedule(suites []*domain.SuiteRecord, waveCount int) []*domain.Wave {
	if waveCount <= 0 {
		return nil
	}

	waves := newWaves(waveCount)
	for i, suite := range suites {
		waves[i%waveCount].Add(suite)
	}
	return waves
}

// Makespan returns the largest accumulated runtime among waves
func Makespan(waves []*domain.Wave) float64 {
	var longest float64
	for _, w := range waves {
		if w.Runtime > longest {
			longest = w.Runtime
		}
	}
	return longest
}
