package domain

import (
	"fmt"
	"strconv"
)

// Defaults applied when a suite attribute is missing from the report
const (
	DefaultSuiteName = "Unknown"
	DefaultTestCount = "0"
)

// SuiteRecord represents one test suite extracted from a JUnit report
type SuiteRecord struct {
	Name    string  `json:"name"`
	Tests   string  `json:"tests"`   // Verbatim "tests" attribute, never used arithmetically
	Runtime float64 `json:"runtime"` // Seconds, used as the scheduling cost
	Wave    string  `json:"wave,omitempty"`

	// RuntimeText is the "time" attribute as written in the report, if any.
	RuntimeText string `json:"-"`
	// Source is the report file the suite was read from.
	Source string `json:"source,omitempty"`
}

// Assigned reports whether the record has been placed in a wave
func (s *SuiteRecord) Assigned() bool {
	return s.Wave != ""
}

// RuntimeField returns the runtime as it should appear in a report row.
// The source text is preferred so values round-trip unchanged.
func (s *SuiteRecord) RuntimeField() string {
	if s.RuntimeText != "" {
		return s.RuntimeText
	}
	return strconv.FormatFloat(s.Runtime, 'f', -1, 64)
}

// Wave is a lane of suites that run together
type Wave struct {
	Index   int            `json:"index"` // 1-based
	Runtime float64        `json:"runtime"`
	Suites  []*SuiteRecord `json:"-"`
}

// WaveLabel returns the label used for the wave with the given 1-based index
func WaveLabel(index int) string {
	return fmt.Sprintf("wave %d", index)
}

// Label returns the wave's label, e.g. "wave 1"
func (w *Wave) Label() string {
	return WaveLabel(w.Index)
}

// Add places a suite in the wave and accumulates its runtime
func (w *Wave) Add(suite *SuiteRecord) {
	suite.Wave = w.Label()
	w.Suites = append(w.Suites, suite)
	w.Runtime += suite.Runtime
}
