package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"wavesplit/internal/domain"
)

// Column headers of the CSV report
var (
	Header         = []string{"TestSuite", "Tests", "Runtime"}
	HeaderWithWave = []string{"TestSuite", "Tests", "Runtime", "Wave"}
)

// Emitter renders suites as report rows
type Emitter interface {
	Emit(w io.Writer, suites []*domain.SuiteRecord) error
}

// CSVEmitter writes suites as comma separated rows, one per suite, in the
// order given.
type CSVEmitter struct {
	// WithWaves adds the Wave column.
	WithWaves bool
	// Quote applies RFC 4180 quoting. Without it fields are written verbatim,
	// so a name containing a comma shifts the columns of its row.
	Quote bool
}

// NewCSVEmitter creates a new CSVEmitter
func NewCSVEmitter(withWaves, quote bool) *CSVEmitter {
	return &CSVEmitter{WithWaves: withWaves, Quote: quote}
}

// Emit writes the header followed by one row per suite
func (e *CSVEmitter) Emit(w io.Writer, suites []*domain.SuiteRecord) error {
	if e.Quote {
		return e.emitQuoted(w, suites)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, strings.Join(e.header(), ",")); err != nil {
		return err
	}
	for _, s := range suites {
		if _, err := fmt.Fprintln(bw, strings.Join(e.row(s), ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (e *CSVEmitter) emitQuoted(w io.Writer, suites []*domain.SuiteRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(e.header()); err != nil {
		return err
	}
	for _, s := range suites {
		if err := cw.Write(e.row(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (e *CSVEmitter) header() []string {
	if e.WithWaves {
		return HeaderWithWave
	}
	return Header
}

func (e *CSVEmitter) row(s *domain.SuiteRecord) []string {
	fields := []string{s.Name, s.Tests, s.RuntimeField()}
	if e.WithWaves {
		fields = append(fields, s.Wave)
	}
	return fields
}
