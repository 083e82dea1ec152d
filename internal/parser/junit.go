package parser

import (
	"bytes"
	"math"
	"os"
	"strconv"
	"strings"

	"wavesplit/internal/domain"
)

const (
	tagSuite  = "testsuite"
	tagSuites = "testsuites"
)

// JUnitParser extracts suite records from JUnit XML reports
type JUnitParser struct{}

// NewJUnitParser creates a new JUnitParser
func NewJUnitParser() *JUnitParser {
	return &JUnitParser{}
}

// ParseFile reads a report and extracts its suites. Read and parse
// errors are returned as *domain.ParseFailure.
func (p *JUnitParser) ParseFile(path string) ([]*domain.SuiteRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ParseFailure{File: path, Message: err.Error()}
	}

	doc, err := ReadDocument(bytes.NewReader(data))
	if err != nil {
		return nil, &domain.ParseFailure{File: path, Message: err.Error()}
	}

	records := Extract(doc)
	for _, r := range records {
		r.Source = path
	}
	return records, nil
}

// Extract returns the suites described by a parsed report.
// A <testsuite> root yields one record; a <testsuites> root yields one per
// nested <testsuite>. Anything else yields nothing.
func Extract(doc *Node) []*domain.SuiteRecord {
	if doc == nil {
		return nil
	}

	switch doc.Tag {
	case tagSuite:
		return []*domain.SuiteRecord{suiteFromNode(doc)}
	case tagSuites:
		nodes := doc.Descendants(tagSuite)
		if len(nodes) == 0 {
			return nil
		}
		records := make([]*domain.SuiteRecord, 0, len(nodes))
		for _, n := range nodes {
			records = append(records, suiteFromNode(n))
		}
		return records
	default:
		return nil
	}
}

func suiteFromNode(n *Node) *domain.SuiteRecord {
	record := &domain.SuiteRecord{
		Name:  domain.DefaultSuiteName,
		Tests: domain.DefaultTestCount,
	}

	if name, ok := n.Attr("name"); ok && name != "" {
		record.Name = name
	}
	if tests, ok := n.Attr("tests"); ok {
		record.Tests = tests
	}
	if t, ok := n.Attr("time"); ok {
		record.RuntimeText = t
		record.Runtime = parseRuntime(t)
	}

	return record
}

// parseRuntime parses a "time" attribute, falling back to 0 for anything
// that is not a finite number.
func parseRuntime(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
