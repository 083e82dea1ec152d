package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavesplit/internal/domain"
)

func sampleSuites() []*domain.SuiteRecord {
	return []*domain.SuiteRecord{
		{Name: "X", Tests: "5", Runtime: 100, RuntimeText: "100", Wave: "wave 1"},
		{Name: "Y", Tests: "2", Runtime: 10, RuntimeText: "10", Wave: "wave 1"},
	}
}

func TestCSVEmitter_Emit(t *testing.T) {
	tests := []struct {
		name      string
		withWaves bool
		suites    []*domain.SuiteRecord
		expected  string
	}{
		{
			name:      "with waves",
			withWaves: true,
			suites:    sampleSuites(),
			expected:  "TestSuite,Tests,Runtime,Wave\nX,5,100,wave 1\nY,2,10,wave 1\n",
		},
		{
			name:      "without waves",
			withWaves: false,
			suites:    sampleSuites(),
			expected:  "TestSuite,Tests,Runtime\nX,5,100\nY,2,10\n",
		},
		{
			name:      "header only",
			withWaves: true,
			suites:    nil,
			expected:  "TestSuite,Tests,Runtime,Wave\n",
		},
		{
			name:      "runtime without source text",
			withWaves: false,
			suites:    []*domain.SuiteRecord{{Name: "Z", Tests: "0", Runtime: 1.25}},
			expected:  "TestSuite,Tests,Runtime\nZ,0,1.25\n",
		},
		{
			name:      "delimiters are not escaped by default",
			withWaves: false,
			suites:    []*domain.SuiteRecord{{Name: "a,b", Tests: "1", RuntimeText: "2"}},
			expected:  "TestSuite,Tests,Runtime\na,b,1,2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewCSVEmitter(tt.withWaves, false).Emit(&buf, tt.suites))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestCSVEmitter_EmitQuoted(t *testing.T) {
	suites := []*domain.SuiteRecord{
		{Name: "pkg.Suite, part 1", Tests: "3", RuntimeText: "1.5", Wave: "wave 2"},
		{Name: `say "hi"`, Tests: "1", RuntimeText: "0", Wave: "wave 1"},
		{Name: "plain", Tests: "1", RuntimeText: "2", Wave: "wave 1"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewCSVEmitter(true, true).Emit(&buf, suites))

	expected := "TestSuite,Tests,Runtime,Wave\n" +
		"\"pkg.Suite, part 1\",3,1.5,wave 2\n" +
		"\"say \"\"hi\"\"\",1,0,wave 1\n" +
		"plain,1,2,wave 1\n"
	assert.Equal(t, expected, buf.String())
}
