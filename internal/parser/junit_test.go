package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavesplit/internal/domain"
)

func mustRead(t *testing.T, xmlContent string) *Node {
	t.Helper()
	doc, err := ReadDocument(strings.NewReader(xmlContent))
	require.NoError(t, err)
	return doc
}

func TestExtract_SingleSuiteRoot(t *testing.T) {
	doc := mustRead(t, `<?xml version="1.0" encoding="UTF-8"?>
<testsuite name="S" tests="3" time="1.5">
  <testcase name="a" time="0.5"/>
</testsuite>`)

	records := Extract(doc)
	require.Len(t, records, 1)
	assert.Equal(t, "S", records[0].Name)
	assert.Equal(t, "3", records[0].Tests)
	assert.Equal(t, 1.5, records[0].Runtime)
	assert.False(t, records[0].Assigned())
}

func TestExtract_SuitesRoot(t *testing.T) {
	doc := mustRead(t, `<testsuites>
  <testsuite name="First" tests="1" time="2"/>
  <testsuite name="Second" tests="4" time="0.25"/>
</testsuites>`)

	records := Extract(doc)
	require.Len(t, records, 2)
	assert.Equal(t, "First", records[0].Name)
	assert.Equal(t, "Second", records[1].Name)
	assert.Equal(t, 0.25, records[1].Runtime)
}

func TestExtract_NestedSuitesInDocumentOrder(t *testing.T) {
	doc := mustRead(t, `<testsuites>
  <group>
    <testsuite name="A"/>
  </group>
  <testsuite name="B"/>
</testsuites>`)

	records := Extract(doc)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Name)
	assert.Equal(t, "B", records[1].Name)
}

func TestExtract_Empty(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{name: "unrecognized root", xml: `<report><testsuite name="X"/></report>`},
		{name: "testsuites without children", xml: `<testsuites name="all"></testsuites>`},
		{name: "testsuites with only other children", xml: `<testsuites><properties/></testsuites>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Extract(mustRead(t, tt.xml)))
		})
	}

	assert.Empty(t, Extract(nil))
}

func TestExtract_Defaults(t *testing.T) {
	tests := []struct {
		name        string
		xml         string
		wantName    string
		wantTests   string
		wantRuntime float64
	}{
		{
			name:        "all attributes missing",
			xml:         `<testsuite/>`,
			wantName:    domain.DefaultSuiteName,
			wantTests:   domain.DefaultTestCount,
			wantRuntime: 0,
		},
		{
			name:        "empty name falls back",
			xml:         `<testsuite name="" tests="2" time="3"/>`,
			wantName:    domain.DefaultSuiteName,
			wantTests:   "2",
			wantRuntime: 3,
		},
		{
			name:        "non-numeric time",
			xml:         `<testsuite name="N" tests="x" time="slow"/>`,
			wantName:    "N",
			wantTests:   "x",
			wantRuntime: 0,
		},
		{
			name:        "non-finite time",
			xml:         `<testsuite name="N" time="NaN"/>`,
			wantName:    "N",
			wantTests:   domain.DefaultTestCount,
			wantRuntime: 0,
		},
		{
			name:        "empty tests passes through",
			xml:         `<testsuite name="N" tests=""/>`,
			wantName:    "N",
			wantTests:   "",
			wantRuntime: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Extract(mustRead(t, tt.xml))
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantName, records[0].Name)
			assert.Equal(t, tt.wantTests, records[0].Tests)
			assert.Equal(t, tt.wantRuntime, records[0].Runtime)
		})
	}
}

func TestExtract_KeepsRuntimeText(t *testing.T) {
	records := Extract(mustRead(t, `<testsuite name="S" time="1.50"/>`))
	require.Len(t, records, 1)
	assert.Equal(t, "1.50", records[0].RuntimeField())

	records = Extract(mustRead(t, `<testsuite name="S"/>`))
	require.Len(t, records, 1)
	assert.Equal(t, "0", records[0].RuntimeField())
}

func TestJUnitParser_ParseFile(t *testing.T) {
	dir := t.TempDir()
	parser := NewJUnitParser()

	t.Run("well formed", func(t *testing.T) {
		path := filepath.Join(dir, "ok.xml")
		require.NoError(t, os.WriteFile(path, []byte(`<testsuite name="OK" tests="1" time="4"/>`), 0o644))

		records, err := parser.ParseFile(path)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, path, records[0].Source)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.xml")
		require.NoError(t, os.WriteFile(path, []byte(`<testsuite name="bad"`), 0o644))

		records, err := parser.ParseFile(path)
		assert.Nil(t, records)

		var failure *domain.ParseFailure
		require.True(t, errors.As(err, &failure))
		assert.Equal(t, path, failure.File)
		assert.Contains(t, failure.Error(), "Error parsing "+path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.ParseFile(filepath.Join(dir, "nope.xml"))
		var failure *domain.ParseFailure
		assert.True(t, errors.As(err, &failure))
	})
}
