package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "nested"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir.xml"), 0o755))

	files := []string{
		"suite2.xml",
		"suite1.xml",
		"TEST-a.xml",
		"notes.txt",
		"report.xml.bak",
		"nested/deep.xml",
	}
	for _, file := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, file), []byte("<testsuite/>"), 0o644))
	}

	scanner := NewScanner()

	t.Run("finds immediate xml files sorted by path", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(tmpDir, "TEST-a.xml"),
			filepath.Join(tmpDir, "suite1.xml"),
			filepath.Join(tmpDir, "suite2.xml"),
		}, results)
	})

	t.Run("empty directory yields no reports", func(t *testing.T) {
		results, err := scanner.Scan(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "missing"))
		assert.ErrorIs(t, err, ErrDirectoryNotFound)
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "notes.txt"))
		assert.ErrorIs(t, err, ErrNotADirectory)
	})
}
