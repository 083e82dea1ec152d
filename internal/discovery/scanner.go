package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ReportExtension is the suffix a file needs to be treated as a report
const ReportExtension = ".xml"

var (
	// ErrDirectoryNotFound is returned when the report directory does not exist
	ErrDirectoryNotFound = errors.New("directory does not exist")
	// ErrNotADirectory is returned when the report path is not a directory
	ErrNotADirectory = errors.New("not a directory")
	// ErrNoReports is returned by callers when a directory holds no report files
	ErrNoReports = errors.New("no XML files found")
)

// Scanner finds JUnit report files in a directory
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the regular .xml files directly inside dir, sorted by path.
// Subdirectories are not descended into.
func (s *Scanner) Scan(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("'%s' is %w", dir, ErrNotADirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var reports []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ReportExtension) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		// Stat follows symlinks, so a link to a regular file counts.
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		reports = append(reports, path)
	}

	sort.Strings(reports)
	return reports, nil
}
