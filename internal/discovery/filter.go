package discovery

import (
	"path/filepath"
	"strings"
)

// Filter narrows report files down by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the reports whose base name matches pattern.
// Supports wildcards ("TEST-*.xml", "*integration*") and plain substrings.
// Input order is preserved.
func (f *Filter) FilterByName(reports []string, pattern string) []string {
	if pattern == "" {
		return reports
	}

	var filtered []string
	for _, report := range reports {
		if matchName(filepath.Base(report), pattern) {
			filtered = append(filtered, report)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to "every literal piece appears in order", so "*User*Test*"
	// still matches when filepath.Match rejects the pattern.
	parts := strings.FieldsFunc(pattern, func(r rune) bool { return r == '*' || r == '?' })
	if len(parts) == 0 {
		return false
	}
	rest := name
	for _, part := range parts {
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
	}
	return true
}
