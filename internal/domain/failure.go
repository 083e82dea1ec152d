package domain

import "fmt"

// ParseFailure describes a report file that could not be read or parsed
type ParseFailure struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

func (f *ParseFailure) Error() string {
	return fmt.Sprintf("Error parsing %s: %s", f.File, f.Message)
}
