package parser

import "wavesplit/internal/domain"

// Parser turns a report file into suite records
type Parser interface {
	ParseFile(path string) ([]*domain.SuiteRecord, error)
}
