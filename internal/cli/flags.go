package cli

import "wavesplit/internal/config"

// Flags holds command-line flags
type Flags struct {
	Processors int
	NameFilter string
	Strategy   string
	NoWaves    bool
	Quote      bool
	Summary    bool
	Progress   bool
	SavePath   string
	MySQLDSN   string
	MySQLTable string
	LogLevel   string
	NoColor    bool
}

// FromConfig seeds flag defaults from a loaded config, so flags only
// override what the environment already set when they are given.
func FromConfig(cfg *config.Config) Flags {
	return Flags{
		Processors: cfg.Processors,
		NameFilter: cfg.NameFilter,
		Strategy:   cfg.Strategy,
		NoWaves:    cfg.NoWaves,
		Quote:      cfg.Quote,
		Summary:    cfg.Summary,
		Progress:   cfg.Progress,
		SavePath:   cfg.SavePath,
		MySQLDSN:   cfg.MySQLDSN,
		MySQLTable: cfg.MySQLTable,
		LogLevel:   cfg.LogLevel,
		NoColor:    cfg.NoColor,
	}
}

// ApplyTo copies the parsed flags onto cfg
func (f *Flags) ApplyTo(cfg *config.Config) {
	cfg.Processors = f.Processors
	cfg.NameFilter = f.NameFilter
	cfg.Strategy = f.Strategy
	cfg.NoWaves = f.NoWaves
	cfg.Quote = f.Quote
	cfg.Summary = f.Summary
	cfg.Progress = f.Progress
	cfg.SavePath = f.SavePath
	cfg.MySQLDSN = f.MySQLDSN
	cfg.MySQLTable = f.MySQLTable
	cfg.LogLevel = f.LogLevel
	cfg.NoColor = f.NoColor
}
