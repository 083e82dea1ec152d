package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Input settings
	ReportDir  string
	NameFilter string

	// Scheduling settings
	Waves    int // 0 means one wave per discovered report file
	Strategy string
	NoWaves  bool

	// Execution settings
	Processors int

	// Output settings
	Quote    bool
	Summary  bool
	Progress bool
	NoColor  bool
	SavePath string
	LogLevel string

	// Storage settings
	MySQLDSN   string
	MySQLTable string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Strategy:   DefaultStrategy,
		Processors: DefaultProcessors,
		LogLevel:   DefaultLogLevel,
		MySQLTable: DefaultMySQLTable,
	}
}

// Load creates a config from defaults, the given dotenv file and the environment
func Load(envFile string) (*Config, error) {
	cfg := New()
	if err := cfg.LoadEnv(envFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv reads envFile (if it exists) into the process environment and then
// applies WAVESPLIT_* overrides. Variables already set in the environment win
// over the file.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvProcessors); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvProcessors, v)
		}
		c.Processors = n
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvMySQLDSN); v != "" {
		c.MySQLDSN = v
	}
	if v := os.Getenv(EnvMySQLTable); v != "" {
		c.MySQLTable = v
	}
	if v := os.Getenv(EnvQuote); v != "" {
		quote, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s must be a boolean, got %q", EnvQuote, v)
		}
		c.Quote = quote
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		c.NoColor = true
	}

	return nil
}

// WaveCount returns the number of waves to build for the given number of
// report files. An explicit count wins; otherwise one wave per file.
func (c *Config) WaveCount(reportFiles int) int {
	if c.Waves > 0 {
		return c.Waves
	}
	return reportFiles
}

// Validate checks settings that flags and environment cannot enforce by type
func (c *Config) Validate() error {
	if c.Processors <= 0 {
		return fmt.Errorf("processors must be positive, got %d", c.Processors)
	}
	if c.Waves < 0 {
		return fmt.Errorf("wave count must be positive, got %d", c.Waves)
	}
	return nil
}
