package config

const (
	// DefaultProcessors is the default number of report parsing workers
	DefaultProcessors = 4
	// DefaultStrategy is the default wave scheduling strategy
	DefaultStrategy = "lpt"
	// DefaultLogLevel is the default logrus level
	DefaultLogLevel = "info"
	// DefaultEnvFile is the dotenv file read at startup
	DefaultEnvFile = ".env"
	// DefaultMySQLTable is the table wave assignments are recorded in
	DefaultMySQLTable = "wave_assignments"
)

// Environment variables that override the defaults
const (
	EnvProcessors = "WAVESPLIT_PROCESSORS"
	EnvStrategy   = "WAVESPLIT_STRATEGY"
	EnvLogLevel   = "WAVESPLIT_LOG_LEVEL"
	EnvMySQLDSN   = "WAVESPLIT_MYSQL_DSN"
	EnvMySQLTable = "WAVESPLIT_MYSQL_TABLE"
	EnvQuote      = "WAVESPLIT_QUOTE"
	EnvNoColor    = "NO_COLOR"
)
