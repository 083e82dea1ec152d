package commands

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wavesplit/internal/cli"
	"wavesplit/internal/config"
	"wavesplit/internal/discovery"
	"wavesplit/internal/ingest"
	"wavesplit/internal/parser"
	"wavesplit/internal/scheduling"
	"wavesplit/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	View *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, log logrus.FieldLogger) *Commands {
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	loader := ingest.NewWorkerPool(cfg, parser.NewJUnitParser(), log)
	formatter := ui.NewFormatter()

	return &Commands{
		Run:  NewRunCommand(cfg, scanner, filter, loader, formatter),
		List: NewListCommand(cfg, scanner, filter, formatter),
		View: NewViewCommand(ui.NewWaveViewer()),
	}
}

// NewRootCommand builds the wavesplit command tree
func NewRootCommand(version string, cfg *config.Config, log *logrus.Logger) *cobra.Command {
	return newRootCommand(version, cfg, log, NewCommands(cfg, log))
}

func newRootCommand(version string, cfg *config.Config, log *logrus.Logger, cmds *Commands) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wavesplit <directory> [numWaves]",
		Short: "Balance JUnit test suites into waves",
		Long: `Reads the JUnit XML reports in a directory and splits their test suites into
waves of roughly equal total runtime, printing the result as CSV.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErrorf(cmd, "%v", err)
	})

	flags := cli.FromConfig(cfg)
	cmds.Register(rootCmd, &flags, cfg, log)
	return rootCmd
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, log *logrus.Logger) {
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel,
		"log level ("+strings.Join(logLevels(), ", ")+")")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", flags.NoColor, "Disable colored output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		flags.ApplyTo(cfg)
		if err := cfg.Validate(); err != nil {
			return usageErrorf(cmd, "%v", err)
		}

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return usageErrorf(cmd, "invalid log level %q", cfg.LogLevel)
		}
		log.SetLevel(level)
		log.SetOutput(cmd.ErrOrStderr())
		ui.SetColor(!cfg.NoColor)
		return nil
	}

	// Root command runs the split
	rootCmd.Args = c.Run.Args
	rootCmd.RunE = c.Run.Execute
	rootCmd.Flags().IntVarP(&flags.Processors, "processors", "p", flags.Processors, "Number of report parsing workers")
	rootCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", flags.NameFilter, "Only read reports whose file name matches (supports wildcards, e.g. 'TEST-*.xml')")
	rootCmd.Flags().StringVarP(&flags.Strategy, "strategy", "s", flags.Strategy, "Wave scheduling strategy ("+strings.Join(scheduling.Strategies(), ", ")+")")
	rootCmd.Flags().BoolVar(&flags.NoWaves, "no-waves", flags.NoWaves, "Only list suites, without assigning waves")
	rootCmd.Flags().BoolVar(&flags.Quote, "quote", flags.Quote, "Quote CSV fields that contain delimiters (RFC 4180)")
	rootCmd.Flags().BoolVar(&flags.Summary, "summary", flags.Summary, "Print a per-wave summary to stderr")
	rootCmd.Flags().BoolVar(&flags.Progress, "progress", flags.Progress, "Show a progress bar on stderr while parsing")
	rootCmd.Flags().StringVarP(&flags.SavePath, "save", "o", flags.SavePath, "Also write the wave plan as JSON to this file")
	rootCmd.Flags().StringVar(&flags.MySQLDSN, "mysql-dsn", flags.MySQLDSN, "Record wave assignments in MySQL (e.g. user:pass@tcp(host:3306)/db)")
	rootCmd.Flags().StringVar(&flags.MySQLTable, "mysql-table", flags.MySQLTable, "MySQL table for wave assignments")

	// List command
	listCmd := &cobra.Command{
		Use:   "list <directory>",
		Short: "List discovered report files",
		Long:  "Scan a directory and list the JUnit XML reports that would be read",
		Args:  exactArgs(1),
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", flags.NameFilter, "Only list reports whose file name matches")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view <plan.json>",
		Short: "Browse a saved wave plan interactively",
		Long:  "Display a wave plan written with --save in an interactive viewer",
		Args:  exactArgs(1),
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageErrorf(cmd, "expected %d argument(s), got %d", n, len(args))
		}
		return nil
	}
}

func logLevels() []string {
	levels := make([]string, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		levels = append(levels, level.String())
	}
	return levels
}

// UsageError reports invalid arguments or flags
type UsageError struct {
	Message string
	Usage   string
}

func (e *UsageError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return fmt.Sprintf("%s\nUsage: %s", e.Message, e.Usage)
}

func usageErrorf(cmd *cobra.Command, format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...), Usage: cmd.UseLine()}
}
