package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"wavesplit/internal/config"
	"wavesplit/internal/discovery"
	"wavesplit/internal/domain"
	"wavesplit/internal/ingest"
	"wavesplit/internal/report"
	"wavesplit/internal/scheduling"
	"wavesplit/internal/storage"
	"wavesplit/internal/ui"
)

// RunCommand reads a report directory, balances its suites into waves and
// prints them as CSV
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	loader    *ingest.WorkerPool
	formatter *ui.Formatter
	now       func() time.Time
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	loader *ingest.WorkerPool,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		loader:    loader,
		formatter: formatter,
		now:       time.Now,
	}
}

// Args validates "<directory> [numWaves]"
func (rc *RunCommand) Args(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usageErrorf(cmd, "expected <directory> [numWaves], got %d argument(s)", len(args))
	}
	if len(args) == 2 {
		if _, err := parseWaveCount(args[1]); err != nil {
			return usageErrorf(cmd, "%v", err)
		}
	}
	return nil
}

func parseWaveCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("numWaves must be a positive integer, got %q", arg)
	}
	return n, nil
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	rc.config.ReportDir = args[0]
	if len(args) == 2 {
		n, err := parseWaveCount(args[1])
		if err != nil {
			return usageErrorf(cmd, "%v", err)
		}
		rc.config.Waves = n
	}

	// Resolve everything that can fail before any output is written
	scheduler, err := scheduling.New(rc.config.Strategy)
	if err != nil {
		return usageErrorf(cmd, "%v", err)
	}
	store, err := rc.storages()
	if err != nil {
		return err
	}

	// Discover reports
	reports, err := rc.scanner.Scan(rc.config.ReportDir)
	if err != nil {
		return err
	}
	reports = rc.filter.FilterByName(reports, rc.config.NameFilter)
	if len(reports) == 0 {
		return fmt.Errorf("%w in directory: %s", discovery.ErrNoReports, rc.config.ReportDir)
	}

	if rc.config.Progress {
		rc.loader.SetProgress(ui.NewProgressBar(cmd.ErrOrStderr(), len(reports)))
	}

	pool, err := rc.loader.Load(cmd.Context(), reports)
	if err != nil {
		return err
	}

	var waves []*domain.Wave
	if !rc.config.NoWaves {
		waves = scheduler.Schedule(pool.Records, rc.config.WaveCount(len(reports)))
	}

	emitter := report.NewCSVEmitter(!rc.config.NoWaves, rc.config.Quote)
	if err := emitter.Emit(cmd.OutOrStdout(), pool.Records); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	plan := rc.buildPlan(pool, waves, scheduler.Name())

	if rc.config.Summary {
		rc.formatter.PrintWaveSummary(cmd.ErrOrStderr(), plan)
	}

	if store != nil {
		if err := store.Save(cmd.Context(), plan); err != nil {
			return fmt.Errorf("failed to save wave plan: %w", err)
		}
	}

	return nil
}

func (rc *RunCommand) buildPlan(pool *ingest.Pool, waves []*domain.Wave, strategy string) *domain.Plan {
	now := rc.now()
	if rc.config.NoWaves {
		strategy = ""
	}

	plan := domain.NewPlan(domain.PlanMeta{
		RunID:       now.UTC().Format("20060102T150405.000000000Z"),
		ReportDir:   rc.config.ReportDir,
		ReportFiles: len(pool.Files),
		FailedFiles: len(pool.Failures),
		Strategy:    strategy,
		Timestamp:   now.Format(time.RFC3339),
	}, pool.Records, waves)
	plan.Failures = pool.Failures
	return plan
}

// storages returns the configured plan storages, or nil when none is enabled
func (rc *RunCommand) storages() (storage.Storage, error) {
	var stores storage.Multi

	if rc.config.SavePath != "" {
		stores = append(stores, storage.NewJSONStorage(rc.config.SavePath))
	}
	if rc.config.MySQLDSN != "" {
		st, err := storage.NewMySQLStorage(rc.config.MySQLDSN, rc.config.MySQLTable)
		if err != nil {
			return nil, err
		}
		stores = append(stores, st)
	}

	if len(stores) == 0 {
		return nil, nil
	}
	return stores, nil
}
