package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wavesplit/internal/config"
	"wavesplit/internal/discovery"
	"wavesplit/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	dir := args[0]
	reports, err := lc.scanner.Scan(dir)
	if err != nil {
		return err
	}

	reports = lc.filter.FilterByName(reports, lc.config.NameFilter)
	if len(reports) == 0 {
		return fmt.Errorf("%w in directory: %s", discovery.ErrNoReports, dir)
	}

	lc.formatter.PrintReportList(cmd.OutOrStdout(), dir, reports)
	return nil
}
