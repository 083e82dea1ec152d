package commands

import (
	"github.com/spf13/cobra"

	"wavesplit/internal/storage"
	"wavesplit/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	viewer ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{viewer: viewer}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	plan, err := storage.NewJSONStorage(args[0]).Load()
	if err != nil {
		return err
	}

	return vc.viewer.View(plan)
}
