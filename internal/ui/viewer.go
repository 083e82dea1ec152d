package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"wavesplit/internal/domain"
)

// Viewer displays a wave plan
type Viewer interface {
	View(plan *domain.Plan) error
}

// WaveViewer browses a wave plan in an interactive TUI
type WaveViewer struct{}

// NewWaveViewer creates a new WaveViewer
func NewWaveViewer() *WaveViewer {
	return &WaveViewer{}
}

// View shows the waves on the left and the suites of the selected wave on the right
func (wv *WaveViewer) View(plan *domain.Plan) error {
	if len(plan.Waves) == 0 {
		return fmt.Errorf("plan has no waves to show")
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i := range plan.Waves {
		list.AddItem(formatWaveItem(plan, i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(formatHeader(plan))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(plan.Waves) {
			return
		}
		statsView.SetText(formatWaveStats(plan, index))
		detailsView.SetText(formatWaveDetails(plan, index)).ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func formatHeader(plan *domain.Plan) string {
	return fmt.Sprintf(" %d suites in %d waves | makespan [yellow]%.2fs[white] | ↑↓ navigate, → details, ← back, q to exit ",
		plan.Meta.Suites, len(plan.Waves), plan.Meta.Makespan)
}

// formatWaveItem marks the wave that determines the makespan
func formatWaveItem(plan *domain.Plan, index int) string {
	wave := plan.Waves[index]
	text := fmt.Sprintf("%s (%d suites, %.2fs)", wave.Label, len(wave.Suites), wave.Runtime)
	if wave.Runtime == plan.Meta.Makespan && plan.Meta.Makespan > 0 {
		return "[red]▲ [white]" + text
	}
	return "[yellow]" + text[:len(wave.Label)] + "[white]" + text[len(wave.Label):]
}

func formatWaveStats(plan *domain.Plan, index int) string {
	wave := plan.Waves[index]
	share := 0.0
	if plan.Meta.TotalRuntime > 0 {
		share = wave.Runtime / plan.Meta.TotalRuntime * 100
	}
	return fmt.Sprintf("[cyan]%s:[white] [yellow]%.2fs[white] (%.1f%% of total runtime)\n", wave.Label, wave.Runtime, share)
}

// formatWaveDetails lists the suites of a wave in pool order, using tview color tags
func formatWaveDetails(plan *domain.Plan, index int) string {
	wave := plan.Waves[index]
	suites := plan.SuitesInWave(wave.Label)
	if len(suites) == 0 {
		return "[gray]No suites in this wave[white]"
	}

	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "[yellow]Suite\tTests\tRuntime\tSource[white]\n")
	for _, s := range suites {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", tview.Escape(s.Name), s.Tests, s.RuntimeField(), tview.Escape(s.Source))
	}
	w.Flush()
	return builder.String()
}
