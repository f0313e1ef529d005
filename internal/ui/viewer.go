package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"dtr/internal/domain"
	"dtr/internal/storage"
)

// FailureViewer displays the failed cases of the last run in an
// interactive two-pane TUI: case list left, captured detail right.
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a FailureViewer over the given storage
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View runs the TUI over the persisted results. Toggling a case as
// resolved writes the updated results back through storage.
func (fv *FailureViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No failed cases in the last run!")
		return nil
	}

	resolved := make(map[int]bool)
	for i, failure := range results.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolved := func() error {
		for i := range results.Details {
			results.Details[i].Resolved = resolved[i]
		}
		return fv.storage.SaveOutput(results)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(index int) string {
		failure := results.Details[index]
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, failure.DisplayPath)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, failure.DisplayPath)
	}

	for i := range results.Details {
		list.AddItem(itemText(i), "", 0, nil)
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

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	countUnresolved := func() int {
		count := 0
		for i := range results.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failed Cases (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] toggle resolved, → details, ← back, Ctrl+C exit ",
			len(results.Details), countUnresolved()))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			failure := results.Details[index]
			statsView.SetText(fmt.Sprintf("[cyan]case:[white] [yellow]%s[white] [cyan]kind:[white] [yellow]%s[white]\n",
				failure.Path, failure.Kind))
			detailsView.SetText(formatFailureDetails(failure))
		}
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
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					resolved[index] = !resolved[index]
					list.SetItemText(index, itemText(index), "")
					updateHeader()
					updateDetails()
					_ = saveResolved()
				}
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

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	panes := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(panes, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("run failures viewer: %w", err)
	}
	return nil
}

// formatFailureDetails renders one failure record with tview color tags
func formatFailureDetails(failure domain.CaseFailure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Case: %s[white]\n\n", failure.Path)
	fmt.Fprintf(&b, "[cyan]Kind: %s[white]\n", failure.Kind)
	if failure.Kind == domain.OutcomeProcessError.String() {
		fmt.Fprintf(&b, "[yellow]Exit code: %d[white]\n", failure.ExitCode)
	}
	b.WriteString("\n")

	if failure.Stderr != "" {
		fmt.Fprintf(&b, "[yellow]Stderr:[white]\n%s\n\n", failure.Stderr)
	}
	if failure.Stdout != "" {
		fmt.Fprintf(&b, "[yellow]Got (stdout):[white]\n%s\n\n", failure.Stdout)
	}
	if failure.Expected != "" {
		fmt.Fprintf(&b, "[yellow]Expected:[white]\n%s\n", failure.Expected)
	}

	return b.String()
}
