package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"xmind2zentao/internal/domain"
)

// RowViewer browses import rows in an interactive TUI
type RowViewer struct{}

// NewRowViewer creates a new RowViewer
func NewRowViewer() *RowViewer {
	return &RowViewer{}
}

// View shows rows as a list on the left and the selected row on the right
func (rv *RowViewer) View(source string, rows []domain.Row) error {
	if len(rows) == 0 {
		color.Yellow("No rows to preview")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, row := range rows {
		list.AddItem(listItemText(i, row), "", 0, nil)
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
		SetText(fmt.Sprintf(" %s (%d rows) | ↑↓ navigate, → details, ← back, [yellow]q[white] or Ctrl+C to exit ", tview.Escape(source), len(rows)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(rows) {
			statsView.SetText(formatRowStats(rows[index]))
			detailsView.SetText(formatRowDetails(rows[index])).ScrollToBeginning()
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

func listItemText(index int, row domain.Row) string {
	title := row.Title
	if title == "" {
		title = fmt.Sprintf("Row %d", index+1)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(title))
}

// formatRowStats formats the one-line header above the row details
func formatRowStats(row domain.Row) string {
	return fmt.Sprintf("[cyan]module:[white] [yellow]%s[white]  [cyan]priority:[white] %s  [cyan]type:[white] %s",
		tview.Escape(row.Module), row.Priority, tview.Escape(row.CaseType))
}

// formatRowDetails formats a row for display using tview color tags
func formatRowDetails(row domain.Row) string {
	var b strings.Builder
	section := func(label, text string) {
		if text == "" {
			text = "[gray](empty)[white]"
		} else {
			text = tview.Escape(text)
		}
		fmt.Fprintf(&b, "[yellow]%s:[white]\n%s\n\n", label, strings.TrimRight(text, "\n"))
	}

	fmt.Fprintf(&b, "[green]%s[white]\n\n", tview.Escape(row.Title))
	section("Preconditions", row.Preconditions)
	section("Steps", row.Steps)
	section("Expected", row.ExpectedResults)
	fmt.Fprintf(&b, "[cyan]Phase:[white] %s\n", tview.Escape(row.ApplyPhase))
	return b.String()
}
