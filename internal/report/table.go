package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"deploycheck/internal/checklist"
)

// renderTallyTable renders the verdict counters. Non-zero counts take the
// colour of their outcome when colorize is set; zero counts stay plain.
func renderTallyTable(tally checklist.Tally, colorize bool) string {
	rows := []struct {
		label   string
		count   int
		outcome checklist.Outcome
	}{
		{"Passed", tally.Passed, checklist.OutcomePass},
		{"Failed", tally.Failed, checklist.OutcomeFail},
		{"Warnings", tally.Warnings, checklist.OutcomeWarning},
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Result", "Count"})
	for _, row := range rows {
		count := strconv.Itoa(row.count)
		if row.count > 0 {
			count = paint(count, outcomeColor(row.outcome), colorize)
		}
		tw.AppendRow(table.Row{row.label, count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	return tw.Render()
}
