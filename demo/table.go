package demo

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table renders every step of the report as a table
func (r *Report) Table() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Op", "Value", "Applied", "Len"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	for i, step := range r.Steps {
		t.AppendRow(table.Row{i + 1, step.Op.String(), step.Value, step.Applied, step.Len})
	}

	t.AppendFooter(table.Row{"", "", "", "nodes", r.Len})
	return t.Render()
}

// TrialsTable renders one line per trial report
func TrialsTable(reports []*Report) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Seed", "Steps", "Len"})

	for _, report := range reports {
		t.AppendRow(table.Row{report.Seed, len(report.Steps), report.Len})
	}

	return t.Render()
}
