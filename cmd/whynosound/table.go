package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderChecksTable lays out the check listing: priority, identifier, display
// name, and the commands the probe consults.
func renderChecksTable(rows [][4]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Priority", "Check", "Name", "Probes"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1], row[2], row[3]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
