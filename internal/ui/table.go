package ui

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderSummaryTable met en forme le récapitulatif de conversion.
func renderSummaryTable(s Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Conversion", ""})
	tw.AppendRows([]table.Row{
		{"Dossier", s.SongDir},
		{"Lignes traitées", strconv.Itoa(s.DialogueLines)},
		{"Notes émises", strconv.Itoa(s.Notes)},
		{"Avertissements", strconv.Itoa(s.Warnings)},
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
