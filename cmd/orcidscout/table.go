package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"orcidscout/internal/lookup"
)

var resultHeaders = []string{"Author ID", "Name", "ORCID", "Affiliated"}

// renderResultsTable draws the lookup results with human status labels.
func renderResultsTable(rows []lookup.ResultRow, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(resultHeaders))
	for i, h := range resultHeaders {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		tw.AppendRow(table.Row{row.AuthorID, row.Name, row.ORCIDCell(), row.Affiliation.Label()})
	}

	affiliated := table.ColumnConfig{Number: 4, AlignHeader: text.AlignLeft}
	if colorize {
		affiliated.Transformer = func(val any) string {
			label, _ := val.(string)
			for _, status := range lookup.Statuses {
				if status.Label() == label {
					if color := statusKindColor(affiliationKind(status)); color != "" {
						return color + label + ansiReset
					}
				}
			}
			return label
		}
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, WidthMax: 40},
		{Number: 3, WidthMax: 60},
		affiliated,
	})

	return tw.Render()
}
