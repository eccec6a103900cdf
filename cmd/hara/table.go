package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"hara/internal/catalog"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// titleWidthMax wraps long titles so tables stay readable in a terminal.
const titleWidthMax = 60

type column struct {
	header   string
	align    columnAlignment
	widthMax int
}

func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.header
		align := text.AlignLeft
		if col.align == alignRight {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			WidthMax:    col.widthMax,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}

func renderPaperTable(papers catalog.Catalog) string {
	columns := []column{
		{header: "#", align: alignRight},
		{header: "ID"},
		{header: "Subject"},
		{header: "Title", widthMax: titleWidthMax},
	}
	rows := make([][]string, 0, len(papers))
	for i, rec := range papers {
		rows = append(rows, []string{strconv.Itoa(i + 1), rec.ID, rec.Subject, rec.Title})
	}
	return renderTable(columns, rows)
}
