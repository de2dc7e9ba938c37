package formatter

import (
	"fmt"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTableWriter creates and configures new table writer.
func newTableWriter(opts Opts) table.Writer {
	t := table.NewWriter()
	if !opts.Graphics {
		t.SetStyle(table.Style{Box: StyleWithoutGraphics})
	}

	return t
}

// handleColumnWidth handles width max value for tables columns.
func handleColumnWidth(t table.Writer, columns int, opts Opts) {
	colWidthTransformer := text.Transformer(func(val interface{}) string {
		str := fmt.Sprintf("%v", val)
		widthMax := opts.ColumnWidthMax
		if utf8.RuneCountInString(str) > widthMax {
			first := string([]rune(str)[:widthMax])
			remaining := string([]rune(str)[widthMax:])
			return first + "+" + text.InsertEveryN(remaining, '+', widthMax-1)
		}
		return str
	})

	var configs []table.ColumnConfig
	for i := 1; i <= columns; i++ {
		configs = append(configs,
			table.ColumnConfig{
				Number:      i,
				Transformer: colWidthTransformer,
				WidthMax:    opts.ColumnWidthMax,
			},
		)
	}
	t.SetColumnConfigs(configs)
}

// RenderTable renders rows under the header in the dialect set in opts.
func RenderTable(header []string, rows [][]string, opts Opts) string {
	t := newTableWriter(opts)

	headerRow := make(table.Row, 0, len(header))
	for _, title := range header {
		headerRow = append(headerRow, title)
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tableRow := make(table.Row, 0, len(row))
		for _, cell := range row {
			tableRow = append(tableRow, cell)
		}
		t.AppendRow(tableRow)
	}

	if opts.ColumnWidthMax > 0 {
		handleColumnWidth(t, len(header), opts)
	}

	if opts.TableDialect == MarkdownTableDialect {
		return t.RenderMarkdown() + "\n"
	}
	return t.Render() + "\n"
}
