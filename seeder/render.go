package seeder

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const dateLayout = time.DateOnly

// Tabular is a result set ready to be printed.
type Tabular struct {
	Columns []string
	Rows    [][]any
}

// tableStyle is psql-like; grid additionally separates every row.
func tableStyle(grid bool) table.Style {
	style := table.StyleDefault
	style.Format.Header = text.FormatDefault
	style.Options.SeparateRows = grid

	return style
}

// RenderTable writes tab to w.
func RenderTable(w io.Writer, tab Tabular, grid bool) error {
	tw := table.NewWriter()
	tw.SetStyle(tableStyle(grid))

	header := make(table.Row, 0, len(tab.Columns))
	for _, column := range tab.Columns {
		header = append(header, column)
	}
	tw.AppendHeader(header)

	rows := make([]table.Row, 0, len(tab.Rows))
	for _, values := range tab.Rows {
		row := make(table.Row, 0, len(values))
		for _, value := range values {
			row = append(row, FormatCell(value))
		}
		rows = append(rows, row)
	}
	tw.AppendRows(rows)

	_, err := fmt.Fprintln(w, tw.Render())

	return err
}

// FormatCell renders one scanned database value. Dates without a time of day print as YYYY-MM-DD.
func FormatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(dateLayout)
		}
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
