package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvop/internal/table"
)

// TableFormatter outputs rows as an aligned text table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders header and rows. Short rows are padded with empty cells so
// the grid stays rectangular; the widest row decides the column count.
func (f *TableFormatter) Format(header table.Row, rows []table.Row) error {
	width := len(header)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	tw := tablewriter.NewWriter(f.writer)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	if header != nil {
		tw.SetHeader(pad(header, width))
	}
	for _, row := range rows {
		tw.Append(pad(row, width))
	}
	tw.Render()
	return nil
}

func pad(row table.Row, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}
