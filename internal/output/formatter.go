package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvop/internal/table"
)

// Formatter renders a header and a batch of rows for display.
type Formatter interface {
	// Format writes header followed by rows. A nil header is omitted.
	Format(header table.Row, rows []table.Row) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Supported preview formats.
const (
	FormatTable = "table"
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
)

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case FormatTable:
		return NewTableFormatter(w), nil
	case FormatJSONL, "json":
		return NewJSONFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: table, jsonl, csv)", name)
	}
}
