package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vegasq/csvop/internal/table"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes header and rows as CSV records, unchanged.
func (c *CSVFormatter) Format(header table.Row, rows []table.Row) error {
	csvWriter := csv.NewWriter(c.writer)

	if header != nil {
		if err := csvWriter.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}
