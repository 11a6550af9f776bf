package ops

import (
	"errors"
	"fmt"
	"io"

	"github.com/vegasq/csvop/internal/output"
	"github.com/vegasq/csvop/internal/table"
)

// DefaultPreviewRows is the number of data rows shown when none is given.
const DefaultPreviewRows = 10

// PreviewOptions configures Preview.
type PreviewOptions struct {
	Input string

	// Rows limits the data rows shown; 0 shows all of them.
	Rows int

	// Format is one of output.FormatTable, output.FormatJSONL, output.FormatCSV.
	Format string
}

// Preview prints the header and the first rows of the input.
func (r *Runner) Preview(opts PreviewOptions) error {
	if opts.Rows < 0 {
		return fmt.Errorf("%w: --rows must be non-negative, got %d", table.ErrInvalidArgument, opts.Rows)
	}
	formatter, err := output.NewFormatter(opts.Format, r.out)
	if err != nil {
		return fmt.Errorf("%w: %w", table.ErrInvalidArgument, err)
	}

	src, header, err := r.openWithHeader(opts.Input)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	var rows []table.Row
	for opts.Rows == 0 || len(rows) < opts.Rows {
		row, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", opts.Input, err)
		}
		rows = append(rows, row)
	}

	return formatter.Format(header, rows)
}
