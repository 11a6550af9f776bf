package ops

import (
	"github.com/vegasq/csvop/internal/transform"
)

// AddColumnOptions configures AddColumn.
type AddColumnOptions struct {
	Input  string
	Output string

	// Index is where the column goes; nil appends after the last header cell.
	Index *int

	// Name is the header cell for the new column.
	Name string

	// Default fills the new column in every data row.
	Default string
}

// AddColumn inserts a column into every row of the input.
func (r *Runner) AddColumn(opts AddColumnOptions) error {
	src, header, err := r.openWithHeader(opts.Input)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	index := len(header)
	if opts.Index != nil {
		index = *opts.Index
	}

	r.printf("Adding column \"%s\" at index %d with default value \"%s\"\n", opts.Name, index, opts.Default)

	t := transform.Insert{Index: index, Name: opts.Name, Value: opts.Default}
	return r.write(src, opts.Output, header, t)
}
