package ops

import (
	"fmt"

	"github.com/vegasq/csvop/internal/table"
	"github.com/vegasq/csvop/internal/transform"
)

// DropColumnOptions configures DropColumn. Exactly one of Name and Index
// must be set.
type DropColumnOptions struct {
	Input  string
	Output string
	Name   *string
	Index  *int
}

// ref validates the options and returns the unresolved column reference.
func (o DropColumnOptions) ref() (table.Ref, error) {
	switch {
	case o.Name != nil && o.Index != nil:
		return table.Ref{}, fmt.Errorf("%w: --name and --index are mutually exclusive", table.ErrInvalidArgument)
	case o.Name != nil:
		return table.ByName(*o.Name), nil
	case o.Index != nil:
		return table.ByIndex(*o.Index), nil
	default:
		return table.Ref{}, fmt.Errorf("%w: one of --name or --index is required", table.ErrInvalidArgument)
	}
}

// DropColumn removes one column from every row of the input.
func (r *Runner) DropColumn(opts DropColumnOptions) error {
	ref, err := opts.ref()
	if err != nil {
		return err
	}

	src, header, err := r.openWithHeader(opts.Input)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	ref, err = table.Resolve(header, ref)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Input, err)
	}
	r.logger.Debug("resolved column", "ref", ref.String(), "index", ref.Index)

	if ref.Named {
		r.printf("Dropping column \"%s\" at index %d\n", ref.Name, ref.Index)
	} else {
		r.printf("Dropping column at index %d\n", ref.Index)
	}

	return r.write(src, opts.Output, header, transform.Drop{Index: ref.Index})
}
