package ops

import (
	"github.com/vegasq/csvop/internal/transform"
)

// SelectOptions configures Select. Bounds are zero-based and To is
// exclusive; negative bounds count from the end of each row.
type SelectOptions struct {
	Input  string
	Output string
	From   *int
	To     *int
}

// Select keeps a contiguous range of columns from every row.
func (r *Runner) Select(opts SelectOptions) error {
	src, header, err := r.openWithHeader(opts.Input)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	from, to := 0, len(header)
	if opts.From != nil {
		from = *opts.From
	}
	if opts.To != nil {
		to = *opts.To
	}

	r.printf("Selecting columns %d through %d\n", from, to-1)

	return r.write(src, opts.Output, header, transform.Slice{From: from, To: to})
}
