package ops

import (
	"github.com/vegasq/csvop/internal/reader"
)

// MergeOptions configures Merge.
type MergeOptions struct {
	Left   string
	Right  string
	Output string

	// StopShorter ends the output when either input runs out. Otherwise
	// rows continue until both are exhausted.
	StopShorter bool
}

// Merge joins two inputs side by side, row i of Left followed by row i of
// Right. First rows are paired like any other; no header is assumed.
func (r *Runner) Merge(opts MergeOptions) error {
	left, err := reader.Open(opts.Left, r.logger)
	if err != nil {
		return err
	}

	right, err := reader.Open(opts.Right, r.logger)
	if err != nil {
		_ = left.Close()
		return err
	}

	zip := reader.NewZip(left, right, opts.StopShorter)
	defer func() { _ = zip.Close() }()

	return r.write(zip, opts.Output, nil, nil)
}
