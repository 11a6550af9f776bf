// Package ops implements the csvop commands.
//
// Each command opens its inputs, builds a transform and hands both to the
// streaming writer. Announcements and summaries are printed to the Runner's
// output; a declined overwrite ends the command quietly with a nil error.
package ops

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vegasq/csvop/internal/logging"
	"github.com/vegasq/csvop/internal/output"
	"github.com/vegasq/csvop/internal/reader"
	"github.com/vegasq/csvop/internal/table"
	"github.com/vegasq/csvop/internal/transform"
)

// Runner carries what every command needs.
type Runner struct {
	out    io.Writer
	writer *output.Writer
	logger *slog.Logger
}

// NewRunner returns a Runner printing to out and writing files through w.
func NewRunner(out io.Writer, w *output.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{out: out, writer: w, logger: logger}
}

func (r *Runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// write streams src into dest and prints the summary. A declined overwrite
// is not an error.
func (r *Runner) write(src reader.RowReader, dest string, header table.Row, t transform.Transform) error {
	summary, err := r.writer.Write(src, dest, header, t)
	if errors.Is(err, output.ErrOverwriteDeclined) {
		r.logger.Debug("output left unchanged", "path", dest)
		return nil
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	r.printf("%s\n", summary)
	return nil
}

// openWithHeader opens path and consumes its first row.
func (r *Runner) openWithHeader(path string) (reader.RowReader, table.Row, error) {
	src, err := reader.Open(path, r.logger)
	if err != nil {
		return nil, nil, err
	}
	header, err := reader.ReadHeader(src)
	if err != nil {
		_ = src.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	r.logger.Debug("read header", "path", path, "columns", len(header))
	return src, header, nil
}
