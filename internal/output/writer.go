package output

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vegasq/csvop/internal/confirm"
	"github.com/vegasq/csvop/internal/reader"
	"github.com/vegasq/csvop/internal/table"
	"github.com/vegasq/csvop/internal/transform"
)

// ErrOverwriteDeclined is returned by Write when the destination exists and
// the confirmation policy said no. Nothing has been written.
var ErrOverwriteDeclined = errors.New("overwrite declined")

// Summary describes a finished write.
type Summary struct {
	Rows    int
	Columns int
	Path    string
}

// String renders the summary line printed after a command.
func (s Summary) String() string {
	return fmt.Sprintf("Wrote %d rows and %d columns to %s", s.Rows, s.Columns, s.Path)
}

// Writer streams rows into CSV output.
type Writer struct {
	policy confirm.Policy
	logger *slog.Logger
}

// NewWriter creates a writer that consults policy before replacing an
// existing file.
func NewWriter(policy confirm.Policy, logger *slog.Logger) *Writer {
	if policy == nil {
		policy = confirm.AlwaysNo{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{policy: policy, logger: logger}
}

// Write streams src into the file at dest.
//
// If header is non-nil it is transformed and written first as ordinal 0.
// A nil transform writes rows unchanged. If dest is an existing regular
// file the policy is asked before it is truncated; a refusal returns
// ErrOverwriteDeclined and leaves dest untouched.
func (w *Writer) Write(src reader.RowReader, dest string, header table.Row, t transform.Transform) (Summary, error) {
	if info, err := os.Stat(dest); err == nil && info.Mode().IsRegular() {
		ok, err := w.policy.Confirm(fmt.Sprintf("Overwrite %s?", dest))
		if err != nil {
			return Summary{}, fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		w.logger.Debug("overwrite confirmation", "path", dest, "approved", ok)
		if !ok {
			return Summary{}, ErrOverwriteDeclined
		}
	}

	file, err := os.Create(dest)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create output file: %w", err)
	}

	buf := bufio.NewWriter(file)
	summary, streamErr := w.Stream(buf, src, header, t)
	summary.Path = dest

	// rows written before a failure are kept
	flushErr := buf.Flush()
	closeErr := file.Close()

	if streamErr != nil {
		return summary, streamErr
	}
	if flushErr != nil {
		return summary, fmt.Errorf("failed to flush output file: %w", flushErr)
	}
	if closeErr != nil {
		return summary, fmt.Errorf("failed to close output file: %w", closeErr)
	}

	w.logger.Debug("write complete", "path", dest, "rows", summary.Rows, "columns", summary.Columns)
	return summary, nil
}

// Stream is the destination-agnostic loop behind Write. The column count is
// taken from the first row written and is not enforced on later rows.
func (w *Writer) Stream(out io.Writer, src reader.RowReader, header table.Row, t transform.Transform) (Summary, error) {
	csvWriter := csv.NewWriter(out)
	var summary Summary

	emit := func(row table.Row) error {
		if t != nil {
			var err error
			if row, err = t.Apply(summary.Rows, row); err != nil {
				return err
			}
		}
		if summary.Rows == 0 {
			summary.Columns = len(row)
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", summary.Rows, err)
		}
		summary.Rows++
		return nil
	}

	finish := func(err error) (Summary, error) {
		csvWriter.Flush()
		if ferr := csvWriter.Error(); ferr != nil && err == nil {
			err = fmt.Errorf("failed to flush CSV writer: %w", ferr)
		}
		return summary, err
	}

	if header != nil {
		if err := emit(header); err != nil {
			return finish(err)
		}
	}

	for {
		row, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return finish(err)
		}
		if err := emit(row); err != nil {
			return finish(err)
		}
	}

	return finish(nil)
}
