package reader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/csvop/internal/table"
)

// RowReader yields rows one at a time. Read returns io.EOF after the last
// row.
type RowReader interface {
	Read() (table.Row, error)
	Close() error
}

// Open returns the source for path, picked by file extension.
//
// A missing or unreadable path yields a *table.FileError, which wraps both
// table.ErrFileNotFound and the underlying fs error.
func Open(path string, logger *slog.Logger) (RowReader, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ext := strings.ToLower(filepath.Ext(path))
	logger.Debug("opening input", "path", path, "format", formatName(ext))

	switch ext {
	case ".parquet":
		src, err := NewParquetSource(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("parquet schema", "path", path, "columns", src.Columns())
		return src, nil
	case ".xlsx":
		src, err := NewXLSXSource(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("reading worksheet", "path", path, "sheet", src.Sheet())
		return src, nil
	default:
		return NewCSVSource(path)
	}
}

func formatName(ext string) string {
	switch ext {
	case ".parquet":
		return "parquet"
	case ".xlsx":
		return "xlsx"
	default:
		return "csv"
	}
}

// openFile opens path for reading, tagging failures as ErrFileNotFound.
func openFile(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &table.FileError{Path: path, Err: err}
	}
	return file, nil
}

// ReadHeader reads the first row of src. An empty source yields
// table.ErrEmptyInput.
func ReadHeader(src RowReader) (table.Row, error) {
	header, err := src.Read()
	if errors.Is(err, io.EOF) {
		return nil, table.ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	return header, nil
}
