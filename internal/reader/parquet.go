package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/csvop/internal/table"
)

// ParquetSource reads a parquet file as rows of strings.
//
// The first row is the list of top-level column names from the file schema.
// Each later row is one record with its values rendered in schema order; a
// null value becomes an empty cell.
type ParquetSource struct {
	file    *os.File
	pqFile  *parquet.File
	reader  *parquet.Reader
	columns []string
	started bool
}

// NewParquetSource opens the parquet file at path.
//
// Returns an error if the file doesn't exist or is not a valid parquet file.
func NewParquetSource(path string) (*ParquetSource, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}

	return &ParquetSource{
		file:    file,
		pqFile:  pqFile,
		reader:  parquet.NewReader(pqFile),
		columns: columns,
	}, nil
}

// Columns returns the column names from the file schema.
func (s *ParquetSource) Columns() []string {
	return s.columns
}

// Read returns the schema header on the first call and one record per call
// after that.
func (s *ParquetSource) Read() (table.Row, error) {
	if !s.started {
		s.started = true
		return table.Row(s.columns).Clone(), nil
	}

	record := make(map[string]interface{})
	if err := s.reader.Read(&record); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	row := make(table.Row, len(s.columns))
	for i, col := range s.columns {
		row[i] = formatValue(record[col])
	}
	return row, nil
}

// Close releases the parquet reader and the file. It is safe to call Close
// multiple times.
func (s *ParquetSource) Close() error {
	if s.reader != nil {
		_ = s.reader.Close()
		s.reader = nil
	}
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}

// formatValue converts a parquet value to its cell text.
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
