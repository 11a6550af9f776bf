package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/vegasq/csvop/internal/table"
)

// CSVSource reads records from a CSV file.
//
// Records may have differing numbers of fields. A leading byte-order mark is
// dropped so that the first header cell matches its plain name; input without
// one passes through byte for byte.
type CSVSource struct {
	file *os.File
	csv  *csv.Reader
}

// NewCSVSource opens the CSV file at path.
func NewCSVSource(path string) (*CSVSource, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}
	return &CSVSource{
		file: file,
		csv:  newCSVReader(file),
	}, nil
}

// NewCSVReader wraps an already open stream. The caller keeps ownership of r.
func NewCSVReader(r io.Reader) *CSVSource {
	return &CSVSource{csv: newCSVReader(r)}
}

func newCSVReader(r io.Reader) *csv.Reader {
	decoded := transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	return cr
}

// Read returns the next record.
func (s *CSVSource) Read() (table.Row, error) {
	record, err := s.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read csv record: %w", err)
	}
	return table.Row(record), nil
}

// Close releases the underlying file, if this source opened one.
func (s *CSVSource) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}
