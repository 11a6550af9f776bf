package reader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/vegasq/csvop/internal/table"
)

// XLSXSource streams the rows of the first worksheet in an Excel workbook.
// Trailing empty cells are not reported, so rows may be jagged.
type XLSXSource struct {
	book  *excelize.File
	rows  *excelize.Rows
	sheet string
}

// NewXLSXSource opens the workbook at path.
func NewXLSXSource(path string) (*XLSXSource, error) {
	file, err := openFile(path)
	if err != nil {
		return nil, err
	}

	book, err := excelize.OpenReader(file)
	_ = file.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		_ = book.Close()
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := book.Rows(sheets[0])
	if err != nil {
		_ = book.Close()
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return &XLSXSource{book: book, rows: rows, sheet: sheets[0]}, nil
}

// Sheet returns the name of the worksheet being read.
func (s *XLSXSource) Sheet() string {
	return s.sheet
}

// Read returns the next worksheet row.
func (s *XLSXSource) Read() (table.Row, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", s.sheet, err)
		}
		return nil, io.EOF
	}
	cells, err := s.rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", s.sheet, err)
	}
	if cells == nil {
		cells = []string{}
	}
	return table.Row(cells), nil
}

// Close releases the workbook.
func (s *XLSXSource) Close() error {
	if s.rows != nil {
		_ = s.rows.Close()
		s.rows = nil
	}
	if s.book != nil {
		err := s.book.Close()
		s.book = nil
		return err
	}
	return nil
}
