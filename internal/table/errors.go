package table

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when an input path does not exist or cannot be opened.
	ErrFileNotFound = errors.New("file not found")

	// ErrColumnNotFound is returned when a named column is not in the header.
	ErrColumnNotFound = errors.New("column not found")

	// ErrIndexOutOfRange is wrapped by IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned for malformed or conflicting options.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyInput is returned when a command needs a header but the input has no rows.
	ErrEmptyInput = errors.New("input has no header row")
)

// IndexError reports a row that is too short for an index-based operation.
type IndexError struct {
	Ordinal int // position of the row in the output stream
	Index   int // index as requested
	Width   int // number of cells in the row
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("row %d: index %d out of range for row with %d columns", e.Ordinal, e.Index, e.Width)
}

// Unwrap allows errors.Is(err, ErrIndexOutOfRange).
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// FileError reports an input path that could not be opened.
type FileError struct {
	Path string
	Err  error // underlying fs error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file '%s' not found: %v", e.Path, e.Err)
}

// Unwrap allows errors.Is against both ErrFileNotFound and the fs error.
func (e *FileError) Unwrap() []error {
	return []error{ErrFileNotFound, e.Err}
}
