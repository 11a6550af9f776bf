package reader

import (
	"errors"
	"io"

	"github.com/vegasq/csvop/internal/table"
)

// Zip pairs two sources positionally. Each Read returns the left row's cells
// followed by the right row's cells.
//
// By default Zip runs until both sources are exhausted; a side that has ended
// contributes no cells. With stopShorter set it ends as soon as either side
// runs out.
type Zip struct {
	left, right         RowReader
	leftDone, rightDone bool
	stopShorter         bool
	done                bool
}

// NewZip returns a Zip over left and right. Closing the Zip closes both.
func NewZip(left, right RowReader, stopShorter bool) *Zip {
	return &Zip{left: left, right: right, stopShorter: stopShorter}
}

// Read returns the next concatenated pair.
func (z *Zip) Read() (table.Row, error) {
	if z.done {
		return nil, io.EOF
	}

	l, err := z.next(z.left, &z.leftDone)
	if err != nil {
		return nil, err
	}
	r, err := z.next(z.right, &z.rightDone)
	if err != nil {
		return nil, err
	}

	if (z.leftDone && z.rightDone) || (z.stopShorter && (z.leftDone || z.rightDone)) {
		z.done = true
		return nil, io.EOF
	}
	return table.Concat(l, r), nil
}

func (z *Zip) next(src RowReader, done *bool) (table.Row, error) {
	if *done {
		return nil, nil
	}
	row, err := src.Read()
	if errors.Is(err, io.EOF) {
		*done = true
		return nil, nil
	}
	return row, err
}

// Close closes both sides, returning the first error.
func (z *Zip) Close() error {
	lerr := z.left.Close()
	rerr := z.right.Close()
	if lerr != nil {
		return lerr
	}
	return rerr
}
