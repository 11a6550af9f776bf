package table

// Row is one CSV record.
type Row []string

// Clone returns a copy of r that shares no backing array with it.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Insert returns a new row with value placed at index, shifting later cells
// right. An index past the end appends; a negative index counts from the end
// and clamps to the start.
func Insert(r Row, index int, value string) Row {
	index = clampIndex(index, len(r))

	out := make(Row, 0, len(r)+1)
	out = append(out, r[:index]...)
	out = append(out, value)
	out = append(out, r[index:]...)
	return out
}

// Remove returns a new row without the cell at index. A negative index counts
// from the end. The returned error is an *IndexError when index does not
// address a cell; ordinal is only used to label that error.
func Remove(r Row, ordinal, index int) (Row, error) {
	pos := index
	if pos < 0 {
		pos += len(r)
	}
	if pos < 0 || pos >= len(r) {
		return nil, &IndexError{Ordinal: ordinal, Index: index, Width: len(r)}
	}

	out := make(Row, 0, len(r)-1)
	out = append(out, r[:pos]...)
	out = append(out, r[pos+1:]...)
	return out, nil
}

// Slice returns a copy of the cells in [from, to). Bounds are clamped to the
// row and negative bounds count from the end, so Slice never fails; an empty
// range yields an empty row.
func Slice(r Row, from, to int) Row {
	from = clampIndex(from, len(r))
	to = clampIndex(to, len(r))
	if from >= to {
		return Row{}
	}
	return r[from:to].Clone()
}

// Concat returns the cells of left followed by the cells of right.
func Concat(left, right Row) Row {
	out := make(Row, 0, len(left)+len(right))
	out = append(out, left...)
	return append(out, right...)
}

// clampIndex maps a possibly negative position onto [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}
