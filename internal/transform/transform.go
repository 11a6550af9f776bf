// Package transform holds the per-row rewrites applied by csvop commands.
//
// Each rewrite is a small immutable struct implementing Transform. The
// streaming writer calls Apply once per row, passing the row's position in
// the output stream; position 0 is the header whenever the command writes
// one.
package transform

import "github.com/vegasq/csvop/internal/table"

// Transform rewrites one row. Implementations must not modify row.
type Transform interface {
	Apply(ordinal int, row table.Row) (table.Row, error)
}

// Insert places Name into the header row and Value into every data row at
// Index.
type Insert struct {
	Index int
	Name  string
	Value string
}

// Apply implements Transform.
func (t Insert) Apply(ordinal int, row table.Row) (table.Row, error) {
	if ordinal == 0 {
		return table.Insert(row, t.Index, t.Name), nil
	}
	return table.Insert(row, t.Index, t.Value), nil
}

// Drop removes the cell at Index from every row.
type Drop struct {
	Index int
}

// Apply implements Transform. A row too short for Index yields a
// *table.IndexError.
func (t Drop) Apply(ordinal int, row table.Row) (table.Row, error) {
	return table.Remove(row, ordinal, t.Index)
}

// Slice keeps the cells in [From, To) of every row.
type Slice struct {
	From int
	To   int
}

// Apply implements Transform.
func (t Slice) Apply(_ int, row table.Row) (table.Row, error) {
	return table.Slice(row, t.From, t.To), nil
}
