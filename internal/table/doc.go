// Package table defines the row model shared by every csvop command.
//
// A Row is an ordered slice of string cells exactly as the CSV codec
// produced it. Rows are never required to have the same width; each row is
// handled on its own, so jagged input flows through unchanged.
//
// # Column References
//
// Commands that target a single column accept either a header name or a
// zero-based position. Both are expressed as a Ref and normalized with
// Resolve:
//
//	ref, err := table.Resolve(header, table.ByName("price"))
//	if err != nil {
//	    // errors.Is(err, table.ErrColumnNotFound)
//	}
//	fmt.Println(ref.Index)
//
// # Row Primitives
//
// Insert, Remove, Slice and Concat return new rows and leave their inputs
// untouched. Negative positions count from the end of the row.
package table
