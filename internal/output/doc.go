// Package output writes transformed rows and renders previews.
//
// # Streaming Writer
//
// Writer is the read-transform-write loop shared by every command that
// produces a file. It pulls rows from a reader.RowReader one at a time,
// applies an optional transform.Transform, and encodes the result with
// encoding/csv:
//
//	w := output.NewWriter(confirm.AlwaysYes{}, logger)
//	summary, err := w.Write(src, "out.csv", header, transform.Drop{Index: 2})
//	if errors.Is(err, output.ErrOverwriteDeclined) {
//	    return nil
//	}
//	fmt.Println(summary)
//
// When the destination already exists the writer asks its confirm.Policy
// first. Output is not transactional: if a row fails midway, everything
// written before it stays on disk.
//
// # Preview Formatters
//
// Formatter implementations render a header plus a handful of rows for
// display:
//   - Table: aligned text table
//   - JSON Lines: one object per row keyed by header name
//   - CSV: rows exactly as they would be written to a file
package output
