// Package reader provides row sources for csvop commands.
//
// Every source yields table.Row values one at a time through the RowReader
// interface and reports io.EOF once exhausted. CSV and Parquet sources never
// buffer more than the row being returned, so commands run in constant memory
// no matter how large those inputs are. Excel workbooks are the exception:
// the whole .xlsx file is loaded when it is opened.
//
// # Supported Inputs
//
//   - CSV: any file not matched below, decoded with encoding/csv
//   - Parquet: files ending in .parquet; the first row is the column names
//     from the file schema
//   - Excel: files ending in .xlsx; rows come from the first sheet
//
// # Basic Usage
//
//	src, err := reader.Open("people.csv", logger)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	for {
//	    row, err := src.Read()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(row)
//	}
//
// # Pairing Sources
//
// Zip reads two sources in lockstep and concatenates their rows, which is
// how the merge command joins tables side by side.
package reader
