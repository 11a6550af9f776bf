// Command csvop performs structural operations on CSV files: adding,
// dropping and selecting columns, and merging two tables side by side.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/vegasq/csvop/internal/table"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes the diagnostic for a failed command. A missing input
// gets a short message and a hint instead of the raw fs error.
func printError(w io.Writer, err error) {
	errorColor := color.New(color.FgRed, color.Bold)

	var fileErr *table.FileError
	if errors.As(err, &fileErr) {
		_, _ = errorColor.Fprintf(w, "Error: file '%s' not found\n", fileErr.Path)
		_, _ = color.New(color.Faint).Fprintln(w, "Please check the file path and try again.")
		return
	}
	_, _ = errorColor.Fprintf(w, "Error: %v\n", err)
}
