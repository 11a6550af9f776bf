package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vegasq/csvop/internal/ops"
	"github.com/vegasq/csvop/internal/output"
	"github.com/vegasq/csvop/internal/table"
)

type runnerFunc func() *ops.Runner

// optionalInt returns a pointer to the flag's value, or nil if it was not set.
func optionalInt(cmd *cobra.Command, name string) (*int, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", table.ErrInvalidArgument, err)
	}
	return &v, nil
}

func newAddColumnCmd(runner runnerFunc) *cobra.Command {
	var opts ops.AddColumnOptions

	cmd := &cobra.Command{
		Use:   "addcolumn INPUT_CSV OUTPUT_CSV",
		Short: "Insert a column",
		Example: `  csvop addcolumn in.csv out.csv --name total --default 0
  csvop addcolumn in.csv out.csv --index 1 --name x`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := optionalInt(cmd, "index")
			if err != nil {
				return err
			}
			opts.Input, opts.Output, opts.Index = args[0], args[1], index
			return runner().AddColumn(opts)
		},
	}

	cmd.Flags().IntP("index", "i", 0, "The index to insert the column (last by default)")
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "The name of the column to add (empty by default)")
	cmd.Flags().StringVarP(&opts.Default, "default", "d", "", "The default cell value")
	return cmd
}

func newDropColumnCmd(runner runnerFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dropcolumn INPUT_CSV OUTPUT_CSV (--name NAME | --index INDEX)",
		Short: "Remove a column",
		Example: `  csvop dropcolumn in.csv out.csv --name price
  csvop dropcolumn in.csv out.csv --index 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ops.DropColumnOptions{Input: args[0], Output: args[1]}

			if cmd.Flags().Changed("name") {
				name, _ := cmd.Flags().GetString("name")
				opts.Name = &name
			}
			index, err := optionalInt(cmd, "index")
			if err != nil {
				return err
			}
			opts.Index = index

			return runner().DropColumn(opts)
		},
	}

	cmd.Flags().StringP("name", "n", "", "The name of the column to remove")
	cmd.Flags().IntP("index", "i", 0, "The position of the column to remove (0-indexed)")
	return cmd
}

func newMergeCmd(runner runnerFunc) *cobra.Command {
	var opts ops.MergeOptions

	cmd := &cobra.Command{
		Use:   "merge LEFT_INPUT_CSV RIGHT_INPUT_CSV OUTPUT_CSV",
		Short: "Join two tables side by side, row by row",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Left, opts.Right, opts.Output = args[0], args[1], args[2]
			return runner().Merge(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.StopShorter, "stop-shorter", false, "Stop whenever the shorter file ends")
	return cmd
}

func newSelectCmd(runner runnerFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select INPUT_CSV OUTPUT_CSV",
		Short: "Select a range of columns by index",
		Example: `  csvop select in.csv out.csv --from 1 --to 3
  csvop select in.csv out.csv --from=-2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := optionalInt(cmd, "from")
			if err != nil {
				return err
			}
			to, err := optionalInt(cmd, "to")
			if err != nil {
				return err
			}
			return runner().Select(ops.SelectOptions{Input: args[0], Output: args[1], From: from, To: to})
		},
	}

	cmd.Flags().Int("from", 0, "The first column to keep (default 0; negative counts from the end)")
	cmd.Flags().Int("to", 0, "The column to stop before, exclusive (default: header width)")
	return cmd
}

func newPreviewCmd(runner runnerFunc) *cobra.Command {
	opts := ops.PreviewOptions{Rows: ops.DefaultPreviewRows, Format: output.FormatTable}

	cmd := &cobra.Command{
		Use:   "preview INPUT_CSV",
		Short: "Show the header and first rows of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return runner().Preview(opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Rows, "rows", "r", ops.DefaultPreviewRows, "Number of data rows to show (0 = all)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", output.FormatTable, "Output format: table, jsonl, csv")
	return cmd
}
