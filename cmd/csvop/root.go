package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vegasq/csvop/internal/config"
	"github.com/vegasq/csvop/internal/logging"
	"github.com/vegasq/csvop/internal/ops"
	"github.com/vegasq/csvop/internal/output"
)

// newRootCmd builds the command tree. Prompts are read from in; announcements,
// summaries and prompts go to out; logs go to errOut.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var runner *ops.Runner

	root := &cobra.Command{
		Use:   "csvop",
		Short: "Perform operations on CSV files",
		Long: `csvop performs structural operations on CSV files.

Columns can be inserted, removed or sliced by position, and two files can be
merged side by side. Parquet (.parquet) and Excel (.xlsx) inputs are read as
well; output is always CSV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel(), cfg.LogFormat)
			logger.Debug("configuration loaded", "assume_yes", cfg.AssumeYes, "command", cmd.Name())

			policy := cfg.Policy(cmd.InOrStdin(), cmd.OutOrStdout())
			runner = ops.NewRunner(cmd.OutOrStdout(), output.NewWriter(policy, logger), logger)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	config.RegisterFlags(root.PersistentFlags())

	get := func() *ops.Runner { return runner }
	root.AddCommand(
		newAddColumnCmd(get),
		newDropColumnCmd(get),
		newMergeCmd(get),
		newSelectCmd(get),
		newPreviewCmd(get),
	)

	return root
}
