package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/changer/cmd/changer/opts"
	"github.com/walteh/changer/pkg/shell"
)

// NewReplCmd creates the repl command
func NewReplCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Edit a buffer line by line",
		Long: `Repl starts an interactive shell over --file (or an empty buffer). Each
line is either a command run against the buffer or a meta command:
:show, :write, :help and :quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, err := readOptionalFile(file)
			if err != nil {
				return err
			}

			sh := shell.New(rootOpts.Vocab, initial,
				shell.WithPath(file),
				shell.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
			)
			return sh.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file to edit and :write to")

	return cmd
}
