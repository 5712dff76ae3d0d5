package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/changer/cmd/changer/opts"
	"github.com/walteh/changer/pkg/tui"
)

// NewTuiCmd creates the tui command
func NewTuiCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Edit a buffer in a full-screen editor",
		Long: `Tui opens --file (or an empty buffer) in a full-screen editor with a
command line below it. Enter runs the command line, tab switches focus
between the editor and the command line, ctrl+s saves, ctrl+h shows help
and ctrl+c quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			initial, err := readOptionalFile(file)
			if err != nil {
				return err
			}

			_, err = tui.Run(ctx, tui.NewModel(ctx, rootOpts.Vocab, initial, file))
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file to edit and save to")

	return cmd
}
