package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/changer/cmd/changer/opts"
	"github.com/walteh/changer/pkg/log"
	"github.com/walteh/changer/pkg/session"
	"github.com/walteh/changer/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates the run command
func NewRunCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		file  string
		write bool
		diff  bool
	)

	cmd := &cobra.Command{
		Use:   "run [flags] COMMAND...",
		Short: "Run commands against a file or stdin",
		Long: `Run reads text from --file (or stdin) and runs every COMMAND against it
in order. Commands share one history, so "undo" and "recover" act on the
commands before them.

The final text is printed to stdout, or written back to --file with --write.`,
		Example: `  changer run --file notes.txt "replace colour to color"
  echo "a b" | changer run "replace a to x and change b to y" undo`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if write && file == "" {
				return errors.Errorf("--write needs --file")
			}

			original, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			logger := log.FromContext(ctx)
			sess := session.New(rootOpts.Vocab)
			current := original
			for _, input := range args {
				o := sess.Execute(ctx, input, current)
				current = o.Text
				logger.LogEdit(ctx, log.EditOperation{
					Input:        input,
					Kind:         o.Kind.String(),
					Commands:     len(o.Commands),
					Replacements: o.Replacements,
					Changed:      o.Changed,
				})
			}

			if diff {
				fmt.Fprint(cmd.OutOrStdout(), text.LineDiff(original, current))
			}

			if write {
				if current == original {
					return nil
				}
				info, err := os.Stat(file)
				if err != nil {
					return errors.Errorf("stat %s: %w", file, err)
				}
				if err := os.WriteFile(file, []byte(current), info.Mode().Perm()); err != nil {
					return errors.Errorf("writing %s: %w", file, err)
				}
				return nil
			}

			if !diff {
				fmt.Fprint(cmd.OutOrStdout(), current)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file to edit (default stdin)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to --file")
	cmd.Flags().BoolVar(&diff, "diff", false, "print a diff instead of the result")

	return cmd
}
