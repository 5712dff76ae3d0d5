package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/changer/cmd/changer/opts"
	"github.com/walteh/changer/pkg/command"
	"github.com/walteh/changer/pkg/log"
	"github.com/walteh/changer/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates the apply command
func NewApplyCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		globs       []string
		root        string
		dryRun      bool
		async       bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "apply --glob PATTERN [flags] COMMAND...",
		Short: "Apply a command to every file matching a pattern",
		Long: `Apply resolves COMMAND once and runs it against every file below --root
that matches one of the --glob patterns. Patterns support ** for any
number of directories.

With --dry-run nothing is written and a diff of each change is printed.`,
		Example: `  changer apply --glob "docs/**/*.md" "replace colour to color"
  changer apply --glob "*.txt" --dry-run "ganti kucing jadi anjing"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			op, err := operation.NewApplyOperation(operation.Options{
				Interpreter: command.New(rootOpts.Vocab),
				Command:     strings.Join(args, " "),
				Root:        root,
				Patterns:    globs,
				DryRun:      dryRun,
				Async:       async,
				Concurrency: concurrency,
				Logger:      logger,
			})
			if err != nil {
				return errors.Errorf("creating apply operation: %w", err)
			}

			runErr := operation.NewRunner(nil, false, 0).Run(ctx, op)

			modified := 0
			for _, r := range op.Results() {
				if !r.Modified {
					continue
				}
				modified++
				if dryRun && r.Diff != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n%s", r.Path, r.Diff)
				}
			}

			if runErr != nil {
				return runErr
			}

			verb := "updated"
			if dryRun {
				verb = "would update"
			}
			logger.Successf("%s %d of %d file(s)", verb, modified, len(op.Results()))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&globs, "glob", "g", nil, "doublestar pattern relative to --root (repeatable)")
	cmd.Flags().StringVar(&root, "root", ".", "directory patterns are matched in")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print diffs without writing files")
	cmd.Flags().BoolVar(&async, "async", false, "process files concurrently")
	cmd.Flags().IntVar(&concurrency, "concurrency", 8, "maximum files processed at once with --async")
	_ = cmd.MarkFlagRequired("glob")

	return cmd
}
