// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/changer/cmd/changer/commands"
	"github.com/walteh/changer/cmd/changer/opts"
	"github.com/walteh/changer/pkg/log"
)

func main() {
	rootOpts := &opts.RootOpts{}
	rootCmd := newRootCmd(rootOpts)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(os.Stderr).Println(err)
		os.Exit(1)
	}
}

func newRootCmd(rootOpts *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "changer",
		Short: "Edit text with natural-language commands",
		Long: `changer edits text with short natural-language commands such as
"replace cat to dog line 2" or "ganti kucing jadi anjing dan ubah a ke b".
Commands can be run once, applied across many files, or typed into an
interactive shell with undo and recover.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), rootOpts.Debug)
			if err := loadRootOpts(ctx, rootOpts, cmd.ErrOrStderr()); err != nil {
				return err
			}
			cmd.SetContext(log.NewContext(ctx, rootOpts.Logger))
			return nil
		},
	}

	addRootFlags(rootCmd, rootOpts)

	rootCmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewApplyCmd(rootOpts),
		commands.NewReplCmd(rootOpts),
		commands.NewTuiCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}
