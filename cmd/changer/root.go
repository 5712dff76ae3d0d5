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
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/changer/cmd/changer/opts"
	"github.com/walteh/changer/pkg/config"
	"github.com/walteh/changer/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// loadRootOpts loads the config and builds the console logger
func loadRootOpts(ctx context.Context, rootOpts *opts.RootOpts, console io.Writer) error {
	cfg, err := config.LoadOrDefault(ctx, rootOpts.ConfigFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	rootOpts.Vocab = cfg.Vocab()
	zlog := zerolog.Nop()
	if rootOpts.Debug {
		zlog = *zerolog.Ctx(ctx)
	}
	rootOpts.Logger = log.NewWithZerolog(console, zlog)

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("loaded config")
	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, rootOpts *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&rootOpts.ConfigFile, "config", "c", "", "config file path (yaml, json, toml or hcl)")
	cmd.PersistentFlags().BoolVarP(&rootOpts.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags and returns a context
// carrying the logger
func setupLogging(ctx context.Context, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
	return logger.WithContext(ctx)
}
