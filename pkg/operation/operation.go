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

package operation

import (
	"context"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/changer/pkg/command"
	"github.com/walteh/changer/pkg/log"
	"github.com/walteh/changer/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work the runner can execute
type Operation interface {
	Name() string
	Execute(ctx context.Context) error
}

// 🔧 Options configures an apply operation
type Options struct {
	// Interpreter turns the command into replacement rules
	Interpreter *command.Interpreter
	// Replacer applies the rules, defaults to text.NewWordReplacer
	Replacer text.TextReplacer
	// Command is the raw natural-language command
	Command string
	// Root is the directory patterns are matched in
	Root string
	// Patterns are doublestar globs relative to Root
	Patterns []string
	// DryRun leaves files untouched and records a diff instead
	DryRun bool
	// Async processes files concurrently
	Async bool
	// Concurrency caps concurrent files when Async is set
	Concurrency int
	// Logger receives one line per file, defaults to a discarding logger
	Logger *log.Logger
}

// 📄 FileResult is the outcome for one matched file
type FileResult struct {
	Path         string
	Replacements int
	Modified     bool
	Binary       bool
	Diff         string
	Err          error
}

// 🏭 NewApplyOperation validates opts and builds an operation
func NewApplyOperation(opts Options) (*ApplyOperation, error) {
	if opts.Interpreter == nil {
		return nil, errors.Errorf("interpreter is required")
	}
	if opts.Command == "" {
		return nil, errors.Errorf("command is required")
	}
	if len(opts.Patterns) == 0 {
		return nil, errors.Errorf("at least one pattern is required")
	}
	for _, p := range opts.Patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("invalid pattern %q", p)
		}
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewWordReplacer()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithZerolog(io.Discard, zerolog.Nop())
	}

	rules := opts.Interpreter.Rules(opts.Command)
	if len(rules) == 0 {
		return nil, errors.Errorf("no command recognised in %q", opts.Command)
	}
	if err := opts.Replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &ApplyOperation{
		opts:  opts,
		rules: rules,
	}, nil
}
