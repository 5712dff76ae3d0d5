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

// Package command turns loosely worded edit commands into structured
// replacement commands.
//
//	raw input -> Segment -> Tokenize -> Classify -> Resolve -> []Command
//
// Nothing in this package returns an error: segments that cannot be
// resolved are dropped.
package command

import (
	"github.com/walteh/changer/pkg/vocab"
)

// Interpreter holds the immutable word tables for one configuration. It is
// safe for concurrent use.
type Interpreter struct {
	table       *vocab.Table
	pseudoWords vocab.WordSet
	splitters   []string
	allWords    vocab.WordSet
}

// New builds an Interpreter from cfg.
func New(cfg vocab.Config) *Interpreter {
	splitters := make([]string, 0, len(cfg.Splitters))
	for w := range vocab.NewWordSet(cfg.Splitters...) {
		splitters = append(splitters, w)
	}
	return &Interpreter{
		table:       vocab.NewTable(cfg.Vocabulary),
		pseudoWords: vocab.NewWordSet(cfg.PseudoWords...),
		splitters:   splitters,
		allWords:    vocab.NewWordSet(cfg.AllWords...),
	}
}

// Parse resolves every segment of input, keeping only the ones that form a
// complete command.
func (in *Interpreter) Parse(input string) []Command {
	var cmds []Command
	for _, seg := range in.Segment(input) {
		cmd, ok := in.Resolve(in.Classify(in.Tokenize(seg)))
		if !ok {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}
