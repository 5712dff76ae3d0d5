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

// Package session runs edit commands against a text buffer and keeps the
// undo/recover history of one editing session.
package session

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/changer/pkg/command"
	"github.com/walteh/changer/pkg/history"
	"github.com/walteh/changer/pkg/text"
	"github.com/walteh/changer/pkg/vocab"
)

// Kind says which branch a command took.
type Kind int

const (
	KindNoop    Kind = iota // nothing resolved
	KindEdit                // one or more replacement commands resolved
	KindUndo                // matched an undo word
	KindRecover             // matched a recover word
)

func (k Kind) String() string {
	switch k {
	case KindEdit:
		return "edit"
	case KindUndo:
		return "undo"
	case KindRecover:
		return "recover"
	default:
		return "noop"
	}
}

// Outcome describes what a single Execute call did.
type Outcome struct {
	Text         string
	Kind         Kind
	Commands     []command.Command
	Replacements int
	Changed      bool
}

// Session owns the history of one buffer. It is not safe for concurrent use.
type Session struct {
	interp       *command.Interpreter
	replacer     text.TextReplacer
	history      *history.History
	undoWords    vocab.WordSet
	recoverWords vocab.WordSet
}

// Option configures a Session.
type Option func(*Session)

// WithInterpreter shares an existing interpreter instead of building one.
func WithInterpreter(in *command.Interpreter) Option {
	return func(s *Session) {
		s.interp = in
	}
}

// WithReplacer swaps the edit engine.
func WithReplacer(r text.TextReplacer) Option {
	return func(s *Session) {
		s.replacer = r
	}
}

// WithHistory injects the history the session mutates.
func WithHistory(h *history.History) Option {
	return func(s *Session) {
		s.history = h
	}
}

// New creates a Session for cfg.
func New(cfg vocab.Config, opts ...Option) *Session {
	s := &Session{
		undoWords:    vocab.NewWordSet(cfg.UndoWords...),
		recoverWords: vocab.NewWordSet(cfg.RecoverWords...),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.interp == nil {
		s.interp = command.New(cfg)
	}
	if s.replacer == nil {
		s.replacer = text.NewWordReplacer()
	}
	if s.history == nil {
		s.history = history.New(history.WithCapacity(cfg.HistoryCapacity))
	}
	return s
}

// Run executes input against current and returns the resulting text.
func (s *Session) Run(ctx context.Context, input, current string) string {
	return s.Execute(ctx, input, current).Text
}

// Execute is Run with details about what happened.
func (s *Session) Execute(ctx context.Context, input, current string) Outcome {
	logger := zerolog.Ctx(ctx)
	key := strings.ToLower(strings.TrimSpace(input))

	switch {
	case s.undoWords.Has(key):
		out, ok := s.history.Undo(current)
		logger.Debug().Bool("applied", ok).Int("undo_left", s.history.UndoCount()).Msg("undo")
		return Outcome{Text: out, Kind: KindUndo, Changed: ok && out != current}
	case s.recoverWords.Has(key):
		out, ok := s.history.Recover(current)
		logger.Debug().Bool("applied", ok).Int("recover_left", s.history.RecoverCount()).Msg("recover")
		return Outcome{Text: out, Kind: KindRecover, Changed: ok && out != current}
	}

	cmds := s.interp.Parse(input)
	if len(cmds) == 0 {
		logger.Debug().Str("input", input).Msg("no command resolved")
		return Outcome{Text: current, Kind: KindNoop}
	}

	rules := make([]text.ReplacementRule, len(cmds))
	for i, c := range cmds {
		rules[i] = c.Rule()
	}
	result := s.replacer.Replace(current, rules)
	out := string(result.ModifiedContent)

	changed := out != current
	if changed {
		s.history.Push(current)
	}

	logger.Debug().
		Str("input", input).
		Int("commands", len(cmds)).
		Int("replacements", result.ReplacementCount).
		Bool("changed", changed).
		Msg("edit")

	return Outcome{
		Text:         out,
		Kind:         KindEdit,
		Commands:     cmds,
		Replacements: result.ReplacementCount,
		Changed:      changed,
	}
}

// Undo restores the previous snapshot, or returns current when there is none.
func (s *Session) Undo(current string) string {
	out, _ := s.history.Undo(current)
	return out
}

// Recover re-applies the last undone snapshot, or returns current when there
// is none.
func (s *Session) Recover(current string) string {
	out, _ := s.history.Recover(current)
	return out
}

// CanUndo returns true if undo is available.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRecover returns true if recover is available.
func (s *Session) CanRecover() bool {
	return s.history.CanRecover()
}

// History exposes the session's history for inspection.
func (s *Session) History() *history.History {
	return s.history
}

// Interpreter returns the interpreter the session parses with.
func (s *Session) Interpreter() *command.Interpreter {
	return s.interp
}
