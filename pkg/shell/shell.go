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

// Package shell is a line-oriented editor: every input line is either a
// meta command starting with ':' or a natural-language edit command run
// against the buffer.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/changer/pkg/session"
	"github.com/walteh/changer/pkg/vocab"
	"gitlab.com/tozd/go/errors"
)

const prompt = "› "

// Shell holds the buffer and session of one interactive run.
type Shell struct {
	cfg     vocab.Config
	session *session.Session
	text    string
	path    string
	in      io.Reader
	out     io.Writer
}

// Option configures a Shell.
type Option func(*Shell)

// WithIO sets where commands are read from and output goes to.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Shell) {
		s.in = in
		s.out = out
	}
}

// WithPath sets the file :write saves to.
func WithPath(path string) Option {
	return func(s *Shell) {
		s.path = path
	}
}

// WithSession replaces the session built from the vocabulary.
func WithSession(sess *session.Session) Option {
	return func(s *Shell) {
		s.session = sess
	}
}

// New creates a shell editing text.
func New(cfg vocab.Config, text string, opts ...Option) *Shell {
	s := &Shell{
		cfg:  cfg,
		text: text,
		in:   os.Stdin,
		out:  os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.session == nil {
		s.session = session.New(cfg)
	}
	return s
}

// Text returns the current buffer.
func (s *Shell) Text() string {
	return s.text
}

// Run reads lines until input ends or :quit is entered.
func (s *Shell) Run(ctx context.Context) error {
	p := newPrinter(s.out, *zerolog.Ctx(ctx))
	scanner := bufio.NewScanner(s.in)

	p.buffer(s.text)
	for {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("shell cancelled: %w", err)
		}
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			break
		}
		if s.handle(ctx, p, scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Errorf("reading input: %w", err)
	}
	return nil
}

// handle processes one line and reports whether the shell should stop.
func (s *Shell) handle(ctx context.Context, p *printer, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ":") {
		return s.meta(p, line)
	}

	o := s.session.Execute(ctx, line, s.text)
	s.text = o.Text
	p.outcome(line, o)
	if o.Changed {
		p.buffer(s.text)
	}
	return false
}

func (s *Shell) meta(p *printer, line string) bool {
	switch strings.ToLower(line) {
	case ":q", ":quit", ":exit":
		return true
	case ":show", ":s":
		p.buffer(s.text)
	case ":clear":
		s.session.History().Clear()
		p.info("undo history cleared")
	case ":help", ":h":
		fmt.Fprint(s.out, Help(s.cfg))
	case ":write", ":w":
		if err := s.write(); err != nil {
			p.fail("write failed", err)
			return false
		}
		p.success(fmt.Sprintf("wrote %s", s.path))
	default:
		p.fail(fmt.Sprintf("unknown meta command %q, try :help", line), nil)
	}
	return false
}

func (s *Shell) write() error {
	if s.path == "" {
		return errors.Errorf("no file to write to")
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(s.path, []byte(s.text), mode); err != nil {
		return errors.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Help describes the vocabulary and meta commands.
func Help(cfg vocab.Config) string {
	byRole := map[vocab.Role][]string{}
	for word, role := range cfg.Vocabulary {
		byRole[role] = append(byRole[role], word)
	}
	for _, words := range byRole {
		sort.Strings(words)
	}

	var sb strings.Builder
	sb.WriteString("commands look like: <action> <word> <connector> <word> [<modifier> <lines>]\n\n")
	fmt.Fprintf(&sb, "  actions     %s\n", strings.Join(byRole[vocab.RoleAction], ", "))
	fmt.Fprintf(&sb, "  connectors  %s\n", strings.Join(byRole[vocab.RoleConnector], ", "))
	fmt.Fprintf(&sb, "  modifiers   %s (3, 2,4 or 2-7)\n", strings.Join(byRole[vocab.RoleModifier], ", "))
	fmt.Fprintf(&sb, "  splitters   %s\n", strings.Join(cfg.Splitters, ", "))
	fmt.Fprintf(&sb, "  ignored     %s\n", strings.Join(cfg.PseudoWords, ", "))
	fmt.Fprintf(&sb, "  undo        %s\n", strings.Join(cfg.UndoWords, ", "))
	fmt.Fprintf(&sb, "  recover     %s\n", strings.Join(cfg.RecoverWords, ", "))
	sb.WriteString("\n  :show  print the buffer\n  :write save the buffer\n  :clear forget undo history\n  :help  this text\n  :quit  leave\n")
	return sb.String()
}
