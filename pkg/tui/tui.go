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

// Package tui is a full-screen editor: a text area holding the buffer and a
// command line that runs natural-language edits against it.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/walteh/changer/pkg/session"
	"github.com/walteh/changer/pkg/shell"
	"github.com/walteh/changer/pkg/vocab"
	"gitlab.com/tozd/go/errors"
)

type focus int

const (
	focusCommand focus = iota
	focusEditor
)

// Model is the bubbletea model of the editor.
type Model struct {
	ctx      context.Context
	cfg      vocab.Config
	session  *session.Session
	path     string
	editor   textarea.Model
	command  textinput.Model
	focus    focus
	showHelp bool
	status   string
	quitting bool
}

// NewModel builds an editor over text. path is where ctrl+s saves and may be
// empty.
func NewModel(ctx context.Context, cfg vocab.Config, text, path string) Model {
	editor := textarea.New()
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.ShowLineNumbers = true
	editor.SetWidth(80)
	editor.SetHeight(16)
	editor.SetValue(text)
	editor.Blur()

	command := textinput.New()
	command.Placeholder = "replace this to that line 2"
	command.Prompt = "› "
	command.Width = 72
	command.Focus()

	return Model{
		ctx:     ctx,
		cfg:     cfg,
		session: session.New(cfg),
		path:    path,
		editor:  editor,
		command: command,
		focus:   focusCommand,
	}
}

// Text returns the editor contents.
func (m Model) Text() string {
	return m.editor.Value()
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch k := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor.SetWidth(max(k.Width-4, 20))
		m.editor.SetHeight(max(k.Height-8, 3))
		m.command.Width = max(k.Width-6, 20)
		return m, nil
	case tea.KeyMsg:
		if m.showHelp {
			return m.updateHelp(k)
		}
		return m.updateKeys(k)
	}
	return m.forward(msg)
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+h", "q":
		m.showHelp = false
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+h":
		m.showHelp = true
		return m, nil
	case "ctrl+s":
		if err := m.save(); err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("saved %s", m.path)
		}
		return m, nil
	case "tab":
		return m.toggleFocus()
	case "enter":
		if m.focus == focusCommand {
			return m.run(), nil
		}
	}
	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusEditor {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.command, cmd = m.command.Update(msg)
	}
	return m, cmd
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusCommand {
		m.focus = focusEditor
		m.command.Blur()
		return m, m.editor.Focus()
	}
	m.focus = focusCommand
	m.editor.Blur()
	return m, m.command.Focus()
}

// run executes the command line against the editor and clears it.
func (m Model) run() Model {
	input := strings.TrimSpace(m.command.Value())
	m.command.Reset()
	if input == "" {
		return m
	}

	o := m.session.Execute(m.ctx, input, m.editor.Value())
	if o.Changed {
		m.editor.SetValue(o.Text)
	}
	m.status = describe(input, o)
	return m
}

func (m Model) save() error {
	if m.path == "" {
		return errors.Errorf("no file to save to")
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(m.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(m.path, []byte(m.editor.Value()), mode); err != nil {
		return errors.Errorf("saving %s: %w", m.path, err)
	}
	return nil
}

func describe(input string, o session.Outcome) string {
	switch {
	case o.Kind == session.KindNoop:
		return fmt.Sprintf("no command recognised in %q", input)
	case !o.Changed:
		return fmt.Sprintf("%s: nothing to change", o.Kind)
	case o.Kind == session.KindEdit:
		return fmt.Sprintf("%d replacement(s)", o.Replacements)
	default:
		return o.Kind.String()
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return helpCardStyle.Render(strings.Join([]string{
			titleStyle.Render("changer help"),
			"",
			shell.Help(m.cfg),
			hintStyle.Render("[esc] close"),
		}, "\n"))
	}

	name := m.path
	if name == "" {
		name = "(unsaved)"
	}
	lines := []string{
		titleStyle.Render("changer") + " " + subtleStyle.Render(name),
		"",
		editorStyle.Render(m.editor.View()),
		m.command.View(),
		"",
		statusStyle.Render(m.status),
		hintStyle.Render("[enter] run  [tab] switch focus  [ctrl+s] save  [ctrl+h] help  [ctrl+c] quit"),
	}
	return strings.Join(lines, "\n")
}

// Run starts the editor and returns the final model.
func Run(ctx context.Context, m Model) (Model, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return m, errors.Errorf("running editor: %w", err)
	}
	out, ok := final.(Model)
	if !ok {
		return m, nil
	}
	return out, nil
}
