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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	countWidth  = 15 // Width for replacement count
	statusWidth = 15 // Width for status text
)

// 🎯 FileOperation represents one file touched by a batch edit
type FileOperation struct {
	Path         string // File path
	Status       string // Operation status
	IsModified   bool   // Whether the file content changed
	IsSkipped    bool   // Whether the file was left alone (dry run)
	Failed       bool   // Whether processing the file failed
	Replacements int    // Number of replacements made
}

// 📦 BatchOperation represents a command applied across many files
type BatchOperation struct {
	Command string // Raw command text
	Root    string // Directory the pattern is matched in
	Pattern string // Glob pattern
	DryRun  bool   // Whether files are left untouched
}

// ✏️ EditOperation represents one command run against a buffer
type EditOperation struct {
	Input        string // Raw command text
	Kind         string // edit, undo, recover or noop
	Commands     int    // Number of resolved commands
	Replacements int    // Number of replacements made
	Changed      bool   // Whether the buffer changed
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *BatchOperation
	operations []FileOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🏭 NewWithZerolog creates a logger that sends structured output to zlog
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.Failed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsModified && op.IsSkipped:
		symbol = '~'
		symbolColor = color.FgYellow
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	count := fmt.Sprintf("%d replaced", op.Replacements)

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", countWidth, count)),
		fmt.Sprintf("%-*s", statusWidth, op.Status))
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatFileOperation(op))

	l.zlog.Info().
		Str("file", op.Path).
		Str("status", op.Status).
		Bool("is_modified", op.IsModified).
		Bool("is_skipped", op.IsSkipped).
		Bool("failed", op.Failed).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 📝 StartBatchOperation starts a new batch operation
func (l *Logger) StartBatchOperation(ctx context.Context, op BatchOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	mode := "applying"
	if op.DryRun {
		mode = "dry run"
	}
	fmt.Fprintf(l.console, "[%s %s]\n", mode, color.New(color.FgCyan).Sprint(op.Root))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Command),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.Pattern))

	l.zlog.Info().
		Str("command", op.Command).
		Str("root", op.Root).
		Str("pattern", op.Pattern).
		Bool("dry_run", op.DryRun).
		Msg("starting batch operation")
}

// 📝 EndBatchOperation ends the current batch operation and returns the
// number of files it logged
func (l *Logger) EndBatchOperation(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return 0
	}

	n := len(l.operations)
	l.zlog.Info().
		Str("command", l.currentOp.Command).
		Int("files", n).
		Msg("batch operation complete")

	l.currentOp = nil
	l.operations = nil
	return n
}

// 📝 LogEdit logs the outcome of a single command
func (l *Logger) LogEdit(ctx context.Context, op EditOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var summary string
	var c *color.Color
	switch {
	case op.Kind == "noop":
		summary = "no command recognised"
		c = color.New(color.FgYellow)
	case !op.Changed:
		summary = fmt.Sprintf("%s: no change", op.Kind)
		c = color.New(color.Faint)
	case op.Kind == "edit":
		summary = fmt.Sprintf("edit: %d command(s), %d replacement(s)", op.Commands, op.Replacements)
		c = color.New(color.FgGreen)
	default:
		summary = op.Kind
		c = color.New(color.FgBlue)
	}
	fmt.Fprintf(l.console, "%s %s %s\n",
		color.New(color.FgMagenta).Sprint("›"),
		op.Input,
		c.Sprint("("+summary+")"))

	l.zlog.Info().
		Str("input", op.Input).
		Str("kind", op.Kind).
		Int("commands", op.Commands).
		Int("replacements", op.Replacements).
		Bool("changed", op.Changed).
		Msg("edit")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("changer")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
