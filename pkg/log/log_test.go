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
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileLine(symbol, path, count, status string) string {
	return strings.TrimSpace(fmt.Sprintf("    %s %-35s %-15s %-15s", symbol, path, count, status))
}

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), FileOperation{
					Path:         "notes.txt",
					Status:       "UPDATED",
					IsModified:   true,
					Replacements: 2,
				})
			},
			wantLogs: []string{
				fileLine("⟳", "notes.txt", "2 replaced", "UPDATED"),
			},
		},
		{
			name: "log_batch_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.StartBatchOperation(context.Background(), BatchOperation{
					Command: "replace cat to dog",
					Root:    "/tmp/test",
					Pattern: "**/*.txt",
				})
			},
			wantLogs: []string{
				"[applying /tmp/test]",
				"◆ replace cat to dog • **/*.txt",
			},
		},
		{
			name: "log_dry_run_batch",
			op: func(t *testing.T, logger *Logger) {
				logger.StartBatchOperation(context.Background(), BatchOperation{
					Command: "replace a to b",
					Root:    ".",
					Pattern: "*.md",
					DryRun:  true,
				})
			},
			wantLogs: []string{
				"[dry run .]",
				"◆ replace a to b • *.md",
			},
		},
		{
			name: "log_edit",
			op: func(t *testing.T, logger *Logger) {
				logger.LogEdit(context.Background(), EditOperation{Input: "replace a to b", Kind: "edit", Commands: 1, Replacements: 3, Changed: true})
				logger.LogEdit(context.Background(), EditOperation{Input: "undo", Kind: "undo", Changed: true})
				logger.LogEdit(context.Background(), EditOperation{Input: "undo", Kind: "undo"})
				logger.LogEdit(context.Background(), EditOperation{Input: "hello", Kind: "noop"})
			},
			wantLogs: []string{
				"› replace a to b (edit: 1 command(s), 3 replacement(s))",
				"› undo (undo)",
				"› undo (undo: no change)",
				"› hello (no command recognised)",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("applying edits")
			},
			wantLogs: []string{
				"changer • applying edits",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewWithZerolog(buf, zerolog.New(zerolog.TestWriter{T: t}))

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.InfoLevel)

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestBatchOperationCount(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	logger := NewWithZerolog(io.Discard, zerolog.Nop())
	ctx := context.Background()

	assert.Equal(t, 0, logger.EndBatchOperation(ctx), "no batch in progress")

	logger.StartBatchOperation(ctx, BatchOperation{Command: "c", Root: ".", Pattern: "*"})
	logger.LogFileOperation(ctx, FileOperation{Path: "a"})
	logger.LogFileOperation(ctx, FileOperation{Path: "b"})
	assert.Equal(t, 2, logger.EndBatchOperation(ctx))
}

func TestFileOperationFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "modified_file",
			op:   FileOperation{Path: "a.txt", Status: "UPDATED", IsModified: true, Replacements: 1},
			want: fileLine("⟳", "a.txt", "1 replaced", "UPDATED"),
		},
		{
			name: "dry_run_file",
			op:   FileOperation{Path: "a.txt", Status: "WOULD UPDATE", IsModified: true, IsSkipped: true, Replacements: 4},
			want: fileLine("~", "a.txt", "4 replaced", "WOULD UPDATE"),
		},
		{
			name: "failed_file",
			op:   FileOperation{Path: "a.txt", Status: "ERROR", Failed: true},
			want: fileLine("✗", "a.txt", "0 replaced", "ERROR"),
		},
		{
			name: "unchanged_file",
			op:   FileOperation{Path: "a.txt", Status: "no change"},
			want: fileLine("•", "a.txt", "0 replaced", "no change"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewWithZerolog(buf, zerolog.Nop())

			logger.LogFileOperation(context.Background(), tt.op)

			output := strings.TrimSpace(buf.String())
			assert.Equal(t, tt.want, output, "formatted output should match")
		})
	}
}
