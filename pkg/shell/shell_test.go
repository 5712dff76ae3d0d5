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

package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/changer/pkg/vocab"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func TestShellRun(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		input    []string
		wantText string
		wantOut  []string
	}{
		{
			name:     "single_edit",
			initial:  "hello world",
			input:    []string{"replace world to there"},
			wantText: "hello there",
			wantOut:  []string{"1 replacement(s)", "hello there"},
		},
		{
			name:     "edit_then_undo_then_recover",
			initial:  "a b",
			input:    []string{"replace a to x", "undo", "recover"},
			wantText: "x b",
			wantOut:  []string{"undone", "recovered"},
		},
		{
			name:     "unrecognised",
			initial:  "a",
			input:    []string{"make it better"},
			wantText: "a",
			wantOut:  []string{"no command recognised"},
		},
		{
			name:     "undo_with_empty_history",
			initial:  "a",
			input:    []string{"undo"},
			wantText: "a",
			wantOut:  []string{"undo: nothing to change"},
		},
		{
			name:     "quit_stops_reading",
			initial:  "a",
			input:    []string{":quit", "replace a to b"},
			wantText: "a",
		},
		{
			name:     "meta_commands",
			initial:  "one\ntwo",
			input:    []string{":show", ":help", ":nope", ""},
			wantText: "one\ntwo",
			wantOut:  []string{"2 │ two", "connectors", "unknown meta command"},
		},
		{
			name:     "clear_forgets_history",
			initial:  "a b",
			input:    []string{"replace a to x", ":clear", "undo"},
			wantText: "x b",
			wantOut:  []string{"undo history cleared", "undo: nothing to change"},
		},
		{
			name:     "write_without_path",
			initial:  "a",
			input:    []string{":w"},
			wantText: "a",
			wantOut:  []string{"write failed", "no file to write to"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strings.NewReader(strings.Join(tt.input, "\n") + "\n")
			out := &bytes.Buffer{}
			ctx := zerolog.New(zerolog.TestWriter{T: t}).WithContext(context.Background())

			sh := New(vocab.Default(), tt.initial, WithIO(in, out))
			require.NoError(t, sh.Run(ctx))

			assert.Equal(t, tt.wantText, sh.Text())
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestShellWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat"), 0600))

	in := strings.NewReader("replace cat to dog\n:write\n")
	out := &bytes.Buffer{}

	sh := New(vocab.Default(), "cat", WithIO(in, out), WithPath(path))
	require.NoError(t, sh.Run(context.Background()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dog", string(b))
	assert.Contains(t, out.String(), "wrote "+path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "permissions are kept")
}

func TestShellCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sh := New(vocab.Default(), "", WithIO(strings.NewReader("x\n"), &bytes.Buffer{}))
	err := sh.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shell cancelled")
}

func TestHelp(t *testing.T) {
	help := Help(vocab.Default())
	assert.Contains(t, help, "actions     change, ganti, replace, ubah")
	assert.Contains(t, help, "connectors  into, jadi, ke, menjadi, to, with")
	assert.Contains(t, help, ":quit")
	assert.Contains(t, help, ":clear")
}
