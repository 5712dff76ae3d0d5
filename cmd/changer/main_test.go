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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/changer/cmd/changer/opts"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(&opts.RootOpts{})
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		args        []string
		want        string
		wantErr     bool
		errContains string
	}{
		{
			name:  "stdin_to_stdout",
			stdin: "hello world\n",
			args:  []string{"run", "replace world to there"},
			want:  "hello there\n",
		},
		{
			name:  "several_commands_share_history",
			stdin: "a b",
			args:  []string{"run", "replace a to x", "change b to y", "undo"},
			want:  "x b",
		},
		{
			name:  "line_target",
			stdin: "cat\ncat\ncat",
			args:  []string{"run", "ganti cat jadi dog line 2-3"},
			want:  "cat\ndog\ndog",
		},
		{
			name:  "diff",
			stdin: "one\ntwo\n",
			args:  []string{"run", "--diff", "replace two to three"},
			want:  " one\n-two\n+three\n",
		},
		{
			name:  "unrecognised_leaves_text",
			stdin: "abc",
			args:  []string{"run", "please do nothing"},
			want:  "abc",
		},
		{
			name:        "write_needs_file",
			stdin:       "a",
			args:        []string{"run", "--write", "replace a to b"},
			wantErr:     true,
			errContains: "--write needs --file",
		},
		{
			name:    "needs_a_command",
			args:    []string{"run"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.stdin, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRunCommandWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("the cat and the catalog"), 0640))

	stdout, stderr, err := execute(t, "", "run", "--file", path, "--write", "replace cat to dog")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "edit: 1 command(s), 1 replacement(s)")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "the dog and the catalog", string(b))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
}

func TestRunCommandWithConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "changer.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
vocabulary:
  swap: action
  for: connector
splitters: [then]
`), 0644))

	stdout, _, err := execute(t, "a b", "--config", cfgPath, "run", "swap a for x then swap b for y")
	require.NoError(t, err)
	assert.Equal(t, "x y", stdout)

	_, _, err = execute(t, "a", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "run", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestApplyCommand(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "a.md"), []byte("colour\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.md"), []byte("colour\n"), 0644))

	stdout, _, err := execute(t, "", "apply", "--root", root, "--glob", "docs/**/*.md", "--dry-run", "replace", "colour", "to", "color")
	require.NoError(t, err)
	assert.Equal(t, "--- docs/a.md\n-colour\n+color\n", stdout)

	b, err := os.ReadFile(filepath.Join(root, "docs", "a.md"))
	require.NoError(t, err)
	assert.Equal(t, "colour\n", string(b), "dry run must not write")

	_, _, err = execute(t, "", "apply", "--root", root, "--glob", "**/*.md", "--async", "replace colour to color")
	require.NoError(t, err)
	for _, name := range []string{"docs/a.md", "b.md"} {
		b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
		require.NoError(t, err)
		assert.Equal(t, "color\n", string(b), name)
	}

	_, _, err = execute(t, "", "apply", "replace a to b")
	require.Error(t, err, "--glob is required")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "changer "), stdout)
}

func TestFormatVersion(t *testing.T) {
	got := FormatVersion(&VersionInfo{
		Version:   "v1.2.3",
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
		Revision:  "abc123",
		Time:      "2025-01-01T00:00:00Z",
		Modified:  true,
	})
	assert.Equal(t, "changer v1.2.3\nrevision: abc123 (modified)\nbuilt:    2025-01-01T00:00:00Z\ngo:       go1.24.0 linux/amd64\n", got)
}
