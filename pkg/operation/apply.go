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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/changer/pkg/log"
	"github.com/walteh/changer/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// bytes inspected when deciding whether a file is binary
const sniffLen = 8000

// 📦 ApplyOperation runs one command against every file matched by a set of
// patterns
type ApplyOperation struct {
	opts    Options
	rules   []text.ReplacementRule
	results []FileResult
}

// Name implements Operation
func (op *ApplyOperation) Name() string {
	return "apply"
}

// Rules returns the replacement rules resolved from the command
func (op *ApplyOperation) Rules() []text.ReplacementRule {
	return op.rules
}

// Results returns the per-file outcomes of the last Execute, sorted by path
func (op *ApplyOperation) Results() []FileResult {
	return op.results
}

// 🚀 Execute matches files and applies the rules to each of them
func (op *ApplyOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	files, err := op.Match()
	if err != nil {
		return err
	}
	logger.Debug().Int("files", len(files)).Strs("patterns", op.opts.Patterns).Msg("matched files")

	op.opts.Logger.StartBatchOperation(ctx, log.BatchOperation{
		Command: op.opts.Command,
		Root:    op.opts.Root,
		Pattern: strings.Join(op.opts.Patterns, " "),
		DryRun:  op.opts.DryRun,
	})

	results := make([]FileResult, len(files))
	runner := NewRunner(logger, op.opts.Async, op.opts.Concurrency)
	err = runner.Each(ctx, len(files), func(ctx context.Context, i int) error {
		results[i] = op.processFile(ctx, files[i])
		op.logResult(ctx, results[i])
		return nil
	})
	op.opts.Logger.EndBatchOperation(ctx)
	op.results = results
	if err != nil {
		return err
	}

	var failed []string
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r.Path)
		}
	}
	if len(failed) > 0 {
		return errors.Errorf("%d file(s) failed: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

// 🔍 Match expands the patterns below the root. Paths are slash separated,
// relative to the root, unique and sorted.
func (op *ApplyOperation) Match() ([]string, error) {
	fsys := os.DirFS(op.opts.Root)
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range op.opts.Patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("matching pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// 📝 processFile applies the rules to a single file
func (op *ApplyOperation) processFile(ctx context.Context, rel string) FileResult {
	result := FileResult{Path: rel}
	path := filepath.Join(op.opts.Root, filepath.FromSlash(rel))

	info, err := os.Stat(path)
	if err != nil {
		result.Err = errors.Errorf("stat %s: %w", rel, err)
		return result
	}

	content, err := os.ReadFile(path)
	if err != nil {
		result.Err = errors.Errorf("reading %s: %w", rel, err)
		return result
	}

	if isBinary(content) {
		result.Binary = true
		return result
	}

	res, err := op.opts.Replacer.ReplaceText(ctx, bytes.NewReader(content), op.rules)
	if err != nil {
		result.Err = errors.Errorf("replacing in %s: %w", rel, err)
		return result
	}

	result.Replacements = res.ReplacementCount
	result.Modified = res.WasModified
	if !res.WasModified {
		return result
	}

	if op.opts.DryRun {
		result.Diff = text.LineDiff(string(res.OriginalContent), string(res.ModifiedContent))
		return result
	}

	if err := os.WriteFile(path, res.ModifiedContent, info.Mode().Perm()); err != nil {
		result.Err = errors.Errorf("writing %s: %w", rel, err)
	}
	return result
}

func (op *ApplyOperation) logResult(ctx context.Context, r FileResult) {
	fo := log.FileOperation{
		Path:         r.Path,
		Replacements: r.Replacements,
		IsModified:   r.Modified,
		IsSkipped:    op.opts.DryRun || r.Binary,
		Failed:       r.Err != nil,
	}
	switch {
	case r.Err != nil:
		fo.Status = "ERROR"
	case r.Binary:
		fo.Status = "binary"
	case r.Modified && op.opts.DryRun:
		fo.Status = "WOULD UPDATE"
	case r.Modified:
		fo.Status = "UPDATED"
	default:
		fo.Status = "no change"
	}
	op.opts.Logger.LogFileOperation(ctx, fo)
}

func isBinary(content []byte) bool {
	if len(content) > sniffLen {
		content = content[:sniffLen]
	}
	return bytes.IndexByte(content, 0) >= 0
}
