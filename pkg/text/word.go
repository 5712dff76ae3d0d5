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

package text

import (
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const lineSeparator = "\n"

// WordReplacer implements TextReplacer using whole-word replacement
type WordReplacer struct{}

var _ TextReplacer = (*WordReplacer)(nil)

// NewWordReplacer creates a new WordReplacer
func NewWordReplacer() *WordReplacer {
	return &WordReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *WordReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}
	return r.Replace(string(originalContent), rules), nil
}

// Replace implements TextReplacer.Replace. Each rule sees the output of the
// one before it.
func (r *WordReplacer) Replace(text string, rules []ReplacementRule) *ReplacementResult {
	result := &ReplacementResult{
		OriginalContent: []byte(text),
	}

	current := text
	for _, rule := range rules {
		if rule.FromText == "" {
			continue
		}
		var n int
		current, n = r.Apply(rule, current)
		result.ReplacementCount += n
	}

	result.WasModified = current != text
	result.ModifiedContent = []byte(current)
	return result
}

// Apply runs a single rule against text and returns the new text along with
// the number of replacements made. Line numbers outside the text are skipped.
func (r *WordReplacer) Apply(rule ReplacementRule, text string) (string, int) {
	if rule.Lines.IsAll() {
		return ReplaceWholeWord(text, rule.FromText, rule.ToText)
	}

	lines := strings.Split(text, lineSeparator)
	total := 0
	for i := range lines {
		if !rule.Lines.Contains(i + 1) {
			continue
		}
		var count int
		lines[i], count = ReplaceWholeWord(lines[i], rule.FromText, rule.ToText)
		total += count
	}
	if total == 0 {
		return text, 0
	}
	return strings.Join(lines, lineSeparator), total
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *WordReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.ToText == "" {
			return errors.Errorf("rule %d: to_text is required", i)
		}
	}
	return nil
}
