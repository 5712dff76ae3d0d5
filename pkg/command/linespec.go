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

package command

import (
	"strconv"
	"strings"

	"github.com/walteh/changer/pkg/text"
	"github.com/walteh/changer/pkg/vocab"
)

// ParseLineSpecifier looks for modifier tokens and parses the word after
// each one. When several parse, the last one wins. With none, every line is
// targeted.
func (in *Interpreter) ParseLineSpecifier(tokens []Token) text.LineTarget {
	target := text.AllLines()
	for i, tok := range tokens {
		if tok.Role != vocab.RoleModifier || i+1 >= len(tokens) {
			continue
		}
		if t, ok := in.parseLineWord(tokens[i+1].Word); ok {
			target = t
		}
	}
	return target
}

// parseLineWord accepts "all", "3", "2,4,6" and "2-7".
func (in *Interpreter) parseLineWord(word string) (text.LineTarget, bool) {
	if in.allWords.Has(word) {
		return text.AllLines(), true
	}

	if strings.Contains(word, ",") {
		parts := strings.Split(word, ",")
		numbers := make([]int, 0, len(parts))
		for _, p := range parts {
			n, ok := parseLineNumber(p)
			if !ok {
				return text.LineTarget{}, false
			}
			numbers = append(numbers, n)
		}
		return text.Lines(numbers...), true
	}

	if first, last, found := strings.Cut(word, "-"); found {
		lo, ok := parseLineNumber(first)
		if !ok {
			return text.LineTarget{}, false
		}
		hi, ok := parseLineNumber(last)
		if !ok {
			return text.LineTarget{}, false
		}
		return text.LineRange(lo, hi), true
	}

	if n, ok := parseLineNumber(word); ok {
		return text.Lines(n), true
	}
	return text.LineTarget{}, false
}

// parseLineNumber accepts a non-empty run of ASCII digits that fits in an int.
func parseLineNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
