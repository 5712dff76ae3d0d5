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
	"strings"

	"github.com/walteh/changer/pkg/text"
	"github.com/walteh/changer/pkg/vocab"
)

// Token is a word annotated with its role.
type Token struct {
	Word string
	Role vocab.Role
}

// Segment splits input on whole-word, case-insensitive splitter words. The
// splitters are dropped; empty segments are kept.
func (in *Interpreter) Segment(input string) []string {
	return text.SplitWholeWord(input, in.splitters)
}

// Tokenize lowercases a segment, splits it on whitespace and removes
// pseudo words.
func (in *Interpreter) Tokenize(segment string) []string {
	fields := strings.Fields(strings.ToLower(segment))
	words := fields[:0]
	for _, f := range fields {
		if in.pseudoWords.Has(f) {
			continue
		}
		words = append(words, f)
	}
	return words
}

// Classify looks every word up in the vocabulary.
func (in *Interpreter) Classify(words []string) []Token {
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Word: w, Role: in.table.Lookup(w)}
	}
	return tokens
}
