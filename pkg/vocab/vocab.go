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

// Package vocab holds the word tables that drive command interpretation.
package vocab

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Role is the grammatical category assigned to a word.
type Role int

const (
	RoleSubject   Role = iota // anything not in the vocabulary
	RoleAction                // starts an edit, e.g. "replace"
	RoleConnector             // separates from and to, e.g. "to"
	RoleModifier              // introduces a line specifier, e.g. "line"
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleAction:
		return "action"
	case RoleConnector:
		return "connector"
	case RoleModifier:
		return "modifier"
	default:
		return "subject"
	}
}

// ParseRole converts a role name into a Role.
func ParseRole(name string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "action":
		return RoleAction, nil
	case "connector":
		return RoleConnector, nil
	case "modifier":
		return RoleModifier, nil
	case "subject":
		return RoleSubject, nil
	}
	return RoleSubject, errors.Errorf("unknown role %q", name)
}

// Table maps lowercase words to roles. It is never mutated after NewTable.
type Table struct {
	words map[string]Role
}

// NewTable copies words into a new Table, lowercasing every key.
func NewTable(words map[string]Role) *Table {
	t := &Table{words: make(map[string]Role, len(words))}
	for w, r := range words {
		t.words[strings.ToLower(w)] = r
	}
	return t
}

// Lookup returns the role of word, or RoleSubject when the word is unknown.
func (t *Table) Lookup(word string) Role {
	if t == nil {
		return RoleSubject
	}
	if r, ok := t.words[word]; ok {
		return r
	}
	return RoleSubject
}

// WordSet is a set of lowercase words.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet, lowercasing and trimming every word.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether word is in the set. The caller lowercases.
func (s WordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}
