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
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsWordRune reports whether r is a word character: a letter, a digit or '_'.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// AtBoundary reports whether byte offset i of s sits between a word rune and
// a non-word rune (the start and end of s count as non-word).
func AtBoundary(s string, i int) bool {
	var before, after bool
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = IsWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = IsWordRune(r)
	}
	return before != after
}

// WholeWordIndexes returns the byte ranges of every non-overlapping
// occurrence of word in s that has a boundary on both ends, scanning left
// to right. With fold set the comparison ignores case.
func WholeWordIndexes(s, word string, fold bool) [][2]int {
	if word == "" {
		return nil
	}

	var out [][2]int
	for i := 0; i < len(s); {
		if end, ok := matchAt(s, i, word, fold); ok && AtBoundary(s, i) && AtBoundary(s, end) {
			out = append(out, [2]int{i, end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return out
}

// matchAt reports whether word occurs in s at byte offset i and where it ends.
func matchAt(s string, i int, word string, fold bool) (int, bool) {
	if !fold {
		if strings.HasPrefix(s[i:], word) {
			return i + len(word), true
		}
		return 0, false
	}

	j := i
	for _, wr := range word {
		if j >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[j:])
		if sr != wr && !strings.EqualFold(string(sr), string(wr)) {
			return 0, false
		}
		j += size
	}
	return j, true
}

// ReplaceWholeWord replaces every whole-word, case-sensitive occurrence of
// from in s with to. It returns the new string and the replacement count.
func ReplaceWholeWord(s, from, to string) (string, int) {
	idx := WholeWordIndexes(s, from, false)
	if len(idx) == 0 {
		return s, 0
	}

	var b strings.Builder
	b.Grow(len(s) + len(idx)*(len(to)-len(from)))
	last := 0
	for _, m := range idx {
		b.WriteString(s[last:m[0]])
		b.WriteString(to)
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String(), len(idx)
}

// SplitWholeWord splits s around every whole-word, case-insensitive
// occurrence of any of words, dropping the matches themselves.
func SplitWholeWord(s string, words []string) []string {
	var cuts [][2]int
	for i := 0; i < len(s); {
		end, ok := longestMatch(s, i, words)
		if ok {
			cuts = append(cuts, [2]int{i, end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}

	parts := make([]string, 0, len(cuts)+1)
	last := 0
	for _, c := range cuts {
		parts = append(parts, s[last:c[0]])
		last = c[1]
	}
	return append(parts, s[last:])
}

func longestMatch(s string, i int, words []string) (int, bool) {
	best, found := 0, false
	for _, w := range words {
		if w == "" {
			continue
		}
		end, ok := matchAt(s, i, w, true)
		if !ok || !AtBoundary(s, i) || !AtBoundary(s, end) {
			continue
		}
		if !found || end > best {
			best, found = end, true
		}
	}
	return best, found
}
