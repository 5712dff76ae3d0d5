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
	"strconv"
	"strings"
)

// Span is an inclusive run of 1-based line numbers.
type Span struct {
	First int
	Last  int
}

// LineTarget selects the lines an edit applies to. The zero value selects
// every line. A restricted target keeps its spans in the order given, so
// duplicates survive.
type LineTarget struct {
	spans      []Span
	restricted bool
}

// AllLines returns the unrestricted target.
func AllLines() LineTarget {
	return LineTarget{}
}

// Lines returns a target holding exactly the given line numbers.
func Lines(numbers ...int) LineTarget {
	t := LineTarget{restricted: true, spans: make([]Span, 0, len(numbers))}
	for _, n := range numbers {
		t.spans = append(t.spans, Span{First: n, Last: n})
	}
	return t
}

// LineRange returns the lines first through last. A descending range
// selects nothing.
func LineRange(first, last int) LineTarget {
	if first > last {
		return LineTarget{restricted: true}
	}
	return LineTarget{restricted: true, spans: []Span{{First: first, Last: last}}}
}

// IsAll reports whether the target places no restriction on lines.
func (t LineTarget) IsAll() bool {
	return !t.restricted
}

// Lines expands the target into line numbers in order. It is nil for AllLines.
func (t LineTarget) Lines() []int {
	if !t.restricted {
		return nil
	}
	out := []int{}
	for _, s := range t.spans {
		// stop on equality so a span ending at math.MaxInt cannot wrap
		for n := s.First; ; n++ {
			out = append(out, n)
			if n == s.Last {
				break
			}
		}
	}
	return out
}

// Contains reports whether line n is selected.
func (t LineTarget) Contains(n int) bool {
	if !t.restricted {
		return true
	}
	for _, s := range t.spans {
		if n >= s.First && n <= s.Last {
			return true
		}
	}
	return false
}

// String renders the target the way a user would type it.
func (t LineTarget) String() string {
	if !t.restricted {
		return "all"
	}
	if len(t.spans) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(t.spans))
	for _, s := range t.spans {
		if s.First == s.Last {
			parts = append(parts, strconv.Itoa(s.First))
			continue
		}
		parts = append(parts, strconv.Itoa(s.First)+"-"+strconv.Itoa(s.Last))
	}
	return strings.Join(parts, ",")
}
