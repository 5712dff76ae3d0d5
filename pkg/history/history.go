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

// Package history keeps whole-text snapshots for undo and recover.
package history

// History holds the undo stack (past snapshots) and the future stack
// (snapshots undone and available to recover). It is not safe for
// concurrent use; each editing session owns one.
type History struct {
	past     []string
	future   []string
	capacity int
}

// Option configures a History.
type Option func(*History)

// WithCapacity bounds the undo stack; the oldest snapshot is evicted once
// it is full. Zero or less means unbounded.
func WithCapacity(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.capacity = n
		}
	}
}

// New creates an empty History.
func New(opts ...Option) *History {
	h := &History{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Push records the text as it was before an edit and clears the future.
func (h *History) Push(snapshot string) {
	h.past = append(h.past, snapshot)
	h.future = nil

	if h.capacity > 0 && len(h.past) > h.capacity {
		excess := len(h.past) - h.capacity
		h.past = append([]string(nil), h.past[excess:]...)
	}
}

// Undo returns the most recent snapshot and remembers current so it can be
// recovered. With nothing to undo it returns current and false.
func (h *History) Undo(current string) (string, bool) {
	if len(h.past) == 0 {
		return current, false
	}
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, current)
	return prev, true
}

// Recover is the inverse of Undo. With nothing to recover it returns
// current and false.
func (h *History) Recover(current string) (string, bool) {
	if len(h.future) == 0 {
		return current, false
	}
	next := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, current)
	return next, true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRecover returns true if recover is available.
func (h *History) CanRecover() bool {
	return len(h.future) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return len(h.past)
}

// RecoverCount returns the number of recover operations available.
func (h *History) RecoverCount() int {
	return len(h.future)
}

// Clear removes all snapshots.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}
