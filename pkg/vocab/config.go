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

package vocab

// Config is everything an interpreter and its sessions are built from.
type Config struct {
	Vocabulary   map[string]Role
	PseudoWords  []string // dropped before classification
	Splitters    []string // separate independent command segments
	AllWords     []string // "line <word>" meaning every line
	UndoWords    []string
	RecoverWords []string

	// HistoryCapacity bounds the undo stack. Zero means unbounded.
	HistoryCapacity int
}

// Default returns the built-in English and Indonesian vocabulary.
func Default() Config {
	return Config{
		Vocabulary: map[string]Role{
			"replace": RoleAction,
			"change":  RoleAction,
			"ganti":   RoleAction,
			"ubah":    RoleAction,
			"into":    RoleConnector,
			"to":      RoleConnector,
			"ke":      RoleConnector,
			"jadi":    RoleConnector,
			"menjadi": RoleConnector,
			"with":    RoleConnector,
			"line":    RoleModifier,
		},
		PseudoWords:  []string{"at", "please", "dong", "coba"},
		Splitters:    []string{"dan", "and"},
		AllWords:     []string{"all", "semua"},
		UndoWords:    []string{"undo", "ulang"},
		RecoverWords: []string{"recover"},
	}
}
