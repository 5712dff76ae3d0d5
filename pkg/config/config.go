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

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/changer/pkg/vocab"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📦 HistoryArgs configures the undo history
type HistoryArgs struct {
	Capacity int `json:"capacity" yaml:"capacity" toml:"capacity"` // Zero means unbounded
}

// 📚 Config represents the complete configuration. Nil lists fall back to
// the defaults; empty lists stay empty.
type Config struct {
	Vocabulary   map[string]string `json:"vocabulary,omitempty" yaml:"vocabulary,omitempty" toml:"vocabulary,omitempty"`
	PseudoWords  []string          `json:"pseudo_words,omitempty" yaml:"pseudo_words,omitempty" toml:"pseudo_words,omitempty"`
	Splitters    []string          `json:"splitters,omitempty" yaml:"splitters,omitempty" toml:"splitters,omitempty"`
	AllWords     []string          `json:"all_words,omitempty" yaml:"all_words,omitempty" toml:"all_words,omitempty"`
	UndoWords    []string          `json:"undo_words,omitempty" yaml:"undo_words,omitempty" toml:"undo_words,omitempty"`
	RecoverWords []string          `json:"recover_words,omitempty" yaml:"recover_words,omitempty" toml:"recover_words,omitempty"`
	History      *HistoryArgs      `json:"history,omitempty" yaml:"history,omitempty" toml:"history,omitempty"`
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	def := vocab.Default()
	words := make(map[string]string, len(def.Vocabulary))
	for w, r := range def.Vocabulary {
		words[w] = r.String()
	}
	return &Config{
		Vocabulary:   words,
		PseudoWords:  def.PseudoWords,
		Splitters:    def.Splitters,
		AllWords:     def.AllWords,
		UndoWords:    def.UndoWords,
		RecoverWords: def.RecoverWords,
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Int("vocabulary", len(cfg.Vocabulary)).
		Strs("splitters", cfg.Splitters).
		Msg("configuration loaded")

	return cfg, nil
}

// 🎯 LoadOrDefault loads path, or returns the defaults when path is empty
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(ctx, path)
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	for word, role := range cfg.Vocabulary {
		if err := checkWord("vocabulary", word); err != nil {
			return err
		}
		if _, err := vocab.ParseRole(role); err != nil {
			return errors.Errorf("vocabulary.%s: %w", word, err)
		}
	}

	lists := []struct {
		name  string
		words []string
	}{
		{"pseudo_words", cfg.PseudoWords},
		{"splitters", cfg.Splitters},
		{"all_words", cfg.AllWords},
		{"undo_words", cfg.UndoWords},
		{"recover_words", cfg.RecoverWords},
	}
	for _, l := range lists {
		for _, w := range l.words {
			if err := checkWord(l.name, w); err != nil {
				return err
			}
		}
	}

	undo := vocab.NewWordSet(cfg.UndoWords...)
	for _, w := range cfg.RecoverWords {
		if undo.Has(strings.ToLower(strings.TrimSpace(w))) {
			return errors.Errorf("%q is both an undo word and a recover word", w)
		}
	}

	if cfg.History != nil && cfg.History.Capacity < 0 {
		return errors.Errorf("history.capacity must not be negative")
	}

	return nil
}

func checkWord(field, word string) error {
	w := strings.TrimSpace(word)
	if w == "" {
		return errors.Errorf("%s: empty word", field)
	}
	if strings.ContainsAny(w, " \t\r\n") {
		return errors.Errorf("%s: %q must be a single word", field, word)
	}
	return nil
}

// 🔄 Vocab converts the configuration into a vocab.Config, filling unset
// fields from the defaults. Call Validate first.
func (cfg *Config) Vocab() vocab.Config {
	def := vocab.Default()
	out := vocab.Config{
		Vocabulary:   def.Vocabulary,
		PseudoWords:  orDefault(cfg.PseudoWords, def.PseudoWords),
		Splitters:    orDefault(cfg.Splitters, def.Splitters),
		AllWords:     orDefault(cfg.AllWords, def.AllWords),
		UndoWords:    orDefault(cfg.UndoWords, def.UndoWords),
		RecoverWords: orDefault(cfg.RecoverWords, def.RecoverWords),
	}

	if cfg.Vocabulary != nil {
		out.Vocabulary = make(map[string]vocab.Role, len(cfg.Vocabulary))
		for w, r := range cfg.Vocabulary {
			role, err := vocab.ParseRole(r)
			if err != nil {
				continue
			}
			out.Vocabulary[strings.TrimSpace(w)] = role
		}
	}

	if cfg.History != nil {
		out.HistoryCapacity = cfg.History.Capacity
	}
	return out
}

func orDefault(words, def []string) []string {
	if words == nil {
		return def
	}
	return words
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	capacity := "unbounded"
	if cfg.History != nil && cfg.History.Capacity > 0 {
		capacity = fmt.Sprint(cfg.History.Capacity)
	}
	return fmt.Sprintf("%d words, splitters=%v, history=%s", len(cfg.Vocabulary), cfg.Splitters, capacity)
}
