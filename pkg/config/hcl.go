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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Role names may be written bare: replace = action
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"action":    cty.StringVal("action"),
			"connector": cty.StringVal("connector"),
			"modifier":  cty.StringVal("modifier"),
			"subject":   cty.StringVal("subject"),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		Vocabulary   map[string]string `hcl:"vocabulary,optional"`
		PseudoWords  []string          `hcl:"pseudo_words,optional"`
		Splitters    []string          `hcl:"splitters,optional"`
		AllWords     []string          `hcl:"all_words,optional"`
		UndoWords    []string          `hcl:"undo_words,optional"`
		RecoverWords []string          `hcl:"recover_words,optional"`
		History      *struct {
			Capacity int `hcl:"capacity,optional"`
		} `hcl:"history,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Vocabulary:   hclCfg.Vocabulary,
		PseudoWords:  hclCfg.PseudoWords,
		Splitters:    hclCfg.Splitters,
		AllWords:     hclCfg.AllWords,
		UndoWords:    hclCfg.UndoWords,
		RecoverWords: hclCfg.RecoverWords,
	}
	if hclCfg.History != nil {
		cfg.History = &HistoryArgs{Capacity: hclCfg.History.Capacity}
	}

	return cfg, nil
}
