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
	"fmt"

	"github.com/walteh/changer/pkg/text"
	"github.com/walteh/changer/pkg/vocab"
)

// Action is the kind of edit a command performs.
type Action int

const (
	ActionReplace Action = iota + 1
)

func (a Action) String() string {
	if a == ActionReplace {
		return "replace"
	}
	return "unknown"
}

// Command is a fully resolved edit. From and To are never empty.
type Command struct {
	Action Action
	From   string
	To     string
	Line   text.LineTarget
}

// Rule converts the command into a replacement rule for the edit engine.
func (c Command) Rule() text.ReplacementRule {
	return text.ReplacementRule{
		FromText: c.From,
		ToText:   c.To,
		Lines:    c.Line,
	}
}

func (c Command) String() string {
	return fmt.Sprintf("%s %q -> %q (lines: %s)", c.Action, c.From, c.To, c.Line)
}

// Resolve builds a Command from classified tokens. It needs an action, a
// connector (the rightmost one counts), a subject before the connector and a
// subject after it.
func (in *Interpreter) Resolve(tokens []Token) (Command, bool) {
	var action Action
	connector := -1
	for i, tok := range tokens {
		switch tok.Role {
		case vocab.RoleAction:
			action = ActionReplace
		case vocab.RoleConnector:
			connector = i
		}
	}
	if action == 0 || connector == -1 {
		return Command{}, false
	}

	from := firstSubject(tokens[:connector])
	to := firstSubject(tokens[connector+1:])
	if from == "" || to == "" {
		return Command{}, false
	}

	return Command{
		Action: action,
		From:   from,
		To:     to,
		Line:   in.ParseLineSpecifier(tokens),
	}, true
}

func firstSubject(tokens []Token) string {
	for _, tok := range tokens {
		if tok.Role == vocab.RoleSubject {
			return tok.Word
		}
	}
	return ""
}

// Rules resolves input and converts every command into a replacement rule.
func (in *Interpreter) Rules(input string) []text.ReplacementRule {
	cmds := in.Parse(input)
	rules := make([]text.ReplacementRule, len(cmds))
	for i, c := range cmds {
		rules[i] = c.Rule()
	}
	return rules
}
