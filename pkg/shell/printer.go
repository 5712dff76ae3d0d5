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

package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/changer/pkg/session"
)

// 📢 printer gives user-friendly feedback about what each command did
type printer struct {
	out io.Writer
	log zerolog.Logger // for debug/error logging
}

func newPrinter(out io.Writer, log zerolog.Logger) *printer {
	return &printer{out: out, log: log}
}

// 📝 outcome reports the result of a command with an emoji per kind
func (p *printer) outcome(input string, o session.Outcome) {
	var pp *pterm.PrefixPrinter
	var msg string
	switch {
	case o.Kind == session.KindNoop:
		pp = pterm.Warning.WithPrefix(pterm.Prefix{Text: "🤷"})
		msg = fmt.Sprintf("no command recognised in %q", input)
	case o.Kind == session.KindUndo && o.Changed:
		pp = pterm.Info.WithPrefix(pterm.Prefix{Text: "↩️"})
		msg = "undone"
	case o.Kind == session.KindRecover && o.Changed:
		pp = pterm.Info.WithPrefix(pterm.Prefix{Text: "↪️"})
		msg = "recovered"
	case !o.Changed:
		pp = pterm.Info.WithPrefix(pterm.Prefix{Text: "⏭️"})
		msg = fmt.Sprintf("%s: nothing to change", o.Kind)
	default:
		pp = pterm.Success.WithPrefix(pterm.Prefix{Text: "✏️"})
		parts := make([]string, len(o.Commands))
		for i, c := range o.Commands {
			parts[i] = c.String()
		}
		msg = fmt.Sprintf("%d replacement(s): %s", o.Replacements, strings.Join(parts, "; "))
	}

	pp.WithWriter(p.out).Println(msg)
	p.log.Debug().Str("kind", o.Kind.String()).Bool("changed", o.Changed).Msg(msg)
}

// 📄 buffer prints text with line numbers
func (p *printer) buffer(text string) {
	for i, line := range strings.Split(text, "\n") {
		fmt.Fprintf(p.out, "%s %s\n", pterm.Gray(fmt.Sprintf("%4d │", i+1)), line)
	}
}

func (p *printer) info(msg string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).WithWriter(p.out).Println(msg)
	p.log.Debug().Msg(msg)
}

func (p *printer) success(msg string) {
	pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(p.out).Println(msg)
	p.log.Debug().Msg(msg)
}

func (p *printer) fail(msg string, err error) {
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(p.out).Println(msg)
	if err != nil {
		pterm.Error.WithWriter(p.out).Println(err)
	}
	p.log.Error().Err(err).Msg(msg)
}
