// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/kr/pretty"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/hindley/internal/service"
	"github.com/wdamron/hindley/parse"
	"github.com/wdamron/hindley/types"
)

const (
	promptMain = "λ> "
	promptCont = ".. "
)

const replHelp = `Enter an expression to type-check and evaluate it, or (def name expr) to define a name.

  :type EXPR      show the type of an expression
  :explain EXPR   show the constraints, substitution and type of an expression
  :ast EXPR       show the parsed expression tree
  :env            list the definitions in scope
  :help           show this message
  :quit           exit
`

func replCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive REPL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts)
		},
	}
}

func runREPL(cmd *cobra.Command, opts *options) error {
	a, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	r := &repl{session: a.session, out: out, styles: newReplStyles(isTerminal(out))}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := a.cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintln(out, "hindley "+version+" (:help for commands)")
	for {
		input, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))
		if r.handle(cmd.Context(), input) {
			return nil
		}
	}
}

// readInput reads lines until they form a complete program or command.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			return src, true
		}
		if _, err := parse.ParseProgram(src); parse.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

type replStyles struct {
	enabled bool
	typ     lipgloss.Style
	value   lipgloss.Style
	err     lipgloss.Style
	dim     lipgloss.Style
}

func newReplStyles(enabled bool) replStyles {
	return replStyles{
		enabled: enabled,
		typ:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		value:   lipgloss.NewStyle().Bold(true),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (s replStyles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

type repl struct {
	session *service.Session
	out     io.Writer
	styles  replStyles
}

// handle runs one complete input and reports whether the REPL should exit.
func (r *repl) handle(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, ":") {
		r.run(ctx, input)
		return false
	}
	command, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)
	switch command {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		fmt.Fprint(r.out, replHelp)
	case ":env":
		r.printEnv()
	case ":type", ":t":
		r.typeOf(arg)
	case ":explain", ":e":
		r.explain(arg)
	case ":ast":
		r.ast(arg)
	default:
		r.fail(errors.Errorf("unknown command %s (:help for commands)", command))
	}
	return false
}

func (r *repl) fail(err error) {
	fmt.Fprintln(r.out, r.styles.render(r.styles.err, "error: "+err.Error()))
}

func (r *repl) binding(name string, sc *types.Scheme) {
	fmt.Fprintln(r.out, name+" :: "+r.styles.render(r.styles.typ, sc.String()))
}

func (r *repl) run(ctx context.Context, input string) {
	res, err := r.session.Run(ctx, input)
	if err != nil {
		r.fail(err)
		return
	}
	for _, def := range res.Defs {
		r.binding(def.Name, def.Scheme)
	}
	if res.Value != nil {
		r.binding(r.styles.render(r.styles.value, res.Value.String()), res.Scheme)
	}
}

func (r *repl) typeOf(src string) {
	checked, err := r.session.Check(src)
	if err != nil {
		r.fail(err)
		return
	}
	if checked.Scheme == nil {
		r.fail(errors.New(":type expects an expression"))
		return
	}
	r.binding(src, checked.Scheme)
}

func (r *repl) explain(src string) {
	inf, err := r.session.Explain(src)
	if err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintln(r.out, r.styles.render(r.styles.dim, "constraints:"))
	for _, c := range inf.Constraints {
		fmt.Fprintln(r.out, "  "+c.String())
	}
	fmt.Fprintln(r.out, r.styles.render(r.styles.dim, "substitution:"))
	inf.Subst.Range(func(v types.Var, t types.Type) bool {
		fmt.Fprintln(r.out, "  "+v.Name+" := "+t.String())
		return true
	})
	fmt.Fprintln(r.out, r.styles.render(r.styles.dim, "type:")+" "+inf.Type.String())
	fmt.Fprintln(r.out, r.styles.render(r.styles.dim, "scheme:")+" "+r.styles.render(r.styles.typ, inf.Scheme.String()))
}

func (r *repl) ast(src string) {
	e, err := parse.ParseExpr(src)
	if err != nil {
		r.fail(err)
		return
	}
	fmt.Fprintln(r.out, pretty.Sprint(e))
}

func (r *repl) printEnv() {
	for _, b := range r.session.Bindings() {
		r.binding(b.Name, b.Scheme)
	}
}
