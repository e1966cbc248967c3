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

// Package service combines parsing, inference and evaluation over a persistent session environment.
package service

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/wdamron/hindley"
	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/eval"
	"github.com/wdamron/hindley/parse"
	"github.com/wdamron/hindley/types"
)

// Session holds the types and values of every definition accepted so far.
//
// A Session is not safe for concurrent use; Fork creates an independent copy cheaply.
type Session struct {
	types     hindley.TypeEnv
	values    eval.Env
	evaluator eval.Evaluator
	logger    *slog.Logger
}

// Binding is a defined name and its type.
type Binding struct {
	Name   string
	Scheme *types.Scheme
}

// Checked is the result of type-checking a program.
type Checked struct {
	Program *ast.Program
	Defs    []Binding
	// Scheme is the type of the program body, or nil when the program has no body.
	Scheme *types.Scheme
	// Uses lists the session definitions referenced by the program body, in order of first use.
	Uses []string

	env hindley.TypeEnv
}

// Result is the outcome of running a program.
type Result struct {
	Checked
	// Value is the value of the program body, or nil when the program has no body.
	Value eval.Value
}

// NewSession creates a session and runs the prelude definitions within it.
func NewSession(ctx context.Context, prelude *ast.Program, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{types: hindley.NewTypeEnv(), values: eval.NewEnv(), logger: logger}
	if prelude == nil || len(prelude.Defs) == 0 {
		return s, nil
	}
	if _, err := s.runProgram(ctx, &ast.Program{Defs: prelude.Defs}); err != nil {
		return nil, errors.Wrap(err, "prelude")
	}
	logger.Debug("prelude loaded", "definitions", len(prelude.Defs))
	return s, nil
}

// Fork returns a copy of the session. Definitions added to either copy are not seen by the other.
func (s *Session) Fork() *Session {
	c := *s
	return &c
}

// SetMaxDepth bounds the nesting of function applications during evaluation.
func (s *Session) SetMaxDepth(depth int) { s.evaluator.MaxDepth = depth }

// Types returns the session's type-environment.
func (s *Session) Types() hindley.TypeEnv { return s.types }

// Bindings returns every definition in the session, sorted by name.
func (s *Session) Bindings() []Binding {
	var out []Binding
	s.types.Range(func(name string, sc *types.Scheme) bool {
		out = append(out, Binding{Name: name, Scheme: sc})
		return true
	})
	return out
}

func (s *Session) newContext() *hindley.InferenceContext {
	ti := hindley.NewContext()
	ti.SetLogger(s.logger)
	return ti
}

// Check parses src as a program and infers its types without changing the session.
func (s *Session) Check(src string) (*Checked, error) {
	prog, err := parse.ParseProgram(src)
	if err != nil {
		return nil, err
	}
	return s.checkProgram(prog)
}

func (s *Session) checkProgram(prog *ast.Program) (*Checked, error) {
	ti := s.newContext()
	checked := &Checked{Program: prog}
	env, err := ti.FoldDefinitions(s.types, prog.Defs, func(name string, sc *types.Scheme) {
		checked.Defs = append(checked.Defs, Binding{Name: name, Scheme: sc})
	})
	if err != nil {
		return nil, err
	}
	if prog.Body != nil {
		for _, name := range ast.FreeVars(prog.Body) {
			if _, ok := env.Lookup(name); ok {
				checked.Uses = append(checked.Uses, name)
			}
		}
		sc, err := ti.Infer(env, prog.Body)
		if err != nil {
			return nil, errors.Wrap(err, "program body")
		}
		checked.Scheme = sc
	}
	checked.env = env
	return checked, nil
}

// Explain parses src as a single expression and returns every intermediate inference result.
func (s *Session) Explain(src string) (*hindley.Inference, error) {
	e, err := parse.ParseExpr(src)
	if err != nil {
		return nil, err
	}
	return s.newContext().Explain(s.types, e)
}

// Run type-checks src as a program, evaluates its definitions and body, and adds the definitions to the session.
// Nothing is added when any step fails.
func (s *Session) Run(ctx context.Context, src string) (*Result, error) {
	prog, err := parse.ParseProgram(src)
	if err != nil {
		return nil, err
	}
	return s.runProgram(ctx, prog)
}

func (s *Session) runProgram(ctx context.Context, prog *ast.Program) (*Result, error) {
	checked, err := s.checkProgram(prog)
	if err != nil {
		return nil, err
	}
	values, v, err := s.evaluator.EvalProgram(ctx, s.values, prog)
	if err != nil {
		return nil, err
	}
	s.types, s.values = checked.env, values
	return &Result{Checked: *checked, Value: v}, nil
}
