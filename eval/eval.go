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

// Package eval evaluates expressions with call-by-value semantics.
//
// Evaluation does not check types. Applying a primitive to values of the wrong shape, branching on a
// non-boolean, or applying a non-function produce a *RuntimeError; type-checked expressions never do.
package eval

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/wdamron/hindley/ast"
)

// DefaultMaxDepth bounds the nesting of function applications during evaluation.
const DefaultMaxDepth = 10000

// RuntimeError is returned when evaluation cannot proceed.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return "runtime error: " + e.Msg }

func runtimeErrorf(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}

// Evaluator holds the limits applied during evaluation. The zero value uses DefaultMaxDepth.
type Evaluator struct {
	MaxDepth int
}

type machine struct {
	ctx      context.Context
	depth    int
	maxDepth int
}

// Eval evaluates e within env using the default limits.
func Eval(ctx context.Context, env Env, e ast.Expr) (Value, error) {
	return Evaluator{}.Eval(ctx, env, e)
}

// Eval evaluates e within env. Evaluation stops with ctx's error once ctx is done.
func (ev Evaluator) Eval(ctx context.Context, env Env, e ast.Expr) (Value, error) {
	m := &machine{ctx: ctx, maxDepth: ev.MaxDepth}
	if m.maxDepth <= 0 {
		m.maxDepth = DefaultMaxDepth
	}
	return m.eval(env, e)
}

// EvalProgram evaluates each definition in order, binding its value for later definitions, and then
// evaluates the body when present.
func (ev Evaluator) EvalProgram(ctx context.Context, env Env, prog *ast.Program) (Env, Value, error) {
	for _, def := range prog.Defs {
		v, err := ev.Eval(ctx, env, def.Value)
		if err != nil {
			return env, nil, errors.Wrapf(err, "definition %s", def.Name)
		}
		env = env.Extend(def.Name, v)
	}
	if prog.Body == nil {
		return env, nil, nil
	}
	v, err := ev.Eval(ctx, env, prog.Body)
	return env, v, err
}

// EvalProgram evaluates a program using the default limits.
func EvalProgram(ctx context.Context, env Env, prog *ast.Program) (Env, Value, error) {
	return Evaluator{}.EvalProgram(ctx, env, prog)
}

func (m *machine) eval(env Env, e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		return Int(e.Value), nil

	case *ast.BoolLit:
		return Bool(e.Value), nil

	case *ast.Var:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, runtimeErrorf("unbound variable %s", e.Name)
		}
		return v, nil

	case *ast.Prim:
		if e.Op.Arity() == 0 {
			return m.applyPrim(e.Op, nil)
		}
		return &PrimApp{Op: e.Op}, nil

	case *ast.Lam:
		return &Closure{Param: e.Param, Body: e.Body, Env: env}, nil

	case *ast.App:
		fn, err := m.eval(env, e.Func)
		if err != nil {
			return nil, err
		}
		arg, err := m.eval(env, e.Arg)
		if err != nil {
			return nil, err
		}
		return m.apply(fn, arg)

	case *ast.Let:
		v, err := m.eval(env, e.Value)
		if err != nil {
			return nil, err
		}
		return m.eval(env.Extend(e.Var, v), e.Body)

	case *ast.If:
		cond, err := m.eval(env, e.Cond)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(Bool)
		if !ok {
			return nil, runtimeErrorf("if: expected a boolean condition, got %s", cond)
		}
		if b {
			return m.eval(env, e.Then)
		}
		return m.eval(env, e.Else)

	case *ast.Fix:
		fn, err := m.eval(env, e.Body)
		if err != nil {
			return nil, err
		}
		return &Fixed{Fn: fn}, nil

	case *ast.List:
		elems := make([]Value, len(e.Elems))
		for i, elem := range e.Elems {
			v, err := m.eval(env, elem)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return NewList(elems...), nil
	}
	panic("unexpected expression type: " + e.ExprName())
}

func (m *machine) apply(fn, arg Value) (Value, error) {
	if err := m.ctx.Err(); err != nil {
		return nil, err
	}
	if m.depth >= m.maxDepth {
		return nil, runtimeErrorf("maximum application depth %d exceeded", m.maxDepth)
	}
	m.depth++
	defer func() { m.depth-- }()

	switch fn := fn.(type) {
	case *Closure:
		return m.eval(fn.Env.Extend(fn.Param, arg), fn.Body)

	case *PrimApp:
		args := make([]Value, len(fn.Args)+1)
		copy(args, fn.Args)
		args[len(fn.Args)] = arg
		if len(args) < fn.Op.Arity() {
			return &PrimApp{Op: fn.Op, Args: args}, nil
		}
		return m.applyPrim(fn.Op, args)

	case *Fixed:
		unrolled, err := m.apply(fn.Fn, fn)
		if err != nil {
			return nil, err
		}
		return m.apply(unrolled, arg)
	}
	return nil, runtimeErrorf("cannot apply %s", fn)
}
