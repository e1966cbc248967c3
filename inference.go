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

package hindley

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/types"
)

// Inference records the intermediate results of inferring the type of an expression.
type Inference struct {
	// Type is the expression's type before constraints are solved.
	Type types.Type
	// Constraints are the equalities generated for the expression, in emission order.
	Constraints []Constraint
	// Subst is the solution to Constraints.
	Subst types.Subst
	// Scheme is the closed, normalized type of the expression.
	Scheme *types.Scheme
}

// Infer computes the principal type scheme of e within env, using a fresh inference context.
func Infer(env TypeEnv, e ast.Expr) (*types.Scheme, error) {
	return NewContext().Infer(env, e)
}

// Explain infers the type of e within env, using a fresh inference context, and returns every
// intermediate result.
func Explain(env TypeEnv, e ast.Expr) (*Inference, error) {
	return NewContext().Explain(env, e)
}

// Infer computes the principal type scheme of e within env.
func (ti *InferenceContext) Infer(env TypeEnv, e ast.Expr) (*types.Scheme, error) {
	inf, err := ti.Explain(env, e)
	if err != nil {
		return nil, err
	}
	return inf.Scheme, nil
}

// Explain infers the type of e within env and returns every intermediate result.
func (ti *InferenceContext) Explain(env TypeEnv, e ast.Expr) (*Inference, error) {
	logger := ti.log()
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("infer", "expr", ast.ExprString(e), "nodes", ast.Size(e))
	}
	t, cs, err := ti.Constraints(env, e)
	if err != nil {
		return nil, err
	}
	sub, err := ti.Solve(cs)
	if err != nil {
		return nil, err
	}
	sc := CloseOver(types.Apply(sub, t))
	logger.Debug("inferred", "scheme", sc, "constraints", len(cs), "vars", ti.VarCount())
	return &Inference{Type: t, Constraints: cs, Subst: sub, Scheme: sc}, nil
}

// InferDefinitions infers each definition in order, binding its scheme in the environment seen by
// later definitions. The returned environment contains every definition.
//
// Errors are wrapped with the name of the failing definition; errors.Cause recovers the TypeError.
func (ti *InferenceContext) InferDefinitions(env TypeEnv, defs []ast.Defn) (TypeEnv, error) {
	return ti.FoldDefinitions(env, defs, nil)
}

// FoldDefinitions is InferDefinitions, calling visit (when non-nil) with each definition's scheme in order.
func (ti *InferenceContext) FoldDefinitions(env TypeEnv, defs []ast.Defn, visit func(name string, sc *types.Scheme)) (TypeEnv, error) {
	for _, def := range defs {
		sc, err := ti.Infer(env, def.Value)
		if err != nil {
			return env, errors.Wrapf(err, "definition %s", def.Name)
		}
		env = env.Extend(def.Name, sc)
		if visit != nil {
			visit(def.Name, sc)
		}
	}
	return env, nil
}

// InferProgram infers the definitions of prog and then its body. The body may be nil, in which case
// the returned scheme is nil.
func (ti *InferenceContext) InferProgram(env TypeEnv, prog *ast.Program) (TypeEnv, *types.Scheme, error) {
	env, err := ti.InferDefinitions(env, prog.Defs)
	if err != nil {
		return env, nil, err
	}
	if prog.Body == nil {
		return env, nil, nil
	}
	sc, err := ti.Infer(env, prog.Body)
	if err != nil {
		return env, nil, errors.Wrap(err, "program body")
	}
	return env, sc, nil
}

// InferDefinitions infers each definition in order using a fresh inference context.
func InferDefinitions(env TypeEnv, defs []ast.Defn) (TypeEnv, error) {
	return NewContext().InferDefinitions(env, defs)
}

// InferProgram infers a program using a fresh inference context.
func InferProgram(env TypeEnv, prog *ast.Program) (TypeEnv, *types.Scheme, error) {
	return NewContext().InferProgram(env, prog)
}

// AsTypeError extracts the TypeError underlying err, unwrapping any context added by InferDefinitions
// or InferProgram.
func AsTypeError(err error) (TypeError, bool) {
	te, ok := errors.Cause(err).(TypeError)
	return te, ok
}
