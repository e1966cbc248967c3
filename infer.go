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
	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/types"
)

// Constraints walks e and returns its (unsolved) type together with the equality constraints which must
// hold for e to be well-typed.
//
// Let-bound values are solved and generalized while walking, but their constraints are still returned so
// the outer solve observes them as well.
func (ti *InferenceContext) Constraints(env TypeEnv, e ast.Expr) (types.Type, []Constraint, error) {
	switch e := e.(type) {
	case *ast.IntLit:
		return types.Int(), nil, nil

	case *ast.BoolLit:
		return types.Bool(), nil, nil

	case *ast.Var:
		sc, ok := env.Lookup(e.Name)
		if !ok {
			return nil, nil, &UnboundVariable{Name: e.Name}
		}
		return ti.Instantiate(sc), nil, nil

	case *ast.Prim:
		return ti.primType(e.Op), nil, nil

	case *ast.Lam:
		tv := ti.Fresh()
		t, cs, err := ti.Constraints(env.Extend(e.Param, types.Mono(tv)), e.Body)
		if err != nil {
			return nil, nil, err
		}
		return &types.Arrow{Arg: tv, Return: t}, cs, nil

	case *ast.App:
		fnType, c1, err := ti.Constraints(env, e.Func)
		if err != nil {
			return nil, nil, err
		}
		argType, c2, err := ti.Constraints(env, e.Arg)
		if err != nil {
			return nil, nil, err
		}
		tv := ti.Fresh()
		cs := append(concat(c1, c2), Constraint{fnType, &types.Arrow{Arg: argType, Return: tv}})
		return tv, cs, nil

	case *ast.Let:
		valueType, c1, err := ti.Constraints(env, e.Value)
		if err != nil {
			return nil, nil, err
		}
		sub, err := ti.Solve(c1)
		if err != nil {
			return nil, nil, err
		}
		solvedEnv := env.Apply(sub)
		sc := Generalize(solvedEnv, types.Apply(sub, valueType))
		ti.log().Debug("generalize", "name", e.Var, "scheme", sc)
		bodyType, c2, err := ti.Constraints(solvedEnv.Extend(e.Var, sc), e.Body)
		if err != nil {
			return nil, nil, err
		}
		return bodyType, concat(c1, c2), nil

	case *ast.If:
		condType, c1, err := ti.Constraints(env, e.Cond)
		if err != nil {
			return nil, nil, err
		}
		thenType, c2, err := ti.Constraints(env, e.Then)
		if err != nil {
			return nil, nil, err
		}
		elseType, c3, err := ti.Constraints(env, e.Else)
		if err != nil {
			return nil, nil, err
		}
		cs := append(concat(c1, c2, c3), Constraint{condType, types.Bool()}, Constraint{thenType, elseType})
		return thenType, cs, nil

	case *ast.Fix:
		bodyType, cs, err := ti.Constraints(env, e.Body)
		if err != nil {
			return nil, nil, err
		}
		tv := ti.Fresh()
		return tv, append(cs, Constraint{bodyType, &types.Arrow{Arg: tv, Return: tv}}), nil

	case *ast.List:
		var cs []Constraint
		elemTypes := make([]types.Type, len(e.Elems))
		for i, elem := range e.Elems {
			t, c, err := ti.Constraints(env, elem)
			if err != nil {
				return nil, nil, err
			}
			elemTypes[i] = t
			cs = append(cs, c...)
		}
		elemVar, listVar := ti.Fresh(), ti.Fresh()
		for _, t := range elemTypes {
			cs = append(cs, Constraint{t, elemVar})
		}
		return listVar, append(cs, Constraint{listVar, &types.List{Elem: elemVar}}), nil
	}
	panic("unexpected expression type: " + e.ExprName())
}

// primType returns the type of a primitive operator. Polymorphic primitives receive fresh type-variables
// on every use.
func (ti *InferenceContext) primType(op ast.PrimOp) types.Type {
	switch op {
	case ast.Add, ast.Sub, ast.Mul:
		return types.NewArrow(types.Int(), types.Int(), types.Int())
	case ast.Eql:
		return types.NewArrow(types.Bool(), types.Int(), types.Int())
	case ast.Null:
		a := ti.Fresh()
		return types.NewArrow(types.Bool(), &types.List{Elem: a})
	case ast.Map:
		a, b := ti.Fresh(), ti.Fresh()
		return types.NewArrow(&types.List{Elem: b}, &types.Arrow{Arg: a, Return: b}, &types.List{Elem: a})
	case ast.Foldl:
		a, b := ti.Fresh(), ti.Fresh()
		return types.NewArrow(b, types.NewArrow(b, b, a), b, &types.List{Elem: a})
	case ast.Pair:
		a, b := ti.Fresh(), ti.Fresh()
		return types.NewArrow(&types.Pair{Fst: a, Snd: b}, a, b)
	case ast.Fst:
		a, b := ti.Fresh(), ti.Fresh()
		return types.NewArrow(a, &types.Pair{Fst: a, Snd: b})
	case ast.Snd:
		a, b := ti.Fresh(), ti.Fresh()
		return types.NewArrow(b, &types.Pair{Fst: a, Snd: b})
	case ast.Cons:
		a := ti.Fresh()
		return types.NewArrow(&types.List{Elem: a}, a, &types.List{Elem: a})
	case ast.Nil:
		return &types.List{Elem: ti.Fresh()}
	}
	panic("unexpected primitive: " + op.String())
}

func concat(parts ...[]Constraint) []Constraint {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Constraint, 0, n+2)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
