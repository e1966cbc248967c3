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

package construct

import (
	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/types"
)

// Types

// Type-variable: `a`
func TVar(name string) types.Var {
	return types.Var{Name: name}
}

// Type constant: `Int`, `Bool`, etc
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// `Int`
func TInt() *types.Const { return types.Int() }

// `Bool`
func TBool() *types.Const { return types.Bool() }

// Curried function type: `Int -> Int -> Int`; the last type is the result.
func TArrow(first types.Type, rest ...types.Type) types.Type {
	if len(rest) == 0 {
		return first
	}
	all := append([]types.Type{first}, rest...)
	return types.NewArrow(all[len(all)-1], all[:len(all)-1]...)
}

// List type: `[Int]`
func TList(elem types.Type) *types.List {
	return &types.List{Elem: elem}
}

// Pair type: `(Int, Bool)`
func TPair(fst, snd types.Type) *types.Pair {
	return &types.Pair{Fst: fst, Snd: snd}
}

// Scheme quantified over the named type-variables.
func Forall(names []string, body types.Type) *types.Scheme {
	vars := make([]types.Var, len(names))
	for i, name := range names {
		vars[i] = TVar(name)
	}
	return types.Forall(vars, body)
}

// Expressions:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Curried application: `(f a b)` is `((f a) b)`
func App(fn ast.Expr, args ...ast.Expr) ast.Expr {
	e := fn
	for _, arg := range args {
		e = &ast.App{Func: e, Arg: arg}
	}
	return e
}

// Abstraction over one or more parameters: `(lam [x] (lam [y] body))`
func Lam(params []string, body ast.Expr) ast.Expr {
	e := body
	for i := len(params) - 1; i >= 0; i-- {
		e = &ast.Lam{Param: params[i], Body: e}
	}
	return e
}

// Let-binding
func Let(name string, value, body ast.Expr) *ast.Let {
	return &ast.Let{Var: name, Value: value, Body: body}
}

// Integer literal
func Int(v int64) *ast.IntLit {
	return &ast.IntLit{Value: v}
}

// Boolean literal
func Bool(v bool) *ast.BoolLit {
	return &ast.BoolLit{Value: v}
}

// Conditional
func If(cond, then, els ast.Expr) *ast.If {
	return &ast.If{Cond: cond, Then: then, Else: els}
}

// Fixed point
func Fix(body ast.Expr) *ast.Fix {
	return &ast.Fix{Body: body}
}

// List literal
func List(elems ...ast.Expr) *ast.List {
	return &ast.List{Elems: elems}
}

// Primitive operator
func Prim(op ast.PrimOp) *ast.Prim {
	return &ast.Prim{Op: op}
}

// Definition
func Def(name string, value ast.Expr) ast.Defn {
	return ast.Defn{Name: name, Value: value}
}

// Program
func Program(body ast.Expr, defs ...ast.Defn) *ast.Program {
	return &ast.Program{Defs: defs, Body: body}
}
