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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wdamron/hindley/ast"
	. "github.com/wdamron/hindley/construct"
)

func TestExprString(t *testing.T) {
	cases := []struct {
		e    ast.Expr
		want string
	}{
		{Var("x"), "x"},
		{Int(-3), "-3"},
		{Lam([]string{"x"}, Var("x")), "(lam [x] x)"},
		{App(Prim(ast.Add), Int(4), Int(9)), "(+ 4 9)"},
		{App(Lam([]string{"x"}, Var("x")), Lam([]string{"x"}, Var("x"))), "((lam [x] x) (lam [x] x))"},
		{If(Bool(true), Var("a"), Fix(Prim(ast.Add))), "(if true a (fix +))"},
		{Let("v", Var("free"), List(Int(1), Int(2))), "(let ([v free]) [1 2])"},
		{List(), "[]"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ast.ExprString(c.e))
	}
}

func TestProgramString(t *testing.T) {
	p := Program(App(Var("id"), Int(1)), Def("id", Lam([]string{"x"}, Var("x"))))
	assert.Equal(t, "(def id (lam [x] x))\n(id 1)", ast.ProgramString(p))
}

func TestWalkExpr(t *testing.T) {
	e := Let("f", Lam([]string{"x"}, Var("x")), App(Var("f"), List(Int(1), Bool(false))))
	var names []string
	ast.WalkExpr(e, func(e ast.Expr) { names = append(names, e.ExprName()) })
	assert.Equal(t, []string{"Let", "Lam", "Var", "App", "Var", "List", "IntLit", "BoolLit"}, names)
	assert.Equal(t, 8, ast.Size(e))
}

func TestFreeVars(t *testing.T) {
	e := Let("f", Lam([]string{"x"}, App(Var("g"), Var("x"))), App(Var("f"), Var("y"), Var("g")))
	assert.Equal(t, []string{"g", "y"}, ast.FreeVars(e))
	assert.Empty(t, ast.FreeVars(Lam([]string{"x"}, Var("x"))))
}

func TestPrimOps(t *testing.T) {
	for _, op := range ast.PrimOps() {
		found, ok := ast.LookupPrim(op.String())
		assert.True(t, ok)
		assert.Equal(t, op, found)
	}
	assert.Equal(t, 3, ast.Foldl.Arity())
	assert.Equal(t, 0, ast.Nil.Arity())
	_, ok := ast.LookupPrim("frobnicate")
	assert.False(t, ok)
}
