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

package parse

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/hindley/ast"
	. "github.com/wdamron/hindley/construct"
)

func TestParseExpr(t *testing.T) {
	cases := []struct {
		src  string
		want ast.Expr
	}{
		{"x", Var("x")},
		{"42", Int(42)},
		{"-7", Int(-7)},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"(lam [x] x)", Lam([]string{"x"}, Var("x"))},
		{"(x x)", App(Var("x"), Var("x"))},
		{"((lam [x] x) (lam [x] x))", App(Lam([]string{"x"}, Var("x")), Lam([]string{"x"}, Var("x")))},
		{"(fix +)", Fix(Prim(ast.Add))},
		{"(+ 4 9)", App(Prim(ast.Add), Int(4), Int(9))},
		{"(- x -1)", App(Prim(ast.Sub), Var("x"), Int(-1))},
		{"(== n 0)", App(Prim(ast.Eql), Var("n"), Int(0))},
		{"(lam [f x y] (f y x))", Lam([]string{"f", "x", "y"}, App(Var("f"), Var("y"), Var("x")))},
		{"(let ([v free]) (if true ((lam [x] x) (lam [x] x)) (fix +)))",
			Let("v", Var("free"), If(Bool(true), App(Lam([]string{"x"}, Var("x")), Lam([]string{"x"}, Var("x"))), Fix(Prim(ast.Add))))},
		{"(let ([a 1] [b a]) b)", Let("a", Int(1), Let("b", Var("a"), Var("b")))},
		{"[1 2 3]", List(Int(1), Int(2), Int(3))},
		{"[]", List()},
		{"(cons 1 nil)", App(Prim(ast.Cons), Int(1), Prim(ast.Nil))},
		{"(map (lam [p] (fst p)) [(pair 1 true)])", App(Prim(ast.Map), Lam([]string{"p"}, App(Prim(ast.Fst), Var("p"))), List(App(Prim(ast.Pair), Int(1), Bool(true))))},
		{"  ; leading comment\n (null\n  [x']) ; trailing", App(Prim(ast.Null), List(Var("x'")))},
	}
	for _, c := range cases {
		got, err := ParseExpr(c.src)
		require.NoError(t, err, c.src)
		assert.Equal(t, c.want, got, c.src)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src        string
		msg        string
		incomplete bool
	}{
		{"(lam [x] x", "1:11: expected ')', found end of input", true},
		{"(f", "1:3: expected expression, found end of input", true},
		{"[1 2", "1:5: expected expression, found end of input", true},
		{"(let ([x 1]", "1:12: expected '[', found end of input", true},
		{"", "1:1: expected expression, found end of input", true},
		{"(f)", "1:1: application requires at least one argument", false},
		{"()", "1:1: empty application", false},
		{"(lam [] x)", "1:7: lambda requires at least one parameter", false},
		{"(lam [if] x)", "1:7: cannot bind reserved name 'if'", false},
		{"(let ([+ 1]) 2)", "1:8: cannot bind reserved name '+'", false},
		{"x y", "1:3: unexpected 'y' after expression", false},
		{")", "1:1: expected expression, found ')'", false},
		{"(def x 1)", "1:2: definitions are only allowed at the top level", false},
		{"lam", "1:1: unexpected keyword 'lam'", false},
		{"(= 1 2)", "1:2: unexpected character '='", false},
		{"12ab", "1:1: malformed integer literal", false},
		{"x\n  #", "2:3: unexpected character '#'", false},
		{"99999999999999999999", "1:1: integer literal out of range: 99999999999999999999", false},
	}
	for _, c := range cases {
		_, err := ParseExpr(c.src)
		require.Error(t, err, c.src)
		assert.Equal(t, c.msg, err.Error(), c.src)
		assert.Equal(t, c.incomplete, IsIncomplete(err), c.src)
		var se *SyntaxError
		assert.ErrorAs(t, err, &se)
	}
}

func TestParseProgram(t *testing.T) {
	src := `
; identity and constant
(def id (lam [x] x))
(def k (lam [x y] x))
(k (id 1) true)
`
	prog, err := ParseProgram(src)
	require.NoError(t, err)
	want := Program(
		App(Var("k"), App(Var("id"), Int(1)), Bool(true)),
		Def("id", Lam([]string{"x"}, Var("x"))),
		Def("k", Lam([]string{"x", "y"}, Var("x"))),
	)
	assert.Equal(t, want, prog)

	prog, err = ParseProgram("(def one 1)")
	require.NoError(t, err)
	assert.Nil(t, prog.Body)
	assert.Len(t, prog.Defs, 1)

	prog, err = ParseProgram("42")
	require.NoError(t, err)
	assert.Equal(t, Int(42), prog.Body)

	_, err = ParseProgram("1 (def x 2)")
	assert.EqualError(t, err, "1:3: unexpected '(' after program body")

	_, err = ParseProgram("(def x")
	assert.True(t, IsIncomplete(err))
}

var randNames = []string{"x", "y", "f", "acc", "x'", "go_on"}

func randomExpr(r *rand.Rand, size int) ast.Expr {
	n := 10
	if size < 1 {
		n = 4
	}
	switch r.Intn(n) {
	case 0:
		return Var(randNames[r.Intn(len(randNames))])
	case 1:
		return Int(r.Int63n(2000) - 1000)
	case 2:
		return Bool(r.Intn(2) == 0)
	case 3:
		return Prim(ast.PrimOps()[r.Intn(len(ast.PrimOps()))])
	case 4:
		return App(randomExpr(r, size/2), randomExpr(r, size/2))
	case 5:
		return Lam([]string{randNames[r.Intn(len(randNames))]}, randomExpr(r, size*5/6))
	case 6:
		return Let(randNames[r.Intn(len(randNames))], randomExpr(r, size/2), randomExpr(r, size/2))
	case 7:
		return If(randomExpr(r, size/3), randomExpr(r, size/3), randomExpr(r, size/3))
	case 8:
		return Fix(randomExpr(r, size*5/6))
	default:
		elems := make([]ast.Expr, r.Intn(4))
		for i := range elems {
			elems[i] = randomExpr(r, size/3)
		}
		return &ast.List{Elems: elems}
	}
}

func TestPrintParseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		e := randomExpr(r, 12)
		src := ast.ExprString(e)
		got, err := ParseExpr(src)
		require.NoError(t, err, src)
		assert.Equal(t, src, ast.ExprString(got))
	}
}
