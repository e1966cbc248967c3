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

package ast

// Expr is the base for all expressions.
//
// Expressions are immutable trees; each node exclusively owns its children.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
}

var (
	_ Expr = (*Var)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*Lam)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*IntLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Fix)(nil)
	_ Expr = (*List)(nil)
	_ Expr = (*Prim)(nil)
)

// Variable: `x`
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Application: `(f x)`
type App struct {
	Func Expr
	Arg  Expr
}

// "App"
func (e *App) ExprName() string { return "App" }

// Abstraction: `(lam [x] x)`
type Lam struct {
	Param string
	Body  Expr
}

// "Lam"
func (e *Lam) ExprName() string { return "Lam" }

// Let-binding: `(let ([x e]) body)`
//
// The bound name is not visible within its own definition; recursion requires Fix.
type Let struct {
	Var   string
	Value Expr
	Body  Expr
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Integer literal: `42`
type IntLit struct {
	Value int64
}

// "IntLit"
func (e *IntLit) ExprName() string { return "IntLit" }

// Boolean literal: `true`
type BoolLit struct {
	Value bool
}

// "BoolLit"
func (e *BoolLit) ExprName() string { return "BoolLit" }

// Conditional: `(if c t e)`
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// "If"
func (e *If) ExprName() string { return "If" }

// Fixed point: `(fix f)`
type Fix struct {
	Body Expr
}

// "Fix"
func (e *Fix) ExprName() string { return "Fix" }

// List literal: `[1 2 3]`
type List struct {
	Elems []Expr
}

// "List"
func (e *List) ExprName() string { return "List" }

// Primitive operator: `+`, `map`, `cons`, ...
type Prim struct {
	Op PrimOp
}

// "Prim"
func (e *Prim) ExprName() string { return "Prim" }

// Definition within a program: `(def x e)`
type Defn struct {
	Name  string
	Value Expr
}

// Program is a sequence of definitions followed by a body. Each definition may refer to the
// definitions preceding it.
type Program struct {
	Defs []Defn
	Body Expr
}
