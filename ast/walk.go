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

// WalkExpr calls f for e and then for each sub-expression of e, in pre-order.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Var, *IntLit, *BoolLit, *Prim:
		f(e)

	case *App:
		f(e)
		WalkExpr(e.Func, f)
		WalkExpr(e.Arg, f)

	case *Lam:
		f(e)
		WalkExpr(e.Body, f)

	case *Let:
		f(e)
		WalkExpr(e.Value, f)
		WalkExpr(e.Body, f)

	case *If:
		f(e)
		WalkExpr(e.Cond, f)
		WalkExpr(e.Then, f)
		WalkExpr(e.Else, f)

	case *Fix:
		f(e)
		WalkExpr(e.Body, f)

	case *List:
		f(e)
		for _, elem := range e.Elems {
			WalkExpr(elem, f)
		}

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// Size returns the number of nodes in e.
func Size(e Expr) int {
	n := 0
	WalkExpr(e, func(Expr) { n++ })
	return n
}

// FreeVars returns the names referenced by e which are not bound within e, in order of first occurrence.
func FreeVars(e Expr) []string {
	var (
		names []string
		seen  = make(map[string]bool)
	)
	var visit func(Expr, map[string]int)
	visit = func(e Expr, bound map[string]int) {
		switch e := e.(type) {
		case *Var:
			if bound[e.Name] == 0 && !seen[e.Name] {
				seen[e.Name] = true
				names = append(names, e.Name)
			}
		case *Lam:
			bound[e.Param]++
			visit(e.Body, bound)
			bound[e.Param]--
		case *Let:
			visit(e.Value, bound)
			bound[e.Var]++
			visit(e.Body, bound)
			bound[e.Var]--
		case *App:
			visit(e.Func, bound)
			visit(e.Arg, bound)
		case *If:
			visit(e.Cond, bound)
			visit(e.Then, bound)
			visit(e.Else, bound)
		case *Fix:
			visit(e.Body, bound)
		case *List:
			for _, elem := range e.Elems {
				visit(elem, bound)
			}
		}
	}
	visit(e, make(map[string]int))
	return names
}
