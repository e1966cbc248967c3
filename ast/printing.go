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

import (
	"strconv"
	"strings"
)

// ExprString returns the surface syntax of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, e)
	return sb.String()
}

// ProgramString returns the surface syntax of a program, with one definition per line.
func ProgramString(p *Program) string {
	var sb strings.Builder
	for _, d := range p.Defs {
		sb.WriteString("(def ")
		sb.WriteString(d.Name)
		sb.WriteByte(' ')
		exprString(&sb, d.Value)
		sb.WriteString(")\n")
	}
	if p.Body != nil {
		exprString(&sb, p.Body)
	}
	return sb.String()
}

func exprString(sb *strings.Builder, e Expr) {
	switch et := e.(type) {
	case *Var:
		sb.WriteString(et.Name)

	case *IntLit:
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *BoolLit:
		sb.WriteString(strconv.FormatBool(et.Value))

	case *Prim:
		sb.WriteString(et.Op.String())

	case *App:
		// (f a b) is ((f a) b)
		var args []Expr
		var fn Expr = et
		for {
			app, ok := fn.(*App)
			if !ok {
				break
			}
			args = append(args, app.Arg)
			fn = app.Func
		}
		sb.WriteByte('(')
		exprString(sb, fn)
		for i := len(args) - 1; i >= 0; i-- {
			sb.WriteByte(' ')
			exprString(sb, args[i])
		}
		sb.WriteByte(')')

	case *Lam:
		sb.WriteString("(lam [")
		sb.WriteString(et.Param)
		sb.WriteString("] ")
		exprString(sb, et.Body)
		sb.WriteByte(')')

	case *Let:
		sb.WriteString("(let ([")
		sb.WriteString(et.Var)
		sb.WriteByte(' ')
		exprString(sb, et.Value)
		sb.WriteString("]) ")
		exprString(sb, et.Body)
		sb.WriteByte(')')

	case *If:
		sb.WriteString("(if ")
		exprString(sb, et.Cond)
		sb.WriteByte(' ')
		exprString(sb, et.Then)
		sb.WriteByte(' ')
		exprString(sb, et.Else)
		sb.WriteByte(')')

	case *Fix:
		sb.WriteString("(fix ")
		exprString(sb, et.Body)
		sb.WriteByte(')')

	case *List:
		sb.WriteByte('[')
		for i, elem := range et.Elems {
			if i > 0 {
				sb.WriteByte(' ')
			}
			exprString(sb, elem)
		}
		sb.WriteByte(']')

	case nil:
		sb.WriteString("<nil>")

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}
