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

package eval

import (
	"github.com/wdamron/hindley/ast"
)

// applyPrim applies a saturated primitive.
func (m *machine) applyPrim(op ast.PrimOp, args []Value) (Value, error) {
	switch op {
	case ast.Add, ast.Sub, ast.Mul, ast.Eql:
		x, xok := args[0].(Int)
		y, yok := args[1].(Int)
		if !xok || !yok {
			return nil, runtimeErrorf("%s: expected integers, got %s and %s", op, args[0], args[1])
		}
		switch op {
		case ast.Add:
			return x + y, nil
		case ast.Sub:
			return x - y, nil
		case ast.Mul:
			return x * y, nil
		}
		return Bool(x == y), nil

	case ast.Null:
		xs, err := listArg(op, args[0])
		if err != nil {
			return nil, err
		}
		return Bool(xs.Len() == 0), nil

	case ast.Map:
		xs, err := listArg(op, args[1])
		if err != nil {
			return nil, err
		}
		out := make([]Value, xs.Len())
		for i, x := range xs.Elems() {
			if out[i], err = m.apply(args[0], x); err != nil {
				return nil, err
			}
		}
		return NewList(out...), nil

	case ast.Foldl:
		xs, err := listArg(op, args[2])
		if err != nil {
			return nil, err
		}
		acc := args[1]
		for _, x := range xs.Elems() {
			partial, err := m.apply(args[0], acc)
			if err != nil {
				return nil, err
			}
			if acc, err = m.apply(partial, x); err != nil {
				return nil, err
			}
		}
		return acc, nil

	case ast.Pair:
		return &Pair{Fst: args[0], Snd: args[1]}, nil

	case ast.Fst, ast.Snd:
		p, ok := args[0].(*Pair)
		if !ok {
			return nil, runtimeErrorf("%s: expected a pair, got %s", op, args[0])
		}
		if op == ast.Fst {
			return p.Fst, nil
		}
		return p.Snd, nil

	case ast.Cons:
		xs, err := listArg(op, args[1])
		if err != nil {
			return nil, err
		}
		return xs.Prepend(args[0]), nil

	case ast.Nil:
		return NewList(), nil
	}
	panic("unexpected primitive: " + op.String())
}

func listArg(op ast.PrimOp, v Value) (*List, error) {
	xs, ok := v.(*List)
	if !ok {
		return nil, runtimeErrorf("%s: expected a list, got %s", op, v)
	}
	return xs, nil
}
