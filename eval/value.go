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
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/wdamron/hindley/ast"
)

// Value is the result of evaluating an expression.
type Value interface {
	ValueName() string
	String() string
}

var (
	_ Value = Int(0)
	_ Value = Bool(false)
	_ Value = (*List)(nil)
	_ Value = (*Pair)(nil)
	_ Value = (*Closure)(nil)
	_ Value = (*PrimApp)(nil)
	_ Value = (*Fixed)(nil)
)

// Integer
type Int int64

// Boolean
type Bool bool

// List is an immutable list of values.
type List struct {
	elems *immutable.List
}

// Pair of values
type Pair struct {
	Fst, Snd Value
}

// Closure is a lambda together with the environment it was evaluated in.
type Closure struct {
	Param string
	Body  ast.Expr
	Env   Env
}

// PrimApp is a primitive operator applied to fewer arguments than its arity.
type PrimApp struct {
	Op   ast.PrimOp
	Args []Value
}

// Fixed is the fixpoint of a function. Applying it applies the function to the fixpoint and then to
// the argument.
type Fixed struct {
	Fn Value
}

func (v Int) ValueName() string      { return "Int" }
func (v Bool) ValueName() string     { return "Bool" }
func (v *List) ValueName() string    { return "List" }
func (v *Pair) ValueName() string    { return "Pair" }
func (v *Closure) ValueName() string { return "Closure" }
func (v *PrimApp) ValueName() string { return "PrimApp" }
func (v *Fixed) ValueName() string   { return "Fixed" }

var emptyList = immutable.NewList()

// NewList creates a list holding elems in order.
func NewList(elems ...Value) *List {
	l := emptyList
	for _, v := range elems {
		l = l.Append(v)
	}
	return &List{l}
}

func (v *List) imm() *immutable.List {
	if v == nil || v.elems == nil {
		return emptyList
	}
	return v.elems
}

// Len returns the number of elements in the list.
func (v *List) Len() int { return v.imm().Len() }

// Get returns the element at index i.
func (v *List) Get(i int) Value { return v.imm().Get(i).(Value) }

// Prepend returns a new list with elem in front of the receiver's elements.
func (v *List) Prepend(elem Value) *List { return &List{v.imm().Prepend(elem)} }

// Elems returns the elements of the list as a slice.
func (v *List) Elems() []Value {
	out := make([]Value, 0, v.Len())
	iter := v.imm().Iterator()
	for !iter.Done() {
		_, elem := iter.Next()
		out = append(out, elem.(Value))
	}
	return out
}

func (v Int) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }

func (v *List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elem := range v.Elems() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(elem.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (v *Pair) String() string { return "(" + v.Fst.String() + ", " + v.Snd.String() + ")" }

func (v *Closure) String() string { return "<closure>" }

func (v *PrimApp) String() string {
	if len(v.Args) == 0 {
		return "<prim " + v.Op.String() + ">"
	}
	parts := make([]string, len(v.Args))
	for i, arg := range v.Args {
		parts[i] = arg.String()
	}
	return "<prim " + v.Op.String() + " " + strings.Join(parts, " ") + ">"
}

func (v *Fixed) String() string { return "<fix>" }

// Equal reports whether two first-order values are structurally equal. Functions are never equal.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Int:
		b, ok := b.(Int)
		return ok && a == b
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case *List:
		b, ok := b.(*List)
		if !ok || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !Equal(a.Get(i), b.Get(i)) {
				return false
			}
		}
		return true
	case *Pair:
		b, ok := b.(*Pair)
		return ok && Equal(a.Fst, b.Fst) && Equal(a.Snd, b.Snd)
	}
	return false
}
