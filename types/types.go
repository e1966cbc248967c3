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

package types

// Type is the base interface for all monotypes.
//
// Monotypes are immutable trees; substitution produces new trees and never
// mutates an existing one.
type Type interface {
	TypeName() string
	String() string
}

func (t Var) TypeName() string    { return "Var" }
func (t *Const) TypeName() string { return "Const" }
func (t *Arrow) TypeName() string { return "Arrow" }
func (t *List) TypeName() string  { return "List" }
func (t *Pair) TypeName() string  { return "Pair" }

var (
	_ Type = Var{}
	_ Type = (*Const)(nil)
	_ Type = (*Arrow)(nil)
	_ Type = (*List)(nil)
	_ Type = (*Pair)(nil)
)

// Type-variable: `t1`
//
// Type-variables are compared by name; two variables with the same name are the same variable.
type Var struct {
	Name string
}

// Type constant: `Int` or `Bool`
type Const struct {
	Name string
}

// Function type: `Int -> Bool`
//
// Functions of several arguments are curried: `Int -> Int -> Int` is `Int -> (Int -> Int)`.
type Arrow struct {
	Arg    Type
	Return Type
}

// List type: `[Int]`
type List struct {
	Elem Type
}

// Pair type: `(Int, Bool)`
type Pair struct {
	Fst Type
	Snd Type
}

// Names of the built-in type constants.
const (
	IntName  = "Int"
	BoolName = "Bool"
)

// Int is the type of integer literals.
func Int() *Const { return &Const{Name: IntName} }

// Bool is the type of boolean literals.
func Bool() *Const { return &Const{Name: BoolName} }

// NewArrow creates a curried function type from one or more argument types and a return type.
func NewArrow(ret Type, args ...Type) Type {
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = &Arrow{Arg: args[i], Return: t}
	}
	return t
}

// Components returns the ordered child types of a composite type, or nil for variables and constants.
func Components(t Type) []Type {
	switch t := t.(type) {
	case *Arrow:
		return []Type{t.Arg, t.Return}
	case *List:
		return []Type{t.Elem}
	case *Pair:
		return []Type{t.Fst, t.Snd}
	}
	return nil
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		return ok && a.Name == b.Name
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name
	case *Arrow:
		b, ok := b.(*Arrow)
		return ok && Equal(a.Arg, b.Arg) && Equal(a.Return, b.Return)
	case *List:
		b, ok := b.(*List)
		return ok && Equal(a.Elem, b.Elem)
	case *Pair:
		b, ok := b.(*Pair)
		return ok && Equal(a.Fst, b.Fst) && Equal(a.Snd, b.Snd)
	case nil:
		return b == nil
	}
	panic("unexpected type " + a.TypeName())
}

// SameShape reports whether a and b are built with the same type constructor.
// Constants have the same shape only when their names match.
func SameShape(a, b Type) bool {
	switch a := a.(type) {
	case Var:
		_, ok := b.(Var)
		return ok
	case *Const:
		b, ok := b.(*Const)
		return ok && a.Name == b.Name
	case *Arrow:
		_, ok := b.(*Arrow)
		return ok
	case *List:
		_, ok := b.(*List)
		return ok
	case *Pair:
		_, ok := b.(*Pair)
		return ok
	}
	return false
}
