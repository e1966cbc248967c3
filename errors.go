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
	"strings"

	"github.com/wdamron/hindley/types"
)

// ErrorKind identifies the category of a TypeError.
type ErrorKind string

const (
	KindUnificationFail     ErrorKind = "UnificationFail"
	KindInfiniteType        ErrorKind = "InfiniteType"
	KindUnboundVariable     ErrorKind = "UnboundVariable"
	KindAmbiguous           ErrorKind = "Ambiguous"
	KindUnificationMismatch ErrorKind = "UnificationMismatch"
)

// TypeError is the interface for all errors reported by inference for ill-typed input.
//
// The set of implementations is closed: *UnificationFail, *InfiniteType, *UnboundVariable,
// *Ambiguous and *UnificationMismatch.
type TypeError interface {
	error
	Kind() ErrorKind
}

var (
	_ TypeError = (*UnificationFail)(nil)
	_ TypeError = (*InfiniteType)(nil)
	_ TypeError = (*UnboundVariable)(nil)
	_ TypeError = (*Ambiguous)(nil)
	_ TypeError = (*UnificationMismatch)(nil)
)

// UnificationFail is returned when two types with different shapes are unified.
type UnificationFail struct {
	Left, Right types.Type
}

func (e *UnificationFail) Kind() ErrorKind { return KindUnificationFail }

func (e *UnificationFail) Error() string {
	return "Cannot unify " + types.TypeString(e.Left) + " with " + types.TypeString(e.Right)
}

// InfiniteType is returned when a type-variable would be bound to a type containing itself.
type InfiniteType struct {
	Var  types.Var
	Type types.Type
}

func (e *InfiniteType) Kind() ErrorKind { return KindInfiniteType }

func (e *InfiniteType) Error() string {
	return "Cannot construct the infinite type " + e.Var.Name + " = " + types.TypeString(e.Type)
}

// UnboundVariable is returned when an expression refers to a name missing from the type-environment.
type UnboundVariable struct {
	Name string
}

func (e *UnboundVariable) Kind() ErrorKind { return KindUnboundVariable }

func (e *UnboundVariable) Error() string { return "Variable " + e.Name + " not found" }

// Ambiguous is reserved for constraints left unsolved after inference. It is not currently produced.
type Ambiguous struct {
	Constraints []Constraint
}

func (e *Ambiguous) Kind() ErrorKind { return KindAmbiguous }

func (e *Ambiguous) Error() string {
	parts := make([]string, len(e.Constraints))
	for i, c := range e.Constraints {
		parts[i] = c.String()
	}
	return "Ambiguous constraints: " + strings.Join(parts, ", ")
}

// UnificationMismatch is returned when the components of two types cannot be paired up.
type UnificationMismatch struct {
	Left, Right []types.Type
}

func (e *UnificationMismatch) Kind() ErrorKind { return KindUnificationMismatch }

func (e *UnificationMismatch) Error() string {
	return "Cannot unify types with differing component counts: " + typeListString(e.Left) + " and " + typeListString(e.Right)
}

func typeListString(ts []types.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = types.TypeString(t)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
