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

// Apply substitutes every type-variable in t which is mapped in s. Unmapped variables are left unchanged.
// The result shares unchanged subtrees with t.
func Apply(s Subst, t Type) Type {
	if s.Len() == 0 {
		return t
	}
	return apply(s, t)
}

func apply(s Subst, t Type) Type {
	switch t := t.(type) {
	case Var:
		if u, ok := s.Get(t); ok {
			return u
		}
		return t

	case *Const:
		return t

	case *Arrow:
		arg, ret := apply(s, t.Arg), apply(s, t.Return)
		if arg == t.Arg && ret == t.Return {
			return t
		}
		return &Arrow{Arg: arg, Return: ret}

	case *List:
		elem := apply(s, t.Elem)
		if elem == t.Elem {
			return t
		}
		return &List{Elem: elem}

	case *Pair:
		fst, snd := apply(s, t.Fst), apply(s, t.Snd)
		if fst == t.Fst && snd == t.Snd {
			return t
		}
		return &Pair{Fst: fst, Snd: snd}
	}
	panic("unexpected type " + t.TypeName())
}

// FreeVars returns the set of type-variables occurring in t.
func FreeVars(t Type) VarSet {
	vs := NewVarSet()
	collectFreeVars(&vs, t)
	return vs
}

func collectFreeVars(vs *VarSet, t Type) {
	switch t := t.(type) {
	case Var:
		vs.Add(t)
	case *Const:
	case *Arrow:
		collectFreeVars(vs, t.Arg)
		collectFreeVars(vs, t.Return)
	case *List:
		collectFreeVars(vs, t.Elem)
	case *Pair:
		collectFreeVars(vs, t.Fst)
		collectFreeVars(vs, t.Snd)
	default:
		panic("unexpected type " + t.TypeName())
	}
}

// Occurs reports whether v occurs anywhere within t.
func Occurs(v Var, t Type) bool {
	switch t := t.(type) {
	case Var:
		return t == v
	case *Const:
		return false
	case *Arrow:
		return Occurs(v, t.Arg) || Occurs(v, t.Return)
	case *List:
		return Occurs(v, t.Elem)
	case *Pair:
		return Occurs(v, t.Fst) || Occurs(v, t.Snd)
	}
	panic("unexpected type " + t.TypeName())
}

// VarsInOrder returns the distinct type-variables of t in order of first occurrence (left to right).
func VarsInOrder(t Type) []Var {
	var (
		order []Var
		seen  = NewVarSet()
	)
	var visit func(Type)
	visit = func(t Type) {
		switch t := t.(type) {
		case Var:
			if !seen.Contains(t) {
				seen.Add(t)
				order = append(order, t)
			}
		case *Const:
		default:
			for _, c := range Components(t) {
				visit(c)
			}
		}
	}
	visit(t)
	return order
}
