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

// Scheme is a polymorphic type: a monotype universally quantified over a list of type-variables.
//
// Every quantified variable occurs in the body; schemes are built by generalization, which only
// quantifies over variables it found in the body.
type Scheme struct {
	Vars []Var
	Body Type
}

// Mono creates a scheme with no quantified variables.
func Mono(t Type) *Scheme { return &Scheme{Body: t} }

// Forall creates a scheme quantified over vars.
func Forall(vars []Var, body Type) *Scheme { return &Scheme{Vars: vars, Body: body} }

// IsMono reports whether the scheme quantifies no variables.
func (sc *Scheme) IsMono() bool { return len(sc.Vars) == 0 }

// Apply substitutes free type-variables within the scheme. Quantified variables are removed from s
// before it is applied to the body, so bound variables are never captured.
func (sc *Scheme) Apply(s Subst) *Scheme {
	if s.Len() == 0 {
		return sc
	}
	body := Apply(s.Without(sc.Vars), sc.Body)
	if body == sc.Body {
		return sc
	}
	return &Scheme{Vars: sc.Vars, Body: body}
}

// FreeVars returns the type-variables of the body which are not quantified.
func (sc *Scheme) FreeVars() VarSet {
	vs := FreeVars(sc.Body)
	for _, v := range sc.Vars {
		vs.Remove(v)
	}
	return vs
}
