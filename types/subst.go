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

import (
	"github.com/benbjohnson/immutable"
)

var emptySubstMap = immutable.NewSortedMap(nil)

// Subst contains immutable mappings from type-variables to types. Entries are sorted by variable name.
//
// No variable is mapped to a type containing itself; the occurs check in unification guarantees this
// for every substitution produced during inference.
type Subst struct {
	m *immutable.SortedMap
}

// EmptySubst returns the identity substitution.
func EmptySubst() Subst { return Subst{emptySubstMap} }

// Create a substitution with a single entry.
func SingletonSubst(v Var, t Type) Subst {
	return Subst{emptySubstMap.Set(v.Name, t)}
}

// Create a substitution from a map of entries.
func NewSubst(entries map[Var]Type) Subst {
	b := NewSubstBuilder()
	for v, t := range entries {
		b.Set(v, t)
	}
	return b.Build()
}

func (s Subst) imm() *immutable.SortedMap {
	if s.m == nil {
		return emptySubstMap
	}
	return s.m
}

// Get the number of entries in the substitution.
func (s Subst) Len() int { return s.imm().Len() }

// Get the image of a type-variable, if the variable is mapped.
func (s Subst) Get(v Var) (Type, bool) {
	t, ok := s.imm().Get(v.Name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Iterate over entries in the substitution, ordered by variable name.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(Var, Type) bool) {
	iter := s.imm().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(Var{Name: k.(string)}, v.(Type)) {
			return
		}
	}
}

// Without returns a copy of the substitution with entries for the given type-variables removed.
func (s Subst) Without(vars []Var) Subst {
	if len(vars) == 0 || s.Len() == 0 {
		return s
	}
	b := s.Builder()
	for _, v := range vars {
		b.Delete(v)
	}
	return b.Build()
}

// Convert the substitution to a builder for modification, without mutating the existing substitution.
func (s Subst) Builder() SubstBuilder {
	return SubstBuilder{&persistentMap{s.imm()}}
}

// Compose returns the substitution equivalent to applying s2 and then s1:
//
//	Apply(s1, Apply(s2, t)) == Apply(Compose(s1, s2), t)
//
// s1 is applied to every type in s2. Entries from s2 take precedence over entries from s1 with the same variable.
func Compose(s1, s2 Subst) Subst {
	if s2.Len() == 0 {
		return s1
	}
	b := s1.Builder()
	s2.Range(func(v Var, t Type) bool {
		b.Set(v, Apply(s1, t))
		return true
	})
	return b.Build()
}

// Equal reports whether two substitutions contain the same entries.
func (s Subst) Equal(other Subst) bool {
	if s.Len() != other.Len() {
		return false
	}
	eq := true
	s.Range(func(v Var, t Type) bool {
		u, ok := other.Get(v)
		eq = ok && Equal(t, u)
		return eq
	})
	return eq
}

// SubstBuilder accumulates updates to a substitution before finalization.
// Updates never affect the substitution the builder was created from.
type SubstBuilder struct {
	p *persistentMap
}

type persistentMap struct {
	m *immutable.SortedMap
}

func NewSubstBuilder() SubstBuilder {
	return SubstBuilder{&persistentMap{emptySubstMap}}
}

// Set the image of a type-variable in the builder.
func (b SubstBuilder) Set(v Var, t Type) SubstBuilder {
	b.p.m = b.p.m.Set(v.Name, t)
	return b
}

// Delete the entry for a type-variable from the builder.
func (b SubstBuilder) Delete(v Var) SubstBuilder {
	if _, ok := b.p.m.Get(v.Name); ok {
		b.p.m = b.p.m.Delete(v.Name)
	}
	return b
}

// Finalize the builder into an immutable substitution.
func (b SubstBuilder) Build() Subst {
	return Subst{b.p.m}
}
