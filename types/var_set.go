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
	"sort"

	set "github.com/hashicorp/go-set/v3"
)

// VarSet is a set of type-variables.
type VarSet struct {
	s *set.Set[Var]
}

// Create a set containing the given type-variables.
func NewVarSet(vars ...Var) VarSet {
	return VarSet{set.From(vars)}
}

func (vs *VarSet) ensureInitialized() {
	if vs.s == nil {
		vs.s = set.New[Var](0)
	}
}

// Add a type-variable to the set.
func (vs *VarSet) Add(v Var) {
	vs.ensureInitialized()
	vs.s.Insert(v)
}

// Add all type-variables from another set.
func (vs *VarSet) AddAll(other VarSet) {
	if other.s == nil {
		return
	}
	vs.ensureInitialized()
	vs.s.InsertSet(other.s)
}

// Remove a type-variable from the set.
func (vs *VarSet) Remove(v Var) {
	if vs.s == nil {
		return
	}
	vs.s.Remove(v)
}

// Remove all type-variables contained in another set.
func (vs *VarSet) RemoveAll(other VarSet) {
	if vs.s == nil || other.s == nil {
		return
	}
	vs.s.RemoveSet(other.s)
}

func (vs VarSet) Contains(v Var) bool { return vs.s != nil && vs.s.Contains(v) }

func (vs VarSet) Len() int {
	if vs.s == nil {
		return 0
	}
	return vs.s.Size()
}

// Copy returns an independent copy of the set.
func (vs VarSet) Copy() VarSet {
	if vs.s == nil {
		return NewVarSet()
	}
	return VarSet{vs.s.Copy()}
}

// Sorted returns the type-variables in the set, ordered by name.
func (vs VarSet) Sorted() []Var {
	if vs.s == nil {
		return nil
	}
	vars := vs.s.Slice()
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
