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
	"github.com/wdamron/hindley/types"
)

// Unify computes the most general substitution which makes a and b equal.
//
// Unifying types of different shapes fails with *UnificationFail. Binding a type-variable to a type
// which contains it fails with *InfiniteType.
func Unify(a, b types.Type) (types.Subst, error) {
	if types.Equal(a, b) {
		return types.EmptySubst(), nil
	}
	if v, ok := a.(types.Var); ok {
		return bind(v, b)
	}
	if v, ok := b.(types.Var); ok {
		return bind(v, a)
	}
	if types.SameShape(a, b) {
		if _, isConst := a.(*types.Const); !isConst {
			return unifyMany(types.Components(a), types.Components(b))
		}
	}
	return types.EmptySubst(), &UnificationFail{Left: a, Right: b}
}

// unifyMany unifies two lists of types pairwise, threading the substitution from each pair into the rest.
func unifyMany(as, bs []types.Type) (types.Subst, error) {
	if len(as) != len(bs) {
		return types.EmptySubst(), &UnificationMismatch{Left: as, Right: bs}
	}
	if len(as) == 0 {
		return types.EmptySubst(), nil
	}
	s1, err := Unify(as[0], bs[0])
	if err != nil {
		return types.EmptySubst(), err
	}
	s2, err := unifyMany(applyAll(s1, as[1:]), applyAll(s1, bs[1:]))
	if err != nil {
		return types.EmptySubst(), err
	}
	return types.Compose(s2, s1), nil
}

func bind(v types.Var, t types.Type) (types.Subst, error) {
	if tv, ok := t.(types.Var); ok && tv == v {
		return types.EmptySubst(), nil
	}
	if types.Occurs(v, t) {
		return types.EmptySubst(), &InfiniteType{Var: v, Type: t}
	}
	return types.SingletonSubst(v, t), nil
}

func applyAll(s types.Subst, ts []types.Type) []types.Type {
	if s.Len() == 0 {
		return ts
	}
	out := make([]types.Type, len(ts))
	for i, t := range ts {
		out[i] = types.Apply(s, t)
	}
	return out
}
