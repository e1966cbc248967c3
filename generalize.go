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
	"strconv"

	"github.com/wdamron/hindley/types"
)

// Generalize quantifies t over its type-variables which are not free in env.
// Quantified variables are ordered by first occurrence in t.
func Generalize(env TypeEnv, t types.Type) *types.Scheme {
	envVars := env.FreeVars()
	var quantified []types.Var
	for _, v := range types.VarsInOrder(t) {
		if !envVars.Contains(v) {
			quantified = append(quantified, v)
		}
	}
	return types.Forall(quantified, t)
}

// Instantiate replaces the quantified variables of sc with fresh type-variables, allocated in the
// order the variables are listed in the scheme.
func (ti *InferenceContext) Instantiate(sc *types.Scheme) types.Type {
	if sc.IsMono() {
		return sc.Body
	}
	b := types.NewSubstBuilder()
	for _, v := range sc.Vars {
		b.Set(v, ti.Fresh())
	}
	return types.Apply(b.Build(), sc.Body)
}

// CloseOver generalizes t over all of its type-variables and normalizes the resulting scheme.
func CloseOver(t types.Type) *types.Scheme {
	return Normalize(Generalize(NewTypeEnv(), t))
}

// Normalize renames the quantified variables of sc to a, b, ..., z, a1, b1, ... in order of first
// occurrence within the body. Quantified variables which do not occur in the body are dropped.
//
// Normalize panics if the body contains a type-variable which is not quantified.
func Normalize(sc *types.Scheme) *types.Scheme {
	quantified := types.NewVarSet(sc.Vars...)
	order := types.VarsInOrder(sc.Body)
	b := types.NewSubstBuilder()
	vars := make([]types.Var, 0, len(order))
	for _, v := range order {
		if !quantified.Contains(v) {
			panic("type-variable " + v.Name + " is not quantified in " + types.SchemeString(sc))
		}
		nv := types.Var{Name: varName(len(vars))}
		b.Set(v, nv)
		vars = append(vars, nv)
	}
	return types.Forall(vars, types.Apply(b.Build(), sc.Body))
}

var varNames = [26]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
}

func varName(i int) string {
	if i < 26 {
		return varNames[i]
	}
	return varNames[i%26] + strconv.Itoa(i/26)
}
