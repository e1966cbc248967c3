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
	"github.com/benbjohnson/immutable"
	"github.com/wdamron/hindley/types"
)

var emptyEnvMap = immutable.NewSortedMap(nil)

// TypeEnv is a persistent mapping from variable names to type schemes.
//
// Updates return a new environment and leave the receiver unchanged. The zero value is an empty environment.
type TypeEnv struct {
	m *immutable.SortedMap
}

// NewTypeEnv creates an empty type-environment.
func NewTypeEnv() TypeEnv { return TypeEnv{emptyEnvMap} }

func (env TypeEnv) imm() *immutable.SortedMap {
	if env.m == nil {
		return emptyEnvMap
	}
	return env.m
}

// Len returns the number of names bound in the environment.
func (env TypeEnv) Len() int { return env.imm().Len() }

// Lookup finds the scheme bound to name.
func (env TypeEnv) Lookup(name string) (*types.Scheme, bool) {
	sc, ok := env.imm().Get(name)
	if !ok {
		return nil, false
	}
	return sc.(*types.Scheme), true
}

// Extend binds name to sc, replacing any existing binding.
func (env TypeEnv) Extend(name string, sc *types.Scheme) TypeEnv {
	return TypeEnv{env.imm().Set(name, sc)}
}

// Remove unbinds name.
func (env TypeEnv) Remove(name string) TypeEnv {
	if _, ok := env.imm().Get(name); !ok {
		return env
	}
	return TypeEnv{env.imm().Delete(name)}
}

// Declare binds name to t, generalized over the type-variables which are not free in the environment.
func (env TypeEnv) Declare(name string, t types.Type) TypeEnv {
	return env.Extend(name, Generalize(env, t))
}

// DeclareMono binds name to the monomorphic type t.
func (env TypeEnv) DeclareMono(name string, t types.Type) TypeEnv {
	return env.Extend(name, types.Mono(t))
}

// Apply substitutes free type-variables within every scheme in the environment.
func (env TypeEnv) Apply(s types.Subst) TypeEnv {
	if s.Len() == 0 {
		return env
	}
	m := env.imm()
	env.Range(func(name string, sc *types.Scheme) bool {
		if applied := sc.Apply(s); applied != sc {
			m = m.Set(name, applied)
		}
		return true
	})
	return TypeEnv{m}
}

// FreeVars returns the union of the free type-variables of every scheme in the environment.
func (env TypeEnv) FreeVars() types.VarSet {
	vs := types.NewVarSet()
	env.Range(func(_ string, sc *types.Scheme) bool {
		vs.AddAll(sc.FreeVars())
		return true
	})
	return vs
}

// Range calls f for each binding, ordered by name, until f returns false.
func (env TypeEnv) Range(f func(name string, sc *types.Scheme) bool) {
	iter := env.imm().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(*types.Scheme)) {
			return
		}
	}
}

// Names returns the bound names in sorted order.
func (env TypeEnv) Names() []string {
	names := make([]string, 0, env.Len())
	env.Range(func(name string, _ *types.Scheme) bool {
		names = append(names, name)
		return true
	})
	return names
}
