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
	"github.com/benbjohnson/immutable"
)

var emptyEnvMap = immutable.NewSortedMap(nil)

// Env is a persistent mapping from names to values. The zero value is an empty environment.
type Env struct {
	m *immutable.SortedMap
}

// NewEnv creates an empty environment.
func NewEnv() Env { return Env{emptyEnvMap} }

func (env Env) imm() *immutable.SortedMap {
	if env.m == nil {
		return emptyEnvMap
	}
	return env.m
}

func (env Env) Len() int { return env.imm().Len() }

func (env Env) Lookup(name string) (Value, bool) {
	v, ok := env.imm().Get(name)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// Extend binds name to v, shadowing any existing binding.
func (env Env) Extend(name string, v Value) Env {
	return Env{env.imm().Set(name, v)}
}

// Names returns the bound names in sorted order.
func (env Env) Names() []string {
	names := make([]string, 0, env.Len())
	iter := env.imm().Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		names = append(names, k.(string))
	}
	return names
}
