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

package typeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wdamron/hindley/types"
)

func TestVarTracker(t *testing.T) {
	var vt VarTracker
	assert.Equal(t, types.Var{Name: "t1"}, vt.New())
	assert.Equal(t, types.Var{Name: "t2"}, vt.New())
	assert.Equal(t, []types.Var{{Name: "t3"}, {Name: "t4"}}, vt.NewList(2))
	assert.Equal(t, 4, vt.Count())

	vt.Reset()
	assert.Equal(t, 0, vt.Count())
	assert.Equal(t, types.Var{Name: "t1"}, vt.New())
}
