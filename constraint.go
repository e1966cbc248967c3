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

// Constraint asserts that two types are equal.
type Constraint struct {
	Left, Right types.Type
}

// Apply substitutes type-variables on both sides of the constraint.
func (c Constraint) Apply(s types.Subst) Constraint {
	return Constraint{types.Apply(s, c.Left), types.Apply(s, c.Right)}
}

// FreeVars returns the type-variables occurring on either side of the constraint.
func (c Constraint) FreeVars() types.VarSet {
	vs := types.FreeVars(c.Left)
	vs.AddAll(types.FreeVars(c.Right))
	return vs
}

func (c Constraint) String() string {
	return types.TypeString(c.Left) + " ~ " + types.TypeString(c.Right)
}
