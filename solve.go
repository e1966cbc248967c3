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

// Solve finds a substitution satisfying every constraint in cs.
//
// The most recently emitted constraint is solved first. After each step the new substitution is applied
// to the remaining constraints and composed onto the accumulated result.
func Solve(cs []Constraint) (types.Subst, error) {
	return NewContext().Solve(cs)
}

// Solve finds a substitution satisfying every constraint in cs, logging each step at debug level.
func (ti *InferenceContext) Solve(cs []Constraint) (types.Subst, error) {
	logger := ti.log()
	pending := make([]Constraint, len(cs))
	copy(pending, cs)
	su := types.EmptySubst()
	for len(pending) > 0 {
		c := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		s1, err := Unify(c.Left, c.Right)
		if err != nil {
			logger.Debug("solve failed", "constraint", c, "err", err)
			return types.EmptySubst(), err
		}
		logger.Debug("solve", "constraint", c, "bindings", s1.Len(), "pending", len(pending))
		if s1.Len() != 0 {
			for i := range pending {
				pending[i] = pending[i].Apply(s1)
			}
		}
		su = types.Compose(s1, su)
	}
	return su, nil
}
