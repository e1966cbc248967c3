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

// Package hindley provides Hindley-Milner type inference for a small functional language.
//
// Inference runs in two phases. Constraint generation walks an expression, allocating fresh
// type-variables and recording equalities between types. Solving unifies the constraints into a single
// substitution, which is applied to the expression's type before the type is closed over into a
// normalized scheme (type-variables renamed a, b, c, ... in order of first occurrence).
//
// Let-bound values are generalized, so a let-bound function may be used at several types within the
// body of the let. Lambda-bound parameters are monomorphic.
//
// The language has integers, booleans, curried functions, lists, pairs, conditionals and a fixpoint
// operator, along with a fixed set of primitive operators:
//
//	==       Int -> Int -> Bool
//	+ - *    Int -> Int -> Int
//	null     [a] -> Bool
//	map      (a -> b) -> [a] -> [b]
//	foldl    (b -> a -> b) -> b -> [a] -> b
//	pair     a -> b -> (a, b)
//	fst      (a, b) -> a
//	snd      (a, b) -> b
//	cons     a -> [a] -> [a]
//	nil      [a]
//
// Links:
//
// Algorithm W Step by Step (Grabmüller, 2006): https://github.com/wh5a/Algorithm-W-Step-By-Step
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package hindley
