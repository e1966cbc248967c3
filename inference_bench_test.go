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
	"testing"

	"github.com/wdamron/hindley/ast"
	. "github.com/wdamron/hindley/construct"
)

func BenchmarkInferFactorial(b *testing.B) {
	expr := factorial()
	env := NewTypeEnv()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Infer(env, expr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInferNestedLets(b *testing.B) {
	var expr ast.Expr = App(Var("f9"), Int(1))
	for i := 9; i >= 0; i-- {
		name := "f" + string(rune('0'+i))
		var value ast.Expr = Lam([]string{"x"}, Var("x"))
		if i > 0 {
			prev := "f" + string(rune('0'+i-1))
			value = Lam([]string{"x"}, App(Var(prev), Var("x")))
		}
		expr = Let(name, value, expr)
	}
	env := NewTypeEnv()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Infer(env, expr); err != nil {
			b.Fatal(err)
		}
	}
}
