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

package ast

// PrimOp identifies a primitive operator.
type PrimOp int

const (
	Add PrimOp = iota
	Sub
	Mul
	Eql
	Null
	Map
	Foldl
	Pair
	Fst
	Snd
	Cons
	Nil

	numPrimOps
)

var primNames = [numPrimOps]string{
	Add:   "+",
	Sub:   "-",
	Mul:   "*",
	Eql:   "==",
	Null:  "null",
	Map:   "map",
	Foldl: "foldl",
	Pair:  "pair",
	Fst:   "fst",
	Snd:   "snd",
	Cons:  "cons",
	Nil:   "nil",
}

var primArity = [numPrimOps]int{
	Add:   2,
	Sub:   2,
	Mul:   2,
	Eql:   2,
	Null:  1,
	Map:   2,
	Foldl: 3,
	Pair:  2,
	Fst:   1,
	Snd:   1,
	Cons:  2,
	Nil:   0,
}

var primsByName map[string]PrimOp

func init() {
	primsByName = make(map[string]PrimOp, numPrimOps)
	for op, name := range primNames {
		primsByName[name] = PrimOp(op)
	}
}

// PrimOps returns all primitive operators.
func PrimOps() []PrimOp {
	ops := make([]PrimOp, numPrimOps)
	for i := range ops {
		ops[i] = PrimOp(i)
	}
	return ops
}

// LookupPrim finds the primitive operator with the given surface name.
func LookupPrim(name string) (PrimOp, bool) {
	op, ok := primsByName[name]
	return op, ok
}

func (op PrimOp) String() string {
	if op < 0 || op >= numPrimOps {
		return "<invalid-prim>"
	}
	return primNames[op]
}

// Arity is the number of arguments the operator consumes before producing a result.
func (op PrimOp) Arity() int {
	if op < 0 || op >= numPrimOps {
		panic("unknown primitive " + op.String())
	}
	return primArity[op]
}
