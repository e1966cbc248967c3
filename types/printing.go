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

package types

import (
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	sb strings.Builder
}

// TypeString returns a string representation of a Type.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// SchemeString returns a string representation of a Scheme: `forall a b. a -> b`.
// Schemes without quantified variables are printed as their body.
func SchemeString(sc *Scheme) string {
	p := newTypePrinter()
	if len(sc.Vars) > 0 {
		p.sb.WriteString("forall")
		for _, v := range sc.Vars {
			p.sb.WriteByte(' ')
			p.sb.WriteString(v.Name)
		}
		p.sb.WriteString(". ")
	}
	typeString(p, false, sc.Body)
	s := p.sb.String()
	p.Release()
	return s
}

func (t Var) String() string      { return t.Name }
func (t *Const) String() string   { return t.Name }
func (t *Arrow) String() string   { return TypeString(t) }
func (t *List) String() string    { return TypeString(t) }
func (t *Pair) String() string    { return TypeString(t) }
func (sc *Scheme) String() string { return SchemeString(sc) }

// simple is set when t is printed in argument position, where arrows need parentheses.
func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case Var:
		p.sb.WriteString(t.Name)

	case *Const:
		p.sb.WriteString(t.Name)

	case *Arrow:
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Arg)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}

	case *List:
		p.sb.WriteByte('[')
		typeString(p, false, t.Elem)
		p.sb.WriteByte(']')

	case *Pair:
		p.sb.WriteByte('(')
		typeString(p, false, t.Fst)
		p.sb.WriteString(", ")
		typeString(p, false, t.Snd)
		p.sb.WriteByte(')')

	case nil:
		p.sb.WriteString("<nil>")

	default:
		panic("unexpected type " + t.TypeName())
	}
}
