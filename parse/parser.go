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

// Package parse reads the s-expression surface syntax into expression trees.
//
//	expr    := INT | true | false | PRIM | NAME
//	         | '(' 'lam' '[' NAME+ ']' expr ')'
//	         | '(' 'let' '(' ('[' NAME expr ']')+ ')' expr ')'
//	         | '(' 'if' expr expr expr ')'
//	         | '(' 'fix' expr ')'
//	         | '(' expr expr+ ')'
//	         | '[' expr* ']'
//	program := ('(' 'def' NAME expr ')')* expr?
//
// Lambdas with several parameters and lets with several bindings are nested. Application is curried
// from left to right. Comments run from ';' to the end of the line.
package parse

import (
	"github.com/wdamron/hindley/ast"
)

var keywords = map[string]bool{
	"lam": true,
	"let": true,
	"if":  true,
	"fix": true,
	"def": true,
}

// IsKeyword reports whether name is reserved by the syntax and cannot be bound.
func IsKeyword(name string) bool {
	if keywords[name] || name == "true" || name == "false" {
		return true
	}
	_, isPrim := ast.LookupPrim(name)
	return isPrim
}

type parser struct {
	lx  *lexer
	tok token
}

func newParser(src string) (*parser, error) {
	p := &parser{lx: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lx.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) errorf(tok token, msg string) *SyntaxError {
	return &SyntaxError{Line: tok.line, Column: tok.col, Msg: msg, Incomplete: tok.kind == tokEOF}
}

func (p *parser) unexpected(want string) *SyntaxError {
	return p.errorf(p.tok, "expected "+want+", found "+p.tok.describe())
}

func (p *parser) expect(kind tokenKind) error {
	if p.tok.kind != kind {
		return p.unexpected(kind.String())
	}
	return p.advance()
}

func (p *parser) name() (string, error) {
	tok := p.tok
	if tok.kind != tokSymbol {
		return "", p.unexpected("name")
	}
	if IsKeyword(tok.text) {
		return "", p.errorf(tok, "cannot bind reserved name '"+tok.text+"'")
	}
	return tok.text, p.advance()
}

// ParseExpr parses exactly one expression.
func ParseExpr(src string) (ast.Expr, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf(p.tok, "unexpected "+p.tok.describe()+" after expression")
	}
	return e, nil
}

// ParseProgram parses a sequence of definitions followed by an optional body expression.
func ParseProgram(src string) (*ast.Program, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	prog := &ast.Program{}
	for p.tok.kind != tokEOF {
		if prog.Body != nil {
			return nil, p.errorf(p.tok, "unexpected "+p.tok.describe()+" after program body")
		}
		if p.tok.kind == tokLParen {
			open := p.tok
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.tok.kind == tokSymbol && p.tok.text == "def" {
				def, err := p.definition()
				if err != nil {
					return nil, err
				}
				prog.Defs = append(prog.Defs, def)
				continue
			}
			if prog.Body, err = p.form(open); err != nil {
				return nil, err
			}
			continue
		}
		if prog.Body, err = p.expr(); err != nil {
			return nil, err
		}
	}
	return prog, nil
}

// definition parses the remainder of `(def name expr)` after the opening parenthesis.
func (p *parser) definition() (ast.Defn, error) {
	if err := p.advance(); err != nil {
		return ast.Defn{}, err
	}
	name, err := p.name()
	if err != nil {
		return ast.Defn{}, err
	}
	value, err := p.expr()
	if err != nil {
		return ast.Defn{}, err
	}
	if err := p.expect(tokRParen); err != nil {
		return ast.Defn{}, err
	}
	return ast.Defn{Name: name, Value: value}, nil
}

func (p *parser) expr() (ast.Expr, error) {
	tok := p.tok
	switch tok.kind {
	case tokInt:
		return &ast.IntLit{Value: tok.value}, p.advance()

	case tokSymbol:
		switch tok.text {
		case "true":
			return &ast.BoolLit{Value: true}, p.advance()
		case "false":
			return &ast.BoolLit{Value: false}, p.advance()
		}
		if op, ok := ast.LookupPrim(tok.text); ok {
			return &ast.Prim{Op: op}, p.advance()
		}
		if keywords[tok.text] {
			return nil, p.errorf(tok, "unexpected keyword '"+tok.text+"'")
		}
		return &ast.Var{Name: tok.text}, p.advance()

	case tokLBrack:
		if err := p.advance(); err != nil {
			return nil, err
		}
		var elems []ast.Expr
		for p.tok.kind != tokRBrack {
			elem, err := p.expr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return &ast.List{Elems: elems}, p.advance()

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.form(tok)
	}
	return nil, p.unexpected("expression")
}

// form parses the remainder of a parenthesized expression after the opening parenthesis.
func (p *parser) form(open token) (ast.Expr, error) {
	var (
		e   ast.Expr
		err error
	)
	if p.tok.kind == tokSymbol {
		switch p.tok.text {
		case "lam":
			e, err = p.lambda()
		case "let":
			e, err = p.let()
		case "if":
			e, err = p.conditional()
		case "fix":
			e, err = p.fix()
		case "def":
			return nil, p.errorf(p.tok, "definitions are only allowed at the top level")
		default:
			e, err = p.application(open)
		}
	} else {
		e, err = p.application(open)
	}
	if err != nil {
		return nil, err
	}
	return e, p.expect(tokRParen)
}

func (p *parser) lambda() (ast.Expr, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokLBrack); err != nil {
		return nil, err
	}
	var params []string
	for p.tok.kind != tokRBrack {
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		params = append(params, name)
	}
	if len(params) == 0 {
		return nil, p.errorf(p.tok, "lambda requires at least one parameter")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	for i := len(params) - 1; i >= 0; i-- {
		body = &ast.Lam{Param: params[i], Body: body}
	}
	return body, nil
}

func (p *parser) let() (ast.Expr, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	var bindings []ast.Defn
	for p.tok.kind != tokRParen {
		if err := p.expect(tokLBrack); err != nil {
			return nil, err
		}
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRBrack); err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.Defn{Name: name, Value: value})
	}
	if len(bindings) == 0 {
		return nil, p.errorf(p.tok, "let requires at least one binding")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	for i := len(bindings) - 1; i >= 0; i-- {
		body = &ast.Let{Var: bindings[i].Name, Value: bindings[i].Value, Body: body}
	}
	return body, nil
}

func (p *parser) conditional() (ast.Expr, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var branches [3]ast.Expr
	for i := range branches {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		branches[i] = e
	}
	return &ast.If{Cond: branches[0], Then: branches[1], Else: branches[2]}, nil
}

func (p *parser) fix() (ast.Expr, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.Fix{Body: body}, nil
}

func (p *parser) application(open token) (ast.Expr, error) {
	if p.tok.kind == tokRParen {
		return nil, p.errorf(open, "empty application")
	}
	fn, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind == tokRParen {
		return nil, p.errorf(open, "application requires at least one argument")
	}
	for p.tok.kind != tokRParen {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		fn = &ast.App{Func: fn, Arg: arg}
	}
	return fn, nil
}
