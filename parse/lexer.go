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

package parse

import (
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokLBrack
	tokRBrack
	tokInt
	tokSymbol
)

var tokenNames = [...]string{
	tokEOF:    "end of input",
	tokLParen: "'('",
	tokRParen: "')'",
	tokLBrack: "'['",
	tokRBrack: "']'",
	tokInt:    "integer",
	tokSymbol: "symbol",
}

func (k tokenKind) String() string { return tokenNames[k] }

type token struct {
	kind      tokenKind
	text      string
	value     int64
	line, col int
}

func (t token) describe() string {
	switch t.kind {
	case tokInt, tokSymbol:
		return "'" + t.text + "'"
	}
	return t.kind.String()
}

type lexer struct {
	src       string
	pos       int
	line, col int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (lx *lexer) peekByte(offset int) byte {
	if lx.pos+offset >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+offset]
}

func (lx *lexer) advance() {
	if lx.src[lx.pos] == '\n' {
		lx.line, lx.col = lx.line+1, 1
	} else {
		lx.col++
	}
	lx.pos++
}

func (lx *lexer) skipSpaceAndComments() {
	for lx.pos < len(lx.src) {
		switch c := lx.src[lx.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			lx.advance()
		case c == ';':
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.advance()
			}
		default:
			return
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentChar(c byte) bool { return isIdentStart(c) || isDigit(c) || c == '\'' }

// next scans the next token.
func (lx *lexer) next() (token, error) {
	lx.skipSpaceAndComments()
	tok := token{line: lx.line, col: lx.col}
	if lx.pos >= len(lx.src) {
		tok.kind = tokEOF
		return tok, nil
	}
	start := lx.pos
	c := lx.src[lx.pos]
	switch {
	case c == '(':
		tok.kind = tokLParen
		lx.advance()
	case c == ')':
		tok.kind = tokRParen
		lx.advance()
	case c == '[':
		tok.kind = tokLBrack
		lx.advance()
	case c == ']':
		tok.kind = tokRBrack
		lx.advance()
	case isDigit(c) || c == '-' && isDigit(lx.peekByte(1)):
		lx.advance()
		for lx.pos < len(lx.src) && isDigit(lx.src[lx.pos]) {
			lx.advance()
		}
		if lx.pos < len(lx.src) && isIdentChar(lx.src[lx.pos]) {
			return tok, &SyntaxError{Line: tok.line, Column: tok.col, Msg: "malformed integer literal"}
		}
		v, err := strconv.ParseInt(lx.src[start:lx.pos], 10, 64)
		if err != nil {
			return tok, &SyntaxError{Line: tok.line, Column: tok.col, Msg: "integer literal out of range: " + lx.src[start:lx.pos]}
		}
		tok.kind, tok.value = tokInt, v
	case c == '+' || c == '-' || c == '*':
		tok.kind = tokSymbol
		lx.advance()
	case c == '=':
		if lx.peekByte(1) != '=' {
			return tok, &SyntaxError{Line: tok.line, Column: tok.col, Msg: "unexpected character '='"}
		}
		tok.kind = tokSymbol
		lx.advance()
		lx.advance()
	case isIdentStart(c):
		tok.kind = tokSymbol
		for lx.pos < len(lx.src) && isIdentChar(lx.src[lx.pos]) {
			lx.advance()
		}
	default:
		return tok, &SyntaxError{Line: tok.line, Column: tok.col, Msg: "unexpected character " + strconv.QuoteRune(rune(c))}
	}
	tok.text = lx.src[start:lx.pos]
	return tok, nil
}
