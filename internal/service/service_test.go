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

package service

import (
	"context"
	"testing"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/server"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/hindley"
	"github.com/wdamron/hindley/eval"
	"github.com/wdamron/hindley/parse"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	prelude, err := parse.ParseProgram(`
(def id (lam [x] x))
(def compose (lam [f g x] (f (g x))))
(def sum (foldl + 0))
`)
	require.NoError(t, err)
	s, err := NewSession(context.Background(), prelude, nil)
	require.NoError(t, err)
	return s
}

func TestSessionRun(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)

	res, err := s.Run(ctx, "(def inc (+ 1))\n(compose inc inc 1)")
	require.NoError(t, err)
	assert.Equal(t, "Int", res.Scheme.String())
	assert.Equal(t, eval.Int(3), res.Value)
	assert.Equal(t, []string{"compose", "inc"}, res.Uses)
	require.Len(t, res.Defs, 1)
	assert.Equal(t, "Int -> Int", res.Defs[0].Scheme.String())

	// definitions persist
	res, err = s.Run(ctx, "(sum (map inc [1 2 3]))")
	require.NoError(t, err)
	assert.Equal(t, eval.Int(9), res.Value)

	names := make([]string, 0)
	for _, b := range s.Bindings() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"compose", "id", "inc", "sum"}, names)
}

func TestSessionFailuresDoNotCommit(t *testing.T) {
	ctx := context.Background()
	s := newSession(t)

	_, err := s.Run(ctx, "(def a 1)\n(def b (a 1))")
	require.Error(t, err)
	te, ok := hindley.AsTypeError(err)
	require.True(t, ok)
	assert.Equal(t, hindley.KindUnificationFail, te.Kind())
	_, ok = s.Types().Lookup("a")
	assert.False(t, ok)

	_, err = s.Run(ctx, "(def c (fst 1))")
	require.Error(t, err)

	_, err = s.Run(ctx, "(def d")
	assert.True(t, parse.IsIncomplete(err))
	assert.Equal(t, 3, s.Types().Len())
}

func TestSessionFork(t *testing.T) {
	s := newSession(t)
	fork := s.Fork()
	_, err := fork.Run(context.Background(), "(def only 1)")
	require.NoError(t, err)
	_, ok := s.Types().Lookup("only")
	assert.False(t, ok)
	_, ok = fork.Types().Lookup("only")
	assert.True(t, ok)
}

func TestSessionCheckAndExplain(t *testing.T) {
	s := newSession(t)
	checked, err := s.Check("(compose id id)")
	require.NoError(t, err)
	assert.Equal(t, "forall a. a -> a", checked.Scheme.String())

	inf, err := s.Explain("(id 1)")
	require.NoError(t, err)
	assert.Equal(t, "t2", inf.Type.String())
	require.Len(t, inf.Constraints, 1)
	assert.Equal(t, "t1 -> t1 ~ Int -> t2", inf.Constraints[0].String())
	assert.Equal(t, "Int", inf.Scheme.String())
}

func TestSessionCheckReportsDefinitionsAndBody(t *testing.T) {
	s := newSession(t)
	checked, err := s.Check("(def one (id 1))\n(def two (+ one one))\n(pair one two)")
	require.NoError(t, err)
	require.Len(t, checked.Defs, 2)
	assert.Equal(t, "one", checked.Defs[0].Name)
	assert.Equal(t, "Int", checked.Defs[1].Scheme.String())
	assert.Equal(t, "(Int, Int)", checked.Scheme.String())

	_, err = s.Check("(def one 1)\n(if true one false)")
	assert.EqualError(t, err, "program body: Cannot unify Int with Bool")
	_, ok := hindley.AsTypeError(err)
	assert.True(t, ok)

	_, err = s.Check("(def bad (+ true))\n1")
	assert.EqualError(t, err, "definition bad: Cannot unify Int with Bool")
}

func TestSessionMaxDepth(t *testing.T) {
	s := newSession(t)
	s.SetMaxDepth(50)
	_, err := s.Run(context.Background(), "((fix (lam [loop x] (loop x))) 1)")
	var re *eval.RuntimeError
	assert.True(t, errors.As(err, &re))
}

func TestBadPrelude(t *testing.T) {
	prelude, err := parse.ParseProgram("(def bad (+ true))")
	require.NoError(t, err)
	_, err = NewSession(context.Background(), prelude, nil)
	assert.EqualError(t, err, "prelude: definition bad: Cannot unify Int with Bool")
}

func TestServer(t *testing.T) {
	ctx := context.Background()
	srv := NewServer(newSession(t), nil)
	assert.Equal(t, []string{"eval", "explain", "infer"}, srv.Names())

	loc := server.NewLocal(srv.Methods(), nil)
	defer loc.Close()

	var inferred InferResult
	require.NoError(t, loc.Client.CallResult(ctx, "infer", SourceParams{Source: "(def k (lam [x y] x))\n(k id)"}, &inferred))
	assert.Equal(t, "forall a b. a -> b -> b", inferred.Type)
	assert.Equal(t, []BindingJSON{{Name: "k", Type: "forall a b. a -> b -> a"}}, inferred.Definitions)
	assert.Equal(t, []string{"k", "id"}, inferred.Uses)

	var explained ExplainResult
	require.NoError(t, loc.Client.CallResult(ctx, "explain", SourceParams{Source: "(+ 4 9)"}, &explained))
	assert.Equal(t, "t2", explained.Type)
	assert.Equal(t, []string{"Int -> Int -> Int ~ Int -> t1", "t1 ~ Int -> t2"}, explained.Constraints)
	assert.Equal(t, map[string]string{"t1": "Int -> Int", "t2": "Int"}, explained.Subst)
	assert.Equal(t, "Int", explained.Scheme)

	var evaluated EvalResult
	require.NoError(t, loc.Client.CallResult(ctx, "eval", SourceParams{Source: "(sum [1 2 3])"}, &evaluated))
	assert.Equal(t, EvalResult{Type: "Int", Value: "6"}, evaluated)

	// a definition made by one request is not seen by the next
	require.NoError(t, loc.Client.CallResult(ctx, "eval", SourceParams{Source: "(def z 0)"}, &evaluated))
	err := loc.Client.CallResult(ctx, "infer", SourceParams{Source: "z"}, &inferred)
	assertCode(t, err, CodeTypeError)

	err = loc.Client.CallResult(ctx, "infer", SourceParams{Source: "(if true 1 false)"}, &inferred)
	assertCode(t, err, CodeTypeError)
	err = loc.Client.CallResult(ctx, "explain", SourceParams{Source: "(lam [x]"}, &explained)
	assertCode(t, err, CodeSyntaxError)
	err = loc.Client.CallResult(ctx, "eval", SourceParams{Source: "((fix (lam [f x] (f x))) 1)"}, &evaluated)
	assertCode(t, err, CodeRuntimeError)
}

func assertCode(t *testing.T, err error, code jrpc2.Code) {
	t.Helper()
	var rpcErr *jrpc2.Error
	require.True(t, errors.As(err, &rpcErr), "%v", err)
	assert.Equal(t, code, rpcErr.Code)
}
