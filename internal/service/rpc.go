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
	"log/slog"
	"sort"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/pkg/errors"

	"github.com/wdamron/hindley"
	"github.com/wdamron/hindley/eval"
	"github.com/wdamron/hindley/parse"
	"github.com/wdamron/hindley/types"
)

// Error codes reported by the JSON-RPC methods, in the range reserved for application errors.
const (
	CodeSyntaxError  jrpc2.Code = -32001
	CodeTypeError    jrpc2.Code = -32002
	CodeRuntimeError jrpc2.Code = -32003
)

// SourceParams are the parameters of every method.
type SourceParams struct {
	Source string `json:"source"`
}

// BindingJSON is a defined name and its rendered type.
type BindingJSON struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// InferResult is the result of the infer method.
type InferResult struct {
	Definitions []BindingJSON `json:"definitions,omitempty"`
	Type        string        `json:"type,omitempty"`
	Uses        []string      `json:"uses,omitempty"`
}

// ExplainResult is the result of the explain method.
type ExplainResult struct {
	Type        string            `json:"type"`
	Constraints []string          `json:"constraints"`
	Subst       map[string]string `json:"subst"`
	Scheme      string            `json:"scheme"`
}

// EvalResult is the result of the eval method.
type EvalResult struct {
	Definitions []BindingJSON `json:"definitions,omitempty"`
	Type        string        `json:"type,omitempty"`
	Value       string        `json:"value,omitempty"`
}

// Server answers JSON-RPC requests against a fixed base session. Each request runs in its own fork
// of the session, so requests may be served concurrently and never affect one another.
type Server struct {
	base   *Session
	logger *slog.Logger
}

// NewServer creates a server whose requests see the definitions of base.
func NewServer(base *Session, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{base: base, logger: logger}
}

// Methods returns the method table for jrpc2.NewServer.
func (srv *Server) Methods() handler.Map {
	return handler.Map{
		"infer":   handler.New(srv.Infer),
		"explain": handler.New(srv.Explain),
		"eval":    handler.New(srv.Eval),
	}
}

// Infer type-checks a program.
func (srv *Server) Infer(ctx context.Context, params SourceParams) (*InferResult, error) {
	srv.logger.DebugContext(ctx, "infer", "bytes", len(params.Source))
	checked, err := srv.base.Fork().Check(params.Source)
	if err != nil {
		return nil, rpcError(err)
	}
	res := &InferResult{Definitions: bindingsJSON(checked.Defs), Uses: checked.Uses}
	if checked.Scheme != nil {
		res.Type = checked.Scheme.String()
	}
	return res, nil
}

// Explain reports the constraints, substitution and scheme inferred for an expression.
func (srv *Server) Explain(ctx context.Context, params SourceParams) (*ExplainResult, error) {
	srv.logger.DebugContext(ctx, "explain", "bytes", len(params.Source))
	inf, err := srv.base.Fork().Explain(params.Source)
	if err != nil {
		return nil, rpcError(err)
	}
	res := &ExplainResult{
		Type:        inf.Type.String(),
		Constraints: make([]string, len(inf.Constraints)),
		Subst:       make(map[string]string, inf.Subst.Len()),
		Scheme:      inf.Scheme.String(),
	}
	for i, c := range inf.Constraints {
		res.Constraints[i] = c.String()
	}
	inf.Subst.Range(func(v types.Var, t types.Type) bool {
		res.Subst[v.Name] = t.String()
		return true
	})
	return res, nil
}

// Eval type-checks and evaluates a program.
func (srv *Server) Eval(ctx context.Context, params SourceParams) (*EvalResult, error) {
	srv.logger.DebugContext(ctx, "eval", "bytes", len(params.Source))
	out, err := srv.base.Fork().Run(ctx, params.Source)
	if err != nil {
		return nil, rpcError(err)
	}
	res := &EvalResult{Definitions: bindingsJSON(out.Defs)}
	if out.Scheme != nil {
		res.Type = out.Scheme.String()
	}
	if out.Value != nil {
		res.Value = out.Value.String()
	}
	return res, nil
}

func bindingsJSON(bs []Binding) []BindingJSON {
	if len(bs) == 0 {
		return nil
	}
	out := make([]BindingJSON, len(bs))
	for i, b := range bs {
		out[i] = BindingJSON{Name: b.Name, Type: b.Scheme.String()}
	}
	return out
}

// Names returns the method names served, sorted.
func (srv *Server) Names() []string {
	methods := srv.Methods()
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func rpcError(err error) error {
	var (
		se *parse.SyntaxError
		re *eval.RuntimeError
	)
	switch {
	case errors.As(err, &se):
		return jrpc2.Errorf(CodeSyntaxError, "%s", err.Error())
	case errors.As(err, &re):
		return jrpc2.Errorf(CodeRuntimeError, "%s", err.Error())
	}
	if _, ok := hindley.AsTypeError(err); ok {
		return jrpc2.Errorf(CodeTypeError, "%s", err.Error())
	}
	return err
}
