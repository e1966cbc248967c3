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
	"log/slog"

	"github.com/wdamron/hindley/internal/typeutil"
	"github.com/wdamron/hindley/types"
)

// InferenceContext carries the fresh-name supply for inference. Names are allocated as t1, t2, t3, ...
// in allocation order, so inference of the same expression in a new context is deterministic.
//
// An InferenceContext is not safe for concurrent use. Independent inferences should use separate contexts.
type InferenceContext struct {
	vars   typeutil.VarTracker
	logger *slog.Logger
}

var discardLogger = slog.New(slog.DiscardHandler)

// NewContext creates an inference context whose fresh-name supply starts at t1.
func NewContext() *InferenceContext {
	return &InferenceContext{logger: discardLogger}
}

// SetLogger directs debug records for solving and generalization to l. A nil logger discards them.
func (ti *InferenceContext) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	ti.logger = l
}

// Reset restarts the fresh-name supply from t1.
func (ti *InferenceContext) Reset() { ti.vars.Reset() }

// VarCount returns the number of type-variables allocated since the last reset.
func (ti *InferenceContext) VarCount() int { return ti.vars.Count() }

// Fresh allocates a new type-variable.
func (ti *InferenceContext) Fresh() types.Var { return ti.vars.New() }

func (ti *InferenceContext) log() *slog.Logger {
	if ti.logger == nil {
		return discardLogger
	}
	return ti.logger
}
