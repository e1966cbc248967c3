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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wdamron/hindley/internal/service"
)

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Infer the types of the definitions and body of each program",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			return checkFiles(cmd.Context(), a.session, args, cmd.OutOrStdout())
		},
	}
}

type checkResult struct {
	checked *service.Checked
	err     error
}

// checkFiles type-checks each file independently against the prelude session. Files are checked
// concurrently; results are reported in argument order.
func checkFiles(ctx context.Context, base *service.Session, paths []string, out io.Writer) error {
	results := make([]checkResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			checked, err := base.Fork().Check(string(src))
			results[i] = checkResult{checked: checked, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, path := range paths {
		res := results[i]
		if res.err != nil {
			failed++
			fmt.Fprintf(out, "%s: error: %v\n", path, res.err)
			continue
		}
		for _, def := range res.checked.Defs {
			fmt.Fprintf(out, "%s: %s :: %s\n", path, def.Name, def.Scheme)
		}
		if res.checked.Scheme != nil {
			fmt.Fprintf(out, "%s: it :: %s\n", path, res.checked.Scheme)
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files failed to type-check", failed, len(paths))
	}
	return nil
}
