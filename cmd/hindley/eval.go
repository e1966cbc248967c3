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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func evalCmd(opts *options) *cobra.Command {
	var showDefs bool
	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Type-check and evaluate a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			res, err := a.session.Run(cmd.Context(), string(src))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if showDefs {
				for _, def := range res.Defs {
					fmt.Fprintf(out, "%s :: %s\n", def.Name, def.Scheme)
				}
			}
			if res.Value != nil {
				fmt.Fprintf(out, "%s :: %s\n", res.Value, res.Scheme)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showDefs, "defs", false, "Print the type of each definition")
	return cmd
}
