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
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wdamron/hindley/internal/config"
	"github.com/wdamron/hindley/internal/service"
)

var (
	version = "v0.1.0"
	commit  = "dev"
)

// options are the flags shared by every command.
type options struct {
	Debug      bool
	ConfigPath string
	MaxDepth   int
}

func main() {
	rootCmd := newRootCmd()
	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version),
		fang.WithCommit(commit),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "hindley",
		Short: "Type inference for a small functional language",
		Long: `hindley infers Hindley-Milner types for a small functional language with
let-polymorphism, lists, pairs and a fixpoint operator, and evaluates it.`,
		Example: `  # Start the interactive REPL
  hindley

  # Type-check programs
  hindley check lib.hm main.hm

  # Evaluate a program
  hindley eval main.hm

  # Serve JSON-RPC requests on stdin/stdout
  hindley serve`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, &opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.Debug, "debug", "d", false, "Enable debug logging")
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to "+config.FileName+" (searched upward from the working directory by default)")
	flags.IntVar(&opts.MaxDepth, "max-depth", 0, "Maximum nesting of function applications during evaluation (0 for the default)")

	rootCmd.AddCommand(
		replCmd(&opts),
		checkCmd(&opts),
		evalCmd(&opts),
		serveCmd(&opts),
	)
	return rootCmd
}

// app is the configuration, logger and prelude session shared by the commands.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	session *service.Session
}

func setup(cmd *cobra.Command, opts *options) (*app, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		var cwd string
		if cwd, err = os.Getwd(); err == nil {
			_, cfg, err = config.Find(cwd)
		}
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading config")
	}

	level := slog.LevelInfo
	if opts.Debug || cfg.Debug {
		level = slog.LevelDebug
	}
	stderr := cmd.ErrOrStderr()
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:   level,
		NoColor: !isTerminal(stderr),
	}))
	slog.SetDefault(logger)

	prelude, err := cfg.Prelude()
	if err != nil {
		return nil, err
	}
	session, err := service.NewSession(cmd.Context(), prelude, logger)
	if err != nil {
		return nil, err
	}
	if opts.MaxDepth > 0 {
		session.SetMaxDepth(opts.MaxDepth)
	}
	return &app{cfg: cfg, logger: logger, session: session}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
