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

// Package config loads hindley.toml configuration files.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/wdamron/hindley/ast"
	"github.com/wdamron/hindley/parse"
)

// FileName is the name searched for by Find.
const FileName = "hindley.toml"

// Config is the contents of a hindley.toml file.
type Config struct {
	// Debug enables debug logging of inference.
	Debug bool `toml:"debug"`

	// History is the REPL history file. Relative paths are resolved against the user's home directory.
	History string `toml:"history,omitempty"`

	// Include lists program files whose definitions form the prelude, relative to the config file.
	Include []string `toml:"include,omitempty"`

	// Define lists prelude definitions, added after the included files.
	Define []Definition `toml:"define,omitempty"`

	dir string
}

// Definition is a named prelude expression.
type Definition struct {
	Name string `toml:"name"`
	Expr string `toml:"expr"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{History: ".hindley_history"}
}

// Load decodes the configuration file at path.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("parsing %s: unknown key %s", path, undecoded[0])
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Find searches for hindley.toml in dir and its parents, stopping at a .git directory. It returns
// the path and configuration found, or an empty path and the default configuration.
func Find(dir string) (string, *Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			if err != nil {
				return "", nil, err
			}
			return path, cfg, nil
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", Default(), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", Default(), nil
		}
		dir = parent
	}
}

// HistoryPath resolves the REPL history file, or returns "" when history is disabled.
func (c *Config) HistoryPath() string {
	if c.History == "" || filepath.IsAbs(c.History) {
		return c.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.History)
}

// Prelude parses the included files and the inline definitions into a program without a body.
func (c *Config) Prelude() (*ast.Program, error) {
	prelude := &ast.Program{}
	for _, inc := range c.Include {
		path := inc
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.dir, path)
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading prelude")
		}
		prog, err := parse.ParseProgram(string(src))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		if prog.Body != nil {
			return nil, errors.Errorf("parsing %s: prelude files may only contain definitions", path)
		}
		prelude.Defs = append(prelude.Defs, prog.Defs...)
	}
	for _, def := range c.Define {
		if parse.IsKeyword(def.Name) || def.Name == "" {
			return nil, errors.Errorf("define: invalid name %q", def.Name)
		}
		e, err := parse.ParseExpr(def.Expr)
		if err != nil {
			return nil, errors.Wrapf(err, "define %s", def.Name)
		}
		prelude.Defs = append(prelude.Defs, ast.Defn{Name: def.Name, Value: e})
	}
	return prelude, nil
}
