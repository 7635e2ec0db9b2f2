//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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
//

// Package config loads the engine's TOML-backed settings. A missing or
// malformed config file is not fatal: Setup logs a warning and leaves the
// compiled-in defaults in place.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// searchConf holds the tunable search defaults.
type searchConf struct {
	DefaultDepth     int `toml:"defaultDepth"`
	MaxDepth         int `toml:"maxDepth"`
	MovesToGoDefault int `toml:"movesToGoDefault"`
}

// logConf holds logging settings.
type logConf struct {
	Level string `toml:"level"`
}

// conf is the top-level settings struct decoded from config.toml.
type conf struct {
	Log    logConf
	Search searchConf
}

// Settings is the process-wide configuration, populated by Setup; main
// may override Log.Level from the command line afterwards.
var Settings = conf{
	Log: logConf{
		Level: "info",
	},
	Search: searchConf{
		DefaultDepth:     6,
		MaxDepth:         64,
		MovesToGoDefault: 30,
	},
}

// ConfFile is the path Setup reads from, relative to the working directory.
var ConfFile = "./config.toml"

// Setup loads ConfFile into Settings, overwriting the defaults field by
// field. If the file doesn't exist or fails to parse, Setup logs a
// warning to stderr and leaves the defaults untouched — a missing config
// file is normal, not an error condition worth aborting startup over.
func Setup() {
	if _, err := os.Stat(ConfFile); err != nil {
		fmt.Fprintf(os.Stderr, "config: %s not found, using defaults\n", ConfFile)
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		fmt.Fprintf(os.Stderr, "config: failed to parse %s, using defaults: %v\n", ConfFile, err)
	}
}

// String renders Settings for a startup log line.
func (c conf) String() string {
	return fmt.Sprintf("Log{Level:%s} Search{DefaultDepth:%d MaxDepth:%d MovesToGoDefault:%d}",
		c.Log.Level, c.Search.DefaultDepth, c.Search.MaxDepth, c.Search.MovesToGoDefault)
}
