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

// Package logging wraps github.com/op/go-logging into a single factory
// function: every package that wants a logger calls GetLog(name) once at
// init and keeps the returned *logging.Logger for the life of the
// process.
package logging

import (
	"os"

	golog "github.com/op/go-logging"
)

var (
	backendInitialized bool
	leveled            golog.LeveledBackend
)

// GetLog returns a named logger backed by a single stdout backend. The
// format and level are configured once, the first time GetLog is called;
// subsequent calls just mint another named logger sharing that backend.
func GetLog(name string) *golog.Logger {
	if !backendInitialized {
		setupBackend()
		backendInitialized = true
	}
	return golog.MustGetLogger(name)
}

func setupBackend() {
	backend := golog.NewLogBackend(os.Stdout, "", 0)
	format := golog.MustStringFormatter(
		`%{time:15:04:05.000} %{level:-8s} %{module:-12s} %{message}`,
	)
	formatted := golog.NewBackendFormatter(backend, format)
	leveled = golog.AddModuleLevel(formatted)
	leveled.SetLevel(golog.INFO, "")
	golog.SetBackend(leveled)
}

// SetLevel changes the global log level, used by main and by
// uci.NewUciHandler to apply the configured level.
func SetLevel(level string) {
	if !backendInitialized {
		setupBackend()
		backendInitialized = true
	}
	lvl, err := golog.LogLevel(level)
	if err != nil {
		lvl = golog.INFO
	}
	leveled.SetLevel(lvl, "")
}
