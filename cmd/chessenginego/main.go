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

package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessenginego/internal/config"
	"github.com/frankkopp/chessenginego/internal/game"
	"github.com/frankkopp/chessenginego/internal/logging"
	"github.com/frankkopp/chessenginego/internal/movegen"
	"github.com/frankkopp/chessenginego/internal/uci"
	"github.com/frankkopp/chessenginego/internal/version"
)

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	perftDepth := flag.Int("perft", 0, "runs perft on the given fen to the given depth and exits\nuse -fen to provide a different position")
	fen := flag.String("fen", "", "fen to use with -perft, defaults to the standard starting position")
	cpuProfile := flag.Bool("cpuprofile", false, "write a cpu.pprof in the working directory for the lifetime of the process")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if *logLvl != "" {
		config.Settings.Log.Level = *logLvl
	}
	logging.SetLevel(config.Settings.Log.Level)

	if *perftDepth != 0 {
		runPerft(*fen, *perftDepth)
		return
	}

	u := uci.NewUciHandler()
	u.Loop()
	os.Exit(0)
}

func runPerft(fen string, depth int) {
	var g *game.Game
	if fen == "" {
		g = game.NewGame()
	} else {
		loaded, err := game.NewGameFromFEN(fen)
		if err != nil {
			out.Println("Bad FEN!", err)
			os.Exit(1)
		}
		g = loaded
	}
	entries, total := movegen.Divide(g, depth)
	for _, e := range entries {
		out.Printf("%s %d\n", e.Move, e.Nodes)
	}
	out.Printf("Nodes searched: %d\n", total)
}

func printVersionInfo() {
	out.Printf("%s\n", version.String())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
