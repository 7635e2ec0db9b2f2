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

// Package uci contains the UciHandler data structure and functionality to
// handle the UCI protocol communication between the Chess User Interface
// and the chess engine.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	golog "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessenginego/internal/config"
	"github.com/frankkopp/chessenginego/internal/game"
	"github.com/frankkopp/chessenginego/internal/logging"
	"github.com/frankkopp/chessenginego/internal/movegen"
	"github.com/frankkopp/chessenginego/internal/search"
	"github.com/frankkopp/chessenginego/internal/types"
	"github.com/frankkopp/chessenginego/internal/util"
	"github.com/frankkopp/chessenginego/internal/version"
)

var out = message.NewPrinter(language.English)
var log *golog.Logger = logging.GetLog("uci")

// UciHandler owns the authoritative Game, dispatches protocol commands
// onto it, and hands a clone off to Search on every "go". It implements
// engineio.Reporter directly so Search can report back without knowing
// anything about stdio.
type UciHandler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	game     *game.Game
	mySearch *search.Search
}

// NewUciHandler wires stdin/stdout and a fresh Search instance to a new
// Game at the standard starting position. config.Setup must have already
// been called by main; NewUciHandler applies its logging level.
func NewUciHandler() *UciHandler {
	logging.SetLevel(config.Settings.Log.Level)
	u := &UciHandler{
		InIo:  bufio.NewScanner(os.Stdin),
		OutIo: bufio.NewWriter(os.Stdout),
		game:  game.NewGame(),
	}
	u.InIo.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	u.mySearch = search.NewSearch(u)
	return u
}

// Loop starts the main loop to receive commands through the input stream
// (pipe or user) until "quit" is received.
func (u *UciHandler) Loop() {
	u.loop()
}

// Command handles a single line of UCI protocol. Returns everything the
// handler wrote to OutIo for that command — useful for tests.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// SendIterationInfo implements engineio.Reporter.
func (u *UciHandler) SendIterationInfo(depth int, score types.Value, nodes uint64, elapsed time.Duration, pv []types.Move) {
	u.send(fmt.Sprintf("info depth %d score %s time %d nodes %d nps %d pv %s",
		depth, score.String(), elapsed.Milliseconds(), nodes, util.Nps(nodes, elapsed), pvString(pv)))
}

// SendBestMove implements engineio.Reporter.
func (u *UciHandler) SendBestMove(best types.Move) {
	u.send("bestmove " + best.StringUci())
}

// SendInfoString implements engineio.Reporter.
func (u *UciHandler) SendInfoString(s string) {
	u.send("info string " + s)
}

func pvString(pv []types.Move) string {
	var sb strings.Builder
	for i, m := range pv {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}

func (u *UciHandler) loop() {
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			return
		}
	}
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handleReceivedCommand dispatches one line. It returns true when "quit"
// was received and the caller should stop looping.
func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if len(cmd) == 0 {
		return false
	}
	log.Debugf("<< %s", cmd)
	tokens := regexWhiteSpace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		u.mySearch.StopSearch()
		return true
	case "uci":
		u.uciCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "isready":
		u.send("readyok")
	case "ucinewgame":
		u.uciNewGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.mySearch.StopSearch()
		u.mySearch.WaitWhileSearching()
	case "d":
		u.send(u.game.String())
	default:
		u.SendInfoString("Unknown command!")
	}
	return false
}

func (u *UciHandler) uciCommand() {
	u.send("id name " + version.String())
	u.send("id author " + version.Author)
	u.send("uciok")
}

// setoption is parsed but has nothing to act on — this engine has no
// tunable options — so it only validates the name/value shape.
func (u *UciHandler) setOptionCommand(tokens []string) {
	if len(tokens) < 2 || tokens[1] != "name" {
		u.SendInfoString("Command 'setoption' is malformed")
		return
	}
	log.Debugf("setoption ignored: %s", strings.Join(tokens[1:], " "))
}

func (u *UciHandler) uciNewGameCommand() {
	u.mySearch.StopSearch()
	u.mySearch.WaitWhileSearching()
	u.game = game.NewGame()
}

// positionCommand resets to startpos or a FEN, then applies the trailing
// move list. An invalid move string is silently skipped and parsing
// continues with the next token — the protocol never aborts mid-list.
func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.SendInfoString("Command 'position' malformed")
		return
	}
	i := 1
	switch tokens[i] {
	case "startpos":
		u.game = game.NewGame()
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if fenb.Len() > 0 {
				fenb.WriteByte(' ')
			}
			fenb.WriteString(tokens[i])
			i++
		}
		g, err := game.NewGameFromFEN(fenb.String())
		if err != nil {
			u.SendInfoString("Bad FEN! " + err.Error())
			return
		}
		u.game = g
	default:
		u.SendInfoString(out.Sprintf("Command 'position' malformed: %v", tokens))
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m, ok := movegen.FromUci(u.game.Position(), tokens[i])
			if !ok || !u.game.TryMake(m) {
				log.Warningf("position: ignoring invalid move '%s'", tokens[i])
				continue
			}
		}
	}
}

// goCommand reads the search limits and either runs perft synchronously
// or hands the game off to Search for a background search.
func (u *UciHandler) goCommand(tokens []string) {
	if from, to, ok := parsePerftRange(tokens); ok {
		u.perftCommand(from, to)
		return
	}
	limits := u.readGoLimits(tokens)
	u.mySearch.StopSearch()
	u.mySearch.WaitWhileSearching()
	u.mySearch.StartSearch(u.game, limits)
}

// parsePerftRange looks for a leading "perft N [M]" subcommand. A single
// depth N runs perft(N) only; a second depth M runs every depth in [N,M].
func parsePerftRange(tokens []string) (from, to int, ok bool) {
	for i := 1; i < len(tokens); i++ {
		if tokens[i] != "perft" {
			continue
		}
		if i+1 >= len(tokens) {
			return 0, 0, false
		}
		n, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			return 0, 0, false
		}
		from, to = n, n
		if i+2 < len(tokens) {
			if m, err := strconv.Atoi(tokens[i+2]); err == nil {
				to = m
			}
		}
		return from, to, true
	}
	return 0, 0, false
}

// readGoLimits parses go's subcommands. Unrecognized subcommands are
// logged and skipped; values that do not parse are skipped without a log
// line. The remaining tokens are still honored.
func (u *UciHandler) readGoLimits(tokens []string) search.Limits {
	var limits search.Limits
	var wtime, btime, winc, binc time.Duration
	haveWtime, haveBtime := false, false

	parseMs := func(s string) (time.Duration, bool) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, false
		}
		return time.Duration(n) * time.Millisecond, true
	}

	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "movetime":
			if i+1 < len(tokens) {
				if d, ok := parseMs(tokens[i+1]); ok {
					limits.MoveTime = d
				}
				i++
			}
		case "depth":
			if i+1 < len(tokens) {
				if n, err := strconv.Atoi(tokens[i+1]); err == nil {
					limits.Depth = n
				}
				i++
			}
		case "infinite":
			limits.Infinite = true
		case "wtime":
			if i+1 < len(tokens) {
				if d, ok := parseMs(tokens[i+1]); ok {
					wtime = d
					haveWtime = true
				}
				i++
			}
		case "btime":
			if i+1 < len(tokens) {
				if d, ok := parseMs(tokens[i+1]); ok {
					btime = d
					haveBtime = true
				}
				i++
			}
		case "winc":
			if i+1 < len(tokens) {
				if d, ok := parseMs(tokens[i+1]); ok {
					winc = d
				}
				i++
			}
		case "binc":
			if i+1 < len(tokens) {
				if d, ok := parseMs(tokens[i+1]); ok {
					binc = d
				}
				i++
			}
		default:
			log.Warningf("go: ignoring unrecognized subcommand '%s'", tokens[i])
		}
	}

	if haveWtime && haveBtime && limits.MoveTime == 0 && limits.Depth == 0 && !limits.Infinite {
		limits.MoveTime = computeMoveTime(u.game.Position().SideToMove, wtime, btime, winc, binc)
	}

	if limits.MoveTime == 0 && limits.Depth == 0 && !limits.Infinite {
		limits.Infinite = true
	}

	return limits
}

// computeMoveTime mirrors the original compute_movetime: allocate 1/30th
// of the remaining clock for the side to move plus 80% of its increment.
func computeMoveTime(side types.Color, wtime, btime, winc, binc time.Duration) time.Duration {
	clock, inc := wtime, winc
	if side == types.Black {
		clock, inc = btime, binc
	}
	const movesRemaining = 30
	return clock/movesRemaining + (inc*8)/10
}

// perftCommand runs perft synchronously (no background worker; it's not
// a search) for every depth in [fromDepth,toDepth] and prints the root
// divide followed by the node-count summary at each depth.
func (u *UciHandler) perftCommand(fromDepth, toDepth int) {
	for depth := fromDepth; depth <= toDepth; depth++ {
		start := time.Now()
		clone := u.game.Clone()
		entries, total := movegen.Divide(clone, depth)
		elapsed := time.Since(start)

		for _, e := range entries {
			u.send(fmt.Sprintf("%s %d", e.Move, e.Nodes))
		}
		u.send(fmt.Sprintf("Nodes searched: %d", total))
		u.send(fmt.Sprintf("Time: %.3f sec", elapsed.Seconds()))
		u.send(fmt.Sprintf("Nodes per second: %d", util.Nps(total, elapsed)))
	}
}

func (u *UciHandler) send(s string) {
	log.Debugf(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
