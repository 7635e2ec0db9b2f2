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

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chessenginego/internal/config"
	"github.com/frankkopp/chessenginego/internal/types"
)

func TestMain(m *testing.M) {
	config.Setup()
	m.Run()
}

func TestUciCommand(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("uci")
	assert.Contains(t, result, "id name chessenginego")
	assert.Contains(t, result, "id author")
	assert.Contains(t, result, "uciok")
}

func TestIsreadyCmd(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("isready")
	assert.Contains(t, result, "readyok")
}

func TestUnknownCommand(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("bananas")
	assert.Contains(t, result, "info string Unknown command!")
}

func TestPositionCmd(t *testing.T) {
	uh := NewUciHandler()

	uh.Command("position startpos")
	assert.EqualValues(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		uh.game.Position().StringFen(uh.game.HalfmoveClock(), uh.game.FullmoveNumber()))

	uh.Command("position fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.EqualValues(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		uh.game.Position().StringFen(uh.game.HalfmoveClock(), uh.game.FullmoveNumber()))

	result := uh.Command("position fen")
	assert.Contains(t, result, "Bad FEN!")

	uh.Command("position startpos moves e2e4 e7e5 g1f3 b8c6")
	assert.EqualValues(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		uh.game.Position().StringFen(uh.game.HalfmoveClock(), uh.game.FullmoveNumber()))
}

func TestPositionCmdSkipsInvalidMoveAndContinues(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos moves e2e4 e7e5 bogus g1f3 b8c6")
	assert.EqualValues(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		uh.game.Position().StringFen(uh.game.HalfmoveClock(), uh.game.FullmoveNumber()))
}

func TestPositionCmdBadFen(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("position fen not-a-fen moves")
	assert.Contains(t, result, "Bad FEN!")
}

func TestGoDepthSearchCompletes(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position fen 8/8/8/8/8/8/2k5/K7 w - - 0 1")
	uh.Command("go depth 3")
	uh.mySearch.WaitWhileSearching()
	assert.False(t, uh.mySearch.IsSearching())
}

func TestStopSearch(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos")
	uh.Command("go infinite")
	time.Sleep(20 * time.Millisecond)
	uh.Command("stop")
	assert.False(t, uh.mySearch.IsSearching())
}

func TestGoPerftReportsNodeCount(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos")
	result := uh.Command("go perft 2")
	assert.Contains(t, result, "Nodes searched: 400")
}

func TestGoPerftRange(t *testing.T) {
	uh := NewUciHandler()
	uh.Command("position startpos")
	result := uh.Command("go perft 1 2")
	assert.Contains(t, result, "Nodes searched: 20")
	assert.Contains(t, result, "Nodes searched: 400")
}

func TestParsePerftRange(t *testing.T) {
	from, to, ok := parsePerftRange([]string{"go", "perft", "4"})
	require.True(t, ok)
	assert.Equal(t, 4, from)
	assert.Equal(t, 4, to)

	from, to, ok = parsePerftRange([]string{"go", "perft", "1", "4"})
	require.True(t, ok)
	assert.Equal(t, 1, from)
	assert.Equal(t, 4, to)

	_, _, ok = parsePerftRange([]string{"go", "depth", "4"})
	assert.False(t, ok)
}

func TestComputeMoveTime(t *testing.T) {
	d := computeMoveTime(types.White, 30*time.Second, 30*time.Second, 0, 0)
	assert.Equal(t, time.Second, d)
}

func TestDCommand(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("d")
	assert.Contains(t, result, "Fen: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Contains(t, result, "Key:")
}

func TestUciHandlerLoop(t *testing.T) {
	uh := NewUciHandler()
	uh.InIo = bufio.NewScanner(strings.NewReader("uci\nisready\nquit\n"))
	buffer := new(bytes.Buffer)
	uh.OutIo = bufio.NewWriter(buffer)
	uh.Loop()
	result := buffer.String()
	assert.Contains(t, result, "uciok")
	assert.Contains(t, result, "readyok")
}
