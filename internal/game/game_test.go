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

package game_test

import (
	"testing"

	"github.com/frankkopp/chessenginego/internal/game"
	"github.com/frankkopp/chessenginego/internal/movegen"
	"github.com/frankkopp/chessenginego/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMove(g *game.Game, uci string) (types.Move, bool) {
	for _, m := range movegen.PseudoMoves(g.Position()) {
		if m.StringUci() == uci {
			return m, true
		}
	}
	return 0, false
}

func playUci(t *testing.T, g *game.Game, uci string) {
	t.Helper()
	m, ok := findMove(g, uci)
	require.True(t, ok, "move %s not found among pseudo-legal moves", uci)
	require.True(t, g.TryMake(m), "move %s was illegal", uci)
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	g := game.NewGame()
	before := *g.Position()
	beforeHalfmove := g.HalfmoveClock()

	playUci(t, g, "e2e4")
	g.Unmake()

	assert.Equal(t, before, *g.Position())
	assert.Equal(t, beforeHalfmove, g.HalfmoveClock())
}

func TestThreefoldRepetition(t *testing.T) {
	g, err := game.NewGameFromFEN("8/2r5/8/4k3/8/6R1/3K4/8 w - - 0 1")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		playUci(t, g, "g3f3")
		playUci(t, g, "c7c6")
		playUci(t, g, "f3g3")
		playUci(t, g, "c6c7")
	}

	assert.True(t, g.IsThreefoldRepetition())
}

func TestFiftyMoveRule(t *testing.T) {
	g, err := game.NewGameFromFEN("8/3k4/1n6/8/8/5N2/3K4/8 w - - 99 1")
	require.NoError(t, err)

	playUci(t, g, "f3g5")

	assert.Equal(t, 100, g.HalfmoveClock())
	assert.True(t, g.IsFiftyMoveDraw())
}

func TestEnPassantSquareTracksAndHashesCorrectly(t *testing.T) {
	g := game.NewGame()

	playUci(t, g, "e2e4")
	assert.Equal(t, types.SqE3, g.Position().EpSquare)
	hashAfterE4 := g.Position().Hash

	playUci(t, g, "d7d5")
	assert.Equal(t, types.SqD6, g.Position().EpSquare)

	assert.Equal(t, g.Position().ZobristOf(), g.Position().Hash)
	assert.NotEqual(t, hashAfterE4, g.Position().Hash)
}

func TestCastlingUpdatesHashToMatchFreshRecompute(t *testing.T) {
	g, err := game.NewGameFromFEN("rn1qkbnr/ppp2ppp/3p4/4p3/2B1P1b1/5N2/PPPP1PPP/RNBQK2R w KQkq - 2 4")
	require.NoError(t, err)

	moves := movegen.PseudoMoves(g.Position())
	var castles []types.Move
	for _, m := range moves {
		if m.IsCastle() {
			castles = append(castles, m)
		}
	}
	require.Len(t, castles, 1, "kingside castling should be the unique castling move")
	require.True(t, g.TryMake(castles[0]))

	expected, err := game.NewGameFromFEN("rn1qkbnr/ppp2ppp/3p4/4p3/2B1P1b1/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4")
	require.NoError(t, err)
	assert.Equal(t, expected.Position().Hash, g.Position().Hash)
}

func TestPromotionHashMatchesFreshRecompute(t *testing.T) {
	g, err := game.NewGameFromFEN("8/2P5/8/8/8/1r6/4k1K1/8 w - - 0 1")
	require.NoError(t, err)

	playUci(t, g, "c7c8q")

	assert.Equal(t, g.Position().ZobristOf(), g.Position().Hash)

	other, err2 := game.NewGameFromFEN("2Q5/8/8/8/8/1r6/4k1K1/8 b - - 0 1")
	require.NoError(t, err2)
	assert.Equal(t, other.Position().Hash, g.Position().Hash)
}

func TestInsufficientMaterialScenario(t *testing.T) {
	g, err := game.NewGameFromFEN("8/8/8/1K2k3/8/8/5B2/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, g.IsInsufficientMaterial())
}
