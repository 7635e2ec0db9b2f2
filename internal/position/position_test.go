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

package position

import (
	"testing"

	"github.com/frankkopp/chessenginego/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartPositionInvariants(t *testing.T) {
	p := NewStartPosition()
	assert.Equal(t, p.W.Pawns|p.W.Knights|p.W.Bishops|p.W.Rooks|p.W.Queens|p.W.King, p.W.All)
	assert.Equal(t, p.B.Pawns|p.B.Knights|p.B.Bishops|p.B.Rooks|p.B.Queens|p.B.King, p.B.All)
	assert.Equal(t, p.W.All|p.B.All, p.Occupied)
	assert.Equal(t, types.EmptyBb, p.W.All&p.B.All)
	assert.Equal(t, p.ZobristOf(), p.Hash)
	assert.Equal(t, 1, p.W.King.PopCount())
	assert.Equal(t, 1, p.B.King.PopCount())
}

func TestIsSquareAttackedByPawn(t *testing.T) {
	p, _, _, err := FromFEN("8/8/8/3p4/8/8/8/K6k b - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.IsSquareAttacked(types.SqE4, types.Black))
	assert.True(t, p.IsSquareAttacked(types.SqC4, types.Black))
	assert.False(t, p.IsSquareAttacked(types.SqD4, types.Black))
}

func TestIsKingInCheck(t *testing.T) {
	p, _, _, err := FromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.IsKingInCheck(types.White))
	assert.False(t, p.IsKingInCheck(types.Black))
}

func TestHasInsufficientMaterialPawnIsSufficient(t *testing.T) {
	p, _, _, err := FromFEN("8/2P5/8/1K2k3/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasInsufficientMaterial(), "a pawn is sufficient material")
}

func TestHasInsufficientMaterialLoneBishop(t *testing.T) {
	p, _, _, err := FromFEN("8/8/8/1K2k3/8/8/5B2/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, p.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialOppositeColorBishops(t *testing.T) {
	// Bishops on opposite-colored squares: sufficient.
	p, _, _, err := FromFEN("8/8/8/1K2k3/8/3b4/5B2/8 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.HasInsufficientMaterial())
}

func TestStringFenRoundTrip(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	p, halfmove, _, err := FromFEN(fen)
	require.NoError(t, err)
	assert.Equal(t, fen, p.StringFen(halfmove, 1))
}
