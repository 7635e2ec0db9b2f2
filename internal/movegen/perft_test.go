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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chessenginego/internal/game"
)

// Perft node counts from https://www.chessprogramming.org/Perft_Results
func TestStandardPerft(t *testing.T) {
	var results = [6]uint64{1, 20, 400, 8_902, 197_281, 4_865_609}

	for depth := 0; depth <= 4; depth++ {
		g := game.NewGame()
		assert.Equal(t, results[depth], Perft(g, depth), "perft(%d)", depth)
	}
}

func TestDivideAgreesWithPerft(t *testing.T) {
	g := game.NewGame()
	entries, total := Divide(g, 3)
	assert.Equal(t, Perft(game.NewGame(), 3), total)

	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	assert.Equal(t, total, sum)
	assert.Len(t, entries, 20, "20 legal root moves in the starting position")
}

func TestPerftKiwipete(t *testing.T) {
	g, err := game.NewGameFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, uint64(48), Perft(g, 1))
	assert.Equal(t, uint64(2_039), Perft(g, 2))
}
