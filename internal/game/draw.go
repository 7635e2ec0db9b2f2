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

package game

// RepetitionCount walks the undo stack from most recent to oldest and
// counts how many prior positions share the current position's Zobrist
// hash, starting from 1 for the current occurrence. Irreversible moves
// need not truncate the scan: hash inequality naturally stops matches
// from older, unrelated branches.
func (g *Game) RepetitionCount() int {
	current := g.pos.Hash
	count := 1
	for i := len(g.undos) - 1; i >= 0; i-- {
		if g.undos[i].prevHash == current {
			count++
		}
	}
	return count
}

// IsThreefoldRepetition reports whether the current position has occurred
// three times in the game so far.
func (g *Game) IsThreefoldRepetition() bool {
	return g.RepetitionCount() >= 3
}

// IsFiftyMoveDraw reports whether 100 half-moves have passed since the
// last pawn move or capture.
func (g *Game) IsFiftyMoveDraw() bool {
	return g.halfmove >= 100
}

// IsInsufficientMaterial reports whether neither side has enough material
// to force checkmate.
func (g *Game) IsInsufficientMaterial() bool {
	return g.pos.HasInsufficientMaterial()
}

// IsDraw reports whether any of the three draw rules currently apply.
func (g *Game) IsDraw() bool {
	return g.IsThreefoldRepetition() || g.IsFiftyMoveDraw() || g.IsInsufficientMaterial()
}
