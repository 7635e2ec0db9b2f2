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

package types

// Color is the player to move, White or Black, used as an index into
// side-indexed tables throughout the engine.
type Color uint8

const (
	White Color = 0
	Black Color = 1

	// ColorLength is the number of valid colors, used to size [2]-arrays.
	ColorLength = 2
)

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// Opposite returns the other color.
func (c Color) Opposite() Color {
	return c ^ 1
}

// String renders the UCI-style single letter ("w"/"b").
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Direction returns the pawn-push direction for c: North for White,
// South for Black.
func (c Color) Direction() Direction {
	if c == White {
		return North
	}
	return South
}

// PawnRank2 returns the starting rank for c's pawns (Rank2 for White,
// Rank7 for Black), used to recognize eligibility for a double push.
func (c Color) PawnRank2() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PromotionRank returns the rank c's pawns promote on.
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}
