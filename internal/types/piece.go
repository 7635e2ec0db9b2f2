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

// ColoredPiece combines a Piece and a Color, used purely for presentation
// (FEN output, board printing) where a square needs to name both at once.
// The bitboard sets themselves never need this pairing: each BitboardSet
// is already side-specific.
type ColoredPiece struct {
	Piece Piece
	Color Color
}

// NoPiece is the zero-value "nothing on this square" marker.
var NoPiece = ColoredPiece{Piece: PieceNone, Color: White}

// IsEmpty reports whether cp represents an empty square.
func (cp ColoredPiece) IsEmpty() bool {
	return cp.Piece == PieceNone
}

// Char returns the FEN letter for cp: uppercase for White, lowercase for
// Black, '.' for an empty square.
func (cp ColoredPiece) Char() byte {
	if cp.IsEmpty() {
		return '.'
	}
	c := cp.Piece.Char()
	if cp.Color == Black {
		c += 'a' - 'A'
	}
	return c
}

// String renders cp's FEN letter as a one-character string.
func (cp ColoredPiece) String() string {
	return string(cp.Char())
}
