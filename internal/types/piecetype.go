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

// Piece is one of the six piece kinds, carrying its own table index in
// [0,5]. Color is tracked separately (see Color, and the combined
// ColoredPiece used for presentation).
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceLength
	PieceNone = PieceLength
)

// pieceValues holds each piece's material value, indexed by Piece.
var pieceValues = [PieceLength]int{
	Pawn:   100,
	Knight: 300,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   100000,
}

// Value returns p's material value.
func (p Piece) Value() int {
	return pieceValues[p]
}

// IsValid reports whether p is one of the six real piece kinds.
func (p Piece) IsValid() bool {
	return p < PieceLength
}

var pieceChars = [PieceLength]byte{
	Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K',
}

// Char returns the uppercase piece letter used in FEN and UCI strings.
func (p Piece) Char() byte {
	if !p.IsValid() {
		return '?'
	}
	return pieceChars[p]
}

// String returns the uppercase piece letter as a string.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar maps a FEN piece letter (either case) to its Piece, with
// the case indicating color.
func PieceFromChar(c byte) (Piece, Color, bool) {
	var color Color
	uc := c
	if c >= 'a' && c <= 'z' {
		color = Black
		uc = c - ('a' - 'A')
	} else {
		color = White
	}
	for p := Pawn; p < PieceLength; p++ {
		if pieceChars[p] == uc {
			return p, color, true
		}
	}
	return PieceNone, White, false
}

// PromotionPieceFromChar maps a lowercase UCI promotion letter
// (q|r|b|n) to its Piece.
func PromotionPieceFromChar(c byte) (Piece, bool) {
	switch c {
	case 'q':
		return Queen, true
	case 'r':
		return Rook, true
	case 'b':
		return Bishop, true
	case 'n':
		return Knight, true
	default:
		return PieceNone, false
	}
}

// PromotionChar returns the lowercase UCI promotion letter for p.
func (p Piece) PromotionChar() byte {
	switch p {
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	default:
		return 0
	}
}
