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

// PawnAttacks[color][sq] is the set of squares a pawn of color standing on
// sq attacks (diagonal captures only, not the push).
var PawnAttacks [ColorLength][SqLength]Bitboard

// KnightAttacks[sq] is the knight's attack set from sq.
var KnightAttacks [SqLength]Bitboard

// KingAttacks[sq] is the king's one-step attack set from sq.
var KingAttacks [SqLength]Bitboard

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

func pseudoAttacksPreCompute() {
	for sq := Square(0); sq < SqLength; sq++ {
		f, r := int(sq.File()), int(sq.Rank())

		var white, black Bitboard
		if nf, nr := f-1, r+1; nf >= 0 && nr < int(RankLength) {
			white = white.PushSquare(MakeSquare(File(nf), Rank(nr)))
		}
		if nf, nr := f+1, r+1; nf < int(FileLength) && nr < int(RankLength) {
			white = white.PushSquare(MakeSquare(File(nf), Rank(nr)))
		}
		if nf, nr := f-1, r-1; nf >= 0 && nr >= 0 {
			black = black.PushSquare(MakeSquare(File(nf), Rank(nr)))
		}
		if nf, nr := f+1, r-1; nf < int(FileLength) && nr >= 0 {
			black = black.PushSquare(MakeSquare(File(nf), Rank(nr)))
		}
		PawnAttacks[White][sq] = white
		PawnAttacks[Black][sq] = black

		var knight Bitboard
		for _, d := range knightDeltas {
			if nf, nr := f+d[0], r+d[1]; nf >= 0 && nf < int(FileLength) && nr >= 0 && nr < int(RankLength) {
				knight = knight.PushSquare(MakeSquare(File(nf), Rank(nr)))
			}
		}
		KnightAttacks[sq] = knight

		var king Bitboard
		for _, d := range kingDeltas {
			if nf, nr := f+d[0], r+d[1]; nf >= 0 && nf < int(FileLength) && nr >= 0 && nr < int(RankLength) {
				king = king.PushSquare(MakeSquare(File(nf), Rank(nr)))
			}
		}
		KingAttacks[sq] = king
	}
}

func init() {
	pseudoAttacksPreCompute()
	initMagicBitboards()
}

// RookAttacks returns the rook's attack bitboard from sq given occupied,
// via the fancy-magic lookup.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return rookMagics[sq].attacksFor(occupied)
}

// BishopAttacks returns the bishop's attack bitboard from sq given
// occupied, via the fancy-magic lookup.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return bishopMagics[sq].attacksFor(occupied)
}

// QueenAttacks is the union of the rook and bishop lookups.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// GetAttacks dispatches to the right precomputed/magic table for p's
// attack set from sq given the board occupancy. King and Knight ignore
// occupied. Pawn attacks depend on color and are not served here (see
// PawnAttacks); any other piece, Pawn included, yields EmptyBb.
func GetAttacks(p Piece, sq Square, occupied Bitboard) Bitboard {
	switch p {
	case Knight:
		return KnightAttacks[sq]
	case King:
		return KingAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		return EmptyBb
	}
}
