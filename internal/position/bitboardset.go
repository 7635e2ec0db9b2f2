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

import "github.com/frankkopp/chessenginego/internal/types"

// BitboardSet holds one side's seven bitboards. All must always equal the
// union of the six piece bitboards, and those six must be pairwise
// disjoint; King must carry exactly one bit in any legal position.
type BitboardSet struct {
	All     types.Bitboard
	Pawns   types.Bitboard
	Knights types.Bitboard
	Bishops types.Bitboard
	Rooks   types.Bitboard
	Queens  types.Bitboard
	King    types.Bitboard
}

// ByPiece returns the bitboard for p, for dispatch-by-index code.
func (s *BitboardSet) ByPiece(p types.Piece) types.Bitboard {
	switch p {
	case types.Pawn:
		return s.Pawns
	case types.Knight:
		return s.Knights
	case types.Bishop:
		return s.Bishops
	case types.Rook:
		return s.Rooks
	case types.Queen:
		return s.Queens
	case types.King:
		return s.King
	default:
		return types.EmptyBb
	}
}

// bbPtr returns a pointer to the bitboard field for p, used by callers
// that need to mutate it in place.
func (s *BitboardSet) bbPtr(p types.Piece) *types.Bitboard {
	switch p {
	case types.Pawn:
		return &s.Pawns
	case types.Knight:
		return &s.Knights
	case types.Bishop:
		return &s.Bishops
	case types.Rook:
		return &s.Rooks
	case types.Queen:
		return &s.Queens
	case types.King:
		return &s.King
	default:
		panic("bitboardset: invalid piece")
	}
}

// Put sets sq on p's bitboard and on All.
func (s *BitboardSet) Put(p types.Piece, sq types.Square) {
	*s.bbPtr(p) = s.bbPtr(p).PushSquare(sq)
	s.All = s.All.PushSquare(sq)
}

// Remove clears sq from p's bitboard and from All.
func (s *BitboardSet) Remove(p types.Piece, sq types.Square) {
	*s.bbPtr(p) = s.bbPtr(p).PopSquare(sq)
	s.All = s.All.PopSquare(sq)
}

// Move clears sq "from" and sets sq "to" on p's bitboard, in one step.
func (s *BitboardSet) Move(p types.Piece, from, to types.Square) {
	s.Remove(p, from)
	s.Put(p, to)
}

// PieceAt returns which piece kind (if any) occupies sq in this side's
// set, used when identifying a captured piece.
func (s *BitboardSet) PieceAt(sq types.Square) (types.Piece, bool) {
	if !s.All.Has(sq) {
		return types.PieceNone, false
	}
	for p := types.Pawn; p < types.PieceLength; p++ {
		if s.ByPiece(p).Has(sq) {
			return p, true
		}
	}
	return types.PieceNone, false
}

// recomputeAll rebuilds All from the six piece bitboards; used after bulk
// mutation paths (FEN loading) where Put wasn't used for every square.
func (s *BitboardSet) recomputeAll() {
	s.All = s.Pawns | s.Knights | s.Bishops | s.Rooks | s.Queens | s.King
}
