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

// Package movegen generates pseudo-legal moves: piece-motion and blocking
// rules are respected, but a generated move may still leave its own king
// in check. The Game layer filters that out via try-make.
package movegen

import (
	"github.com/frankkopp/chessenginego/internal/position"
	"github.com/frankkopp/chessenginego/internal/types"
)

// promotionPieces is the fixed emission order for a promoting push or
// capture: one move per target piece.
var promotionPieces = [4]types.Piece{types.Queen, types.Rook, types.Bishop, types.Knight}

// PseudoMoves returns every move playable by pos.SideToMove, ignoring
// king safety. Order within categories is unspecified.
func PseudoMoves(pos *position.Position) []types.Move {
	moves := make([]types.Move, 0, 64)
	moves = genPawnMoves(pos, moves)
	moves = genPieceMoves(pos, types.Knight, moves)
	moves = genPieceMoves(pos, types.Bishop, moves)
	moves = genPieceMoves(pos, types.Rook, moves)
	moves = genPieceMoves(pos, types.Queen, moves)
	moves = genPieceMoves(pos, types.King, moves)
	moves = genCastling(pos, moves)
	return moves
}

// FromUci resolves a UCI move string (e.g. "e2e4", "e7e8q") against the
// pseudo-legal moves available in pos. It returns false if the string
// doesn't name any pseudo-legal move — the caller still has to try-make
// it to find out whether it's fully legal.
func FromUci(pos *position.Position, s string) (types.Move, bool) {
	for _, m := range PseudoMoves(pos) {
		if m.StringUci() == s {
			return m, true
		}
	}
	return types.MoveNone, false
}

func genPawnMoves(pos *position.Position, moves []types.Move) []types.Move {
	us := pos.SideToMove
	them := us.Opposite()
	side := pos.Side(us)
	enemy := pos.Side(them).All
	empty := ^pos.Occupied
	forward := us.Direction()
	promoRank := us.PromotionRank().Bb()

	pawns := side.Pawns

	// Single push.
	singlePush := pawns.Shift(forward) & empty
	push := singlePush &^ promoRank
	for push != 0 {
		var to types.Square
		to, push = push.PopLsb()
		from, _ := to.To(-forward)
		moves = append(moves, types.NewMove(from, to, types.Pawn))
	}
	promoPush := singlePush & promoRank
	for promoPush != 0 {
		var to types.Square
		to, promoPush = promoPush.PopLsb()
		from, _ := to.To(-forward)
		for _, pp := range promotionPieces {
			moves = append(moves, types.NewPromotion(from, to, pp, false))
		}
	}

	// Double push.
	startRank := us.PawnRank2().Bb()
	doublePush := (pawns & startRank).Shift(forward) & empty
	doublePush = doublePush.Shift(forward) & empty
	for doublePush != 0 {
		var to types.Square
		to, doublePush = doublePush.PopLsb()
		mid, _ := to.To(-forward)
		from, _ := mid.To(-forward)
		moves = append(moves, types.NewDoublePush(from, to))
	}

	// Captures, both diagonals.
	left, right := captureDirections(us)
	moves = genPawnCaptures(pos, side.Pawns, left, enemy, promoRank, moves)
	moves = genPawnCaptures(pos, side.Pawns, right, enemy, promoRank, moves)

	// En passant.
	if pos.EpSquare != types.SqNone {
		epBb := types.SquareBb(pos.EpSquare)
		for _, d := range [2]types.Direction{left, right} {
			attackers := pawnSourcesFor(pawns, d) & epBb
			if attackers != 0 {
				from, _ := pos.EpSquare.To(-d)
				moves = append(moves, types.NewEnPassant(from, pos.EpSquare))
			}
		}
	}

	return moves
}

// captureDirections returns the pawn's two diagonal capture directions
// for the given side, left (toward file A) first.
func captureDirections(c types.Color) (left, right types.Direction) {
	if c == types.White {
		return types.Northwest, types.Northeast
	}
	return types.Southwest, types.Southeast
}

// pawnSourcesFor shifts pawns by d, the same bulk-shift move generation
// uses to find the destination squares for a diagonal step.
func pawnSourcesFor(pawns types.Bitboard, d types.Direction) types.Bitboard {
	return pawns.Shift(d)
}

func genPawnCaptures(pos *position.Position, pawns types.Bitboard, d types.Direction, enemy types.Bitboard, promoRank types.Bitboard, moves []types.Move) []types.Move {
	targets := pawns.Shift(d) & enemy
	quiet := targets &^ promoRank
	for quiet != 0 {
		var to types.Square
		to, quiet = quiet.PopLsb()
		from, _ := to.To(-d)
		moves = append(moves, types.NewCapture(from, to, types.Pawn))
	}
	promo := targets & promoRank
	for promo != 0 {
		var to types.Square
		to, promo = promo.PopLsb()
		from, _ := to.To(-d)
		for _, pp := range promotionPieces {
			moves = append(moves, types.NewPromotion(from, to, pp, true))
		}
	}
	return moves
}

func genPieceMoves(pos *position.Position, piece types.Piece, moves []types.Move) []types.Move {
	us := pos.SideToMove
	side := pos.Side(us)
	friendly := side.All
	bb := side.ByPiece(piece)
	for bb != 0 {
		var from types.Square
		from, bb = bb.PopLsb()
		attacks := types.GetAttacks(piece, from, pos.Occupied) &^ friendly
		enemy := pos.Side(us.Opposite()).All
		for attacks != 0 {
			var to types.Square
			to, attacks = attacks.PopLsb()
			if enemy.Has(to) {
				moves = append(moves, types.NewCapture(from, to, piece))
			} else {
				moves = append(moves, types.NewMove(from, to, piece))
			}
		}
	}
	return moves
}

// genCastling appends the side-to-move's available castling moves.
func genCastling(pos *position.Position, moves []types.Move) []types.Move {
	us := pos.SideToMove
	them := us.Opposite()

	if us == types.White {
		if pos.Castling.Has(types.CastlingWhiteOO) &&
			pos.Occupied&(types.SquareBb(types.SqF1)|types.SquareBb(types.SqG1)) == 0 &&
			!pos.IsSquareAttacked(types.SqE1, them) &&
			!pos.IsSquareAttacked(types.SqF1, them) &&
			!pos.IsSquareAttacked(types.SqG1, them) {
			moves = append(moves, types.NewCastling(types.SqE1, types.SqG1, true))
		}
		if pos.Castling.Has(types.CastlingWhiteOOO) &&
			pos.Occupied&(types.SquareBb(types.SqB1)|types.SquareBb(types.SqC1)|types.SquareBb(types.SqD1)) == 0 &&
			!pos.IsSquareAttacked(types.SqE1, them) &&
			!pos.IsSquareAttacked(types.SqD1, them) &&
			!pos.IsSquareAttacked(types.SqC1, them) {
			moves = append(moves, types.NewCastling(types.SqE1, types.SqC1, false))
		}
		return moves
	}

	if pos.Castling.Has(types.CastlingBlackOO) &&
		pos.Occupied&(types.SquareBb(types.SqF8)|types.SquareBb(types.SqG8)) == 0 &&
		!pos.IsSquareAttacked(types.SqE8, them) &&
		!pos.IsSquareAttacked(types.SqF8, them) &&
		!pos.IsSquareAttacked(types.SqG8, them) {
		moves = append(moves, types.NewCastling(types.SqE8, types.SqG8, true))
	}
	if pos.Castling.Has(types.CastlingBlackOOO) &&
		pos.Occupied&(types.SquareBb(types.SqB8)|types.SquareBb(types.SqC8)|types.SquareBb(types.SqD8)) == 0 &&
		!pos.IsSquareAttacked(types.SqE8, them) &&
		!pos.IsSquareAttacked(types.SqD8, them) &&
		!pos.IsSquareAttacked(types.SqC8, them) {
		moves = append(moves, types.NewCastling(types.SqE8, types.SqC8, false))
	}
	return moves
}
