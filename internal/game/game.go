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

// Package game wraps a Position with the undo stack and halfmove clock
// that give it a lifecycle: make/unmake, legality filtering, and draw
// detection all live here rather than on the bare Position.
package game

import (
	"github.com/frankkopp/chessenginego/internal/assert"
	"github.com/frankkopp/chessenginego/internal/position"
	"github.com/frankkopp/chessenginego/internal/types"
)

// undoRecord is everything needed to revert one make_move: the move
// itself, the captured piece (PieceNone if none), and the pre-move
// castling/en-passant/halfmove/hash snapshot.
type undoRecord struct {
	move          types.Move
	captured      types.Piece
	prevCastling  types.CastlingRights
	prevEpSquare  types.Square
	prevHalfmove  int
	prevHash      types.Key
}

// Game is the mutable engine state the UCI layer owns: the current
// Position, its undo stack (append on make, pop on unmake), and the
// halfmove clock counting half-moves since the last pawn move or capture.
type Game struct {
	pos           *position.Position
	undos         []undoRecord
	halfmove      int
	fullmoveStart int
}

// NewGame returns a Game at the standard starting position.
func NewGame() *Game {
	return &Game{
		pos:           position.NewStartPosition(),
		undos:         make([]undoRecord, 0, 256),
		fullmoveStart: 1,
	}
}

// NewGameFromFEN returns a Game loaded from a FEN string, or the
// position package's FenParseError if fen is malformed.
func NewGameFromFEN(fen string) (*Game, error) {
	p, halfmove, fullmove, err := position.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{
		pos:           p,
		undos:         make([]undoRecord, 0, 256),
		halfmove:      halfmove,
		fullmoveStart: fullmove,
	}, nil
}

// Position returns the live position. Callers must not retain it across a
// make/unmake — its contents mutate in place.
func (g *Game) Position() *position.Position {
	return g.pos
}

// HalfmoveClock returns the current halfmove clock.
func (g *Game) HalfmoveClock() int {
	return g.halfmove
}

// FullmoveNumber derives the standard FEN fullmove counter from the FEN's
// starting fullmove number plus the number of complete move-pairs played.
func (g *Game) FullmoveNumber() int {
	return g.fullmoveStart + len(g.undos)/2
}

// Clone returns a deep copy of g, used when the UCI layer hands the
// current game off to a search worker: the worker mutates its own copy
// while the command loop keeps the authoritative Game untouched.
func (g *Game) Clone() *Game {
	clone := &Game{
		halfmove:      g.halfmove,
		fullmoveStart: g.fullmoveStart,
	}
	p := *g.pos
	clone.pos = &p
	clone.undos = make([]undoRecord, len(g.undos), cap(g.undos))
	copy(clone.undos, g.undos)
	return clone
}

// String renders the "d" UCI command's board output with the live
// halfmove clock and fullmove number.
func (g *Game) String() string {
	return g.pos.StringWithClock(g.halfmove, g.FullmoveNumber())
}

// TryMake attempts to play m: it applies the move, then checks whether
// the side that just moved left its own king in check. If so, the move
// is unmade and TryMake returns false; otherwise the undo record is
// pushed and it returns true.
func (g *Game) TryMake(m types.Move) bool {
	undo := g.applyMove(m)
	mover := g.pos.SideToMove.Opposite()
	if g.pos.IsKingInCheck(mover) {
		g.reverseMove(undo)
		return false
	}
	g.undos = append(g.undos, undo)
	return true
}

// Unmake reverts the most recently made move. It panics if called with an
// empty undo stack — that is a caller bug, not a recoverable condition.
func (g *Game) Unmake() {
	assert.Assert(len(g.undos) > 0, "Unmake called with empty undo stack")
	n := len(g.undos) - 1
	undo := g.undos[n]
	g.undos = g.undos[:n]
	g.reverseMove(undo)
}

// applyMove performs the full make-move sequence from spec §4.4 and
// returns the undo record without pushing it onto the stack: the caller
// (TryMake) decides whether the resulting position is legal first.
func (g *Game) applyMove(m types.Move) undoRecord {
	p := g.pos
	undo := undoRecord{
		move:         m,
		captured:     types.PieceNone,
		prevCastling: p.Castling,
		prevEpSquare: p.EpSquare,
		prevHalfmove: g.halfmove,
		prevHash:     p.Hash,
	}

	us := p.SideToMove
	them := us.Opposite()
	mover := p.Side(us)
	enemy := p.Side(them)

	// EP square update: clear the old key, set/clear the square, set the
	// new key if this is a double push.
	if p.EpSquare != types.SqNone {
		p.Hash ^= types.ZobristEnPassant[p.EpSquare.File()]
	}
	if m.IsDoublePush() {
		mid, _ := m.To().To(-us.Direction())
		p.EpSquare = mid
		p.Hash ^= types.ZobristEnPassant[mid.File()]
	} else {
		p.EpSquare = types.SqNone
	}

	switch {
	case m.IsCastle():
		mover.Move(types.King, m.From(), m.To())
		p.Hash ^= types.ZobristPiece[types.King][us][m.From()]
		p.Hash ^= types.ZobristPiece[types.King][us][m.To()]

		rookFrom, rookTo := castleRookSquares(us, m.IsKingsideCastle())
		mover.Move(types.Rook, rookFrom, rookTo)
		p.Hash ^= types.ZobristPiece[types.Rook][us][rookFrom]
		p.Hash ^= types.ZobristPiece[types.Rook][us][rookTo]

		p.Castling = p.Castling.Remove(types.ForColor(us))
		g.halfmove++

	default:
		// Castling-rights bookkeeping for king/rook moves and rook captures.
		if m.Piece() == types.King {
			p.Castling = p.Castling.Remove(types.ForColor(us))
		} else if m.Piece() == types.Rook {
			p.Castling = p.Castling.Remove(rookOriginRight(m.From()))
		}

		if m.Piece() == types.Pawn || m.IsCapture() {
			g.halfmove = 0
		} else {
			g.halfmove++
		}

		if m.IsPromotion() {
			mover.Remove(types.Pawn, m.From())
			p.Hash ^= types.ZobristPiece[types.Pawn][us][m.From()]
			mover.Put(m.Promotion(), m.To())
			p.Hash ^= types.ZobristPiece[m.Promotion()][us][m.To()]
		} else {
			mover.Move(m.Piece(), m.From(), m.To())
			p.Hash ^= types.ZobristPiece[m.Piece()][us][m.From()]
			p.Hash ^= types.ZobristPiece[m.Piece()][us][m.To()]
		}

		if m.IsEnPassant() {
			capSq, _ := m.To().To(-us.Direction())
			enemy.Remove(types.Pawn, capSq)
			p.Hash ^= types.ZobristPiece[types.Pawn][them][capSq]
			undo.captured = types.Pawn
		} else if m.IsCapture() {
			capturedPiece, ok := enemy.PieceAt(m.To())
			assert.Assert(ok, "capture flag set but destination square %s is empty", m.To())
			enemy.Remove(capturedPiece, m.To())
			p.Hash ^= types.ZobristPiece[capturedPiece][them][m.To()]
			undo.captured = capturedPiece
			p.Castling = p.Castling.Remove(rookOriginRight(m.To()))
		}
	}

	p.Hash ^= types.ZobristCastling[undo.prevCastling]
	p.Hash ^= types.ZobristCastling[p.Castling]

	p.W.All = p.W.Pawns | p.W.Knights | p.W.Bishops | p.W.Rooks | p.W.Queens | p.W.King
	p.B.All = p.B.Pawns | p.B.Knights | p.B.Bishops | p.B.Rooks | p.B.Queens | p.B.King
	p.Occupied = p.W.All | p.B.All

	p.SideToMove = them
	p.Hash ^= types.ZobristSideToMove

	return undo
}

// reverseMove is the mirror of applyMove: restore castling, ep, halfmove,
// hash, and side from the undo record, then undo the piece motion.
func (g *Game) reverseMove(undo undoRecord) {
	p := g.pos
	m := undo.move

	p.SideToMove = p.SideToMove.Opposite()
	us := p.SideToMove
	them := us.Opposite()
	mover := p.Side(us)
	enemy := p.Side(them)

	switch {
	case m.IsCastle():
		mover.Move(types.King, m.To(), m.From())
		rookFrom, rookTo := castleRookSquares(us, m.IsKingsideCastle())
		mover.Move(types.Rook, rookTo, rookFrom)

	default:
		if m.IsPromotion() {
			mover.Remove(m.Promotion(), m.To())
			mover.Put(types.Pawn, m.From())
		} else {
			mover.Move(m.Piece(), m.To(), m.From())
		}

		if m.IsEnPassant() {
			capSq, _ := m.To().To(-us.Direction())
			enemy.Put(types.Pawn, capSq)
		} else if m.IsCapture() && undo.captured != types.PieceNone {
			enemy.Put(undo.captured, m.To())
		}
	}

	p.Castling = undo.prevCastling
	p.EpSquare = undo.prevEpSquare
	p.Hash = undo.prevHash
	g.halfmove = undo.prevHalfmove

	p.W.All = p.W.Pawns | p.W.Knights | p.W.Bishops | p.W.Rooks | p.W.Queens | p.W.King
	p.B.All = p.B.Pawns | p.B.Knights | p.B.Bishops | p.B.Rooks | p.B.Queens | p.B.King
	p.Occupied = p.W.All | p.B.All
}

// castleRookSquares returns the rook's from/to squares for a castling
// move: kingside H->F, queenside A->D, on the mover's home rank.
func castleRookSquares(us types.Color, kingside bool) (from, to types.Square) {
	rank := types.Rank1
	if us == types.Black {
		rank = types.Rank8
	}
	if kingside {
		return types.MakeSquare(types.FileH, rank), types.MakeSquare(types.FileF, rank)
	}
	return types.MakeSquare(types.FileA, rank), types.MakeSquare(types.FileD, rank)
}

// rookOriginRight maps a rook's home square to the single castling right
// it guards, or CastlingNone if sq isn't a castling-relevant corner.
func rookOriginRight(sq types.Square) types.CastlingRights {
	switch sq {
	case types.SqA1:
		return types.CastlingWhiteOOO
	case types.SqH1:
		return types.CastlingWhiteOO
	case types.SqA8:
		return types.CastlingBlackOOO
	case types.SqH8:
		return types.CastlingBlackOO
	default:
		return types.CastlingNone
	}
}
