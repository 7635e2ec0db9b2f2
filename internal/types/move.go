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

// Move packs a from/to/piece/promotion record plus five independent
// boolean flags into a single uint32. Layout, LSB
// first: to(6) from(6) piece(3) promotion(3) capture(1) enPassant(1)
// doublePush(1) kingsideCastle(1) queensideCastle(1).
type Move uint32

const (
	moveToShift       = 0
	moveFromShift     = 6
	movePieceShift    = 12
	movePromoShift    = 15
	moveCaptureShift  = 18
	moveEpShift       = 19
	moveDoublePShift  = 20
	moveOOShift       = 21
	moveOOOShift      = 22

	moveSquareMask = 0x3F
	movePieceMask  = 0x7
)

// MoveNone is the zero Move, also the UCI "no move" encoding (from=to=a1,
// no flags) — never a value a real generated move can equal.
const MoveNone Move = 0

// NewMove packs a non-castling, non-special move.
func NewMove(from, to Square, piece Piece) Move {
	return Move(uint32(to)<<moveToShift | uint32(from)<<moveFromShift | uint32(piece)<<movePieceShift | uint32(PieceNone)<<movePromoShift)
}

// NewCapture packs a capturing move.
func NewCapture(from, to Square, piece Piece) Move {
	return NewMove(from, to, piece) | (1 << moveCaptureShift)
}

// NewPromotion packs a pawn promotion move (capture optional).
func NewPromotion(from, to Square, promo Piece, capture bool) Move {
	m := Move(uint32(to)<<moveToShift | uint32(from)<<moveFromShift | uint32(Pawn)<<movePieceShift | uint32(promo)<<movePromoShift)
	if capture {
		m |= 1 << moveCaptureShift
	}
	return m
}

// NewEnPassant packs an en-passant capture; it is always a capture.
func NewEnPassant(from, to Square) Move {
	m := NewMove(from, to, Pawn)
	m |= 1 << moveCaptureShift
	m |= 1 << moveEpShift
	return m
}

// NewDoublePush packs a pawn double-step push.
func NewDoublePush(from, to Square) Move {
	m := NewMove(from, to, Pawn)
	m |= 1 << moveDoublePShift
	return m
}

// NewCastling packs a castling move; exactly one of kingside/queenside
// must be true.
func NewCastling(from, to Square, kingside bool) Move {
	m := NewMove(from, to, King)
	if kingside {
		m |= 1 << moveOOShift
	} else {
		m |= 1 << moveOOOShift
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square { return Square((m >> moveFromShift) & moveSquareMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> moveToShift) & moveSquareMask) }

// Piece returns the moving piece kind.
func (m Move) Piece() Piece { return Piece((m >> movePieceShift) & movePieceMask) }

// Promotion returns the promotion piece, or PieceNone if this move is not
// a promotion.
func (m Move) Promotion() Piece { return Piece((m >> movePromoShift) & movePieceMask) }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion() != PieceNone }

// IsCapture reports the capture flag (true for en-passant too).
func (m Move) IsCapture() bool { return (m>>moveCaptureShift)&1 != 0 }

// IsEnPassant reports the en-passant flag.
func (m Move) IsEnPassant() bool { return (m>>moveEpShift)&1 != 0 }

// IsDoublePush reports the double pawn push flag.
func (m Move) IsDoublePush() bool { return (m>>moveDoublePShift)&1 != 0 }

// IsKingsideCastle reports the kingside castling flag.
func (m Move) IsKingsideCastle() bool { return (m>>moveOOShift)&1 != 0 }

// IsQueensideCastle reports the queenside castling flag.
func (m Move) IsQueensideCastle() bool { return (m>>moveOOOShift)&1 != 0 }

// IsCastle reports whether m is either castling move.
func (m Move) IsCastle() bool { return m.IsKingsideCastle() || m.IsQueensideCastle() }

// StringUci renders m in UCI move-string form: from-square, to-square,
// and (for promotions) a single lowercase promotion letter.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promotion().PromotionChar())
	}
	return s
}

func (m Move) String() string {
	return m.StringUci()
}
