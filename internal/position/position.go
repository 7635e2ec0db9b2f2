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

// Package position implements the board representation: per-side bitboard
// sets, FEN I/O, incremental Zobrist hashing, and the attack/check queries
// move generation and search build on.
package position

import (
	"strings"

	"github.com/frankkopp/chessenginego/internal/types"
)

// Position is the board state at one point in the game: both sides'
// bitboard sets, the occupancy union, side to move, castling rights, the
// en-passant target square (SqNone if none), and the incremental Zobrist
// hash. It deliberately carries no undo stack or halfmove clock — those
// belong to Game, which wraps a Position for the duration of a game.
type Position struct {
	W, B       BitboardSet
	Occupied   types.Bitboard
	SideToMove types.Color
	EpSquare   types.Square
	Castling   types.CastlingRights
	Hash       types.Key
}

// Side returns the BitboardSet belonging to c.
func (p *Position) Side(c types.Color) *BitboardSet {
	if c == types.White {
		return &p.W
	}
	return &p.B
}

// NewStartPosition returns the standard initial setup: all castling
// rights, no ep square, White to move, hash computed from scratch.
func NewStartPosition() *Position {
	p, _, _, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic("position: malformed built-in start FEN: " + err.Error())
	}
	return p
}

// recompute rebuilds Occupied and both sides' All bitboards, and
// refreshes the Zobrist hash from scratch. Called once after bulk setup
// (FEN parsing); make/unmake never call this — they maintain the hash
// incrementally.
func (p *Position) recompute() {
	p.W.recomputeAll()
	p.B.recomputeAll()
	p.Occupied = p.W.All | p.B.All
	p.Hash = p.ZobristOf()
}

// ZobristOf recomputes the Zobrist hash of p from scratch by XOR-ing every
// feature key. Used to build the hash after FEN loading and, optionally,
// as a debug cross-check against the incrementally maintained p.Hash.
func (p *Position) ZobristOf() types.Key {
	var h types.Key
	for c := types.Color(0); c < types.ColorLength; c++ {
		side := p.Side(c)
		for piece := types.Pawn; piece < types.PieceLength; piece++ {
			bb := side.ByPiece(piece)
			for bb != 0 {
				var sq types.Square
				sq, bb = bb.PopLsb()
				h ^= types.ZobristPiece[piece][c][sq]
			}
		}
	}
	h ^= types.ZobristCastling[p.Castling]
	if p.EpSquare != types.SqNone {
		h ^= types.ZobristEnPassant[p.EpSquare.File()]
	}
	if p.SideToMove == types.Black {
		h ^= types.ZobristSideToMove
	}
	return h
}

// IsSquareAttacked reports whether sq is attacked by any piece belonging
// to byPlayer.
func (p *Position) IsSquareAttacked(sq types.Square, byPlayer types.Color) bool {
	attackers := p.Side(byPlayer)

	// Pawn: look up the attack table for the *opposite* color from sq,
	// since that tells us which squares a pawn standing on sq would be
	// attacked from if the attacker's pawns were there.
	if types.PawnAttacks[byPlayer.Opposite()][sq]&attackers.Pawns != 0 {
		return true
	}
	if types.KnightAttacks[sq]&attackers.Knights != 0 {
		return true
	}
	if types.KingAttacks[sq]&attackers.King != 0 {
		return true
	}
	if types.BishopAttacks(sq, p.Occupied)&(attackers.Bishops|attackers.Queens) != 0 {
		return true
	}
	if types.RookAttacks(sq, p.Occupied)&(attackers.Rooks|attackers.Queens) != 0 {
		return true
	}
	return false
}

// IsKingInCheck reports whether player's king is currently attacked.
func (p *Position) IsKingInCheck(player types.Color) bool {
	kingSq := p.Side(player).King.Lsb()
	return p.IsSquareAttacked(kingSq, player.Opposite())
}

// PieceAt returns the colored piece standing on sq, or types.NoPiece if
// the square is empty.
func (p *Position) PieceAt(sq types.Square) types.ColoredPiece {
	if piece, ok := p.W.PieceAt(sq); ok {
		return types.ColoredPiece{Piece: piece, Color: types.White}
	}
	if piece, ok := p.B.PieceAt(sq); ok {
		return types.ColoredPiece{Piece: piece, Color: types.Black}
	}
	return types.NoPiece
}

// HasInsufficientMaterial reports whether neither side has enough material
// to ever force checkmate: bare kings, king + lone minor vs. bare king, or
// both sides down to a single same-colored-square bishop.
func (p *Position) HasInsufficientMaterial() bool {
	wMinor := p.W.Knights | p.W.Bishops
	bMinor := p.B.Knights | p.B.Bishops
	wOther := p.W.Pawns | p.W.Rooks | p.W.Queens
	bOther := p.B.Pawns | p.B.Rooks | p.B.Queens
	if wOther != 0 || bOther != 0 {
		return false
	}
	wMinorCount := wMinor.PopCount()
	bMinorCount := bMinor.PopCount()
	total := 2 + wMinorCount + bMinorCount
	switch total {
	case 2:
		return true
	case 3:
		return (wMinorCount == 1 && bMinorCount == 0) || (wMinorCount == 0 && bMinorCount == 1)
	case 4:
		if p.W.Bishops.PopCount() != 1 || p.B.Bishops.PopCount() != 1 {
			return false
		}
		if p.W.Knights != 0 || p.B.Knights != 0 {
			return false
		}
		wSq := p.W.Bishops.Lsb()
		bSq := p.B.Bishops.Lsb()
		return squareColor(wSq) == squareColor(bSq)
	default:
		return false
	}
}

func squareColor(sq types.Square) int {
	return (int(sq.File()) ^ int(sq.Rank())) & 1
}

// StringFen renders the six standard FEN fields from the live position
// plus the supplied halfmove clock and fullmove number (callers own the
// Game-level counters, so they're passed in rather than stored here).
func (p *Position) StringFen(halfmoveClock, fullmoveNumber int) string {
	var sb strings.Builder
	for r := int(types.Rank8); r >= int(types.Rank1); r-- {
		empty := 0
		for f := types.FileA; f < types.FileLength; f++ {
			sq := types.MakeSquare(f, types.Rank(r))
			cp := p.PieceAt(sq)
			if cp.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(cp.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > int(types.Rank1) {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	if p.EpSquare == types.SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.EpSquare.String())
	}
	sb.WriteByte(' ')
	sb.WriteString(itoa(halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(itoa(fullmoveNumber))
	return sb.String()
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// String renders an 8x8 ASCII board (rank 8 first) followed by the FEN
// fields and the Zobrist hash, the level of detail the "d" UCI command
// prints. The halfmove clock and fullmove number are not tracked by
// Position itself (Game owns them), so they print as 0/1 here — use
// StringWithClock for an accurate rendering from game state.
func (p *Position) String() string {
	return p.StringWithClock(0, 1)
}

// StringWithClock is String with caller-supplied halfmove clock and
// fullmove number, letting Game render an accurate "d" output.
func (p *Position) StringWithClock(halfmoveClock, fullmoveNumber int) string {
	var sb strings.Builder
	for r := int(types.Rank8); r >= int(types.Rank1); r-- {
		sb.WriteString(types.Rank(r).String())
		sb.WriteString("  ")
		for f := types.FileA; f < types.FileLength; f++ {
			sq := types.MakeSquare(f, types.Rank(r))
			sb.WriteString(p.PieceAt(sq).String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString("Fen: " + p.StringFen(halfmoveClock, fullmoveNumber) + "\n")
	sb.WriteString("Key: " + keyHex(p.Hash) + "\n")
	return sb.String()
}

func keyHex(k types.Key) string {
	const digits = "0123456789abcdef"
	buf := make([]byte, 16)
	v := uint64(k)
	for i := 15; i >= 0; i-- {
		buf[i] = digits[v&0xF]
		v >>= 4
	}
	return "0x" + string(buf)
}
