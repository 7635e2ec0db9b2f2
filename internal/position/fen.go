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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/chessenginego/internal/types"
)

// FenParseErrorKind enumerates every distinct way a FEN string can fail to
// parse; the UCI layer reports the kind verbatim in its "Bad FEN!" line.
type FenParseErrorKind int

const (
	BadFieldCount FenParseErrorKind = iota
	BadRankCount
	BadFileCount
	InvalidPieceChar
	InvalidSide
	InvalidCastling
	InvalidEnPassant
	InvalidHalfmove
	InvalidFullmove
)

func (k FenParseErrorKind) String() string {
	switch k {
	case BadFieldCount:
		return "BadFieldCount"
	case BadRankCount:
		return "BadRankCount"
	case BadFileCount:
		return "BadFileCount"
	case InvalidPieceChar:
		return "InvalidPieceChar"
	case InvalidSide:
		return "InvalidSide"
	case InvalidCastling:
		return "InvalidCastling"
	case InvalidEnPassant:
		return "InvalidEnPassant"
	case InvalidHalfmove:
		return "InvalidHalfmove"
	case InvalidFullmove:
		return "InvalidFullmove"
	default:
		return "Unknown"
	}
}

// FenParseError reports why a FEN string was rejected. Detail carries the
// offending character or token where that's useful (e.g. InvalidPieceChar).
type FenParseError struct {
	Kind   FenParseErrorKind
	Detail string
}

func (e *FenParseError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Detail)
}

func fenErr(kind FenParseErrorKind, detail string) error {
	return &FenParseError{Kind: kind, Detail: detail}
}

// FromFEN parses the six whitespace-separated FEN fields and returns the
// resulting Position together with the halfmove clock and the fullmove
// number (Game owns the undo stack and uses both as its starting point).
func FromFEN(fen string) (*Position, int, int, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, 0, 0, fenErr(BadFieldCount, fmt.Sprintf("got %d", len(fields)))
	}

	p := &Position{EpSquare: types.SqNone}

	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, 0, 0, err
	}

	switch fields[1] {
	case "w":
		p.SideToMove = types.White
	case "b":
		p.SideToMove = types.Black
	default:
		return nil, 0, 0, fenErr(InvalidSide, fields[1])
	}

	castling, err := parseCastling(fields[2])
	if err != nil {
		return nil, 0, 0, err
	}
	p.Castling = castling

	if fields[3] != "-" {
		sq, ok := types.ParseSquare(fields[3])
		if !ok {
			return nil, 0, 0, fenErr(InvalidEnPassant, fields[3])
		}
		p.EpSquare = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, 0, 0, fenErr(InvalidHalfmove, fields[4])
	}

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, 0, 0, fenErr(InvalidFullmove, fields[5])
	}

	p.recompute()
	return p, halfmove, fullmove, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fenErr(BadRankCount, fmt.Sprintf("got %d", len(ranks)))
	}
	for i, rankStr := range ranks {
		rank := types.Rank(7 - i)
		file := types.FileA
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '9' {
				file += types.File(c - '0')
				continue
			}
			if file >= types.FileLength {
				return fenErr(BadFileCount, rankStr)
			}
			piece, color, ok := types.PieceFromChar(c)
			if !ok {
				return fenErr(InvalidPieceChar, string(c))
			}
			p.Side(color).Put(piece, types.MakeSquare(file, rank))
			file++
		}
		if file != types.FileLength {
			return fenErr(BadFileCount, rankStr)
		}
	}
	return nil
}

func parseCastling(s string) (types.CastlingRights, error) {
	if s == "-" {
		return types.CastlingNone, nil
	}
	var rights types.CastlingRights
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			rights |= types.CastlingWhiteOO
		case 'Q':
			rights |= types.CastlingWhiteOOO
		case 'k':
			rights |= types.CastlingBlackOO
		case 'q':
			rights |= types.CastlingBlackOOO
		default:
			return 0, fenErr(InvalidCastling, s)
		}
	}
	return rights, nil
}
