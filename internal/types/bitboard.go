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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit i corresponds to Square(i)
// under the LERF mapping.
type Bitboard uint64

const (
	EmptyBb Bitboard = 0
	FullBb  Bitboard = 0xFFFFFFFFFFFFFFFF

	FileABb Bitboard = 0x0101010101010101
	FileBBb          = FileABb << 1
	FileCBb          = FileABb << 2
	FileDBb          = FileABb << 3
	FileEBb          = FileABb << 4
	FileFBb          = FileABb << 5
	FileGBb          = FileABb << 6
	FileHBb          = FileABb << 7

	Rank1Bb Bitboard = 0x00000000000000FF
	Rank2Bb          = Rank1Bb << (8 * 1)
	Rank3Bb          = Rank1Bb << (8 * 2)
	Rank4Bb          = Rank1Bb << (8 * 3)
	Rank5Bb          = Rank1Bb << (8 * 4)
	Rank6Bb          = Rank1Bb << (8 * 5)
	Rank7Bb          = Rank1Bb << (8 * 6)
	Rank8Bb          = Rank1Bb << (8 * 7)

	NotFileABb = ^FileABb
	NotFileHBb = ^FileHBb
)

var fileBb = [FileLength]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}
var rankBb = [RankLength]Bitboard{Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb}

// FileBb returns the full-file bitboard for f.
func FileBb(f File) Bitboard { return fileBb[f] }

// RankBb returns the full-rank bitboard for r.
func RankBb(r Rank) Bitboard { return rankBb[r] }

// SquareBb returns the single-bit bitboard for s.
func SquareBb(s Square) Bitboard { return Bitboard(1) << s }

// Has reports whether s is set in b.
func (b Bitboard) Has(s Square) bool {
	return b&SquareBb(s) != 0
}

// PushSquare returns b with s set.
func (b Bitboard) PushSquare(s Square) Bitboard {
	return b | SquareBb(s)
}

// PopSquare returns b with s cleared.
func (b Bitboard) PopSquare(s Square) Bitboard {
	return b &^ SquareBb(s)
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least-significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most-significant set square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the least-significant square together with b having that
// bit cleared, the usual "iterate set bits" idiom.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	s := b.Lsb()
	return s, b.PopSquare(s)
}

// shift moves every bit of b one step in direction d, discarding bits that
// would wrap around a file edge.
func (b Bitboard) shift(d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Northwest:
		return (b &^ FileABb) << 7
	case Southwest:
		return (b &^ FileABb) >> 9
	default:
		return 0
	}
}

// Shift is the exported form of shift, used by move generation for bulk
// pawn-push/capture computation.
func (b Bitboard) Shift(d Direction) Bitboard {
	return b.shift(d)
}

// String renders b as a compact hex value.
func (b Bitboard) String() string {
	return "0x" + padHex(uint64(b))
}

const hexDigits = "0123456789abcdef"

func padHex(v uint64) string {
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf)
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 first, with 'X' on
// set squares and '-' elsewhere.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		sb.WriteString(Rank(r).String())
		sb.WriteString(" ")
		for f := FileA; f < FileLength; f++ {
			sq := MakeSquare(f, Rank(r))
			if b.Has(sq) {
				sb.WriteString("X ")
			} else {
				sb.WriteString("- ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
