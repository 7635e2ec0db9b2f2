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

// Square is a board square index under Little-Endian Rank-File mapping:
// file = index mod 8 (A=0..H=7), rank = index div 8 (rank 1 = 0). A1=0,
// H1=7, A8=56, H8=63.
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqLength
	SqNone = SqLength
)

// MakeSquare builds a Square from a file and rank.
func MakeSquare(f File, r Rank) Square {
	return Square(uint8(r)<<3 + uint8(f))
}

// IsValid reports whether s is a real board square (not SqNone or beyond).
func (s Square) IsValid() bool {
	return s < SqLength
}

// File returns the square's file.
func (s Square) File() File {
	return File(s & 7)
}

// Rank returns the square's rank.
func (s Square) Rank() Rank {
	return Rank(s >> 3)
}

// To adds d to s and returns the result together with whether the step
// stayed on the board (no wraparound across a file edge).
func (s Square) To(d Direction) (Square, bool) {
	t := int(s) + int(d)
	if t < 0 || t >= int(SqLength) {
		return SqNone, false
	}
	// a move that changes file by more than one step wrapped around an edge.
	fileDelta := int(File(t&7)) - int(s.File())
	if fileDelta < -1 || fileDelta > 1 {
		return SqNone, false
	}
	return Square(t), true
}

// squareNames holds the 64 algebraic names in board order, used by String
// and parsed by ParseSquare.
var squareNames = [SqLength]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String renders the algebraic square name, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return squareNames[s]
}

// ParseSquare parses a two-character algebraic square name such as "e4".
// It reports ok=false for anything else, including "-".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return SqNone, false
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone, false
	}
	return MakeSquare(File(f-'a'), Rank(r-'1')), true
}
