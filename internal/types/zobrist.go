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

// Key is a Zobrist hash value: an incrementally-maintained 64-bit
// fingerprint of a position.
type Key uint64

// Global Zobrist tables, read-only after init().
var (
	ZobristPiece       [PieceLength][ColorLength][SqLength]Key
	ZobristCastling    [16]Key
	ZobristEnPassant   [FileLength]Key
	ZobristSideToMove  Key
)

// zobristRand is the xorshift64star generator used to fill the Zobrist
// tables once at package init, playing the role of the offline random
// generator that produces these constants for a shipped build: here it
// simply runs in-process since no precomputed table is supplied.
type zobristRand struct {
	s uint64
}

func (r *zobristRand) next() Key {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return Key(r.s * 2685821657736338717)
}

func init() {
	r := &zobristRand{s: 5489}
	for p := Pawn; p < PieceLength; p++ {
		for c := Color(0); c < ColorLength; c++ {
			for sq := Square(0); sq < SqLength; sq++ {
				ZobristPiece[p][c][sq] = r.next()
			}
		}
	}
	for i := range ZobristCastling {
		ZobristCastling[i] = r.next()
	}
	for f := FileA; f < FileLength; f++ {
		ZobristEnPassant[f] = r.next()
	}
	ZobristSideToMove = r.next()
}
