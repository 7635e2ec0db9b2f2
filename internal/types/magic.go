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

import "math/bits"

// Magic holds one square's fancy-magic entry: the relevant-occupancy mask,
// the multiplier, the pre-shift amount, and the dense per-index attack
// table it indexes into.
type Magic struct {
	Mask    Bitboard
	Number  uint64
	Shift   uint
	Attacks []Bitboard
}

// index maps an occupancy to its slot in m.Attacks: blockers are first
// reduced to the relevant mask, then the fancy-magic multiply-and-shift
// produces a dense index.
func (m *Magic) index(occupied Bitboard) uint64 {
	blockers := uint64(occupied & m.Mask)
	return (blockers * m.Number) >> m.Shift
}

// attacksFor looks up the slider attack bitboard for this square given the
// full board occupancy.
func (m *Magic) attacksFor(occupied Bitboard) Bitboard {
	return m.Attacks[m.index(occupied)]
}

var rookMagics [SqLength]Magic
var bishopMagics [SqLength]Magic

var rookDirections = [4]Direction{North, East, South, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Northwest, Southwest}

// slidingAttack rays out from sq in each of directions until it hits the
// board edge or a blocker (the blocker square itself is included, since a
// slider attacks the piece standing on it).
func slidingAttack(sq Square, directions [4]Direction, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range directions {
		s := sq
		for {
			next, ok := s.To(d)
			if !ok {
				break
			}
			s = next
			attacks = attacks.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attacks
}

// relevantMask computes the blocker-relevant occupancy mask for sq: every
// square a slider's ray passes over, excluding the final edge square in
// each direction (a piece there can never block anything further, so it
// doesn't affect the attack set and is dropped to shrink the table).
func relevantMask(sq Square, directions [4]Direction) Bitboard {
	var mask Bitboard
	for _, d := range directions {
		s := sq
		for {
			next, ok := s.To(d)
			if !ok {
				break
			}
			// Stop one square early: would "next" itself have a further
			// neighbor in this direction? If not, it's the edge — exclude it.
			if _, ok2 := next.To(d); !ok2 {
				break
			}
			s = next
			mask = mask.PushSquare(s)
		}
	}
	return mask
}

// PrnG is the xorshift64star PRNG used to search for magic multipliers.
// Its output must not be confused with the Zobrist key generator: it is
// used only to discover a multiplier that happens to produce a perfect
// hash over a square's subset occupancies, never stored as engine state.
type PrnG struct {
	s uint64
}

// NewPrnG creates a PrnG seeded with s (must be non-zero).
func NewPrnG(s uint64) *PrnG {
	return &PrnG{s: s}
}

func (p *PrnG) rand64() uint64 {
	p.s ^= p.s >> 12
	p.s ^= p.s << 25
	p.s ^= p.s >> 27
	return p.s * 2685821657736338717
}

// sparseRand ANDs together three draws, which empirically yields sparser
// 64-bit candidates and converges the magic search faster.
func (p *PrnG) sparseRand() uint64 {
	return p.rand64() & p.rand64() & p.rand64()
}

// initMagics fills magics[sq] for every square using the supplied ray
// directions (rook or bishop). For each square it enumerates every subset
// of the relevant mask (Carry-Rippler enumeration) and searches random
// sparse multipliers until one maps every subset to a distinct table slot.
func initMagics(magics *[SqLength]Magic, directions [4]Direction) {
	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int

	rng := NewPrnG(1070372)

	for sq := Square(0); sq < SqLength; sq++ {
		mask := relevantMask(sq, directions)
		bitCount := mask.PopCount()
		shift := 64 - bitCount

		// Carry-Rippler: enumerate every subset of mask.
		size := 0
		var subset Bitboard
		for {
			occupancy[size] = subset
			reference[size] = slidingAttack(sq, directions, subset)
			size++
			subset = (subset - mask) & mask
			if subset == 0 {
				break
			}
		}

		m := &magics[sq]
		m.Mask = mask
		m.Shift = uint(shift)
		m.Attacks = make([]Bitboard, size)

		cnt := 0
		for i := 0; i < size; {
			var candidate uint64
			for bits.OnesCount64((candidate*uint64(mask))>>56) < 6 {
				candidate = rng.sparseRand()
			}
			m.Number = candidate
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

func initMagicBitboards() {
	initMagics(&rookMagics, rookDirections)
	initMagics(&bishopMagics, bishopDirections)
}
