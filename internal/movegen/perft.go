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

package movegen

import "github.com/frankkopp/chessenginego/internal/game"

// DivideEntry is one root move's leaf count, as printed by "go perft".
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// Perft counts the number of leaf positions reachable from g's current
// position in exactly depth plies, used to validate move generation and
// legality against known node counts.
func Perft(g *game.Game, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range PseudoMoves(g.Position()) {
		if !g.TryMake(m) {
			continue
		}
		nodes += Perft(g, depth-1)
		g.Unmake()
	}
	return nodes
}

// Divide runs Perft one ply at a time from the root, returning one entry
// per legal root move plus the aggregate node count.
func Divide(g *game.Game, depth int) ([]DivideEntry, uint64) {
	var entries []DivideEntry
	var total uint64
	if depth == 0 {
		return entries, 1
	}
	for _, m := range PseudoMoves(g.Position()) {
		if !g.TryMake(m) {
			continue
		}
		n := Perft(g, depth-1)
		g.Unmake()
		entries = append(entries, DivideEntry{Move: m.StringUci(), Nodes: n})
		total += n
	}
	return entries, total
}
