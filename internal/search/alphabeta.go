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

package search

import (
	"time"

	"github.com/frankkopp/chessenginego/internal/game"
	"github.com/frankkopp/chessenginego/internal/movegen"
	"github.com/frankkopp/chessenginego/internal/types"
)

// nodeCheckInterval is how often (in visited nodes) the search polls the
// cancellation flag and deadline — cheap enough not to matter, coarse
// enough not to dominate runtime with clock reads.
const nodeCheckInterval = 1024

// worker drives one alpha-beta search over a private Game clone. It is
// never shared across goroutines.
type worker struct {
	g        *game.Game
	nodes    uint64
	stopFlag func() bool
	deadline time.Time
}

// search implements spec §4.8's negamax-free, sided alpha-beta: it
// returns the best move found at this node, its score, the leaf-first
// principal variation, and whether the search was cancelled mid-subtree.
func (w *worker) search(depth int, alpha, beta types.Value, maximize bool) (types.Move, types.Value, []types.Move, bool) {
	w.nodes++

	if w.g.IsDraw() {
		return types.MoveNone, types.DrawValue, nil, false
	}
	if depth == 0 {
		return types.MoveNone, Evaluate(w.g.Position()), nil, false
	}
	if w.nodes%nodeCheckInterval == 0 {
		if w.stopFlag() || time.Now().After(w.deadline) {
			return types.MoveNone, Evaluate(w.g.Position()), nil, true
		}
	}

	var bestMove types.Move
	var bestPv []types.Move
	var bestScore types.Value
	if maximize {
		bestScore = -types.CheckmateValue - 1
	} else {
		bestScore = types.CheckmateValue + 1
	}

	legalMoves := 0
	for _, m := range movegen.PseudoMoves(w.g.Position()) {
		if !w.g.TryMake(m) {
			continue
		}
		legalMoves++

		_, score, childPv, unwind := w.search(depth-1, alpha, beta, !maximize)
		w.g.Unmake()

		if unwind {
			return bestMove, bestScore, nil, true
		}

		improved := false
		if maximize && score > bestScore {
			improved = true
		} else if !maximize && score < bestScore {
			improved = true
		}
		if improved {
			bestScore = score
			bestMove = m
			bestPv = append(append([]types.Move{}, m), childPv...)
		}

		if maximize {
			if score > alpha {
				alpha = score
			}
		} else {
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			break
		}
	}

	if legalMoves == 0 {
		mover := w.g.Position().SideToMove
		if w.g.Position().IsKingInCheck(mover) {
			mateScore := types.CheckmateValue - types.Value(depth)
			if maximize {
				return types.MoveNone, -mateScore, nil, false
			}
			return types.MoveNone, mateScore, nil, false
		}
		return types.MoveNone, types.DrawValue, nil, false
	}

	return bestMove, bestScore, bestPv, false
}
