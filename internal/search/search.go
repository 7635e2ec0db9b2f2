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

// Package search implements iterative-deepening alpha-beta over a cloned
// Game, reporting progress through an engineio.Reporter so it never needs
// to import the uci package that drives it.
package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/frankkopp/chessenginego/internal/config"
	"github.com/frankkopp/chessenginego/internal/engineio"
	"github.com/frankkopp/chessenginego/internal/game"
	"github.com/frankkopp/chessenginego/internal/logging"
	"github.com/frankkopp/chessenginego/internal/movegen"
	"github.com/frankkopp/chessenginego/internal/types"
	golog "github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
)

var log *golog.Logger = logging.GetLog("search")

// Search runs at most one background iterative-deepening worker at a
// time. StartSearch clones the caller's Game so the UCI command loop's
// authoritative game is never touched by the worker goroutine.
type Search struct {
	reporter engineio.Reporter

	// initSemaphore gates StartSearch against overlapping invocations;
	// isRunning lets IsSearching/WaitWhileSearching poll without a mutex.
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	stopFlag atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewSearch returns an idle Search reporting through r.
func NewSearch(r engineio.Reporter) *Search {
	return &Search{
		reporter:      r,
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
	}
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if s.isRunning.TryAcquire(1) {
		s.isRunning.Release(1)
		return false
	}
	return true
}

// WaitWhileSearching blocks until no search is running.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// StartSearch clones g and starts a worker goroutine driving iterative
// deepening under limits. If a search is already running, the caller
// must StopSearch it first — StartSearch blocks until any prior worker
// has fully released isRunning.
func (s *Search) StartSearch(g *game.Game, limits Limits) {
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	_ = s.isRunning.Acquire(context.Background(), 1)

	s.stopFlag.Store(false)
	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	clone := g.Clone()

	go func() {
		defer s.isRunning.Release(1)
		defer cancel()
		s.initSemaphore.Release(1)
		s.run(clone, limits, ctx)
	}()

	// Block until the worker goroutine has started and released
	// initSemaphore, mirroring the
	// teacher's "wait for go routine to start" handshake.
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch sets the cancellation flag; the worker notices within
// nodeCheckInterval nodes and returns its best move so far.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (s *Search) run(g *game.Game, limits Limits, ctx context.Context) {
	log.Infof("search started: depth=%d movetime=%s infinite=%v", limits.Depth, limits.MoveTime, limits.Infinite)

	deadline := time.Now().Add(365 * 24 * time.Hour)
	if limits.HasTimeBudget() {
		deadline = time.Now().Add(limits.MoveTime)
	}

	if g.IsDraw() {
		s.reporter.SendInfoString("position is already a draw")
		s.reporter.SendBestMove(types.MoveNone)
		return
	}
	if len(movegen.PseudoMoves(g.Position())) == 0 {
		s.reporter.SendBestMove(types.MoveNone)
		return
	}

	w := &worker{
		g:        g,
		stopFlag: s.stopFlag.Load,
		deadline: deadline,
	}

	maxDepth := limits.Depth
	if maxDepth == 0 {
		maxDepth = config.Settings.Search.MaxDepth
	}

	start := time.Now()
	var best types.Move
	var lastNodes uint64

	for depth := 1; depth <= maxDepth; depth++ {
		select {
		case <-ctx.Done():
			goto done
		default:
		}

		maximize := g.Position().SideToMove == types.White
		m, score, pv, unwind := w.search(depth, -types.CheckmateValue-1, types.CheckmateValue+1, maximize)
		if unwind {
			break
		}

		best = m
		lastNodes = w.nodes
		elapsed := time.Since(start)
		s.reporter.SendIterationInfo(depth, score, lastNodes, elapsed, pv)

		if score.IsMate() {
			break
		}
	}

done:
	s.reporter.SendBestMove(best)
	log.Infof("search finished: bestmove=%s nodes=%d", best.StringUci(), lastNodes)
}
