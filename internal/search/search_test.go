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
	"sync"
	"testing"
	"time"

	"github.com/frankkopp/chessenginego/internal/game"
	"github.com/frankkopp/chessenginego/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReporter records what a Search reports so tests can assert on it
// without wiring up the actual UCI stdout writer.
type stubReporter struct {
	mu        sync.Mutex
	depths    []int
	bestMove  types.Move
	bestSet   bool
	infoLines []string
}

func (r *stubReporter) SendIterationInfo(depth int, _ types.Value, _ uint64, _ time.Duration, _ []types.Move) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.depths = append(r.depths, depth)
}

func (r *stubReporter) SendBestMove(best types.Move) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bestMove = best
	r.bestSet = true
}

func (r *stubReporter) SendInfoString(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infoLines = append(r.infoLines, s)
}

func (r *stubReporter) waitForBestMove(t *testing.T) types.Move {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		r.mu.Lock()
		set := r.bestSet
		bm := r.bestMove
		r.mu.Unlock()
		if set {
			return bm
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("search never reported a best move")
	return types.MoveNone
}

func TestStartSearchReportsBestMoveForSingleLegalMove(t *testing.T) {
	g, err := game.NewGameFromFEN("8/7p/8/8/8/8/2k5/K7 w - - 0 1")
	require.NoError(t, err)

	r := &stubReporter{}
	s := NewSearch(r)
	s.StartSearch(g, Limits{Depth: 3})

	bm := r.waitForBestMove(t)
	assert.Equal(t, "a1a2", bm.StringUci())
	assert.False(t, s.IsSearching())
}

func TestStopSearchReturnsPromptly(t *testing.T) {
	g := game.NewGame()
	r := &stubReporter{}
	s := NewSearch(r)

	s.StartSearch(g, Limits{Infinite: true})
	time.Sleep(20 * time.Millisecond)
	s.StopSearch()

	bm := r.waitForBestMove(t)
	assert.NotEqual(t, types.MoveNone, bm)
	assert.False(t, s.IsSearching())
}

func TestIsSearchingReflectsWorkerState(t *testing.T) {
	g := game.NewGame()
	r := &stubReporter{}
	s := NewSearch(r)

	assert.False(t, s.IsSearching())
	s.StartSearch(g, Limits{Depth: 2})
	s.WaitWhileSearching()
	assert.False(t, s.IsSearching())
}
