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

// Package engineio defines the narrow boundary search reports through,
// so the search package never has to import uci (which would create an
// import cycle, since uci drives search).
package engineio

import (
	"time"

	"github.com/frankkopp/chessenginego/internal/types"
)

// Reporter receives progress and result notifications from a running
// search. Implementations must be safe to call from the search worker
// goroutine.
type Reporter interface {
	// SendIterationInfo reports one completed iterative-deepening depth.
	SendIterationInfo(depth int, score types.Value, nodes uint64, elapsed time.Duration, pv []types.Move)
	// SendBestMove reports the final chosen move (MoveNone for "0000").
	SendBestMove(best types.Move)
	// SendInfoString reports a free-text diagnostic line.
	SendInfoString(s string)
}
