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

// Package assert provides cheap, DEBUG-gated invariant checks. Violations
// are unrecoverable bugs (corrupted bitboards, empty-square captures, a king
// bitboard with the wrong population count) and must abort the process
// rather than let the engine continue on bad state.
package assert

import "fmt"

// DEBUG toggles whether Assert panics on a failed condition. Release builds
// can set this to false to skip the check entirely.
var DEBUG = true

// Assert panics with a formatted message if cond is false and DEBUG is set.
func Assert(cond bool, format string, args ...interface{}) {
	if !DEBUG {
		return
	}
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
