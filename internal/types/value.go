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

import "fmt"

// Value is a centipawn-scale evaluation or search score.
type Value int

// CheckmateValue is chosen far outside any reachable material score so a
// mate score can never be confused with one; depth is subtracted so a
// faster mate scores strictly higher (worse for the losing side) than a
// slower one.
const CheckmateValue Value = 2000000000

// DrawValue is the score assigned to any drawn position.
const DrawValue Value = 0

// IsMate reports whether v represents a mate score (for either side).
func (v Value) IsMate() bool {
	return v.Abs() > CheckmateValue-1000
}

// Abs returns the absolute value of v.
func (v Value) Abs() Value {
	if v < 0 {
		return -v
	}
	return v
}

// MateDistance returns the number of plies to the mate that v encodes, or
// 0 if v is not a mate score.
func (v Value) MateDistance() int {
	if !v.IsMate() {
		return 0
	}
	return int(CheckmateValue - v.Abs())
}

// String renders v the way UCI "info score" wants it: "mate N" for mate
// scores (negative N for a losing mate), "cp N" otherwise.
func (v Value) String() string {
	if v.IsMate() {
		plies := v.MateDistance()
		moves := (plies + 1) / 2
		if v < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return fmt.Sprintf("cp %d", int(v))
}
