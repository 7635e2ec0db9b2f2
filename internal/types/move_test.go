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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveBasicPack(t *testing.T) {
	m := NewMove(SqE2, SqE4, Pawn)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Pawn, m.Piece())
	assert.False(t, m.IsCapture())
	assert.False(t, m.IsPromotion())
	assert.Equal(t, "e2e4", m.StringUci())
}

func TestMoveDoublePush(t *testing.T) {
	m := NewDoublePush(SqE2, SqE4)
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsCapture())
}

func TestMoveEnPassantImpliesCapture(t *testing.T) {
	m := NewEnPassant(SqE5, SqD6)
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsCapture())
}

func TestMovePromotion(t *testing.T) {
	m := NewPromotion(SqC7, SqC8, Queen, false)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.Promotion())
	assert.Equal(t, "c7c8q", m.StringUci())

	capture := NewPromotion(SqB7, SqA8, Knight, true)
	assert.True(t, capture.IsCapture())
	assert.Equal(t, "b7a8n", capture.StringUci())
}

func TestMoveCastling(t *testing.T) {
	oo := NewCastling(SqE1, SqG1, true)
	assert.True(t, oo.IsKingsideCastle())
	assert.False(t, oo.IsQueensideCastle())
	assert.True(t, oo.IsCastle())

	ooo := NewCastling(SqE8, SqC8, false)
	assert.True(t, ooo.IsQueensideCastle())
}

func TestMoveNoneStringsAsNullMove(t *testing.T) {
	assert.Equal(t, "0000", MoveNone.StringUci())
}
