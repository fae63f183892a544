//
// mailboxknight - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 mailboxknight contributors
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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkopecky/mailboxknight/internal/board"
	. "github.com/mkopecky/mailboxknight/internal/types"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

func mustBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.FromFEN(fen, zobrist.NewKeys())
	require.NoError(t, err)
	return b
}

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	b := mustBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Equal(t, Value(0), Evaluate(b), "symmetric start position must score exactly zero")
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	assert.Greater(t, Evaluate(b), Value(800), "a lone extra queen must dominate the score")
}

func TestEvaluateForSideToMoveNegatesForBlack(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	white := EvaluateForSideToMove(b)

	b.SetFEN("4k3/8/8/8/8/8/8/4KQ2 b - - 0 1")
	black := EvaluateForSideToMove(b)

	assert.Greater(t, white, Value(0))
	assert.Less(t, black, Value(0))
}
