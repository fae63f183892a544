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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkopecky/mailboxknight/internal/board"
	"github.com/mkopecky/mailboxknight/internal/config"
	"github.com/mkopecky/mailboxknight/internal/movegen"
	. "github.com/mkopecky/mailboxknight/internal/types"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

func mustBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.FromFEN(fen, zobrist.NewKeys())
	require.NoError(t, err)
	return b
}

func TestRunFindsMateInOneAtDepthThree(t *testing.T) {
	b := mustBoard(t, "7R/8/8/8/8/1K6/8/1k6 w - - 0 1")
	s := NewSearch()
	result := s.Run(b, Limits{Depth: 3})

	assert.Greater(t, result.Score, Value(10000))

	b.MakeMove(result.BestMove)
	assert.Empty(t, movegen.Generate(b), "the mating move must leave Black with no legal replies")
	assert.True(t, b.InCheck(b.SideToMove()), "the mating move must leave Black in check")
}

func TestRunDetectsStalemateAtDepthOne(t *testing.T) {
	b := mustBoard(t, "k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	s := NewSearch()
	result := s.Run(b, Limits{Depth: 1})
	assert.Equal(t, Value(0), result.Score)
}

func TestRunPrefersTheWinningQueenTrade(t *testing.T) {
	b := mustBoard(t, "k7/8/8/3q4/3Q4/8/8/K7 w - - 0 1")
	s := NewSearch()
	result := s.Run(b, Limits{Depth: 2})

	assert.Equal(t, "d4d5", result.BestMove.UciString())
	assert.Greater(t, result.Score, Value(800))
}

func TestRunPrefersQueeningPromotion(t *testing.T) {
	b := mustBoard(t, "k7/3P4/8/8/8/8/8/K7 w - - 0 1")
	s := NewSearch()
	result := s.Run(b, Limits{Depth: 2})

	assert.Equal(t, "d7d8q", result.BestMove.UciString())
	assert.GreaterOrEqual(t, result.Score, Value(900))
}

func TestRunRestrictsRootToSearchMoves(t *testing.T) {
	b := mustBoard(t, "k7/8/8/3q4/3Q4/8/8/K7 w - - 0 1")
	var kingMove Move
	for _, m := range movegen.Generate(b) {
		if m.UciString() == "a1b2" {
			kingMove = m
			break
		}
	}
	require.False(t, kingMove.IsZero(), "a1b2 must be a legal king move in this position")

	s := NewSearch()
	result := s.Run(b, Limits{Depth: 2, SearchMoves: []Move{kingMove}})

	assert.Equal(t, "a1b2", result.BestMove.UciString(), "searchmoves must restrict the root to the requested move, not the unconstrained best move d4d5")
}

func TestQuiescenceToggleControlsQNodes(t *testing.T) {
	b := mustBoard(t, "k7/8/8/3q4/3Q4/8/8/K7 w - - 0 1")
	saved := config.Settings.Search.UseQuiescence
	defer func() { config.Settings.Search.UseQuiescence = saved }()

	config.Settings.Search.UseQuiescence = true
	s := NewSearch()
	s.Run(b, Limits{Depth: 2})
	assert.Greater(t, s.GetStatistics().QNodes, uint64(0), "quiescence search must extend past the horizon when enabled")

	config.Settings.Search.UseQuiescence = false
	s = NewSearch()
	s.Run(b, Limits{Depth: 2})
	assert.Equal(t, uint64(0), s.GetStatistics().QNodes, "disabling quiescence must stop negamax from ever calling into it")
}

func TestStopSearchCutsAnInfiniteSearchShort(t *testing.T) {
	b := mustBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	s := NewSearch()
	s.StartSearch(b, Limits{Infinite: true}, nil, nil)
	s.StopSearch()
	assert.False(t, s.IsSearching())
}

