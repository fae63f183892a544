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

package movegen

import (
	"testing"

	"github.com/mkopecky/mailboxknight/internal/board"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
	. "github.com/mkopecky/mailboxknight/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.FromFEN(fen, zobrist.NewKeys())
	require.NoError(t, err)
	return b
}

func uciSet(moves []Move) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m.UciString()] = true
	}
	return set
}

func TestGenerateStartPositionMoveCount(t *testing.T) {
	b := mustBoard(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	moves := Generate(b)
	assert.Len(t, moves, 20, "16 pawn moves + 4 knight moves")
}

// A rook pinned on the e-file may still slide along the pin, but may
// not step off it even onto an otherwise-legal square.
func TestPinnedRookMayOnlySlideAlongThePinLine(t *testing.T) {
	b := mustBoard(t, "k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	moves := Generate(b)
	set := uciSet(moves)

	assert.True(t, set["e2e3"], "pinned rook may advance along the pin line")
	assert.True(t, set["e2e4"])
	assert.True(t, set["e2e8"], "pinned rook may capture the pinning piece")
	for uci := range set {
		if uci[0] == 'e' && uci[1] == '2' {
			assert.Equal(t, byte('e'), uci[2], "any e2 rook move must stay on the e-file: %s", uci)
		}
	}
}

// A pinned knight has zero legal destinations: it can never move along
// its own pin line since knights don't move in straight lines at all.
func TestPinnedKnightHasNoMoves(t *testing.T) {
	b := mustBoard(t, "k3r3/8/8/8/8/8/4N3/4K3 w - - 0 1")
	moves := Generate(b)
	for _, m := range moves {
		if m.MovedPiece.TypeOf() == Knight {
			t.Fatalf("pinned knight must have no moves, got %s", m.UciString())
		}
	}
}

// Single check by a knight: only capturing the knight or moving the
// king is legal; blocking is impossible against a knight.
func TestSingleCheckByKnightRestrictsToCaptureOrKingMove(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/5n2/4P3/4K3 w - - 0 1")
	moves := Generate(b)
	for _, m := range moves {
		if m.MovedPiece.TypeOf() != King {
			assert.Equal(t, "f3", m.To.String(), "non-king move must capture the checking knight")
		}
	}
}

// Double check: only the king may move, even though another piece
// could otherwise capture one of the two checkers.
func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/8/8/5n2/6P1/r3K3 w - - 0 1")
	moves := Generate(b)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.Equal(t, King, m.MovedPiece.TypeOf(), "double check allows only king moves, got %s", m.UciString())
	}
}

func TestCastlingKingsideGeneratedBeforeQueenside(t *testing.T) {
	b := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	moves := Generate(b)
	set := uciSet(moves)
	assert.True(t, set["e1g1"], "white kingside castle available")
	assert.True(t, set["e1c1"], "white queenside castle available")

	var sawKingside, sawQueenside bool
	for _, m := range moves {
		if !m.IsCastling() {
			continue
		}
		if m.To.String() == "g1" {
			sawKingside = true
			assert.False(t, sawQueenside, "kingside castle must be generated before queenside")
		}
		if m.To.String() == "c1" {
			sawQueenside = true
		}
	}
	assert.True(t, sawKingside)
	assert.True(t, sawQueenside)
}

// King may not castle through an attacked square, even though the
// destination square itself is safe.
func TestCastlingBlockedByAttackOnPassThroughSquare(t *testing.T) {
	b := mustBoard(t, "4k3/8/8/1b6/8/8/8/4K2R w K - 0 1")
	moves := Generate(b)
	for _, m := range moves {
		if m.IsCastling() {
			t.Fatalf("castle through attacked f1 must not be generated, got %s", m.UciString())
		}
	}
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	b := mustBoard(t, "rnbqkbnr/1ppppppp/8/8/pP6/8/P1PPPPPP/RNBQKBNR b KQkq b3 0 3")
	moves := Generate(b)
	set := uciSet(moves)
	assert.True(t, set["a4b3"], "black pawn may capture en passant on b3")
}

// A horizontally-pinned pawn may not capture en passant even though
// the destination square itself is not attacked: removing both pawns
// from the rank exposes the king to the rook.
func TestEnPassantForbiddenByHorizontalPin(t *testing.T) {
	b := mustBoard(t, "8/8/8/K2pP2r/8/8/8/4k3 w - d6 0 1")
	moves := Generate(b)
	for _, m := range moves {
		assert.False(t, m.EnPassant, "horizontally pinned en-passant capture must be suppressed, got %s", m.UciString())
	}
}

func TestPromotionGeneratesAllFourPieceTypes(t *testing.T) {
	b := mustBoard(t, "8/P6k/8/8/8/8/8/4K3 w - - 0 1")
	moves := Generate(b)
	promos := make(map[PieceType]bool)
	for _, m := range moves {
		if m.From.String() == "a7" && m.To.String() == "a8" {
			promos[m.Promotion.TypeOf()] = true
		}
	}
	assert.True(t, promos[Queen])
	assert.True(t, promos[Rook])
	assert.True(t, promos[Bishop])
	assert.True(t, promos[Knight])
}
