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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mkopecky/mailboxknight/internal/types"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

func TestNewBoardStartPosition(t *testing.T) {
	b := NewBoard(zobrist.NewKeys())
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, CastlingAll, b.CastlingRights())
	assert.Equal(t, SqNone, b.EnPassantTarget())
	assert.Equal(t, 8, b.lists.Count(White, Pawn))
	assert.Equal(t, 8, b.lists.Count(Black, Pawn))
	assert.Equal(t, 1, b.lists.Count(White, King))
	assert.Equal(t, 1, b.lists.Count(Black, King))
	assert.Equal(t, MakeSquare(5, 1), b.KingSquare(White))
	assert.Equal(t, MakeSquare(5, 8), b.KingSquare(Black))
	assert.Equal(t, StartFen, b.FEN())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
		"8/8/8/4k3/8/8/4K3/8 w - - 5 40",
		"rnbq1bnr/pppkpppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQ - 2 3",
	}
	for _, fen := range fens {
		b, err := FromFEN(fen, zobrist.NewKeys())
		assert.NoError(t, err)
		assert.Equal(t, fen, b.FEN())
	}
}

func TestFromFenRejectsInvalid(t *testing.T) {
	_, err := FromFEN("not a fen at all", zobrist.NewKeys())
	assert.Error(t, err)

	_, err = FromFEN("8/8/8/8/8/8/8/8 w - - 0 1", zobrist.NewKeys())
	assert.Error(t, err, "position with no kings must be rejected")
}

func TestSetFenLeavesBoardUntouchedOnFailure(t *testing.T) {
	b := NewBoard(zobrist.NewKeys())
	before := b.FEN()
	ok := b.SetFEN("garbage")
	assert.False(t, ok)
	assert.Equal(t, before, b.FEN())
}

func TestMakeUnmakeSimplePawnPush(t *testing.T) {
	keys := zobrist.NewKeys()
	b := NewBoard(keys)
	fenBefore := b.FEN()
	hashBefore := b.ZobristKey()

	m := Move{
		From:                   MakeSquare(5, 2),
		To:                     MakeSquare(5, 4),
		MovedPiece:             MakePiece(White, Pawn),
		EnPassantSquare:        MakeSquare(5, 3),
		PreviousEnPassant:      SqNone,
		PreviousCastlingRights: CastlingAll,
	}
	b.MakeMove(m)
	assert.Equal(t, MakePiece(White, Pawn), b.PieceAt(MakeSquare(5, 4)))
	assert.True(t, b.PieceAt(MakeSquare(5, 2)).IsEmpty())
	assert.Equal(t, MakeSquare(5, 3), b.EnPassantTarget())
	assert.Equal(t, Black, b.SideToMove())

	b.UnmakeMove(m)
	assert.Equal(t, fenBefore, b.FEN())
	assert.Equal(t, hashBefore, b.ZobristKey())
}

func TestMakeUnmakeCapture(t *testing.T) {
	keys := zobrist.NewKeys()
	b, err := FromFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", keys)
	assert.NoError(t, err)
	fenBefore := b.FEN()
	hashBefore := b.ZobristKey()

	m := Move{
		From:                   MakeSquare(5, 4),
		To:                     MakeSquare(4, 5),
		MovedPiece:             MakePiece(White, Pawn),
		CapturedPiece:          MakePiece(Black, Pawn),
		EnPassantSquare:        SqNone,
		PreviousEnPassant:      MakeSquare(4, 6),
		PreviousCastlingRights: CastlingAll,
	}
	b.MakeMove(m)
	assert.Equal(t, MakePiece(White, Pawn), b.PieceAt(MakeSquare(4, 5)))
	assert.True(t, b.PieceAt(MakeSquare(5, 4)).IsEmpty())
	assert.Equal(t, 7, b.lists.Count(Black, Pawn), "one black pawn captured")
	assert.Equal(t, SqNone, b.EnPassantTarget())

	b.UnmakeMove(m)
	assert.Equal(t, fenBefore, b.FEN())
	assert.Equal(t, hashBefore, b.ZobristKey())
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	keys := zobrist.NewKeys()
	b, err := FromFEN("rnbqkbnr/1ppppppp/8/8/pP6/8/P1PPPPPP/RNBQKBNR b KQkq b3 0 3", keys)
	assert.NoError(t, err)
	fenBefore := b.FEN()
	hashBefore := b.ZobristKey()

	m := Move{
		From:                   MakeSquare(1, 4),
		To:                     MakeSquare(2, 3),
		MovedPiece:             MakePiece(Black, Pawn),
		CapturedPiece:          MakePiece(White, Pawn),
		EnPassant:              true,
		PreviousEnPassant:      MakeSquare(2, 3),
		PreviousCastlingRights: CastlingAll,
	}
	b.MakeMove(m)
	assert.Equal(t, MakePiece(Black, Pawn), b.PieceAt(MakeSquare(2, 3)))
	assert.True(t, b.PieceAt(MakeSquare(2, 4)).IsEmpty(), "captured pawn must be removed")
	assert.True(t, b.PieceAt(MakeSquare(1, 4)).IsEmpty())

	b.UnmakeMove(m)
	assert.Equal(t, fenBefore, b.FEN())
	assert.Equal(t, hashBefore, b.ZobristKey())
}

func TestMakeUnmakeCastling(t *testing.T) {
	keys := zobrist.NewKeys()
	b, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", keys)
	assert.NoError(t, err)
	fenBefore := b.FEN()
	hashBefore := b.ZobristKey()

	m := Move{
		From:       MakeSquare(5, 1),
		To:         MakeSquare(7, 1),
		MovedPiece: MakePiece(White, King),
		Castling: &CastlingMove{
			RookFrom:  MakeSquare(8, 1),
			RookTo:    MakeSquare(6, 1),
			RookPiece: MakePiece(White, Rook),
		},
		PreviousEnPassant:      SqNone,
		PreviousCastlingRights: CastlingAll,
	}
	b.MakeMove(m)
	assert.Equal(t, MakePiece(White, King), b.PieceAt(MakeSquare(7, 1)))
	assert.Equal(t, MakePiece(White, Rook), b.PieceAt(MakeSquare(6, 1)))
	assert.True(t, b.PieceAt(MakeSquare(8, 1)).IsEmpty())
	assert.False(t, b.CastlingRights().Has(WhiteOO))
	assert.False(t, b.CastlingRights().Has(WhiteOOO))

	b.UnmakeMove(m)
	assert.Equal(t, fenBefore, b.FEN())
	assert.Equal(t, hashBefore, b.ZobristKey())
}

func TestRookMoveClearsOnlyItsSideCastlingRights(t *testing.T) {
	keys := zobrist.NewKeys()
	b, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", keys)
	assert.NoError(t, err)

	m := Move{
		From:                   MakeSquare(1, 1),
		To:                     MakeSquare(1, 4),
		MovedPiece:             MakePiece(White, Rook),
		PreviousEnPassant:      SqNone,
		PreviousCastlingRights: CastlingAll,
	}
	b.MakeMove(m)
	assert.False(t, b.CastlingRights().Has(WhiteOOO))
	assert.True(t, b.CastlingRights().Has(WhiteOO))
	assert.True(t, b.CastlingRights().Has(BlackOO))
	assert.True(t, b.CastlingRights().Has(BlackOOO))
}

func TestIsAttackedBySlidingRook(t *testing.T) {
	b, err := FromFEN("7k/8/8/8/8/8/8/R3K3 w - - 0 1", zobrist.NewKeys())
	assert.NoError(t, err)
	assert.True(t, b.IsAttacked(MakeSquare(1, 4), White), "open a-file: rook on a1 attacks a4")
	assert.False(t, b.IsAttacked(MakeSquare(2, 4), White), "rook on a1 does not attack off its file/rank")
}

func TestIsAttackedByKnight(t *testing.T) {
	b, err := FromFEN("7K/8/8/3N4/8/8/8/4k3 w - - 0 1", zobrist.NewKeys())
	assert.NoError(t, err)
	assert.True(t, b.IsAttacked(MakeSquare(2, 4), White), "knight on d5 attacks b4")
	assert.False(t, b.IsAttacked(MakeSquare(3, 4), White), "knight on d5 does not attack c4")
}

func TestInCheck(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/4KR2 b - - 0 1", zobrist.NewKeys())
	assert.NoError(t, err)
	assert.False(t, b.InCheck(Black), "rook on f1 shares neither file nor rank with the black king on e8")

	b, err = FromFEN("4k3/4r3/8/8/8/8/8/4K3 w - - 0 1", zobrist.NewKeys())
	assert.NoError(t, err)
	assert.True(t, b.InCheck(White), "open e-file: black rook on e7 checks the white king on e1")
}
