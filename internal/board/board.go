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

// Package board represents a chess position as a 12x10 mailbox array
// plus a piece list kept in lockstep, a Zobrist hash maintained
// incrementally, and the make/unmake pair that mutates all three (and
// castling rights / en-passant target / side to move) atomically and
// reversibly.
//
// Create a position with NewBoard(keys) for the start position, or
// FromFEN(fen, keys) for an arbitrary one. Thereafter mutate only via
// MakeMove/UnmakeMove -- SetPiece is a low level primitive that writes
// the mailbox array alone and does not keep the piece list in sync.
package board

import (
	"strings"

	"github.com/op/go-logging"

	"github.com/mkopecky/mailboxknight/internal/assert"
	mylogging "github.com/mkopecky/mailboxknight/internal/logging"
	. "github.com/mkopecky/mailboxknight/internal/types"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

var log *logging.Logger

func init() {
	log = mylogging.GetLog()
}

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is the chess position: mailbox square storage, a synchronized
// piece list, castling rights, the en-passant target and the
// incrementally maintained Zobrist hash.
type Board struct {
	keys *zobrist.Keys

	squares [BoardSize]Piece
	lists   PieceList

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantTarget Square // SqNone if none

	// Ambient FEN bookkeeping, not part of the make/unmake exactness
	// contract (spec.md's round-trip invariant covers board, piece
	// lists, rights, en-passant, side and hash -- not these counters).
	halfMoveClock  int
	fullMoveNumber int
	counterHistory []moveCounters

	zobristKey zobrist.Key
}

// NewBoard returns the standard starting position, hashed against keys.
func NewBoard(keys *zobrist.Keys) *Board {
	b, err := FromFEN(StartFen, keys)
	if err != nil {
		panic("board: start FEN must always parse: " + err.Error())
	}
	return b
}

// empty returns a Board with every cell initialized (off-board cells to
// Sentinel, playable cells to PieceNone) and an empty piece list.
func empty(keys *zobrist.Keys) *Board {
	b := &Board{keys: keys, enPassantTarget: SqNone, lists: newPieceList()}
	for sq := Square(0); int(sq) < BoardSize; sq++ {
		if sq.OnBoard() {
			b.squares[sq] = PieceNone
		} else {
			b.squares[sq] = Sentinel
		}
	}
	return b
}

// PieceAt returns the piece on sq. Passing an off-board square is a
// programming error; callers must only query OnBoard squares.
func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// SetPiece writes the mailbox array only. Callers are responsible for
// keeping the piece list in sync; MakeMove/UnmakeMove/FromFEN do not
// use SetPiece but go through addPiece/removePiece, which update both.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.squares[sq] = p
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastlingRights returns the current castling rights.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// EnPassantTarget returns the current en-passant target square, or
// SqNone if none is active.
func (b *Board) EnPassantTarget() Square { return b.enPassantTarget }

// ZobristKey returns the incrementally maintained position hash.
func (b *Board) ZobristKey() zobrist.Key { return b.zobristKey }

// Keys returns the Zobrist key bundle this board hashes with, so a
// derived board (e.g. a search's private copy) can be built against the
// same keys and therefore produce comparable hashes.
func (b *Board) Keys() *zobrist.Keys { return b.keys }

// Clone returns an independent copy of b: the mailbox array and
// castling/en-passant/side-to-move/hash fields are plain values and
// copy for free, but the piece list holds per-square slices that must
// be copied explicitly so the clone's make/unmake never mutates the
// original's backing arrays.
func (b *Board) Clone() *Board {
	clone := *b
	clone.lists = b.lists.clone()
	clone.counterHistory = append([]moveCounters(nil), b.counterHistory...)
	return &clone
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) Square {
	sq := b.lists.Squares(c, King)
	if assert.DEBUG {
		assert.Assert(len(sq) == 1, "board: KingSquare: %d kings in piece list for %s, expected exactly 1", len(sq), c.String())
	}
	if len(sq) != 1 {
		panic("board: exactly one king expected per side")
	}
	return sq[0]
}

// Pieces returns the sorted squares occupied by (c, pt).
func (b *Board) Pieces(c Color, pt PieceType) []Square {
	return b.lists.Squares(c, pt)
}

// SameRank, SameFile, SameDiagonal and SquaresBetween are exposed on
// Board for API symmetry with the rest of the geometry surface, even
// though they are pure functions of the squares involved.
func (b *Board) SameRank(a, c Square) bool           { return SameRank(a, c) }
func (b *Board) SameFile(a, c Square) bool           { return SameFile(a, c) }
func (b *Board) SameDiagonal(a, c Square) bool       { return SameDiagonal(a, c) }
func (b *Board) SquaresBetween(a, c Square) []Square { return SquaresBetween(a, c) }

// addPiece places p on sq, updating both the mailbox array and the piece list.
func (b *Board) addPiece(sq Square, p Piece) {
	if assert.DEBUG {
		assert.Assert(sq.OnBoard(), "board: addPiece: square %d is off-board", sq)
		assert.Assert(p != PieceNone, "board: addPiece: refusing to add PieceNone to square %d", sq)
		assert.Assert(b.squares[sq] == PieceNone, "board: addPiece: square %d already holds %s, cannot add %s", sq, b.squares[sq].String(), p.String())
	}
	b.squares[sq] = p
	b.lists.AddPiece(p.ColorOf(), p.TypeOf(), sq)
	b.zobristKey ^= b.keys.Piece[sq][p]
}

// removePiece clears sq (to empty), updating both the mailbox array and
// the piece list. p must be the piece currently on sq.
func (b *Board) removePiece(sq Square, p Piece) {
	if assert.DEBUG {
		assert.Assert(sq.OnBoard(), "board: removePiece: square %d is off-board", sq)
		assert.Assert(b.squares[sq] == p, "board: removePiece: square %d holds %s, not %s", sq, b.squares[sq].String(), p.String())
	}
	b.zobristKey ^= b.keys.Piece[sq][p]
	b.lists.RemovePiece(p.ColorOf(), p.TypeOf(), sq)
	b.squares[sq] = PieceNone
}

// movePiece relocates p from 'from' to 'to' (to must be empty).
func (b *Board) movePiece(from, to Square, p Piece) {
	b.removePiece(from, p)
	b.addPiece(to, p)
}

// String renders an ASCII board for debugging (rank 8 on top).
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		sb.WriteString(rankChar(rank))
		sb.WriteString(" ")
		for file := 1; file <= 8; file++ {
			p := b.squares[MakeSquare(file, rank)]
			if p.IsEmpty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.Char() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func rankChar(rank int) string {
	return string(rune('0' + rank))
}
