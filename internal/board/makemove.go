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
	. "github.com/mkopecky/mailboxknight/internal/types"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

// rookHome returns the castling flag whose rook starts on sq, or
// CastlingNone if sq is not one of the four rook home squares.
func rookHome(sq Square) CastlingRights {
	switch sq {
	case MakeSquare(1, 1):
		return WhiteOOO
	case MakeSquare(8, 1):
		return WhiteOO
	case MakeSquare(1, 8):
		return BlackOOO
	case MakeSquare(8, 8):
		return BlackOO
	default:
		return CastlingNone
	}
}

// moveCounters snapshots the ambient FEN half/fullmove fields, which sit
// outside the make/unmake exactness contract (spec.md's round-trip
// invariant names board, piece lists, rights, en-passant, side and hash
// only) but are still tracked for FEN fidelity.
type moveCounters struct {
	halfMoveClock  int
	fullMoveNumber int
}

// capturedPawnSquare returns the square an en-passant capturing pawn
// removes its victim from: same file as the destination, same rank as
// the origin.
func capturedPawnSquare(m Move) Square {
	return MakeSquare(m.To.File(), m.From.Rank())
}

// applyCastlingRightsChange XORs in/out the Zobrist keys for every
// flag whose membership differs between old and next, and installs
// next as the board's current rights. Used identically by MakeMove and
// UnmakeMove since XOR is its own inverse.
func (b *Board) applyCastlingRightsChange(next CastlingRights) {
	changed := b.castlingRights ^ next
	for _, flag := range [4]CastlingRights{WhiteOO, WhiteOOO, BlackOO, BlackOOO} {
		if changed.Has(flag) {
			b.zobristKey ^= b.keys.Castling[zobrist.CastlingKeyIndex(flag)]
		}
	}
	b.castlingRights = next
}

// applyEnPassantChange XORs out the current en-passant file key (if
// any), installs next, and XORs in next's file key (if any).
func (b *Board) applyEnPassantChange(next Square) {
	if b.enPassantTarget != SqNone {
		b.zobristKey ^= b.keys.EpFile[b.enPassantTarget.File()-1]
	}
	b.enPassantTarget = next
	if next != SqNone {
		b.zobristKey ^= b.keys.EpFile[next.File()-1]
	}
}

// MakeMove applies m to the board: removes any captured piece (the
// en-passant victim if m.EnPassant, otherwise whatever sits on m.To),
// relocates the moving piece (substituting the promotion piece if any),
// relocates the castling rook if m.IsCastling, updates the en-passant
// target, castling rights and side to move, and incrementally maintains
// the Zobrist hash throughout.
//
// m must have been produced by the move generator for this exact
// position (its undo fields are only meaningful in that case); passing
// an inconsistent move is a programming error.
func (b *Board) MakeMove(m Move) {
	b.counterHistory = append(b.counterHistory, moveCounters{b.halfMoveClock, b.fullMoveNumber})

	switch {
	case m.EnPassant:
		b.removePiece(capturedPawnSquare(m), m.CapturedPiece)
	case m.CapturedPiece.IsValidPiece():
		b.removePiece(m.To, m.CapturedPiece)
	}

	b.removePiece(m.From, m.MovedPiece)
	if m.IsPromotion() {
		b.addPiece(m.To, m.Promotion)
	} else {
		b.addPiece(m.To, m.MovedPiece)
	}

	if m.IsCastling() {
		b.movePiece(m.Castling.RookFrom, m.Castling.RookTo, m.Castling.RookPiece)
	}

	b.applyEnPassantChange(m.EnPassantSquare)

	nextRights := b.castlingRights
	if m.MovedPiece.TypeOf() == King {
		if m.MovedPiece.ColorOf() == White {
			nextRights = nextRights.Without(WhiteOO).Without(WhiteOOO)
		} else {
			nextRights = nextRights.Without(BlackOO).Without(BlackOOO)
		}
	}
	nextRights = nextRights.Without(rookHome(m.From))
	nextRights = nextRights.Without(rookHome(m.To))
	b.applyCastlingRightsChange(nextRights)

	if m.MovedPiece.TypeOf() == Pawn || m.IsCapture() {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}
	if b.sideToMove == Black {
		b.fullMoveNumber++
	}

	b.sideToMove = b.sideToMove.Flip()
	b.zobristKey ^= b.keys.SideToMove
}

// UnmakeMove is the exact inverse of MakeMove(m): board, piece lists,
// castling rights, en-passant target, side to move and Zobrist hash are
// all restored to what they were before m was made. m must be the same
// move value most recently passed to MakeMove.
func (b *Board) UnmakeMove(m Move) {
	b.sideToMove = b.sideToMove.Flip()
	b.zobristKey ^= b.keys.SideToMove

	if m.IsCastling() {
		b.movePiece(m.Castling.RookTo, m.Castling.RookFrom, m.Castling.RookPiece)
	}

	if m.IsPromotion() {
		b.removePiece(m.To, m.Promotion)
	} else {
		b.removePiece(m.To, m.MovedPiece)
	}
	b.addPiece(m.From, m.MovedPiece)

	switch {
	case m.EnPassant:
		b.addPiece(capturedPawnSquare(m), m.CapturedPiece)
	case m.CapturedPiece.IsValidPiece():
		b.addPiece(m.To, m.CapturedPiece)
	}

	b.applyCastlingRightsChange(m.PreviousCastlingRights)
	b.applyEnPassantChange(m.PreviousEnPassant)

	n := len(b.counterHistory) - 1
	b.halfMoveClock = b.counterHistory[n].halfMoveClock
	b.fullMoveNumber = b.counterHistory[n].fullMoveNumber
	b.counterHistory = b.counterHistory[:n]
}
