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
)

// IsAttacked reports whether sq is attacked by any piece of color by.
// It works in reverse: from sq, walk out the way each attacking piece
// type moves and see whether a piece of that type and color is there.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	if b.pawnAttacks(sq, by) {
		return true
	}
	for _, d := range knightDeltasAsDirections {
		if p := b.squares[sq.To(d)]; p == MakePiece(by, Knight) {
			return true
		}
	}
	for _, d := range QueenDirections {
		if p := b.squares[sq.To(d)]; p == MakePiece(by, King) {
			return true
		}
	}
	for _, d := range RookDirections {
		if p := b.firstPieceOnRay(sq, d); p == MakePiece(by, Rook) || p == MakePiece(by, Queen) {
			return true
		}
	}
	for _, d := range BishopDirections {
		if p := b.firstPieceOnRay(sq, d); p == MakePiece(by, Bishop) || p == MakePiece(by, Queen) {
			return true
		}
	}
	return false
}

// pawnAttacks reports whether a pawn of color by attacks sq. White
// pawns attack northward (from the attacker's perspective), so the
// reverse walk from sq goes south-east/south-west to find them.
func (b *Board) pawnAttacks(sq Square, by Color) bool {
	var back Direction
	if by == White {
		back = South
	} else {
		back = North
	}
	for _, side := range [2]Direction{East, West} {
		if p := b.squares[sq.To(back).To(side)]; p == MakePiece(by, Pawn) {
			return true
		}
	}
	return false
}

// firstPieceOnRay walks from sq in direction d until it hits a piece or
// leaves the board, returning that piece (PieceNone if the ray runs off
// the board without meeting one).
func (b *Board) firstPieceOnRay(sq Square, d Direction) Piece {
	for s := sq.To(d); s.OnBoard(); s = s.To(d) {
		if p := b.squares[s]; !p.IsEmpty() {
			return p
		}
	}
	return PieceNone
}

// knightDeltasAsDirections re-exposes types.KnightDeltas under the name
// this file's reverse-attack loop reads most naturally.
var knightDeltasAsDirections = KnightDeltas[:]

// InCheck reports whether the king of color c currently stands on an
// attacked square.
func (b *Board) InCheck(c Color) bool {
	return b.IsAttacked(b.KingSquare(c), c.Flip())
}

// WithPieceTemporarilyRemoved clears sq to PieceNone for the duration of
// fn, then restores whatever piece was there. It touches the mailbox
// array only -- not the piece list or Zobrist hash -- since its only
// caller needs an accurate IsAttacked picture, not a fully consistent
// position. Used by the move generator to test king safety (king
// removed from its origin so it doesn't block its own escape-square
// rays) and the horizontal en-passant pin case (both pawns removed).
func (b *Board) WithPieceTemporarilyRemoved(sq Square, fn func()) {
	saved := b.squares[sq]
	b.squares[sq] = PieceNone
	fn()
	b.squares[sq] = saved
}

// AttackersOf returns every square from which a piece of color by
// attacks sq, used to count checking pieces for single/double check
// evasion logic.
func (b *Board) AttackersOf(sq Square, by Color) []Square {
	var attackers []Square
	if b.pawnAttacks(sq, by) {
		var back Direction
		if by == White {
			back = South
		} else {
			back = North
		}
		for _, side := range [2]Direction{East, West} {
			if s := sq.To(back).To(side); b.squares[s] == MakePiece(by, Pawn) {
				attackers = append(attackers, s)
			}
		}
	}
	for _, d := range knightDeltasAsDirections {
		if s := sq.To(d); b.squares[s] == MakePiece(by, Knight) {
			attackers = append(attackers, s)
		}
	}
	for _, d := range QueenDirections {
		if s := sq.To(d); b.squares[s] == MakePiece(by, King) {
			attackers = append(attackers, s)
		}
	}
	for _, d := range RookDirections {
		if s, p := b.firstSquareAndPieceOnRay(sq, d); p == MakePiece(by, Rook) || p == MakePiece(by, Queen) {
			attackers = append(attackers, s)
		}
	}
	for _, d := range BishopDirections {
		if s, p := b.firstSquareAndPieceOnRay(sq, d); p == MakePiece(by, Bishop) || p == MakePiece(by, Queen) {
			attackers = append(attackers, s)
		}
	}
	return attackers
}

func (b *Board) firstSquareAndPieceOnRay(sq Square, d Direction) (Square, Piece) {
	for s := sq.To(d); s.OnBoard(); s = s.To(d) {
		if p := b.squares[s]; !p.IsEmpty() {
			return s, p
		}
	}
	return SqNone, PieceNone
}
