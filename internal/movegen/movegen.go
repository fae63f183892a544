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

// Package movegen produces the fully legal moves of a position: pin
// detection up front prunes most of the check-safety work, check
// evasion narrows non-king moves to captures/blocks of the checking
// piece, and king moves are verified by temporarily removing the king
// so its own square doesn't shadow the ray it would otherwise step
// into.
package movegen

import (
	"github.com/mkopecky/mailboxknight/internal/assert"
	"github.com/mkopecky/mailboxknight/internal/board"
	. "github.com/mkopecky/mailboxknight/internal/types"
)

// Generate returns every fully legal move available to the side to move in b.
func Generate(b *board.Board) []Move {
	side := b.SideToMove()
	kingSq := b.KingSquare(side)
	enemy := side.Flip()

	pinned := detectPins(b, side, kingSq)
	checkers := b.AttackersOf(kingSq, enemy)
	if assert.DEBUG {
		assert.Assert(len(checkers) <= 2, "movegen: Generate: %d attackers of king on square %d, at most 2 are possible in a legal position", len(checkers), kingSq)
	}

	var allowed func(Square) bool
	switch len(checkers) {
	case 0:
		allowed = func(Square) bool { return true }
	case 1:
		target := map[Square]bool{checkers[0]: true}
		if b.PieceAt(checkers[0]).TypeOf().IsSlider() {
			for _, s := range b.SquaresBetween(kingSq, checkers[0]) {
				target[s] = true
			}
		}
		allowed = func(s Square) bool { return target[s] }
	default: // double check: only the king may move
		allowed = func(Square) bool { return false }
	}

	moves := make([]Move, 0, 48)
	moves = genKingMoves(b, side, kingSq, &moves)
	if len(checkers) == 0 {
		moves = genCastling(b, side, kingSq, &moves)
	}
	moves = genSliderMoves(b, side, Queen, QueenDirections[:], pinned, allowed, kingSq, &moves)
	moves = genSliderMoves(b, side, Rook, RookDirections[:], pinned, allowed, kingSq, &moves)
	moves = genSliderMoves(b, side, Bishop, BishopDirections[:], pinned, allowed, kingSq, &moves)
	moves = genKnightMoves(b, side, pinned, allowed, &moves)
	moves = genPawnMoves(b, side, pinned, allowed, kingSq, &moves)
	return moves
}

func pinOk(pinned map[Square]Direction, from Square, d Direction) bool {
	pd, ok := pinned[from]
	if !ok {
		return true
	}
	return d == pd || d == -pd
}

func genSliderMoves(b *board.Board, side Color, pt PieceType, dirs []Direction, pinned map[Square]Direction, allowed func(Square) bool, kingSq Square, moves *[]Move) []Move {
	for _, from := range b.Pieces(side, pt) {
		piece := MakePiece(side, pt)
		for _, d := range dirs {
			if !pinOk(pinned, from, d) {
				continue
			}
			for to := from.To(d); to.OnBoard(); to = to.To(d) {
				occ := b.PieceAt(to)
				if occ.IsEmpty() {
					if allowed(to) {
						*moves = append(*moves, quietMove(from, to, piece, b))
					}
					continue
				}
				if occ.ColorOf() == side.Flip() && allowed(to) {
					*moves = append(*moves, captureMove(from, to, piece, occ, b))
				}
				break
			}
		}
	}
	return *moves
}

func genKnightMoves(b *board.Board, side Color, pinned map[Square]Direction, allowed func(Square) bool, moves *[]Move) []Move {
	piece := MakePiece(side, Knight)
	for _, from := range b.Pieces(side, Knight) {
		if _, isPinned := pinned[from]; isPinned {
			continue
		}
		for _, d := range KnightDeltas {
			to := from.To(d)
			if !to.OnBoard() || !allowed(to) {
				continue
			}
			occ := b.PieceAt(to)
			if occ.IsEmpty() {
				*moves = append(*moves, quietMove(from, to, piece, b))
			} else if occ.ColorOf() == side.Flip() {
				*moves = append(*moves, captureMove(from, to, piece, occ, b))
			}
		}
	}
	return *moves
}

func genKingMoves(b *board.Board, side Color, kingSq Square, moves *[]Move) []Move {
	piece := MakePiece(side, King)
	enemy := side.Flip()
	for _, d := range QueenDirections {
		to := kingSq.To(d)
		if !to.OnBoard() {
			continue
		}
		occ := b.PieceAt(to)
		if !occ.IsEmpty() && occ.ColorOf() == side {
			continue
		}
		safe := false
		b.WithPieceTemporarilyRemoved(kingSq, func() {
			safe = !b.IsAttacked(to, enemy)
		})
		if !safe {
			continue
		}
		if occ.IsEmpty() {
			*moves = append(*moves, quietMove(kingSq, to, piece, b))
		} else {
			*moves = append(*moves, captureMove(kingSq, to, piece, occ, b))
		}
	}
	return *moves
}

// genCastling appends kingside-before-queenside castling moves, per
// spec.md's generation-order tie-break.
func genCastling(b *board.Board, side Color, kingSq Square, moves *[]Move) []Move {
	enemy := side.Flip()
	rights := b.CastlingRights()

	tryCastle := func(flag CastlingRights, rookFile, throughFile, kingToFile int) {
		if !rights.Has(flag) {
			return
		}
		rank := 1
		if side == Black {
			rank = 8
		}
		rookFrom := MakeSquare(rookFile, rank)
		rookTo := MakeSquare(throughFile, rank)
		kingTo := MakeSquare(kingToFile, rank)

		if b.PieceAt(kingSq) != MakePiece(side, King) || b.PieceAt(rookFrom) != MakePiece(side, Rook) {
			return
		}
		for f := minInt(kingSq.File(), rookFile) + 1; f < maxInt(kingSq.File(), rookFile); f++ {
			if !b.PieceAt(MakeSquare(f, rank)).IsEmpty() {
				return
			}
		}
		for _, sq := range []Square{kingSq, rookTo, kingTo} {
			if b.IsAttacked(sq, enemy) {
				return
			}
		}
		*moves = append(*moves, Move{
			From:       kingSq,
			To:         kingTo,
			MovedPiece: MakePiece(side, King),
			Castling: &CastlingMove{
				RookFrom:  rookFrom,
				RookTo:    rookTo,
				RookPiece: MakePiece(side, Rook),
			},
			EnPassantSquare:        SqNone,
			PreviousEnPassant:      b.EnPassantTarget(),
			PreviousCastlingRights: rights,
		})
	}

	tryCastle(KingSideFor(side), 8, 6, 7)
	tryCastle(QueenSideFor(side), 1, 4, 3)
	return *moves
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func quietMove(from, to Square, piece Piece, b *board.Board) Move {
	return Move{
		From:                   from,
		To:                     to,
		MovedPiece:             piece,
		EnPassantSquare:        SqNone,
		PreviousEnPassant:      b.EnPassantTarget(),
		PreviousCastlingRights: b.CastlingRights(),
	}
}

func captureMove(from, to Square, piece, captured Piece, b *board.Board) Move {
	if assert.DEBUG {
		assert.Assert(captured.TypeOf() != King, "movegen: captureMove: %s to %d would capture a king", piece, to)
	}
	m := quietMove(from, to, piece, b)
	m.CapturedPiece = captured
	return m
}
