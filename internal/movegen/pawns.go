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
	"github.com/mkopecky/mailboxknight/internal/board"
	. "github.com/mkopecky/mailboxknight/internal/types"
)

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func genPawnMoves(b *board.Board, side Color, pinned map[Square]Direction, allowed func(Square) bool, kingSq Square, moves *[]Move) []Move {
	enemy := side.Flip()
	piece := MakePiece(side, Pawn)

	var push Direction
	var captureDirs [2]Direction
	var startRank, promoRank int
	if side == White {
		push = North
		captureDirs = [2]Direction{Northeast, Northwest}
		startRank, promoRank = 2, 8
	} else {
		push = South
		captureDirs = [2]Direction{Southeast, Southwest}
		startRank, promoRank = 7, 1
	}

	for _, from := range b.Pieces(side, Pawn) {
		if to := from.To(push); to.OnBoard() && b.PieceAt(to).IsEmpty() && pinOk(pinned, from, push) {
			if allowed(to) {
				appendPawnMove(moves, from, to, piece, PieceNone, promoRank, b)
			}
			if from.Rank() == startRank {
				if to2 := to.To(push); b.PieceAt(to2).IsEmpty() && allowed(to2) {
					*moves = append(*moves, Move{
						From:                   from,
						To:                     to2,
						MovedPiece:             piece,
						EnPassantSquare:        to,
						PreviousEnPassant:      b.EnPassantTarget(),
						PreviousCastlingRights: b.CastlingRights(),
					})
				}
			}
		}

		for _, cd := range captureDirs {
			to := from.To(cd)
			if !to.OnBoard() || !pinOk(pinned, from, cd) {
				continue
			}
			if occ := b.PieceAt(to); !occ.IsEmpty() && occ.ColorOf() == enemy && allowed(to) {
				appendPawnMove(moves, from, to, piece, occ, promoRank, b)
			}
			if ep := b.EnPassantTarget(); ep != SqNone && to == ep {
				capturedSq := MakeSquare(to.File(), from.Rank())
				captured := b.PieceAt(capturedSq)
				if captured.TypeOf() != Pawn || captured.ColorOf() != enemy || !allowed(capturedSq) {
					continue
				}
				safe := false
				b.WithPieceTemporarilyRemoved(from, func() {
					b.WithPieceTemporarilyRemoved(capturedSq, func() {
						safe = !b.IsAttacked(kingSq, enemy)
					})
				})
				if safe {
					*moves = append(*moves, Move{
						From:                   from,
						To:                     to,
						MovedPiece:             piece,
						CapturedPiece:          captured,
						EnPassant:              true,
						EnPassantSquare:        SqNone,
						PreviousEnPassant:      b.EnPassantTarget(),
						PreviousCastlingRights: b.CastlingRights(),
					})
				}
			}
		}
	}
	return *moves
}

func appendPawnMove(moves *[]Move, from, to Square, piece, captured Piece, promoRank int, b *board.Board) {
	base := Move{
		From:                   from,
		To:                     to,
		MovedPiece:             piece,
		CapturedPiece:          captured,
		EnPassantSquare:        SqNone,
		PreviousEnPassant:      b.EnPassantTarget(),
		PreviousCastlingRights: b.CastlingRights(),
	}
	if to.Rank() != promoRank {
		*moves = append(*moves, base)
		return
	}
	for _, pt := range promotionTypes {
		m := base
		m.Promotion = MakePiece(piece.ColorOf(), pt)
		*moves = append(*moves, m)
	}
}
