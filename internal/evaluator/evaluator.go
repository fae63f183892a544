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

// Package evaluator scores a position by material plus a static
// piece-square bonus, both taken from White's point of view.
package evaluator

import (
	"github.com/mkopecky/mailboxknight/internal/board"
	"github.com/mkopecky/mailboxknight/internal/config"
	. "github.com/mkopecky/mailboxknight/internal/types"
)

// allPieceTypes lists the piece types iterated per evaluation pass.
var allPieceTypes = [6]PieceType{King, Pawn, Knight, Bishop, Rook, Queen}

// Evaluate returns a static score for b, positive favoring White. The
// search negates this for the side to move; Evaluate itself is
// side-agnostic.
func Evaluate(b *board.Board) Value {
	var score Value
	for _, pt := range allPieceTypes {
		for _, sq := range b.Pieces(White, pt) {
			score += PieceValue[pt]
			if config.Settings.Eval.UsePsqTables {
				score += psqValue(pt, White, sq)
			}
		}
		for _, sq := range b.Pieces(Black, pt) {
			score -= PieceValue[pt]
			if config.Settings.Eval.UsePsqTables {
				score -= psqValue(pt, Black, sq)
			}
		}
	}
	return score
}

// EvaluateForSideToMove returns Evaluate(b) from the perspective of the
// side to move, as negamax search requires: positive means "good for
// whoever is about to move", with a small bonus for having the move.
func EvaluateForSideToMove(b *board.Board) Value {
	score := Evaluate(b)
	tempo := Value(config.Settings.Eval.Tempo)
	if b.SideToMove() == White {
		return score + tempo
	}
	return -score + tempo
}
