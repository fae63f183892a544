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

// detectPins scans all 8 rays from kingSq. Along each ray, the first
// friendly piece found is a pin candidate; if the next non-empty square
// past it holds an enemy slider capable of attacking along that ray, the
// candidate is pinned in that direction and may only move along ±d.
func detectPins(b *board.Board, side Color, kingSq Square) map[Square]Direction {
	enemy := side.Flip()
	pinned := make(map[Square]Direction)

	for _, d := range QueenDirections {
		candidate := SqNone
		for s := kingSq.To(d); s.OnBoard(); s = s.To(d) {
			p := b.PieceAt(s)
			if p.IsEmpty() {
				continue
			}
			if candidate == SqNone {
				if p.ColorOf() == side {
					candidate = s
					continue
				}
				break // first piece met is an enemy: no pin, ray blocked
			}
			if p.ColorOf() == enemy && canAttackAlong(p.TypeOf(), d) {
				pinned[candidate] = d
			}
			break
		}
	}
	return pinned
}

func canAttackAlong(pt PieceType, d Direction) bool {
	switch pt {
	case Queen:
		return true
	case Bishop:
		return isDiagonal(d)
	case Rook:
		return !isDiagonal(d)
	default:
		return false
	}
}

func isDiagonal(d Direction) bool {
	return d == Northeast || d == Southeast || d == Southwest || d == Northwest
}
