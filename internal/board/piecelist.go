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
	"sort"

	"github.com/mkopecky/mailboxknight/internal/assert"
	. "github.com/mkopecky/mailboxknight/internal/types"
)

// PieceList holds, for every (color, piece type), a sorted slice of the
// squares occupied by pieces of that kind. It is embedded in Board and
// kept in lockstep with the mailbox array by AddPiece/RemovePiece -- the
// two must always be called symmetrically with board mutations so that
// for every occupied playable square s holding piece p, s is a member of
// list[p.ColorOf()][p.TypeOf()], and the union of all lists is exactly
// the set of occupied playable squares.
type PieceList struct {
	squares [ColorLength][PtLength][]Square
}

// newPieceList returns an empty piece list with small pre-allocated capacity.
func newPieceList() PieceList {
	var pl PieceList
	for c := White; c < ColorLength; c++ {
		for pt := King; pt <= Queen; pt++ {
			pl.squares[c][pt] = make([]Square, 0, 10)
		}
	}
	return pl
}

// clone returns an independent copy of pl: each per-(color,type) slice
// is copied so appends/removals on the clone never touch pl's backing
// arrays.
func (pl *PieceList) clone() PieceList {
	var out PieceList
	for c := White; c < ColorLength; c++ {
		for pt := King; pt <= Queen; pt++ {
			out.squares[c][pt] = append([]Square(nil), pl.squares[c][pt]...)
		}
	}
	return out
}

// Squares returns the sorted squares occupied by (c, pt). The returned
// slice is owned by the piece list and must not be mutated by the caller.
func (pl *PieceList) Squares(c Color, pt PieceType) []Square {
	return pl.squares[c][pt]
}

// Count returns the number of pieces of kind (c, pt).
func (pl *PieceList) Count(c Color, pt PieceType) int {
	return len(pl.squares[c][pt])
}

// AddPiece inserts sq into the sorted list for (c, pt).
func (pl *PieceList) AddPiece(c Color, pt PieceType, sq Square) {
	list := pl.squares[c][pt]
	i := sort.Search(len(list), func(i int) bool { return list[i] >= sq })
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = sq
	pl.squares[c][pt] = list
}

// RemovePiece deletes sq from the sorted list for (c, pt). It is a
// programmer error to call this for a square not present in the list.
func (pl *PieceList) RemovePiece(c Color, pt PieceType, sq Square) {
	list := pl.squares[c][pt]
	i := sort.Search(len(list), func(i int) bool { return list[i] >= sq })
	found := i < len(list) && list[i] == sq
	if assert.DEBUG {
		assert.Assert(found, "board: RemovePiece: square %d not in piece list for %s %s", sq, c.String(), pt.String())
	}
	if !found {
		panic("board: RemovePiece: square not in piece list")
	}
	pl.squares[c][pt] = append(list[:i], list[i+1:]...)
}
