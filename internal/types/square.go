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

package types

// Square is an index into the 12x10 mailbox board (width 10, height
// 12, 120 cells). Ranks 2..9 and files 1..8 are playable; everything
// else is permanently Sentinel. The mapping from standard algebraic
// file/rank (1-based) to Square is the affine relation from spec:
//   internal = (rank-1)*10 + (file-1) + 21
type Square int8

const (
	// BoardWidth is the mailbox row stride.
	BoardWidth = 10
	// BoardSize is the total number of mailbox cells, playable or not.
	BoardSize = 120
	// SqNone marks the absence of a square (e.g. no en-passant target).
	SqNone Square = -1
)

// Direction is a mailbox step delta.
type Direction int8

const (
	North     Direction = 10
	South     Direction = -10
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = 11
	Southeast Direction = -9
	Southwest Direction = -11
	Northwest Direction = 9
)

// RookDirections are the four orthogonal rays, in generation order.
var RookDirections = [4]Direction{North, East, South, West}

// BishopDirections are the four diagonal rays, in generation order.
var BishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// QueenDirections are all eight rays, in generation order (also used
// for the king's single-step moves).
var QueenDirections = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

// KnightDeltas are the eight knight step deltas on the mailbox board.
var KnightDeltas = [8]Direction{-21, -19, -12, -8, 8, 12, 19, 21}

// MakeSquare returns the internal square for 1-based file/rank (1..8).
func MakeSquare(file, rank int) Square {
	return Square((rank-1)*10 + (file - 1) + 21)
}

// File returns the 1-based file (1=a .. 8=h) of sq.
func (sq Square) File() int {
	return int(sq) % BoardWidth
}

// Rank returns the 1-based rank (1..8) of sq.
func (sq Square) Rank() int {
	return int(sq)/BoardWidth - 1
}

// OnBoard reports whether sq refers to one of the 64 playable squares,
// independent of what is currently stored there.
func (sq Square) OnBoard() bool {
	if sq < 0 || int(sq) >= BoardSize {
		return false
	}
	f := int(sq) % BoardWidth
	r := int(sq) / BoardWidth
	return f >= 1 && f <= 8 && r >= 2 && r <= 9
}

// To steps sq one square in direction d, without checking the result
// stays on the board. Callers probe the destination's stored piece
// (Sentinel means off-board) to decide whether to continue.
func (sq Square) To(d Direction) Square {
	return sq + Square(d)
}

// Standard returns the 0..63 "a1=0..h8=63" index used by the UCI move
// string and by the transposition table's compact move encoding.
func (sq Square) Standard() uint8 {
	return uint8((sq.Rank()-1)*8 + (sq.File() - 1))
}

// FromStandard returns the internal square for a 0..63 "a1=0..h8=63" index.
func FromStandard(s uint8) Square {
	rank := int(s)/8 + 1
	file := int(s)%8 + 1
	return MakeSquare(file, rank)
}

var fileChar = "abcdefgh"
var rankChar = "12345678"

// AlgebraicToSquare parses a two-character algebraic square like "e4".
// Returns SqNone if s is not a well-formed square.
func AlgebraicToSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return SqNone
	}
	return MakeSquare(int(s[0]-'a')+1, int(s[1]-'1')+1)
}

// String renders sq as algebraic notation, or "-" if it is SqNone or
// otherwise off-board.
func (sq Square) String() string {
	if sq == SqNone || !sq.OnBoard() {
		return "-"
	}
	return string(fileChar[sq.File()-1]) + string(rankChar[sq.Rank()-1])
}

// SameRank reports whether a and b share a rank.
func SameRank(a, b Square) bool {
	return a.Rank() == b.Rank()
}

// SameFile reports whether a and b share a file.
func SameFile(a, b Square) bool {
	return a.File() == b.File()
}

// SameDiagonal reports whether a and b lie on a common diagonal.
func SameDiagonal(a, b Square) bool {
	df := a.File() - b.File()
	dr := a.Rank() - b.Rank()
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	return df == dr && df != 0
}

// SquaresBetween returns the open interval of squares strictly between
// a and b along a shared rank, file or diagonal (empty if they share
// none, or are adjacent). Used to test whether a sliding check can be
// blocked.
func SquaresBetween(a, b Square) []Square {
	d, ok := DirectionBetween(a, b)
	if !ok {
		return nil
	}
	var squares []Square
	for s := a.To(d); s != b; s = s.To(d) {
		squares = append(squares, s)
	}
	return squares
}

// DirectionBetween returns the ray direction stepping from a towards b
// and true, if a and b share a rank, file or diagonal; otherwise the
// zero Direction and false.
func DirectionBetween(a, b Square) (Direction, bool) {
	switch {
	case a == b:
		return 0, false
	case SameRank(a, b):
		if b > a {
			return East, true
		}
		return West, true
	case SameFile(a, b):
		if b > a {
			return North, true
		}
		return South, true
	case SameDiagonal(a, b):
		fileUp := b.File() > a.File()
		rankUp := b.Rank() > a.Rank()
		switch {
		case fileUp && rankUp:
			return Northeast, true
		case fileUp && !rankUp:
			return Southeast, true
		case !fileUp && !rankUp:
			return Southwest, true
		default:
			return Northwest, true
		}
	default:
		return 0, false
	}
}
