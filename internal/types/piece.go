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

// Package types holds the small, dependency-free value types shared by
// every other package of the engine: pieces, squares, colors, castling
// rights and moves. Keeping them dependency-free avoids import cycles
// between board, movegen, search and the transposition table.
package types

import "strings"

// Piece is a dense tag over the empty square, the twelve playing
// pieces and an off-board sentinel.
//  PieceNone = 0
//  1..6      = White King, Pawn, Knight, Bishop, Rook, Queen
//  7..12     = Black King, Pawn, Knight, Bishop, Rook, Queen
//  Sentinel  = 255
//
// ColorOf and TypeOf are undefined for PieceNone and Sentinel; callers
// must gate with IsValidPiece first.
type Piece uint8

const (
	PieceNone Piece = 0

	WhiteKing Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	BlackKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen

	// Sentinel marks an off-board mailbox cell. It is never a member of
	// any piece list and never legally occupies a playable square.
	Sentinel Piece = 255
)

// MakePiece builds the piece for a given color and type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*6 + int(pt))
}

// IsValidPiece reports whether p is one of the twelve real pieces.
func (p Piece) IsValidPiece() bool {
	return p >= WhiteKing && p <= BlackQueen
}

// IsEmpty reports whether p marks an empty, playable square.
func (p Piece) IsEmpty() bool {
	return p == PieceNone
}

// IsSentinel reports whether p marks an off-board mailbox cell.
func (p Piece) IsSentinel() bool {
	return p == Sentinel
}

// ColorOf returns the color of p. Undefined for PieceNone and Sentinel.
func (p Piece) ColorOf() Color {
	return Color((p - 1) / 6)
}

// TypeOf returns the piece type of p. Undefined for PieceNone and Sentinel.
func (p Piece) TypeOf() PieceType {
	return PieceType((p-1)%6) + King
}

// IsFriend reports whether p is a valid piece belonging to c.
func (p Piece) IsFriend(c Color) bool {
	return p.IsValidPiece() && p.ColorOf() == c
}

// IsOpponent reports whether p is a valid piece belonging to the other color.
func (p Piece) IsOpponent(c Color) bool {
	return p.IsValidPiece() && p.ColorOf() != c
}

const pieceToChar = "KPNBRQkpnbrq"

// PieceFromChar returns the piece for a single FEN piece letter, or
// PieceNone if s is not exactly one valid letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceToChar, s[0])
	if idx == -1 {
		return PieceNone
	}
	return Piece(idx + 1)
}

// Char returns the FEN letter for p ("" for PieceNone or Sentinel).
func (p Piece) Char() string {
	if !p.IsValidPiece() {
		return ""
	}
	return string(pieceToChar[p-1])
}

// String returns a short debug representation, e.g. "wP" for a white pawn.
func (p Piece) String() string {
	switch {
	case p == PieceNone:
		return "-"
	case p == Sentinel:
		return "XX"
	default:
		return p.ColorOf().String() + p.TypeOf().String()
	}
}

// Value returns the standard material value of p's type.
func (p Piece) Value() Value {
	return pieceTypeValue[p.TypeOf()]
}

var pieceTypeValue = [PtLength]Value{
	PtNone: 0,
	King:   20000,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
}
