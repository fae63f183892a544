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

import "strings"

// CastlingMove carries the rook's side of a castling move.
type CastlingMove struct {
	RookFrom  Square
	RookTo    Square
	RookPiece Piece
}

// Move is a self-contained move record: enough to replay it (make) and
// enough undo data, captured at creation time from the board it was
// generated on, to reverse it exactly (unmake) regardless of what
// happens to the board in between.
type Move struct {
	From          Square
	To            Square
	MovedPiece    Piece
	CapturedPiece Piece // PieceNone if the move is not a capture
	Promotion     Piece // PieceNone unless this is a promotion

	Castling *CastlingMove // nil unless this is a castling move

	EnPassant       bool   // true if this move captures en passant
	EnPassantSquare Square // SqNone, unless this is a pawn double push: the square passed over

	// Undo data, snapshotted from the board at move-creation time.
	PreviousEnPassant      Square
	PreviousCastlingRights CastlingRights
}

// IsCapture reports whether the move removes an enemy piece from the board.
func (m Move) IsCapture() bool {
	return m.CapturedPiece.IsValidPiece() || m.EnPassant
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion.IsValidPiece()
}

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool {
	return m.Castling != nil
}

// IsZero reports whether m is the zero Move (used as a "no move" marker).
func (m Move) IsZero() bool {
	return m.From == 0 && m.To == 0 && m.MovedPiece == PieceNone
}

// UciString renders the move in the UCI "e2e4"/"e7e8q" wire format.
func (m Move) UciString() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += strings.ToLower(m.Promotion.TypeOf().String())
	}
	return s
}

// Equal compares the squares and promotion piece of two moves, which is
// sufficient to disambiguate among the legal moves of one position.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// CompactMove is the 16-bit transposition-table encoding of a move:
// standard (0..63) from/to squares plus a 4-bit promotion mask. It
// carries no captured-piece or undo information -- that is reconstructed
// from the live board when the move is replayed out of the TT.
type CompactMove uint16

const (
	compactPromoNone   = 0b0000
	compactPromoQueen  = 0b0001
	compactPromoRook   = 0b0010
	compactPromoBishop = 0b0100
	compactPromoKnight = 0b1000
)

// EncodeCompactMove packs m into its 16-bit transposition-table form.
func EncodeCompactMove(m Move) CompactMove {
	if m.IsZero() {
		return 0
	}
	from := uint16(m.From.Standard())
	to := uint16(m.To.Standard())
	promo := uint16(compactPromoNone)
	if m.IsPromotion() {
		switch m.Promotion.TypeOf() {
		case Queen:
			promo = compactPromoQueen
		case Rook:
			promo = compactPromoRook
		case Bishop:
			promo = compactPromoBishop
		case Knight:
			promo = compactPromoKnight
		}
	}
	return CompactMove(to | from<<6 | promo<<12)
}

// DecodeCompactMove unpacks the from/to squares and promotion piece
// type encoded in c. side is used to build the correctly colored
// promotion piece. Captured piece and undo fields are left zero; the
// caller must look the move up among the position's legal moves to
// recover them before replaying it.
func DecodeCompactMove(c CompactMove, side Color) (from, to Square, promotion Piece) {
	from = FromStandard(uint8((c >> 6) & 0x3F))
	to = FromStandard(uint8(c & 0x3F))
	switch (c >> 12) & 0xF {
	case compactPromoQueen:
		promotion = MakePiece(side, Queen)
	case compactPromoRook:
		promotion = MakePiece(side, Rook)
	case compactPromoBishop:
		promotion = MakePiece(side, Bishop)
	case compactPromoKnight:
		promotion = MakePiece(side, Knight)
	default:
		promotion = PieceNone
	}
	return from, to, promotion
}
