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
	"fmt"
	"strconv"
	"strings"

	. "github.com/mkopecky/mailboxknight/internal/types"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

// FromFEN parses a standard 6-field FEN string into a fresh Board hashed
// against keys. On any parse failure it returns a non-nil error and no
// board; the caller's existing board (if any) is left untouched since
// parsing always builds into a fresh instance first.
func FromFEN(fen string, keys *zobrist.Keys) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("board: FEN must have 6 fields, got %d", len(fields))
	}

	b := empty(keys)

	if err := b.parsePieces(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
		b.zobristKey ^= keys.SideToMove
	default:
		return nil, fmt.Errorf("board: invalid side to move %q", fields[1])
	}

	if err := b.parseCastling(fields[2]); err != nil {
		return nil, err
	}

	if err := b.parseEnPassant(fields[3]); err != nil {
		return nil, err
	}

	halfMove, err := strconv.ParseUint(fields[4], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("board: invalid halfmove clock %q: %w", fields[4], err)
	}
	b.halfMoveClock = int(halfMove)

	fullMove, err := strconv.ParseUint(fields[5], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("board: invalid fullmove number %q: %w", fields[5], err)
	}
	b.fullMoveNumber = int(fullMove)

	return b, nil
}

// SetFEN replaces the receiver's state with the position parsed from
// fen. Returns false and leaves the board entirely untouched if fen
// fails to parse.
func (b *Board) SetFEN(fen string) bool {
	parsed, err := FromFEN(fen, b.keys)
	if err != nil {
		log.Warningf("board: SetFEN rejected %q: %v", fen, err)
		return false
	}
	*b = *parsed
	return true
}

func (b *Board) parsePieces(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: piece field must have 8 ranks, got %d", len(ranks))
	}
	for i, rankField := range ranks {
		rank := 8 - i
		file := 1
		for _, r := range rankField {
			if r >= '1' && r <= '8' {
				file += int(r - '0')
				continue
			}
			p := PieceFromChar(string(r))
			if p == PieceNone {
				return fmt.Errorf("board: invalid piece character %q", r)
			}
			if file > 8 {
				return fmt.Errorf("board: rank %d overflows past file h", rank)
			}
			b.addPiece(MakeSquare(file, rank), p)
			file++
		}
		if file != 9 {
			return fmt.Errorf("board: rank %d does not cover exactly 8 files", rank)
		}
	}
	if b.lists.Count(White, King) != 1 || b.lists.Count(Black, King) != 1 {
		return fmt.Errorf("board: FEN must have exactly one king per side")
	}
	return nil
}

func (b *Board) parseCastling(field string) error {
	if field == "-" {
		return nil
	}
	for _, r := range field {
		flag := CastlingRightsFromChar(byte(r))
		if flag == CastlingNone {
			return fmt.Errorf("board: invalid castling character %q", r)
		}
		if !b.castlingRights.Has(flag) {
			b.castlingRights |= flag
			b.zobristKey ^= b.keys.Castling[zobrist.CastlingKeyIndex(flag)]
		}
	}
	return nil
}

func (b *Board) parseEnPassant(field string) error {
	if field == "-" {
		b.enPassantTarget = SqNone
		return nil
	}
	sq := AlgebraicToSquare(field)
	if sq == SqNone {
		return fmt.Errorf("board: invalid en-passant square %q", field)
	}
	b.enPassantTarget = sq
	b.zobristKey ^= b.keys.EpFile[sq.File()-1]
	return nil
}

// FEN renders the current position as a 6-field FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= 8; file++ {
			p := b.squares[MakeSquare(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 1 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(b.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(b.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(b.enPassantTarget.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))
	return sb.String()
}
