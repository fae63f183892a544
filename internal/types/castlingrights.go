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

// CastlingRights is a bitmask of the four independent castling flags.
type CastlingRights uint8

const (
	WhiteOO CastlingRights = 1 << iota
	WhiteOOO
	BlackOO
	BlackOOO

	CastlingNone CastlingRights = 0
	CastlingAll  CastlingRights = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// Has reports whether flag is set.
func (cr CastlingRights) Has(flag CastlingRights) bool {
	return cr&flag != 0
}

// Without returns cr with flag cleared.
func (cr CastlingRights) Without(flag CastlingRights) CastlingRights {
	return cr &^ flag
}

// String renders the rights in FEN order, "-" if none remain.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(WhiteOO) {
		s += "K"
	}
	if cr.Has(WhiteOOO) {
		s += "Q"
	}
	if cr.Has(BlackOO) {
		s += "k"
	}
	if cr.Has(BlackOOO) {
		s += "q"
	}
	return s
}

// CastlingRightsFromChar parses a single FEN castling letter into its flag.
func CastlingRightsFromChar(c byte) CastlingRights {
	switch c {
	case 'K':
		return WhiteOO
	case 'Q':
		return WhiteOOO
	case 'k':
		return BlackOO
	case 'q':
		return BlackOOO
	default:
		return CastlingNone
	}
}

// KingSideFor returns the kingside castling flag for c.
func KingSideFor(c Color) CastlingRights {
	if c == White {
		return WhiteOO
	}
	return BlackOO
}

// QueenSideFor returns the queenside castling flag for c.
func QueenSideFor(c Color) CastlingRights {
	if c == White {
		return WhiteOOO
	}
	return BlackOOO
}
