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

// Package zobrist holds the random key bundle used to fingerprint chess
// positions for the transposition table. A bundle is generated once per
// engine instance and passed by reference to every Board that needs it;
// it is never a package-global singleton, so an embedder can run
// multiple independent engines in one process.
package zobrist

import (
	"math/rand"
	"time"

	"github.com/mkopecky/mailboxknight/internal/types"
)

// Key is a 64-bit position fingerprint.
type Key uint64

// Keys is the fixed bundle of independent random keys XORed together to
// form a position's Zobrist hash. Keys is immutable after construction
// and therefore safe to share by reference across goroutines.
type Keys struct {
	// Piece indexed [square][piece]; every one of the 120 cells gets a
	// key for each of the 12 valid pieces (index 0, PieceNone, stays 0).
	Piece [types.BoardSize][13]Key
	// SideToMove is XORed in whenever it is Black's move.
	SideToMove Key
	// Castling holds one key per independent castling flag, indexed by
	// bit position (0=WhiteOO, 1=WhiteOOO, 2=BlackOO, 3=BlackOOO).
	Castling [4]Key
	// EpFile holds one key per file (0=a..7=h) for an active en-passant target.
	EpFile [8]Key
}

// NewKeys builds a fresh, randomly seeded key bundle. Each call produces
// an independent bundle -- keys are only stable within one bundle's
// lifetime, never across process restarts or between bundles.
func NewKeys() *Keys {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	k := &Keys{}
	for sq := 0; sq < types.BoardSize; sq++ {
		for p := 1; p <= 12; p++ {
			k.Piece[sq][p] = Key(rng.Uint64())
		}
	}
	k.SideToMove = Key(rng.Uint64())
	for i := range k.Castling {
		k.Castling[i] = Key(rng.Uint64())
	}
	for i := range k.EpFile {
		k.EpFile[i] = Key(rng.Uint64())
	}
	return k
}

// CastlingKeyIndex maps a single castling flag bit to its Castling slot.
func CastlingKeyIndex(flag types.CastlingRights) int {
	switch flag {
	case types.WhiteOO:
		return 0
	case types.WhiteOOO:
		return 1
	case types.BlackOO:
		return 2
	case types.BlackOOO:
		return 3
	default:
		return -1
	}
}
