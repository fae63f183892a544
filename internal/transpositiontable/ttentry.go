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

package transpositiontable

import (
	. "github.com/mkopecky/mailboxknight/internal/types"
)

// NodeType records whether a stored score is exact or a bound reached
// by an alpha-beta cutoff.
type NodeType uint8

const (
	Exact NodeType = iota
	Lower
	Upper
)

// Payload is the unpacked content of one TT slot: everything stored
// about a position except the hash itself, which is verified via the
// XOR scheme rather than kept alongside the payload.
type Payload struct {
	Score    int16
	Depth    int8
	NodeType NodeType
	Move     CompactMove
	Age      uint8
}

// Bit layout of the 64-bit packed payload word. score and depth both
// sign-matter: score is two's-complement, depth is always >= 0 but
// kept signed-width per the packed layout.
const (
	scoreBits     = 16
	scoreShift    = 0
	scoreMask     = uint64(1)<<scoreBits - 1
	depthBits     = 8
	depthShift    = 16
	depthMask     = uint64(1)<<depthBits - 1
	nodeTypeBits  = 2
	nodeTypeShift = 24
	nodeTypeMask  = uint64(1)<<nodeTypeBits - 1
	moveBits      = 16
	moveShift     = 26
	moveMask      = uint64(1)<<moveBits - 1
	ageBits       = 8
	ageShift      = 42
	ageMask       = uint64(1)<<ageBits - 1
)

// pack encodes p into the 64-bit payload word stored in a slot.
func pack(p Payload) uint64 {
	return ((uint64(uint16(p.Score)) & scoreMask) << scoreShift) |
		((uint64(uint8(p.Depth)) & depthMask) << depthShift) |
		((uint64(p.NodeType) & nodeTypeMask) << nodeTypeShift) |
		((uint64(p.Move) & moveMask) << moveShift) |
		((uint64(p.Age) & ageMask) << ageShift)
}

// unpack decodes a 64-bit payload word back into a Payload.
func unpack(v uint64) Payload {
	return Payload{
		Score:    int16(uint16((v >> scoreShift) & scoreMask)),
		Depth:    int8(uint8((v >> depthShift) & depthMask)),
		NodeType: NodeType((v >> nodeTypeShift) & nodeTypeMask),
		Move:     CompactMove((v >> moveShift) & moveMask),
		Age:      uint8((v >> ageShift) & ageMask),
	}
}
