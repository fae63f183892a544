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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	p := Payload{Score: -12345, Depth: 42, NodeType: Lower, Move: 0x1234, Age: 7}
	got := unpack(pack(p))
	assert.Equal(t, p, got)
}

func TestStoreThenProbeReturnsExactPayload(t *testing.T) {
	tt := New(1)
	hash := zobrist.Key(0xDEADBEEFCAFEBABE)
	p := Payload{Score: 500, Depth: 8, NodeType: Exact, Move: 0xABCD}
	tt.Store(hash, p)

	got, ok := tt.Probe(hash)
	assert.True(t, ok)
	assert.Equal(t, p.Score, got.Score)
	assert.Equal(t, p.Depth, got.Depth)
	assert.Equal(t, p.NodeType, got.NodeType)
	assert.Equal(t, p.Move, got.Move)
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := New(1)
	_, ok := tt.Probe(zobrist.Key(12345))
	assert.False(t, ok)
}

func TestProbeMissOnZeroSizeTable(t *testing.T) {
	tt := New(0)
	tt.Store(zobrist.Key(1), Payload{Score: 1, Depth: 1})
	_, ok := tt.Probe(zobrist.Key(1))
	assert.False(t, ok)
}

// A collision at the same slot from a different hash is replaced only
// when the new entry is from a newer search generation, a greater
// depth, or an exact bound over the existing bound -- per the stated
// replacement policy, not unconditionally.
func TestStoreReplacementPolicyPrefersGreaterDepth(t *testing.T) {
	tt := New(1)
	// Craft two different hashes that land in the same slot by
	// reusing the table's own index function.
	var hashA, hashB zobrist.Key
	hashA = zobrist.Key(1)
	for cand := zobrist.Key(2); ; cand++ {
		if tt.index(cand) == tt.index(hashA) {
			hashB = cand
			break
		}
	}

	tt.Store(hashA, Payload{Score: 10, Depth: 4, NodeType: Exact})
	tt.Store(hashB, Payload{Score: 20, Depth: 2, NodeType: Exact}) // shallower: must not replace
	got, ok := tt.Probe(hashA)
	assert.True(t, ok, "shallower colliding write must not evict the deeper entry")
	assert.Equal(t, int16(10), got.Score)

	tt.Store(hashB, Payload{Score: 30, Depth: 6, NodeType: Exact}) // deeper: must replace
	_, ok = tt.Probe(hashA)
	assert.False(t, ok, "deeper colliding write must evict")
	got, ok = tt.Probe(hashB)
	assert.True(t, ok)
	assert.Equal(t, int16(30), got.Score)
}

func TestClearRemovesAllEntries(t *testing.T) {
	tt := New(1)
	tt.Store(zobrist.Key(99), Payload{Score: 1, Depth: 1})
	tt.Clear()
	_, ok := tt.Probe(zobrist.Key(99))
	assert.False(t, ok)
}

func TestResizeHonorsMaxSize(t *testing.T) {
	tt := New(1)
	tt.Resize(MaxSizeInMB + 1)
	assert.LessOrEqual(t, tt.Len()*entryBytes, uint64(MaxSizeInMB)*bytesPerMB)
}
