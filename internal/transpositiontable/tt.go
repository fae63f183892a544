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

// Package transpositiontable implements a lock-free, fixed-size cache
// of search results keyed by Zobrist hash. Each slot is two 64-bit
// atomic words: the payload, and the hash XORed with the payload.
// A reader who loads both words and finds hash == (keyXorPayload XOR
// payload) has a torn-write-free read; there is no lock, and a slot
// under concurrent write is simply reported as a miss rather than
// blocking or racing.
//
// Resize and Clear are not safe to call concurrently with search; they
// replace the backing array wholesale.
package transpositiontable

import (
	"math"
	"sync/atomic"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/mkopecky/mailboxknight/internal/logging"
	"github.com/mkopecky/mailboxknight/internal/util"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the largest table size this engine will honor.
	MaxSizeInMB = 65_536
	bytesPerMB  = 1 << 20
	entryBytes  = 16 // two uint64 words
)

// slot is one entry: a payload word and its hash-XOR companion.
// Writes to the two words are independent atomics -- never combined
// into one wider atomic -- so a concurrent reader can observe either a
// fully-written slot (XOR check passes) or a torn one (XOR check
// fails and the probe is treated as a miss).
type slot struct {
	payload       atomic.Uint64
	keyXorPayload atomic.Uint64
}

// Table is the transposition table.
type Table struct {
	log   *logging.Logger
	slots []slot
	mask  uint64
	age   uint8
}

// New allocates a Table sized to hold as many power-of-two entries as
// fit within sizeInMB megabytes.
func New(sizeInMB int) *Table {
	t := &Table{log: myLogging.GetLog()}
	t.Resize(sizeInMB)
	return t
}

// Resize replaces the table with a freshly zeroed one sized for
// sizeInMB megabytes. Not safe to call while a search is using the
// table concurrently.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB > MaxSizeInMB {
		t.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMB, MaxSizeInMB))
		sizeInMB = MaxSizeInMB
	}
	if sizeInMB <= 0 {
		t.slots = nil
		t.mask = 0
		return
	}
	totalBytes := uint64(sizeInMB) * bytesPerMB
	n := uint64(1) << uint64(math.Floor(math.Log2(float64(totalBytes/entryBytes))))
	t.slots = make([]slot, n)
	t.mask = n - 1
	t.log.Info(out.Sprintf("TT resized to %d MB, %d entries (%d bytes/entry)", sizeInMB, n, entryBytes))
	t.log.Debug(util.MemStat())
}

// Clear zeroes every slot without changing the table's size.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i].payload.Store(0)
		t.slots[i].keyXorPayload.Store(0)
	}
}

func (t *Table) index(hash zobrist.Key) uint64 {
	return uint64(hash) & t.mask
}

// Probe returns the stored payload for hash, or ok == false on a miss
// (including an index into an unallocated/zero-size table, or a torn
// read caught by the XOR check).
func (t *Table) Probe(hash zobrist.Key) (p Payload, ok bool) {
	if len(t.slots) == 0 {
		return Payload{}, false
	}
	s := &t.slots[t.index(hash)]
	payload := s.payload.Load()
	keyXorPayload := s.keyXorPayload.Load()
	if keyXorPayload^payload != uint64(hash) {
		return Payload{}, false
	}
	return unpack(payload), true
}

// Store writes p under hash per the replacement policy: always take an
// empty slot; for the same position prefer greater depth, or equal
// depth when the new entry's generation is not below the stored one's
// (the stored entry's own or an older one); for a colliding different
// position prefer the newer search generation, then greater depth,
// then an exact bound over an inexact one.
func (t *Table) Store(hash zobrist.Key, p Payload) {
	if len(t.slots) == 0 {
		return
	}
	p.Age = t.age
	newPayload := pack(p)
	s := &t.slots[t.index(hash)]

	existingPayload := s.payload.Load()
	existingKeyXorPayload := s.keyXorPayload.Load()

	if existingPayload == 0 && existingKeyXorPayload == 0 {
		t.write(s, hash, newPayload)
		return
	}

	if existingKeyXorPayload^existingPayload == uint64(hash) {
		existing := unpack(existingPayload)
		if p.Depth > existing.Depth || (p.Depth == existing.Depth && p.Age >= existing.Age) {
			t.write(s, hash, newPayload)
		}
		return
	}

	existing := unpack(existingPayload)
	switch {
	case p.Age != existing.Age:
		t.write(s, hash, newPayload)
	case p.Depth > existing.Depth:
		t.write(s, hash, newPayload)
	case p.NodeType == Exact && existing.NodeType != Exact:
		t.write(s, hash, newPayload)
	}
}

// write performs the two independent atomic stores. Payload first,
// then the XOR word: a reader racing in between sees a keyXorPayload
// that does not match the new payload against the old hash and
// correctly calls it a miss rather than returning mixed data.
func (t *Table) write(s *slot, hash zobrist.Key, payload uint64) {
	s.payload.Store(payload)
	s.keyXorPayload.Store(payload ^ uint64(hash))
}

// NewSearch bumps the table's search generation. Entries written under
// a prior generation become preferred replacement targets.
func (t *Table) NewSearch() {
	t.age++
}

// Hashfull reports table occupancy in permille, sampled over a fixed
// prefix of slots as UCI expects an approximation, not an exact scan.
func (t *Table) Hashfull() int {
	if len(t.slots) == 0 {
		return 0
	}
	const sample = 1000
	n := sample
	if n > len(t.slots) {
		n = len(t.slots)
	}
	used := 0
	for i := 0; i < n; i++ {
		if t.slots[i].payload.Load() != 0 || t.slots[i].keyXorPayload.Load() != 0 {
			used++
		}
	}
	return used * 1000 / n
}

// Len returns the number of addressable slots.
func (t *Table) Len() uint64 {
	return uint64(len(t.slots))
}
