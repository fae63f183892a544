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

package search

import (
	. "github.com/mkopecky/mailboxknight/internal/types"
)

// Statistics are extra data about the last search, not essential to a
// functioning search but useful for UCI "info" lines and tuning. Unlike
// a full-featured engine's statistics, this only tracks what the
// negamax/alpha-beta/quiescence/TT family of this engine actually
// produces; there are no null-move, LMR or aspiration-window counters
// since this engine has none of those techniques.
type Statistics struct {
	Nodes          uint64
	QNodes         uint64
	Checkmates     uint64
	Stalemates     uint64

	TTHits   uint64
	TTMisses uint64
	TTCuts   uint64

	BetaCuts uint64

	CurrentIterationDepth int
	CurrentBestMove       Move
	CurrentBestValue      Value
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
