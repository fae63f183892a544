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
	"time"

	. "github.com/mkopecky/mailboxknight/internal/types"
)

// Limits holds everything a "go" command can constrain a search by.
type Limits struct {
	Infinite bool
	Ponder   bool

	// Mate is parsed from "go mate <n>" but only used as a "this go
	// command carries a constraint" sentinel in readSearchLimits --
	// nothing in run/negamax bounds the search to mate-in-n plies.
	Mate int

	Depth int
	Nodes uint64

	// SearchMoves restricts the root to these moves, if non-empty.
	SearchMoves []Move

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// TimeLimit computes the wall-clock budget for side to move, per
// "allocated = min(time_left / movestogo_or_20, 0.9*time_left) + increment".
// MoveTime, when set, is authoritative and used as-is.
func (l Limits) TimeLimit(side Color) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	if !l.TimeControl {
		return 0
	}

	timeLeft, inc := l.WhiteTime, l.WhiteInc
	if side == Black {
		timeLeft, inc = l.BlackTime, l.BlackInc
	}

	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 20
	}

	perMove := timeLeft / time.Duration(movesToGo)
	capped := time.Duration(float64(timeLeft) * 0.9)
	if capped < perMove {
		perMove = capped
	}
	return perMove + inc
}
