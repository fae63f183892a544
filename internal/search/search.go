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

// Package search drives negamax with alpha-beta pruning and quiescence
// over an iterative-deepening loop, backed by a transposition table and
// cooperatively cancellable via a stop flag -- the part of the engine a
// UCI "go" command ultimately invokes.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkopecky/mailboxknight/internal/board"
	"github.com/mkopecky/mailboxknight/internal/config"
	myLogging "github.com/mkopecky/mailboxknight/internal/logging"
	"github.com/mkopecky/mailboxknight/internal/transpositiontable"
	. "github.com/mkopecky/mailboxknight/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxDepth bounds both the iterative-deepening loop and the ply used to
// rebase mate scores for the transposition table.
const MaxDepth = 128

// Result is what a finished (or stopped mid-iteration) search reports.
type Result struct {
	BestMove   Move
	Score      Value
	Depth      int
	Nodes      uint64
	SearchTime time.Duration
}

// Search holds the state of one engine instance across successive
// searches: its transposition table, and whatever is in flight for the
// search currently running (if any).
type Search struct {
	log *logging.Logger

	isRunning *semaphore.Weighted
	stopFlag  atomic.Bool

	tt *transpositiontable.Table

	startTime time.Time
	timeLimit time.Duration
	stats     Statistics

	// rootMoves restricts negamax's root move loop to these moves, if
	// non-empty, for the duration of the running search (set from
	// Limits.SearchMoves, a UCI "go searchmoves ..." request).
	rootMoves []Move
}

// NewSearch creates a Search instance with a freshly sized transposition
// table.
func NewSearch() *Search {
	s := &Search{
		log:       myLogging.GetLog(),
		isRunning: semaphore.NewWeighted(1),
	}
	if config.Settings.Search.UseTT {
		s.tt = transpositiontable.New(config.Settings.Search.TTSizeMb)
	}
	return s
}

// NewGame resets state that must not survive across games: the
// transposition table's contents (not its size).
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has finished.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// StopSearch requests the running search (if any) to stop as soon as
// possible, and waits for it to do so.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
}

func (s *Search) stopped() bool {
	return s.stopFlag.Load()
}

// StartSearch runs the iterative-deepening search on b under limits in
// its own goroutine, invoking onIteration once per completed depth and
// onComplete exactly once after the search has finished (naturally,
// via StopSearch, or because limits were exhausted) with the final
// result -- the point at which a UCI driver sends "bestmove". Either
// callback may be nil. b is not mutated concurrently with the caller:
// StartSearch takes a private copy.
func (s *Search) StartSearch(b *board.Board, limits Limits, onIteration func(Result), onComplete func(Result)) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Warning("search already running, ignoring StartSearch")
		return
	}
	s.stopFlag.Store(false)
	position := b.Clone()

	go func() {
		defer s.isRunning.Release(1)
		result := s.run(position, limits, onIteration)
		if onComplete != nil {
			onComplete(result)
		}
	}()
}

// Run searches b synchronously to completion (or until limits/stop cut
// it short) and returns the best result found, the last fully completed
// iteration's if a later one was interrupted. Used by callers that
// want a blocking call -- the tests and the testsuite runner -- rather
// than the asynchronous UCI "go" flow.
func (s *Search) Run(b *board.Board, limits Limits) Result {
	if !s.isRunning.TryAcquire(1) {
		s.log.Warning("search already running, ignoring Run")
		return Result{}
	}
	defer s.isRunning.Release(1)
	s.stopFlag.Store(false)
	return s.run(b.Clone(), limits, nil)
}

func (s *Search) run(b *board.Board, limits Limits, onResult func(Result)) Result {
	s.startTime = time.Now()
	s.stats = Statistics{}
	s.rootMoves = limits.SearchMoves
	if s.tt != nil {
		s.tt.NewSearch()
	}

	s.timeLimit = limits.TimeLimit(b.SideToMove())
	if s.timeLimit > 0 && !limits.Infinite {
		s.startTimer()
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	var last Result
	for depth := 1; depth <= maxDepth; depth++ {
		s.stats.CurrentIterationDepth = depth
		score, best := s.negamax(b, depth, 0, -ValueInfinite, ValueInfinite)
		if s.stopped() && depth > 1 {
			// Partial iteration: keep the prior, fully-completed
			// depth's result rather than this one's half-searched
			// score and move.
			break
		}

		last = Result{
			BestMove:   best,
			Score:      score,
			Depth:      depth,
			Nodes:      s.stats.Nodes,
			SearchTime: time.Since(s.startTime),
		}
		s.stats.CurrentBestMove = best
		s.stats.CurrentBestValue = score
		if onResult != nil {
			onResult(last)
		}

		if limits.Nodes > 0 && s.stats.Nodes >= limits.Nodes {
			break
		}
		if s.stopped() {
			break
		}
	}

	s.stopFlag.Store(true)
	return last
}

// startTimer polls the elapsed wall time against s.timeLimit and sets
// the stop flag once it is exceeded. A relaxed busy wait, grounded on
// the same cooperative-cancellation idiom the rest of this engine uses
// instead of a single blocking timer channel, since the search loop
// only checks the flag between nodes.
func (s *Search) startTimer() {
	go func() {
		for time.Since(s.startTime) < s.timeLimit && !s.stopped() {
			time.Sleep(5 * time.Millisecond)
		}
		s.stopFlag.Store(true)
	}()
}

// GetStatistics returns a copy of the statistics gathered by the most
// recent (or currently running) search.
func (s *Search) GetStatistics() Statistics {
	return s.stats
}

// Hashfull reports the transposition table's fill level in permille, or
// 0 if the table is disabled.
func (s *Search) Hashfull() int {
	if s.tt == nil {
		return 0
	}
	return s.tt.Hashfull()
}
