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

// Package testsuite runs a file of EPD-like test positions against the
// search and reports how many it solves. Each line is a FEN followed by
// a "bm <move> [<move>...];" (best move, any of which counts as a pass)
// or "am <move> [<move>...];" (avoid move, any of which counts as a
// fail) opcode -- the two opcodes most engine test suites actually use.
// https://www.chessprogramming.org/Extended_Position_Description
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkopecky/mailboxknight/internal/board"
	myLogging "github.com/mkopecky/mailboxknight/internal/logging"
	"github.com/mkopecky/mailboxknight/internal/movegen"
	"github.com/mkopecky/mailboxknight/internal/search"
	. "github.com/mkopecky/mailboxknight/internal/types"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

type opcode uint8

const (
	bestMove opcode = iota
	avoidMove
)

// Test is one EPD line: the position, what it asserts, and (once run)
// the outcome.
type Test struct {
	ID      string
	Fen     string
	Op      opcode
	Targets []string // UCI strings of the target/avoid moves

	Actual  string
	Passed  bool
	Skipped bool
}

// Suite is a parsed, not-yet-run test file.
type Suite struct {
	Tests    []*Test
	MoveTime time.Duration
	Depth    int
}

// Load reads filePath and parses each non-blank, non-comment line into
// a Test. moveTime and depth, whichever is set, bound each test's search
// (depth wins if both are given; the move time is then not applied).
func Load(filePath string, moveTime time.Duration, depth int) (*Suite, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("testsuite: %w", err)
	}
	defer f.Close()

	suite := &Suite{MoveTime: moveTime, Depth: depth}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		test, err := parseLine(line)
		if err != nil {
			log.Warningf("testsuite: %s:%d: %v", filePath, lineNo, err)
			continue
		}
		test.ID = fmt.Sprintf("%s:%d", filePath, lineNo)
		suite.Tests = append(suite.Tests, test)
	}
	return suite, scanner.Err()
}

func parseLine(line string) (*Test, error) {
	parts := strings.SplitN(line, ";", 2)
	fen := strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		return nil, fmt.Errorf("missing opcode after FEN %q", fen)
	}
	fields := strings.Fields(parts[1])
	if len(fields) < 2 {
		return nil, fmt.Errorf("missing opcode operands after FEN %q", fen)
	}

	var op opcode
	switch fields[0] {
	case "bm":
		op = bestMove
	case "am":
		op = avoidMove
	default:
		return nil, fmt.Errorf("unsupported opcode %q", fields[0])
	}

	return &Test{Fen: fen, Op: op, Targets: fields[1:]}, nil
}

// SuiteResult summarizes how many tests passed, failed or were skipped.
type SuiteResult struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// Run solves every test in the suite, fanning out across positions
// with a bounded errgroup so an expensive search in one position never
// blocks the others, then reports a summary.
func Run(suite *Suite, concurrency int) SuiteResult {
	if concurrency <= 0 {
		concurrency = 1
	}
	var g errgroup.Group
	g.SetLimit(concurrency)

	for _, t := range suite.Tests {
		t := t
		g.Go(func() error {
			runOne(t, suite.MoveTime, suite.Depth)
			return nil
		})
	}
	_ = g.Wait()

	var result SuiteResult
	for _, t := range suite.Tests {
		result.Total++
		switch {
		case t.Skipped:
			result.Skipped++
		case t.Passed:
			result.Passed++
		default:
			result.Failed++
		}
	}
	return result
}

func runOne(t *Test, moveTime time.Duration, depth int) {
	keys := zobrist.NewKeys()
	fen := t.Fen
	if len(strings.Fields(fen)) == 4 {
		// EPD positions carry no move counters.
		fen += " 0 1"
	}
	b, err := board.FromFEN(fen, keys)
	if err != nil {
		t.Skipped = true
		log.Warningf("testsuite %s: %v", t.ID, err)
		return
	}
	if !algebraicTargetsAreLegal(b, t.Targets) {
		t.Skipped = true
		log.Warningf("testsuite %s: target move not legal in position", t.ID)
		return
	}

	s := search.NewSearch()
	limits := search.Limits{Depth: depth}
	if depth == 0 {
		limits = search.Limits{MoveTime: moveTime, TimeControl: true}
	}
	r := s.Run(b, limits)
	t.Actual = r.BestMove.UciString()

	switch t.Op {
	case bestMove:
		t.Passed = contains(t.Targets, t.Actual)
	case avoidMove:
		t.Passed = !contains(t.Targets, t.Actual)
	}
}

func algebraicTargetsAreLegal(b *board.Board, targets []string) bool {
	legal := make(map[string]bool)
	for _, m := range movegen.Generate(b) {
		legal[m.UciString()] = true
	}
	for _, t := range targets {
		if legal[t] {
			return true
		}
	}
	return false
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

// String renders a summary line, for CLI reporting.
func (r SuiteResult) String() string {
	return out.Sprintf("%d/%d passed (%d failed, %d skipped)", r.Passed, r.Total, r.Failed, r.Skipped)
}
