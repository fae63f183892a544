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

package testsuite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkopecky/mailboxknight/internal/board"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

const epdFixture = `# mate in one for white: rook to the back rank
6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - -;bm d1d8
# an obviously losing move, not the only legal one: avoided
6k1/5ppp/8/8/1b6/8/5PPP/3RQ1K1 w - -;am e1e5
this line has no semicolon at all and should be skipped
6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - -;xx d1d8
`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.epd")
	assert.NoError(t, os.WriteFile(path, []byte(epdFixture), 0o644))
	return path
}

func TestParseLine(t *testing.T) {
	test, err := parseLine("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - -;bm d1d8")
	assert.NoError(t, err)
	assert.Equal(t, "6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - -", test.Fen)
	assert.Equal(t, bestMove, test.Op)
	assert.Equal(t, []string{"d1d8"}, test.Targets)

	test, err = parseLine("6k1/5ppp/8/8/1b6/8/5PPP/3RQ1K1 w - -;am e1e5")
	assert.NoError(t, err)
	assert.Equal(t, avoidMove, test.Op)

	_, err = parseLine("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - -;xx d1d8")
	assert.Error(t, err, "unsupported opcode")

	_, err = parseLine("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - -")
	assert.Error(t, err, "missing opcode clause entirely")
}

func TestLoadSkipsCommentsAndMalformedLines(t *testing.T) {
	path := writeFixture(t)
	suite, err := Load(path, 2*time.Second, 0)
	assert.NoError(t, err)
	// The "xx" opcode line is logged and skipped by Load, not turned
	// into a *Test; the comment lines never reach parseLine at all.
	assert.Len(t, suite.Tests, 2)
	assert.Equal(t, bestMove, suite.Tests[0].Op)
	assert.Equal(t, avoidMove, suite.Tests[1].Op)
	assert.Contains(t, suite.Tests[0].ID, "fixture.epd:2")
}

func TestAlgebraicTargetsAreLegal(t *testing.T) {
	b, err := board.FromFEN(board.StartFen, zobrist.NewKeys())
	assert.NoError(t, err)

	assert.True(t, algebraicTargetsAreLegal(b, []string{"e2e4"}))
	assert.False(t, algebraicTargetsAreLegal(b, []string{"e2e5"}))
}

func TestRunOneSolvesMateInOne(t *testing.T) {
	test := &Test{
		Fen:     "6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - -",
		Op:      bestMove,
		Targets: []string{"d1d8"},
	}
	runOne(test, 0, 3)
	assert.False(t, test.Skipped)
	assert.Equal(t, "d1d8", test.Actual)
	assert.True(t, test.Passed)
}

func TestRunOneSkipsAnIllegalTarget(t *testing.T) {
	test := &Test{
		Fen:     board.StartFen,
		Op:      bestMove,
		Targets: []string{"a1a2"}, // not a legal move in the starting position
	}
	runOne(test, 0, 3)
	assert.True(t, test.Skipped)
}

func TestRunReportsSuiteResult(t *testing.T) {
	suite := &Suite{
		Depth: 3,
		Tests: []*Test{
			{Fen: "6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - -", Op: bestMove, Targets: []string{"d1d8"}},
			{Fen: board.StartFen, Op: bestMove, Targets: []string{"a1a2"}},
		},
	}
	result := Run(suite, 2)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Passed)
	assert.Contains(t, result.String(), "1/2 passed")
}
