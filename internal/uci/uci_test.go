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

package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopecky/mailboxknight/internal/board"
)

func TestUciCommand(t *testing.T) {
	h := NewHandler()
	result := h.Command("uci")
	assert.Contains(t, result, "id name "+EngineName)
	assert.Contains(t, result, "Clear Hash")
	assert.Contains(t, result, "uciok")
}

func TestIsReadyCommand(t *testing.T) {
	h := NewHandler()
	assert.Contains(t, h.Command("isready"), "readyok")
}

func TestLoopStopsOnQuit(t *testing.T) {
	h := NewHandler()
	h.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.Loop()
	assert.Contains(t, buf.String(), "uciok")
}

func TestPositionCommandStartpos(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	assert.Equal(t, board.StartFen, h.position.FEN())
}

func TestPositionCommandFenAndMoves(t *testing.T) {
	h := NewHandler()
	h.Command("position fen " + board.StartFen + " moves e2e4 e7e5")

	want, err := board.FromFEN(board.StartFen, h.keys)
	assert.NoError(t, err)
	e2e4, ok := findMove(want, "e2e4")
	assert.True(t, ok)
	want.MakeMove(e2e4)
	e7e5, ok := findMove(want, "e7e5")
	assert.True(t, ok)
	want.MakeMove(e7e5)

	assert.Equal(t, want.FEN(), h.position.FEN())
}

func TestPositionCommandRejectsIllegalMove(t *testing.T) {
	h := NewHandler()
	result := h.Command("position startpos moves e2e5")
	assert.Contains(t, result, "illegal move")
	assert.Equal(t, board.StartFen, h.position.FEN(), "an illegal trailing move must not change the position")
}

func TestGoDepthSearchRunsToCompletion(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	result := h.Command("go depth 2")
	h.search.WaitWhileSearching()
	assert.False(t, h.search.IsSearching())
	_ = result
}

func TestStopCommandHaltsSearch(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	h.Command("go infinite")
	h.Command("stop")
	assert.False(t, h.search.IsSearching())
}

func TestPerftCommandReportsNodeCount(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos")
	result := h.Command("perft 2")
	assert.Contains(t, result, "perft depth 2 nodes 400")
}

func TestSetOptionUnknownNameIsReported(t *testing.T) {
	h := NewHandler()
	result := h.Command("setoption name NoSuchOption value 1")
	assert.Contains(t, result, "no such option")
}
