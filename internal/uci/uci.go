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

// Package uci implements the line-oriented UCI protocol collaborator:
// it reads commands from an input stream, drives a board and a search,
// and writes responses to an output stream. NewHandler's InIo/OutIo
// fields can be swapped before Loop runs, and Command executes a single
// line without blocking on stdin, which is what the test suite uses.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/mkopecky/mailboxknight/internal/board"
	myLogging "github.com/mkopecky/mailboxknight/internal/logging"
	"github.com/mkopecky/mailboxknight/internal/movegen"
	"github.com/mkopecky/mailboxknight/internal/search"
	. "github.com/mkopecky/mailboxknight/internal/types"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

var log *logging.Logger

// EngineName and EngineAuthor are reported in response to the "uci" command.
const (
	EngineName   = "mailboxuci"
	EngineAuthor = "mailboxknight contributors"
)

// Handler owns one engine instance's UCI-facing state: the position the
// GUI has most recently set, the search that acts on it, and the I/O
// streams the protocol runs over.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	position *board.Board
	keys     *zobrist.Keys
	search   *search.Search

	uciLog *logging.Logger
}

// NewHandler creates a Handler wired to stdin/stdout and a fresh
// starting position.
func NewHandler() *Handler {
	if log == nil {
		log = myLogging.GetLog()
	}
	keys := zobrist.NewKeys()
	return &Handler{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		position: board.NewBoard(keys),
		keys:     keys,
		search:   search.NewSearch(),
		uciLog:   myLogging.GetUciLog(),
	}
}

// Loop reads commands from InIo until "quit" or end of input.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command executes a single UCI command line and returns everything it
// wrote to OutIo, without touching InIo. Used by tests and by callers
// that drive the handler programmatically instead of over a pipe.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

// handle dispatches one command line, returning true if it was "quit".
func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)
	tokens := whitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		h.search.StopSearch()
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.search.NewGame()
		h.position = board.NewBoard(h.keys)
	case "setoption":
		h.setOptionCommand(tokens)
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.search.StopSearch()
	case "perft":
		h.perftCommand(tokens)
	case "debug", "register", "ponderhit":
		// Acknowledged but not implemented: this engine never offers a
		// ponder move, needs no registration and has no debug mode.
	default:
		log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send(fmt.Sprintf("id name %s", EngineName))
	h.send(fmt.Sprintf("id author %s", EngineAuthor))
	for _, opt := range uciOptions.GetOptions() {
		h.send(opt)
	}
	h.send("uciok")
}

func (h *Handler) setOptionCommand(tokens []string) {
	if len(tokens) < 3 || tokens[1] != "name" {
		h.sendInfoString("setoption malformed: " + strings.Join(tokens, " "))
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tokens[i])
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	opt, found := uciOptions[name.String()]
	if !found {
		h.sendInfoString(fmt.Sprintf("no such option %q", name.String()))
		return
	}
	opt.CurrentValue = value
	opt.HandlerFunc(h, opt)
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("position malformed: " + strings.Join(tokens, " "))
		return
	}

	i := 1
	fen := board.StartFen
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var sb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(tokens[i])
			i++
		}
		fen = sb.String()
	default:
		h.sendInfoString("position malformed, expected 'startpos' or 'fen': " + strings.Join(tokens, " "))
		return
	}

	b, err := board.FromFEN(fen, h.keys)
	if err != nil {
		h.sendInfoString(fmt.Sprintf("position rejected %q: %v", fen, err))
		return
	}
	h.position = b

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m, ok := findMove(h.position, tokens[i])
			if !ok {
				h.sendInfoString(fmt.Sprintf("position: illegal move %q", tokens[i]))
				return
			}
			h.position.MakeMove(m)
		}
	}
}

// findMove looks tok (a "e2e4"/"e7e8q"-style UCI move string) up among
// b's legal moves, since Move itself carries undo data that can only be
// captured by generating it against the live position.
func findMove(b *board.Board, tok string) (Move, bool) {
	for _, m := range movegen.Generate(b) {
		if m.UciString() == tok {
			return m, true
		}
	}
	return Move{}, false
}

func (h *Handler) goCommand(tokens []string) {
	if tokens[0] == "go" && len(tokens) > 1 && tokens[1] == "perft" {
		h.perftCommand(tokens[1:])
		return
	}

	limits, ok := h.readSearchLimits(tokens)
	if !ok {
		return
	}

	h.search.StartSearch(h.position, limits,
		func(r search.Result) { h.sendIterationInfo(r) },
		func(r search.Result) { h.sendBestMove(r) })
}

func (h *Handler) sendIterationInfo(r search.Result) {
	nps := uint64(0)
	if r.SearchTime > 0 {
		nps = uint64(float64(r.Nodes) / r.SearchTime.Seconds())
	}
	pv := ""
	if !r.BestMove.IsZero() {
		pv = r.BestMove.UciString()
	}
	h.send(fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d hashfull %d pv %s",
		r.Depth, r.Score.String(), r.Nodes, nps, r.SearchTime.Milliseconds(), h.search.Hashfull(), pv))
}

func (h *Handler) sendBestMove(r search.Result) {
	if r.BestMove.IsZero() {
		h.send("bestmove 0000")
		return
	}
	h.send("bestmove " + r.BestMove.UciString())
}

func (h *Handler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		} else {
			h.sendInfoString(fmt.Sprintf("perft: invalid depth %q", tokens[1]))
			return
		}
	}
	start := time.Now()
	nodes := movegen.Perft(h.position, depth)
	elapsed := time.Since(start)
	h.send(fmt.Sprintf("info string perft depth %d nodes %d time %d", depth, nodes, elapsed.Milliseconds()))
}

func (h *Handler) readSearchLimits(tokens []string) (search.Limits, bool) {
	var limits search.Limits
	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		var err error
		switch tok {
		case "infinite":
			limits.Infinite = true
			i++
		case "ponder":
			limits.Ponder = true
			i++
		case "searchmoves":
			i++
			for i < len(tokens) {
				m, ok := findMove(h.position, tokens[i])
				if !ok {
					break
				}
				limits.SearchMoves = append(limits.SearchMoves, m)
				i++
			}
		case "depth":
			i++
			limits.Depth, err = requireInt(tokens, i, "depth")
			i++
		case "nodes":
			i++
			var n int
			n, err = requireInt(tokens, i, "nodes")
			limits.Nodes = uint64(n)
			i++
		case "mate":
			i++
			limits.Mate, err = requireInt(tokens, i, "mate")
			i++
		case "movetime":
			i++
			var ms int
			ms, err = requireInt(tokens, i, "movetime")
			limits.MoveTime = time.Duration(ms) * time.Millisecond
			limits.TimeControl = true
			i++
		case "wtime":
			i++
			var ms int
			ms, err = requireInt(tokens, i, "wtime")
			limits.WhiteTime = time.Duration(ms) * time.Millisecond
			limits.TimeControl = true
			i++
		case "btime":
			i++
			var ms int
			ms, err = requireInt(tokens, i, "btime")
			limits.BlackTime = time.Duration(ms) * time.Millisecond
			limits.TimeControl = true
			i++
		case "winc":
			i++
			var ms int
			ms, err = requireInt(tokens, i, "winc")
			limits.WhiteInc = time.Duration(ms) * time.Millisecond
			i++
		case "binc":
			i++
			var ms int
			ms, err = requireInt(tokens, i, "binc")
			limits.BlackInc = time.Duration(ms) * time.Millisecond
			i++
		case "movestogo":
			i++
			limits.MovesToGo, err = requireInt(tokens, i, "movestogo")
			i++
		default:
			h.sendInfoString(fmt.Sprintf("go malformed: unknown subcommand %q", tok))
			return search.Limits{}, false
		}
		if err != nil {
			h.sendInfoString(err.Error())
			return search.Limits{}, false
		}
	}

	if !(limits.Infinite || limits.Ponder || limits.Depth > 0 || limits.Nodes > 0 || limits.Mate > 0 || limits.TimeControl) {
		limits.Depth = 6 // "go" with no constraints at all: search a fixed, reasonable depth.
	}
	return limits, true
}

func requireInt(tokens []string, i int, field string) (int, error) {
	if i >= len(tokens) {
		return 0, fmt.Errorf("go malformed: %s missing a value", field)
	}
	n, err := strconv.Atoi(tokens[i])
	if err != nil {
		return 0, fmt.Errorf("go malformed: %s value %q is not a number", field, tokens[i])
	}
	return n, nil
}

func (h *Handler) sendInfoString(msg string) {
	h.send("info string " + msg)
	log.Warning(msg)
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
