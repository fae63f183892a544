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
	"github.com/mkopecky/mailboxknight/internal/assert"
	"github.com/mkopecky/mailboxknight/internal/board"
	"github.com/mkopecky/mailboxknight/internal/config"
	"github.com/mkopecky/mailboxknight/internal/evaluator"
	"github.com/mkopecky/mailboxknight/internal/movegen"
	"github.com/mkopecky/mailboxknight/internal/transpositiontable"
	. "github.com/mkopecky/mailboxknight/internal/types"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

// negamax searches b to the given remaining depth, returning the score
// from the perspective of the side to move together with the best move
// found at this node (the zero Move if none was fully searched before a
// stop). alpha and beta bound the window; depth == 0 hands off to
// quiescence. Returns ValueNA if the stop flag fired before this node
// could be evaluated.
func (s *Search) negamax(b *board.Board, depth, ply int, alpha, beta Value) (Value, Move) {
	if assert.DEBUG {
		assert.Assert(depth >= 0, "search: negamax: negative depth %d", depth)
		assert.Assert(alpha < beta, "search: negamax: empty window alpha=%d beta=%d", alpha, beta)
	}
	if s.stopped() {
		return ValueNA, Move{}
	}
	s.stats.Nodes++

	if depth == 0 {
		if config.Settings.Search.UseQuiescence {
			return s.quiescence(b, ply, alpha, beta), Move{}
		}
		return evaluator.EvaluateForSideToMove(b), Move{}
	}

	origAlpha := alpha
	var ttMove Move
	hash := b.ZobristKey()

	if config.Settings.Search.UseTT {
		if entry, ok := s.tt.Probe(hash); ok {
			s.stats.TTHits++
			if int(entry.Depth) >= depth {
				score := valueFromTT(entry.Score, ply)
				switch entry.NodeType {
				case transpositiontable.Exact:
					s.stats.TTCuts++
					best := Move{}
					if entry.Move != 0 {
						from, to, promo := DecodeCompactMove(entry.Move, b.SideToMove())
						best = Move{From: from, To: to, Promotion: promo}
					}
					return score, best
				case transpositiontable.Lower:
					if score >= beta {
						s.stats.TTCuts++
						return beta, Move{}
					}
				case transpositiontable.Upper:
					if score <= alpha {
						s.stats.TTCuts++
						return alpha, Move{}
					}
				}
			}
			if config.Settings.Search.UseTTMove && entry.Move != 0 {
				from, to, promo := DecodeCompactMove(entry.Move, b.SideToMove())
				ttMove = Move{From: from, To: to, Promotion: promo}
			}
		} else {
			s.stats.TTMisses++
		}
	}

	moves := movegen.Generate(b)
	if len(moves) == 0 {
		if b.InCheck(b.SideToMove()) {
			s.stats.Checkmates++
			return -ValueMate + Value(ply), Move{}
		}
		s.stats.Stalemates++
		return ValueDraw, Move{}
	}

	if ply == 0 && len(s.rootMoves) > 0 {
		if restricted := restrictToRootMoves(moves, s.rootMoves); len(restricted) > 0 {
			moves = restricted
		}
	}

	orderMoves(moves, ttMove)

	best := ValueNA
	var bestMove Move
	for _, m := range moves {
		b.MakeMove(m)
		childScore, _ := s.negamax(b, depth-1, ply+1, -beta, -alpha)
		score := -childScore
		b.UnmakeMove(m)

		if s.stopped() {
			return ValueNA, Move{}
		}

		if score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if score >= beta {
			s.stats.BetaCuts++
			s.store(hash, beta, depth, ply, transpositiontable.Lower, bestMove)
			return beta, bestMove
		}
	}

	if assert.DEBUG {
		assert.Assert(!bestMove.IsZero(), "search: negamax: no best move chosen among %d generated moves", len(moves))
	}

	nodeType := transpositiontable.Upper
	if alpha > origAlpha {
		nodeType = transpositiontable.Exact
	}
	s.store(hash, best, depth, ply, nodeType, bestMove)
	return best, bestMove
}

// quiescence extends the search past the nominal horizon over capture
// moves only (including capturing promotions), so a side is never
// evaluated mid-exchange.
func (s *Search) quiescence(b *board.Board, ply int, alpha, beta Value) Value {
	if assert.DEBUG {
		assert.Assert(alpha < beta, "search: quiescence: empty window alpha=%d beta=%d", alpha, beta)
	}
	if s.stopped() {
		return ValueNA
	}
	s.stats.Nodes++
	s.stats.QNodes++

	standPat := evaluator.EvaluateForSideToMove(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := movegen.Generate(b)
	captures := moves[:0:0]
	for _, m := range moves {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	orderMoves(captures, Move{})

	for _, m := range captures {
		b.MakeMove(m)
		score := -s.quiescence(b, ply+1, -beta, -alpha)
		b.UnmakeMove(m)

		if s.stopped() {
			return ValueNA
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// store writes a search result to the transposition table, converting
// mate scores found at ply into mate-distance-from-this-node form so a
// cached mate score stays meaningful when later probed from a different
// ply.
func (s *Search) store(hash zobrist.Key, score Value, depth, ply int, nodeType transpositiontable.NodeType, best Move) {
	if !config.Settings.Search.UseTT {
		return
	}
	s.tt.Store(hash, transpositiontable.Payload{
		Score:    int16(valueToTT(score, ply)),
		Depth:    int8(depth),
		NodeType: nodeType,
		Move:     EncodeCompactMove(best),
	})
}

// valueToTT/valueFromTT rebase a mate score between "distance from the
// root" (used during search, so alpha/beta comparisons stay consistent
// across ply) and "distance from this node" (used in the TT, so a
// cached entry means the same thing when probed from a different ply).
func valueToTT(v Value, ply int) Value {
	switch {
	case v >= ValueMate-MaxDepth:
		return v + Value(ply)
	case v <= -ValueMate+MaxDepth:
		return v - Value(ply)
	default:
		return v
	}
}

func valueFromTT(v Value, ply int) Value {
	switch {
	case v >= ValueMate-MaxDepth:
		return v - Value(ply)
	case v <= -ValueMate+MaxDepth:
		return v + Value(ply)
	default:
		return v
	}
}

// restrictToRootMoves returns the subset of moves that also appear in
// allowed, preserving moves' order. If allowed names no move that is
// actually legal (a GUI requesting searchmoves for a move that turned
// out illegal), the caller falls back to the unrestricted list rather
// than searching nothing.
func restrictToRootMoves(moves, allowed []Move) []Move {
	restricted := moves[:0:0]
	for _, m := range moves {
		for _, a := range allowed {
			if m.Equal(a) {
				restricted = append(restricted, m)
				break
			}
		}
	}
	return restricted
}

// orderMoves sorts moves in place: the transposition-table move first
// (if present among them), then captures by MVV/LVA (most valuable
// victim, least valuable attacker), then quiet moves in generation
// order.
func orderMoves(moves []Move, ttMove Move) {
	score := func(m Move) int {
		if !ttMove.IsZero() && m.Equal(ttMove) {
			return 1 << 30
		}
		if !config.Settings.Search.MoveOrderMvvLva || !m.IsCapture() {
			return 0
		}
		victim := m.CapturedPiece.TypeOf()
		attacker := m.MovedPiece.TypeOf()
		return int(evaluator.PieceValue[victim])*16 - int(evaluator.PieceValue[attacker])
	}
	for i := 1; i < len(moves); i++ {
		m := moves[i]
		ms := score(m)
		j := i - 1
		for j >= 0 && score(moves[j]) < ms {
			moves[j+1] = moves[j]
			j--
		}
		moves[j+1] = m
	}
}
