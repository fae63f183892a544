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

package config

// searchConfiguration holds the knobs for one search instance. Only the
// negamax/alpha-beta/quiescence/transposition-table family is
// represented here; pruning and reduction techniques such as null-move,
// late-move reductions or internal iterative deepening are out of scope
// and have no settings.
type searchConfiguration struct {
	UseQuiescence bool
	UseQSStandPat bool

	UseTT     bool
	TTSizeMb  int
	UseTTMove bool

	MoveOrderMvvLva bool

	UseIterativeDeepening bool

	MaxDepth int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandPat = true

	Settings.Search.UseTT = true
	Settings.Search.TTSizeMb = 64
	Settings.Search.UseTTMove = true

	Settings.Search.MoveOrderMvvLva = true

	Settings.Search.UseIterativeDeepening = true

	Settings.Search.MaxDepth = 64
}
