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

package types

import "fmt"

// Value is a centipawn evaluation or search score. It fits the 16-bit
// signed field the transposition table packs scores into.
type Value int16

const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueMate     Value = 32000
	ValueInfinite Value = 32001
	// ValueNA marks an absent/unset value, distinct from any reachable score.
	ValueNA Value = -32002
)

// IsValid reports whether v lies in the representable score range.
func (v Value) IsValid() bool {
	return v >= -ValueInfinite && v <= ValueInfinite
}

// MateIn converts a raw negamax mate score found at the given ply back
// into "mate in N (full moves)" for UCI reporting. Returns 0 if v is not
// a mate score.
func (v Value) MateIn(ply int) int {
	if v >= ValueMate-Value(ply) {
		return (int(ValueMate-v) + 1) / 2
	}
	if v <= -ValueMate+Value(ply) {
		return -(int(ValueMate+v) + 1) / 2
	}
	return 0
}

// String renders a score the way UCI "info score" wants it: either
// "cp <n>" or "mate <n>".
func (v Value) String() string {
	if v >= ValueMate-1000 {
		return fmt.Sprintf("mate %d", (int(ValueMate-v)+1)/2)
	}
	if v <= -ValueMate+1000 {
		return fmt.Sprintf("mate %d", -(int(ValueMate+v)+1)/2)
	}
	return fmt.Sprintf("cp %d", v)
}
