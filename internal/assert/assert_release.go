// +build !debug

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

// Package assert provides a single assertion hook used throughout
// board/movegen/search for invariants that are expensive to check on
// every call (e.g. piece list / mailbox consistency). It compiles away
// to a no-op unless built with the "debug" build tag.
package assert

// DEBUG reports whether Assert actually evaluates its condition in this build.
const DEBUG = false

// Assert is a no-op in release builds. Callers must still guard the
// call site with "if assert.DEBUG { ... }" when the condition itself
// (or its message arguments) is expensive to compute, since arguments
// are evaluated before Assert is called regardless of DEBUG.
func Assert(test bool, msg string, a ...interface{}) {}
