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

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	// "github.com/pkg/profile"

	"github.com/mkopecky/mailboxknight/internal/board"
	"github.com/mkopecky/mailboxknight/internal/config"
	"github.com/mkopecky/mailboxknight/internal/logging"
	"github.com/mkopecky/mailboxknight/internal/movegen"
	"github.com/mkopecky/mailboxknight/internal/testsuite"
	"github.com/mkopecky/mailboxknight/internal/uci"
	"github.com/mkopecky/mailboxknight/internal/zobrist"
)

func main() {
	// defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	// go tool pprof -http=localhost:8080 mailboxuci cpu.pprof

	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "./logs", "path where to write log files to")
	perft := flag.Int("perft", 0, "run perft on -fen to the given depth and exit")
	fen := flag.String("fen", board.StartFen, "fen to use for -perft or -testsuite")
	testSuite := flag.String("testsuite", "", "path to an EPD-like test file")
	testMoveTime := flag.Int("testtime", 2000, "search time per test position in milliseconds")
	testDepth := flag.Int("testdepth", 0, "search depth per test position (overrides -testtime)")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	// Loggers created in package init()s captured the pre-flag default
	// level; fetch the standard logger again now that -loglvl has been
	// applied so every package's log output respects it.
	logging.GetLog()

	if *perft != 0 {
		keys := zobrist.NewKeys()
		b, err := board.FromFEN(*fen, keys)
		if err != nil {
			fmt.Println("invalid -fen:", err)
			os.Exit(1)
		}
		for depth := 1; depth <= *perft; depth++ {
			start := time.Now()
			nodes := movegen.Perft(b, depth)
			fmt.Printf("perft %d: %d nodes (%s)\n", depth, nodes, time.Since(start))
		}
		return
	}

	if *testSuite != "" {
		moveTime := time.Duration(*testMoveTime) * time.Millisecond
		suite, err := testsuite.Load(*testSuite, moveTime, *testDepth)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		result := testsuite.Run(suite, 4)
		fmt.Println(result.String())
		return
	}

	uci.NewHandler().Loop()
}
