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

// Package logging wraps "github.com/op/go-logging" so every other
// package can get a preconfigured Logger in one line instead of
// repeating backend/formatter setup.
package logging

import (
	"log"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/mkopecky/mailboxknight/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-16.16s} %{level:-7.7s}:  %{message}`)

	uciFormat = logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns the standard logger, backed by stdout and leveled from
// config.LogLevel.
func GetLog() *logging.Logger {
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat))
	backend.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(backend)
	return standardLog
}

// GetSearchLog returns a logger dedicated to search diagnostics, leveled
// the same as the standard logger.
func GetSearchLog() *logging.Logger {
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat))
	backend.SetLevel(logging.Level(config.LogLevel), "")
	searchLog.SetBackend(backend)
	return searchLog
}

// GetUciLog returns a logger for raw UCI protocol traffic, always at
// DEBUG level regardless of config.LogLevel, so a `setoption` that
// lowers verbosity never hides the wire trace needed to diagnose a GUI
// handshake. When config.Settings.Log.LogPath can be created, its
// backend is a "uci.log" file there instead of stdout -- a GUI pipes
// stdin/stdout for the protocol itself, so stdout is not available for
// a trace once the engine is actually driven by a GUI.
func GetUciLog() *logging.Logger {
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), uciFormat))

	if path := config.Settings.Log.LogPath; path != "" {
		if err := os.MkdirAll(path, 0o755); err == nil {
			if f, err := os.OpenFile(filepath.Join(path, "uci.log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644); err == nil {
				backend = logging.AddModuleLevel(logging.NewBackendFormatter(
					logging.NewLogBackend(f, "", log.Lmsgprefix), uciFormat))
			}
		}
	}

	backend.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(backend)
	return uciLog
}

// GetTestLog returns a logger for use from _test.go files, leveled from
// config.TestLogLevel.
func GetTestLog() *logging.Logger {
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat))
	backend.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(backend)
	return testLog
}
