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

// Package config holds globally available configuration, set from
// defaults, a TOML config file, or command line flags, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mkopecky/mailboxknight/internal/util"
)

var (
	// ConfFile is the path to the TOML config file, relative to the
	// working directory unless absolute.
	ConfFile = "./config.toml"

	// LogLevel is the general logging verbosity (see LogLevels).
	LogLevel = 4

	// TestLogLevel is the verbosity used by test-only loggers.
	TestLogLevel = 4

	// Settings holds everything read from ConfFile, layered over defaults.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup loads ConfFile (if present) over the package defaults. Safe to
// call more than once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config: no config file loaded, using defaults (", err, ")")
	}
	setupLogLvl()
	initialized = true
}

// String renders the current settings, mainly for "debug config" style
// diagnostics from the UCI loop.
func (c *conf) String() string {
	var sb strings.Builder
	sb.WriteString("Search:\n")
	writeFields(&sb, reflect.ValueOf(&c.Search).Elem())
	sb.WriteString("Eval:\n")
	writeFields(&sb, reflect.ValueOf(&c.Eval).Elem())
	return sb.String()
}

func writeFields(sb *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fmt.Fprintf(sb, "%-2d: %-20s %-8s = %v\n", i, t.Field(i).Name, v.Field(i).Type(), v.Field(i).Interface())
	}
}
