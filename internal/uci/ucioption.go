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
	"strconv"
	"strings"

	"github.com/mkopecky/mailboxknight/internal/config"
)

func init() {
	uciOptions = map[string]*uciOption{
		"Clear Hash": {NameID: "Clear Hash", HandlerFunc: clearHash, OptionType: Button},
		"Use_Hash":   {NameID: "Use_Hash", HandlerFunc: useHash, OptionType: Check, DefaultValue: strconv.FormatBool(config.Settings.Search.UseTT), CurrentValue: strconv.FormatBool(config.Settings.Search.UseTT)},
		"Hash":       {NameID: "Hash", HandlerFunc: hashSize, OptionType: Spin, DefaultValue: strconv.Itoa(config.Settings.Search.TTSizeMb), CurrentValue: strconv.Itoa(config.Settings.Search.TTSizeMb), MinValue: "1", MaxValue: "4096"},
		"Quiescence": {NameID: "Quiescence", HandlerFunc: useQuiescence, OptionType: Check, DefaultValue: strconv.FormatBool(config.Settings.Search.UseQuiescence), CurrentValue: strconv.FormatBool(config.Settings.Search.UseQuiescence)},
		"MvvLva":     {NameID: "MvvLva", HandlerFunc: useMvvLva, OptionType: Check, DefaultValue: strconv.FormatBool(config.Settings.Search.MoveOrderMvvLva), CurrentValue: strconv.FormatBool(config.Settings.Search.MoveOrderMvvLva)},
	}
	sortOrderUciOptions = []string{"Clear Hash", "Use_Hash", "Hash", "Quiescence", "MvvLva"}
}

// GetOptions returns the "option name ..." lines sent during the "uci"
// handshake, in registration order.
func (o optionMap) GetOptions() []string {
	options := make([]string, 0, len(sortOrderUciOptions))
	for _, name := range sortOrderUciOptions {
		options = append(options, uciOptions[name].String())
	}
	return options
}

// String renders a uciOption the way the UCI protocol wants it during
// the "uci" handshake.
func (o *uciOption) String() string {
	var sb strings.Builder
	sb.WriteString("option name ")
	sb.WriteString(o.NameID)
	sb.WriteString(" type ")
	switch o.OptionType {
	case Check:
		sb.WriteString("check default ")
		sb.WriteString(o.DefaultValue)
	case Spin:
		sb.WriteString("spin default ")
		sb.WriteString(o.DefaultValue)
		sb.WriteString(" min ")
		sb.WriteString(o.MinValue)
		sb.WriteString(" max ")
		sb.WriteString(o.MaxValue)
	case Button:
		sb.WriteString("button")
	}
	return sb.String()
}

type uciOptionType int

const (
	Check uciOptionType = iota
	Spin
	Button
)

type optionHandler func(*Handler, *uciOption)

// uciOption describes one UCI-settable option and the handler invoked
// when "setoption" changes it.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	CurrentValue string
}

type optionMap map[string]*uciOption

var uciOptions optionMap
var sortOrderUciOptions []string

func clearHash(h *Handler, o *uciOption) {
	h.search.NewGame()
	log.Debug("cleared transposition table")
}

func useHash(h *Handler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	config.Settings.Search.UseTT = v
	log.Debugf("set Use_Hash to %v", v)
}

func hashSize(h *Handler, o *uciOption) {
	log.Warning("Hash size change requires a restart to take effect")
}

func useQuiescence(h *Handler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	config.Settings.Search.UseQuiescence = v
	log.Debugf("set Quiescence to %v", v)
}

func useMvvLva(h *Handler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	config.Settings.Search.MoveOrderMvvLva = v
	log.Debugf("set MvvLva to %v", v)
}
