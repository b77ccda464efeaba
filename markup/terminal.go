// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package markup

import "github.com/fatih/color"

// A TerminalOption makes it possible to configure custom colors in [Terminal].
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below
// presents deleted text in bold red:
//
//	Deletes(1, 31)
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
type TerminalOption func(*terminal)

// Deletes colors deleted text. The default is red.
func Deletes(params ...int) TerminalOption {
	c := sgr(params)
	return func(t *terminal) {
		t.del = c
	}
}

// Inserts colors inserted text. The default is green.
func Inserts(params ...int) TerminalOption {
	c := sgr(params)
	return func(t *terminal) {
		t.ins = c
	}
}

type terminal struct {
	del, ins *color.Color
}

// Terminal colors deleted and inserted text using ANSI escape sequences.
//
// Colors are always emitted, independent of whether the output is a terminal or NO_COLOR is set.
// Deciding if colors should be used is left to the caller.
func Terminal(opts ...TerminalOption) Markup {
	t := &terminal{
		del: sgr([]int{int(color.FgRed)}),
		ins: sgr([]int{int(color.FgGreen)}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *terminal) Colorize(text string, cat Category) string {
	switch cat {
	case Delete:
		return t.del.Sprint(text)
	case Insert:
		return t.ins.Sprint(text)
	default:
		panic(invalid(cat))
	}
}

func sgr(params []int) *color.Color {
	attrs := make([]color.Attribute, len(params))
	for i, p := range params {
		attrs[i] = color.Attribute(p)
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c
}
