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

// Package markup provides the strategies used to highlight deleted and inserted text in a change
// description.
//
// A [Markup] receives a span of text together with its [Category] and returns the rendered span.
// This package provides HTML tags ([HTML], [EscapedHTML]), git style word diff markers
// ([WordDiff]), ANSI terminal colors ([Terminal]) and an adapter for plain functions ([Funcs]).
package markup

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

// Category describes what happened to a span of text.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Category
type Category int

const (
	Delete Category = iota // Text only present in the old value
	Insert                 // Text only present in the new value
)

// ErrInvalidCategory is wrapped by the value a [Markup] panics with when it's called with a
// category other than [Delete] or [Insert].
var ErrInvalidCategory = errors.New("markup: invalid category")

// Markup renders a span of deleted or inserted text.
//
// Implementations must panic with an error wrapping [ErrInvalidCategory] if cat is neither
// [Delete] nor [Insert]. This is never the case when called from this module.
type Markup interface {
	Colorize(text string, cat Category) string
}

// Escaper is implemented by a [Markup] that needs all text in its output escaped, including the
// text that's not highlighted.
type Escaper interface {
	Escape(text string) string
}

// Tags wraps text in an opening and closing marker.
type Tags struct {
	DeleteOpen, DeleteClose string // Markers around deleted text
	InsertOpen, InsertClose string // Markers around inserted text

	// If set, text is HTML escaped before it's wrapped and Tags implements [Escaper] by HTML
	// escaping text.
	HTMLEscape bool
}

// HTML wraps deleted text in <del></del> and inserted text in <ins></ins>. The text itself is not
// escaped, use [EscapedHTML] if the text is not trusted.
func HTML() Tags {
	return Tags{
		DeleteOpen:  "<del>",
		DeleteClose: "</del>",
		InsertOpen:  "<ins>",
		InsertClose: "</ins>",
	}
}

// EscapedHTML is like [HTML], but escapes all text, highlighted or not.
func EscapedHTML() Tags {
	t := HTML()
	t.HTMLEscape = true
	return t
}

// WordDiff uses the markers of git diff --word-diff=plain: [-deleted-] and {+inserted+}.
func WordDiff() Tags {
	return Tags{
		DeleteOpen:  "[-",
		DeleteClose: "-]",
		InsertOpen:  "{+",
		InsertClose: "+}",
	}
}

// Colorize implements [Markup].
func (t Tags) Colorize(text string, cat Category) string {
	text = t.Escape(text)
	switch cat {
	case Delete:
		return t.DeleteOpen + text + t.DeleteClose
	case Insert:
		return t.InsertOpen + text + t.InsertClose
	default:
		panic(invalid(cat))
	}
}

// Escape implements [Escaper].
func (t Tags) Escape(text string) string {
	if !t.HTMLEscape {
		return text
	}
	return html.EscapeString(text)
}

// Funcs adapts a pair of functions to a [Markup]. A nil function leaves the text unchanged.
type Funcs struct {
	Delete, Insert func(string) string
}

// Colorize implements [Markup].
func (f Funcs) Colorize(text string, cat Category) string {
	var fn func(string) string
	switch cat {
	case Delete:
		fn = f.Delete
	case Insert:
		fn = f.Insert
	default:
		panic(invalid(cat))
	}
	if fn == nil {
		return text
	}
	return fn(text)
}

func invalid(cat Category) error {
	return fmt.Errorf("%w %v", ErrInvalidCategory, cat)
}
