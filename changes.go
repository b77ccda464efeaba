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

package changes

import (
	"fmt"
	"strings"

	"znkr.io/changes/internal/config"
	"znkr.io/changes/internal/lcs"
	"znkr.io/changes/internal/render"
)

// Value is a version of a field: either text or a list of discrete values.
//
// The zero value is empty text.
type Value struct {
	list  bool
	text  string
	items []any
}

// Text returns a text value. Text is compared word by word, words are separated by single spaces.
func Text(s string) Value {
	return Value{text: s}
}

// List returns a list value. Lists are compared element by element using ==.
//
// Elements must be comparable at runtime; if T is an interface type, comparing dynamic values that
// are not comparable panics.
func List[T comparable](items ...T) Value {
	v := Value{list: true, items: make([]any, len(items))}
	for i, item := range items {
		v.items[i] = item
	}
	return v
}

// IsList reports whether v was created by [List].
func (v Value) IsList() bool { return v.list }

// IsEmpty reports whether v is empty text or a list without elements.
func (v Value) IsEmpty() bool {
	if v.list {
		return len(v.items) == 0
	}
	return v.text == ""
}

// String returns the text of v. The elements of a list are formatted using [fmt.Sprint] and
// separated by ", ".
func (v Value) String() string {
	if !v.list {
		return v.text
	}
	parts := make([]string, len(v.items))
	for i, item := range v.items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, ", ")
}

// Show describes the change from old to new.
//
//   - If old is empty, the result is "Set to '<new>'".
//   - If new is empty, the result is "'<old>' unset".
//   - If both are lists, the deleted and inserted elements are highlighted. By default, unchanged
//     elements are omitted, see [ListWindow].
//   - Otherwise, both values are compared as text, word by word. Only the words around a change
//     are kept, see [Window], and changed words are narrowed down to the characters that differ,
//     see [NoRefinement].
//
// Deleted and inserted text is highlighted with HTML tags unless configured otherwise with
// [WithMarkup]. The text is not escaped, use [markup.EscapedHTML] for untrusted input.
//
// The following options are supported: [Window], [ListWindow], [NoRefinement], [WithMarkup]
func Show(old, new Value, opts ...Option) string {
	cfg := config.FromOptions(opts, config.Window|config.ListWindow|config.NoRefinement|config.Markup)
	switch {
	case old.IsEmpty():
		return "Set to '" + render.Escape(cfg.Markup, new.String()) + "'"
	case new.IsEmpty():
		return "'" + render.Escape(cfg.Markup, old.String()) + "' unset"
	case old.list && new.list:
		return render.Render(lcs.Diff(old.items, new.items), render.Params[any]{
			Separator: ", ",
			Window:    cfg.ListWindow,
			Markup:    cfg.Markup,
			Format:    func(v any) string { return fmt.Sprint(v) },
		})
	default:
		return render.Render(lcs.Diff(words(old), words(new)), render.Params[string]{
			Separator: " ",
			Window:    cfg.Window,
			Refine:    cfg.Refine,
			Markup:    cfg.Markup,
			Format:    func(s string) string { return s },
		})
	}
}

func words(v Value) []string {
	return strings.Split(v.String(), " ")
}
