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

// Package render turns a merge into a human readable description of the changes.
package render

import (
	"strings"

	"znkr.io/changes/internal/lcs"
	"znkr.io/changes/internal/refine"
	"znkr.io/changes/markup"
)

// Ellipsis replaces unchanged elements that are too far away from a change.
const Ellipsis = "[...]"

// Params configures [Render].
type Params[T any] struct {
	Separator string         // Separator between rendered elements
	Window    int            // Number of common elements to keep around a change
	Refine    bool           // Whether to narrow substitutions down to the differing characters
	Markup    markup.Markup  // Highlights deleted and inserted text
	Format    func(T) string // Formats a single element
}

// Render renders merge.
//
// Only the Window common elements before and after every change are kept. If more common elements
// precede a change, the older ones are replaced by a single [Ellipsis]. Common elements after the
// last change that are outside of the window are dropped. With a Window of 0, only the changes
// are rendered.
//
// Deleted and inserted elements of a substitution are joined with the separator and highlighted
// using the markup. If Refine is set and both sides are non-empty, only the characters that
// differ are highlighted. If the markup implements [markup.Escaper], all text that's not
// highlighted is escaped with it.
func Render[T any](merge []lcs.Item[T], p Params[T]) string {
	var (
		out  []string
		buf  []T // common elements waiting for the next change
		post int // number of common elements to emit right away after a change
	)
	for _, it := range merge {
		switch {
		case !it.IsCommon():
			if p.Window > 0 && len(buf) > 0 {
				if len(buf) > p.Window {
					out = append(out, Escape(p.Markup, Ellipsis))
				}
				for _, tok := range buf[max(0, len(buf)-p.Window):] {
					out = append(out, Escape(p.Markup, p.Format(tok)))
				}
			}
			buf = buf[:0]
			out = append(out, chunk(it.Chunk, p))
			post = p.Window
		case post > 0:
			out = append(out, Escape(p.Markup, p.Format(it.Token)))
			post--
		default:
			buf = append(buf, it.Token)
		}
	}
	return strings.Join(out, p.Separator)
}

func chunk[T any](c *lcs.Chunk[T], p Params[T]) string {
	del, ins := join(c.Deleted, p), join(c.Inserted, p)

	r := refine.Refined{Deleted: del, Inserted: ins}
	if p.Refine && del != "" && ins != "" {
		r = refine.Refine(del, ins)
	}

	var sb strings.Builder
	sb.WriteString(Escape(p.Markup, r.Prefix))
	if r.Deleted != "" {
		sb.WriteString(p.Markup.Colorize(r.Deleted, markup.Delete))
	}
	if r.Inserted != "" {
		sb.WriteString(p.Markup.Colorize(r.Inserted, markup.Insert))
	}
	sb.WriteString(Escape(p.Markup, r.Suffix))
	return sb.String()
}

// Escape escapes text that's not highlighted if m implements [markup.Escaper].
func Escape(m markup.Markup, text string) string {
	if esc, ok := m.(markup.Escaper); ok {
		return esc.Escape(text)
	}
	return text
}

func join[T any](toks []T, p Params[T]) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = p.Format(tok)
	}
	return strings.Join(parts, p.Separator)
}
