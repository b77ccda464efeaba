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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"znkr.io/changes"
	"znkr.io/changes/markup"
)

// Config holds the command line options of showchange.
type Config struct {
	*cli.Command

	Files      bool `cli:"name=f desc='read old and new from YAML files'"`
	List       bool `cli:"name=list desc='compare comma separated lists'"`
	Window     int  `cli:"name=window desc='number of unchanged words around a change'"`
	ListWindow int  `cli:"name=listWindow desc='number of unchanged list elements around a change'"`
	NoRefine   bool `cli:"name=norefine desc='highlight changed words as a whole'"`

	HTML     bool `cli:"name=html desc='highlight with escaped HTML tags'"`
	Color    bool `cli:"name=color desc='highlight with ANSI colors'"`
	WordDiff bool `cli:"name=worddiff desc='highlight with [-deleted-]{+inserted+} markers'"`
}

func (cfg *Config) options() []changes.Option {
	opts := []changes.Option{
		changes.Window(cfg.Window),
		changes.ListWindow(cfg.ListWindow),
		changes.WithMarkup(cfg.markup()),
	}
	if cfg.NoRefine {
		opts = append(opts, changes.NoRefinement())
	}
	return opts
}

func (cfg *Config) markup() markup.Markup {
	switch {
	case cfg.HTML:
		return markup.EscapedHTML()
	case cfg.Color:
		return markup.Terminal()
	default:
		return markup.WordDiff()
	}
}

func show(cfg *Config, w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected 2 args (old new), got %d", cli.ErrUsage, len(args))
	}
	if count(cfg.HTML, cfg.Color, cfg.WordDiff) > 1 {
		return fmt.Errorf("%w: must specify at most one of -html -color -worddiff", cli.ErrUsage)
	}
	if cfg.Files && cfg.List {
		return fmt.Errorf("%w: -f and -list are mutually exclusive", cli.ErrUsage)
	}

	var old, new changes.Value
	switch {
	case cfg.Files:
		var err error
		if old, err = loadFile(args[0]); err != nil {
			return err
		}
		if new, err = loadFile(args[1]); err != nil {
			return err
		}
	case cfg.List:
		old, new = splitList(args[0]), splitList(args[1])
	default:
		old, new = changes.Text(args[0]), changes.Text(args[1])
	}

	if _, err := fmt.Fprintln(w, changes.Show(old, new, cfg.options()...)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func splitList(s string) changes.Value {
	if s == "" {
		return changes.List[string]()
	}
	items := strings.Split(s, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return changes.List(items...)
}

// loadFile reads a YAML document. A sequence becomes a list, a scalar becomes text and an empty
// document or null becomes empty text.
func loadFile(path string) (changes.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return changes.Value{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return changes.Value{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	switch v := v.(type) {
	case nil:
		return changes.Text(""), nil
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			s, err := scalar(item)
			if err != nil {
				return changes.Value{}, fmt.Errorf("decoding %s: element %d: %w", path, i, err)
			}
			items[i] = s
		}
		return changes.List(items...), nil
	default:
		s, err := scalar(v)
		if err != nil {
			return changes.Value{}, fmt.Errorf("decoding %s: %w", path, err)
		}
		return changes.Text(s), nil
	}
}

func scalar(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []any, map[string]any, map[any]any:
		return "", fmt.Errorf("unsupported %T, expected a scalar", v)
	default:
		return fmt.Sprint(v), nil
	}
}

func count(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
