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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/changes"
	"znkr.io/changes/internal/config"
	"znkr.io/changes/markup"
)

var all = config.Window | config.ListWindow | config.NoRefinement | config.Markup

func TestFromOptions(t *testing.T) {
	wordDiff := markup.WordDiff()

	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "window",
			opts: []config.Option{
				changes.Window(5),
			},
			want: config.Config{
				Window:     5,
				ListWindow: config.Default.ListWindow,
				Refine:     config.Default.Refine,
				Markup:     config.Default.Markup,
			},
		},
		{
			name: "negative-window",
			opts: []config.Option{
				changes.Window(-3),
				changes.ListWindow(-1),
			},
			want: config.Config{
				Window:     0,
				ListWindow: 0,
				Refine:     config.Default.Refine,
				Markup:     config.Default.Markup,
			},
		},
		{
			name: "no-refinement",
			opts: []config.Option{
				changes.NoRefinement(),
			},
			want: config.Config{
				Window:     config.Default.Window,
				ListWindow: config.Default.ListWindow,
				Refine:     false,
				Markup:     config.Default.Markup,
			},
		},
		{
			name: "window-override",
			opts: []config.Option{
				changes.Window(5),
				changes.NoRefinement(),
				changes.Window(1),
			},
			want: config.Config{
				Window:     1,
				ListWindow: config.Default.ListWindow,
				Refine:     false,
				Markup:     config.Default.Markup,
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				changes.Window(5),
				changes.ListWindow(2),
				changes.NoRefinement(),
				changes.WithMarkup(wordDiff),
			},
			want: config.Config{
				Window:     5,
				ListWindow: 2,
				Refine:     false,
				Markup:     wordDiff,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, all)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsPanics(t *testing.T) {
	tests := []struct {
		name    string
		opts    []config.Option
		allowed config.Flag
	}{
		{
			name:    "not-allowed",
			opts:    []config.Option{changes.Window(3)},
			allowed: config.Markup,
		},
		{
			name:    "nil-markup",
			opts:    []config.Option{changes.WithMarkup(nil)},
			allowed: all,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("FromOptions(...) did not panic")
				}
			}()
			config.FromOptions(tt.opts, tt.allowed)
		})
	}
}
