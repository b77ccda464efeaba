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
	"znkr.io/changes/internal/config"
	"znkr.io/changes/markup"
)

// Option configures the behavior of [Show].
type Option = config.Option

// Window sets the number of unchanged words to show before and after every change when comparing
// text. Unchanged words further away from a change are omitted and marked with "[...]". The
// default is 50. With a window of 0, only the changes are shown.
func Window(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Window = max(0, n)
		return config.Window
	}
}

// ListWindow sets the number of unchanged elements to show before and after every change when
// comparing lists. The default is 0, i.e. only the changes are shown.
func ListWindow(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ListWindow = max(0, n)
		return config.ListWindow
	}
}

// NoRefinement highlights changed words as a whole. By default, a change is narrowed down to the
// characters that differ, e.g. "big <del>c</del><ins>h</ins>ats" instead of
// "big <del>cats</del><ins>hats</ins>".
func NoRefinement() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Refine = false
		return config.NoRefinement
	}
}

// WithMarkup sets the markup used to highlight deleted and inserted text. The default is
// [markup.HTML].
func WithMarkup(m markup.Markup) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Markup = m
		return config.Markup
	}
}
