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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// changes.Option.
package config

import "znkr.io/changes/markup"

// Config collects all configurable parameters for rendering changes in this module.
type Config struct {
	// Window is the number of unchanged words to keep before and after a change in word mode.
	Window int

	// ListWindow is the number of unchanged values to keep before and after a change in value
	// mode. Zero means that only the changes are shown.
	ListWindow int

	// If set, changed words are refined to the characters that actually differ.
	Refine bool

	// Markup renders deleted and inserted text.
	Markup markup.Markup
}

// Default is the default configuration.
var Default = Config{
	Window:     50,
	ListWindow: 0,
	Refine:     true,
	Markup:     markup.HTML(),
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not allowed for a function.
type Flag int

const (
	Window Flag = 1 << iota
	ListWindow
	NoRefinement
	Markup
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.Markup == nil {
		panic("changes.WithMarkup: markup must not be nil")
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Window:
		return "changes.Window"
	case ListWindow:
		return "changes.ListWindow"
	case NoRefinement:
		return "changes.NoRefinement"
	case Markup:
		return "changes.WithMarkup"
	default:
		panic("never reached")
	}
}
