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

// showchange prints the change between two values the way it would appear in an audit trail.
//
//	showchange 'This is a test' 'This is test'
//	showchange -list 'a,b,c' 'a,x,c'
//	showchange -f old.yaml new.yaml
//
// The arguments are compared as text unless -list or -f is used. With -f, the arguments are YAML
// files: a sequence is compared as a list, a scalar as text.
//
// Changes are highlighted with ANSI colors if stdout is a terminal and with git style word diff
// markers otherwise.
package main

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

// MainCommand returns the showchange command.
func MainCommand() *cli.Command {
	cfg := &Config{Window: 50}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "showchange").
		WithSynopsis("showchange [opts] old new").
		WithDescription("showchange describes the change from old to new.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if !cfg.HTML && !cfg.Color && !cfg.WordDiff {
		if f, ok := cc.Out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			cfg.Color = true
		} else {
			cfg.WordDiff = true
		}
	}
	return show(cfg, cc.Out, args)
}
