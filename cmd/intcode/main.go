// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
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
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/db47h/intcode/program"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	debug   bool
	verbose bool
	inputs  []int64
	patches []string
)

var rootCmd = &cobra.Command{
	Use:           "intcode",
	Short:         "Run Intcode programs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log signals to stderr")
}

// addIOFlags adds the flags common to all commands that run a program.
func addIOFlags(cmd *cobra.Command) {
	cmd.Flags().Int64SliceVarP(&inputs, "input", "i", nil, "input `value` (can be specified multiple times)")
	cmd.Flags().StringArrayVar(&patches, "patch", nil, "set memory `addr=value` before running (can be specified multiple times)")
}

type patch struct {
	addr, value vm.Cell
}

func parsePatches(ps []string) ([]patch, error) {
	res := make([]patch, 0, len(ps))
	for _, p := range ps {
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			return nil, errors.Errorf("bad patch %q: expected addr=value", p)
		}
		a, err := strconv.ParseInt(strings.TrimSpace(kv[0]), 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad patch address %q", kv[0])
		}
		if a < 0 {
			return nil, errors.Errorf("bad patch address %d", a)
		}
		v, err := strconv.ParseInt(strings.TrimSpace(kv[1]), 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad patch value %q", kv[1])
		}
		res = append(res, patch{vm.Cell(a), vm.Cell(v)})
	}
	return res, nil
}

func patchOptions(ps []patch) []vm.Option {
	opts := make([]vm.Option, len(ps))
	for k, p := range ps {
		opts[k] = vm.Patch(p.addr, p.value)
	}
	return opts
}

// loadProgram loads the program file named in args.
func loadProgram(args []string) (vm.Program, error) {
	if len(args) != 1 {
		return nil, errors.New("expected exactly one program file")
	}
	return program.Load(args[0])
}

func cells(vs []int64) []vm.Cell {
	cs := make([]vm.Cell, len(vs))
	for k, v := range vs {
		cs[k] = vm.Cell(v)
	}
	return cs
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		w, _ := i.Peek(i.PC)
		fmt.Fprintf(os.Stderr, "PC: %d (%d), RB: %d, instructions: %d\n", i.PC, w, i.RB, i.InstructionCount())
		cfg := spew.ConfigState{Indent: "  ", MaxDepth: 3, DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(os.Stderr, i)
	}
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		atExit(nil, err)
	}
}
