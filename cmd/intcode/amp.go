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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/db47h/intcode/pipeline"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	phases     []int64
	feedback   bool
	concurrent bool
	maxSearch  bool
)

var ampCmd = &cobra.Command{
	Use:   "amp [flags] program.txt",
	Short: "Run a chain of amplifiers",
	Long: `Run a chain of instances of an Intcode program, one per phase setting,
where the output of an instance is the input of the next one.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		atExit(nil, runAmp(args))
	},
}

func init() {
	addIOFlags(ampCmd)
	ampCmd.Flags().Int64SliceVar(&phases, "phases", nil, "phase settings")
	ampCmd.Flags().BoolVar(&feedback, "feedback", false, "feedback loop mode")
	ampCmd.Flags().BoolVar(&concurrent, "concurrent", false, "run instances concurrently")
	ampCmd.Flags().BoolVar(&maxSearch, "max", false, "search the phase ordering with the highest output")
	rootCmd.AddCommand(ampCmd)
}

func runAmp(args []string) error {
	if len(phases) == 0 {
		return errors.New("no phase settings")
	}
	prog, err := loadProgram(args)
	if err != nil {
		return err
	}
	ps, err := parsePatches(patches)
	if err != nil {
		return err
	}
	opts := patchOptions(ps)
	ph := cells(phases)

	if maxSearch {
		v, best, err := pipeline.Max(prog, feedback, ph, opts...)
		if err != nil {
			return err
		}
		logKV("event", "max", "value", v, "phases", fmt.Sprint(best))
		fmt.Printf("%d %v\n", v, best)
		return nil
	}

	var input vm.Cell
	if len(inputs) > 0 {
		input = vm.Cell(inputs[0])
	}
	insts, err := pipeline.New(prog, ph, opts...)
	if err != nil {
		return err
	}
	var v vm.Cell
	if concurrent {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		v, err = pipeline.DriveConcurrent(ctx, insts, input, feedback)
	} else {
		v, err = pipeline.Drive(insts, input, feedback)
	}
	if err != nil {
		return err
	}
	logKV("event", "result", "value", v, "phases", fmt.Sprint(ph), "feedback", feedback, "concurrent", concurrent)
	fmt.Println(v)
	return nil
}
