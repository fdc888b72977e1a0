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
	"io"

	"github.com/db47h/intcode/vm"
	"github.com/spf13/cobra"
)

var (
	asciiMode   bool
	interactive bool
	rawTTY      bool
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program.txt",
	Short: "Run an Intcode program",
	Long: `Run an Intcode program to completion, feeding it the given input values
and printing its output.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		i, v, err := runProgram(args)
		switch err {
		case nil:
			fmt.Printf("halt %d\n", v)
		case io.EOF:
			// input closed by the user
			err = nil
		}
		atExit(i, err)
	},
}

func init() {
	addIOFlags(runCmd)
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&asciiMode, "ascii", false, "ASCII input and output")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "read input from the terminal with line editing")
	cmd.Flags().BoolVar(&rawTTY, "raw", false, "with --ascii, feed key presses as they are typed")
}

// runProgram loads the program in args and drives it to completion with the
// IO configured on the command line. It returns io.EOF if input was closed
// before the program halted.
func runProgram(args []string) (*vm.Instance, vm.Cell, error) {
	prog, err := loadProgram(args)
	if err != nil {
		return nil, 0, err
	}
	ps, err := parsePatches(patches)
	if err != nil {
		return nil, 0, err
	}
	i, err := vm.New(prog, patchOptions(ps)...)
	if err != nil {
		return nil, 0, err
	}
	s, err := newIOSetup(asciiMode, interactive, rawTTY)
	if err != nil {
		return i, 0, err
	}
	v, err := vm.Drive(i, s.in, s.out)
	s.close()
	logKV("event", "end", "pc", i.PC, "instructions", i.InstructionCount(), "halted", i.Halted())
	return i, v, err
}
