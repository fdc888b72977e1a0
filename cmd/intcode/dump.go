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
	"io"
	"os"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var dumpCells int

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] program.txt",
	Short: "Run an Intcode program and dump its memory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		i, _, err := runProgram(args)
		if err == nil {
			err = dumpVM(i, dumpCells, os.Stdout)
		}
		atExit(i, err)
	},
}

func init() {
	addIOFlags(dumpCmd)
	addRunFlags(dumpCmd)
	dumpCmd.Flags().IntVarP(&dumpCells, "cells", "n", 0, "number of `cells` to dump (default: used memory)")
	rootCmd.AddCommand(dumpCmd)
}

// maxDumpCells bounds the size of a dump. Memory is sparse, so the
// high-water mark of a program that writes far away can be huge.
const maxDumpCells = 1 << 20

// dumpVM writes the first n memory cells of i to w, 16 per line. If n <= 0,
// all cells up to the memory high-water mark are written.
func dumpVM(i *vm.Instance, n int, w io.Writer) error {
	if n <= 0 {
		l := i.Mem().Len()
		if l > maxDumpCells {
			return errors.Errorf("memory high-water mark at %d cells, above the %d cells limit: use -n", l, maxDumpCells)
		}
		n = int(l)
	}
	if n > maxDumpCells {
		return errors.Errorf("cannot dump %d cells, limit is %d", n, maxDumpCells)
	}
	return ici.WriteCells(w, i.Mem().Snapshot(n), 16)
}
