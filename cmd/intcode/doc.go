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

// The intcode command line tool runs Intcode programs, alone or as chains of
// amplifiers. It is a showcase for the packages github.com/db47h/intcode/vm
// and github.com/db47h/intcode/pipeline.
//
// Usage:
//
//	intcode run [flags] program.txt
//	intcode amp [flags] program.txt
//	intcode dump [flags] program.txt
//
// Global flags:
//
//	--debug
//		  print a full stacktrace and a dump of the faulting instance on error
//	-v, --verbose
//		  log every input, output and halt on stderr as key=value pairs
//
// run: runs a single instance to completion and prints "halt <value>" where
// value is the content of address 0 when the program halted.
//
//	-i, --input value
//		  input value, may be repeated or comma separated
//	--patch addr=value
//		  set memory at addr to value before running (repeatable)
//	--ascii
//		  ASCII mode: stdin is fed to the program, character output is
//		  written as is and other values on a line of their own
//	--interactive
//		  read input from the terminal with line editing. In numeric mode,
//		  one value per line is expected.
//	--raw
//		  with --ascii, switch the terminal to raw mode and feed every key
//		  press as soon as it is typed. CTRL-D ends input.
//
// Input values given with -i are always fed first. Once exhausted, further
// input comes from stdin in ASCII mode, from the terminal in interactive mode,
// and is an error otherwise.
//
// amp: runs a chain of instances of the program, one per phase setting. The
// first instance receives the phase settings, then the first -i value or 0.
//
//	--phases 0,1,2,3,4
//		  phase settings
//	--feedback
//		  wire the last instance output back to the first one
//	--concurrent
//		  run every instance in its own goroutine
//	--max
//		  try every ordering of the phase settings and report the best one
//	--patch addr=value
//		  same as for run, applied to every instance
//
// dump: same as run, but writes the first n memory cells to stdout once the
// program has halted.
//
//	-n cells
//		  number of cells to dump, defaults to the size of used memory
package main
