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

package vm_test

import (
	"fmt"

	"github.com/db47h/intcode/vm"
)

// Shows the basic driving loop: Run until halt, supplying input on demand and
// consuming output values one at a time.
func ExampleInstance_Run() {
	// "equals 8" test program: outputs 1 if the input is 8, 0 otherwise.
	prog := vm.Program{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}

	for _, in := range []vm.Cell{8, 7} {
		i, err := vm.New(prog)
		if err != nil {
			panic(err)
		}
	loop:
		for {
			sig, err := i.Run()
			if err != nil {
				panic(err)
			}
			fmt.Println(sig)
			switch sig.Status {
			case vm.NeedsInput:
				i.SetInput(in)
			case vm.Halted:
				break loop
			}
		}
	}

	// Output:
	// needs input
	// output 1
	// halted 3
	// needs input
	// output 0
	// halted 3
}

// The same program, with the initial input given as an option. With no
// handler for input, Drive fails if the program asks for more.
func ExampleDrive() {
	prog := vm.Program{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}
	i, err := vm.New(prog, vm.Input(8))
	if err != nil {
		panic(err)
	}
	v, err := vm.Drive(i, nil, func(_ *vm.Instance, v vm.Cell) error {
		fmt.Println("out:", v)
		return nil
	})
	if err != nil {
		panic(err)
	}
	fmt.Println("mem[0]:", v)

	// Output:
	// out: 1
	// mem[0]: 3
}

// A program that outputs a copy of itself.
func ExampleRunAll() {
	quine := vm.Program{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
	out, err := vm.RunAll(quine)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	// Output:
	// [109 1 204 -1 1001 100 1 100 1008 100 16 101 1006 101 0 99]
}

// Patching memory before the first run, here the "noun" and "verb" at
// addresses 1 and 2.
func ExamplePatch() {
	prog := vm.Program{1, 0, 0, 3, 99}
	i, err := vm.New(prog, vm.Patch(1, 4), vm.Patch(2, 4))
	if err != nil {
		panic(err)
	}
	sig, err := i.Run()
	if err != nil {
		panic(err)
	}
	v, _ := i.Peek(3)
	fmt.Println(sig, v)

	// Output:
	// halted 1 198
}

// Faults are fatal. The error tells what went wrong and where.
func ExampleError() {
	i, err := vm.New(vm.Program{1101, 1, 1, 0, 1, 0, -2, 0, 99})
	if err != nil {
		panic(err)
	}
	_, err = i.Run()
	fmt.Println(err)
	_, err = i.Run()
	fmt.Println(err)

	// Output:
	// invalid address -2 @pc=4 (word 1)
	// caller protocol violation: instance faulted: invalid address -2 @pc=4 (word 1)
}
