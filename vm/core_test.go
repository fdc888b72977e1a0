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
	"testing"

	"github.com/db47h/intcode/vm"
)

type C []vm.Cell

func setup(code C, opts ...vm.Option) *vm.Instance {
	i, err := vm.New(vm.Program(code), opts...)
	if err != nil {
		panic(err)
	}
	return i
}

// check drives i to completion, feeding input and collecting output, then
// checks the output values, the halt value and the memory cells in mem.
func check(t *testing.T, testName string, i *vm.Instance, input, output C, halt vm.Cell, mem map[vm.Cell]vm.Cell) bool {
	var got C
	for {
		sig, err := i.Run()
		if err != nil {
			t.Errorf("%s: %+v", testName, err)
			return false
		}
		switch sig.Status {
		case vm.NeedsInput:
			if len(input) == 0 {
				t.Errorf("%s: unexpected input request @pc=%d", testName, i.PC)
				return false
			}
			if err = i.SetInput(input[0]); err != nil {
				t.Errorf("%s: %+v", testName, err)
				return false
			}
			input = input[1:]
			continue
		case vm.Output:
			got = append(got, sig.Value)
			continue
		}
		if sig.Value != halt {
			t.Errorf("%v", fmt.Errorf("%s: Bad halt value %d != %d", testName, sig.Value, halt))
			return false
		}
		break
	}
	diff := len(got) != len(output)
	if !diff {
		for k := range output {
			if output[k] != got[k] {
				diff = true
				break
			}
		}
	}
	if diff {
		t.Errorf("%v", fmt.Errorf("%s: Output error: expected %d, got %d", testName, output, got))
		return false
	}
	for addr, v := range mem {
		m, err := i.Peek(addr)
		if err != nil {
			t.Errorf("%s: %+v", testName, err)
			return false
		}
		if m != v {
			t.Errorf("%v", fmt.Errorf("%s: Memory error @%d: expected %d, got %d", testName, addr, v, m))
			return false
		}
	}
	return true
}

type M map[vm.Cell]vm.Cell

var tests = [...]struct {
	name   string
	code   C
	input  C
	output C
	halt   vm.Cell
	mem    M
}{
	{"halt", C{99}, nil, nil, 99, nil},
	{"add", C{1, 0, 0, 0, 99}, nil, nil, 2, nil},
	{"mul", C{2, 3, 0, 3, 99}, nil, nil, 2, M{3: 6}},
	{"mul_far", C{2, 4, 4, 5, 99, 0}, nil, nil, 2, M{5: 9801}},
	{"self_modify", C{1, 1, 1, 4, 99, 5, 6, 0, 99}, nil, nil, 30, M{4: 2}},
	{"day2", C{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, nil, nil, 3500, M{3: 70}},
	{"immediate", C{1101, 100, -1, 4, 0}, nil, nil, 1101, M{4: 99}},
	{"mul_immediate", C{1002, 4, 3, 4, 33}, nil, nil, 1002, M{4: 99}},
	{"io", C{3, 0, 4, 0, 99}, C{42}, C{42}, 42, nil},
	{"eq8_position", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, C{8}, C{1}, 3, nil},
	{"eq8_position_ne", C{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}, C{7}, C{0}, 3, nil},
	{"lt8_position", C{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}, C{5}, C{1}, 3, nil},
	{"eq8_immediate", C{3, 3, 1108, -1, 8, 3, 4, 3, 99}, C{8}, C{1}, 3, nil},
	{"lt8_immediate", C{3, 3, 1107, -1, 8, 3, 4, 3, 99}, C{9}, C{0}, 3, nil},
	{"jz_position", C{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}, C{0}, C{0}, 3, nil},
	{"jnz_immediate", C{3, 3, 1105, -1, 9, 1101, 0, 0, 12, 4, 12, 99, 1}, C{5}, C{1}, 3, nil},
	{"relative_base", C{109, 2, 204, -2, 99}, nil, C{109}, 109, nil},
	{"relative_read", C{109, 19, 204, -4, 99}, nil, C{0}, 109, nil},
	{"relative_write", C{109, 10, 21101, 3, 4, 0, 99}, nil, nil, 109, M{10: 7}},
	{"large_mul", C{1102, 34915192, 34915192, 7, 4, 7, 99, 0}, nil, C{1219070632396864}, 1102, nil},
	{"large_out", C{104, 1125899906842624, 99}, nil, C{1125899906842624}, 104, nil},
	{"far_write", C{1101, 6, 7, 1000000, 4, 1000000, 99}, nil, C{13}, 1101, M{1000000: 13, 999999: 0}},
	{"quine",
		C{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}, nil,
		C{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}, 109, nil},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		p := setup(test.code)
		check(t, test.name, p, test.input, test.output, test.halt, test.mem)
	}
}

// larger8 outputs 999 if the input is below 8, 1000 if it is equal to 8 and
// 1001 if greater.
var larger8 = C{3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
	1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
	999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99}

func TestCore_compare8(t *testing.T) {
	for in, out := range map[vm.Cell]vm.Cell{-3: 999, 7: 999, 8: 1000, 9: 1001, 1 << 40: 1001} {
		p := setup(larger8)
		check(t, fmt.Sprintf("compare8(%d)", in), p, C{in}, C{out}, 3, nil)
	}
}

// fib computes fib(n) for the input n.
var fib = C{
	3, 100, // in n -> [100]
	1101, 0, 0, 101, // a = 0
	1101, 0, 1, 102, // b = 1
	// loop @10
	1006, 100, 32, // if n == 0 goto end
	1, 101, 102, 103, // t = a + b
	1001, 102, 0, 101, // a = b
	1001, 103, 0, 102, // b = t
	1001, 100, -1, 100, // n--
	1105, 1, 10, // goto loop
	// end @32
	4, 101,
	99,
}

func TestCore_fib(t *testing.T) {
	p := setup(fib)
	check(t, "fib", p, C{30}, C{832040}, 3, nil)
}

func fibFunc(v vm.Cell) vm.Cell {
	var v0, v1 vm.Cell = 0, 1
	for ; v > 0; v-- {
		v0, v1 = v1, v0+v1
	}
	return v0
}

func Benchmark_Fib(b *testing.B) {
	prog := vm.Program(fib)
	for c := 0; c < b.N; c++ {
		out, err := vm.RunAll(prog, 35)
		if err != nil {
			b.Fatal(err)
		}
		if out[0] != fibFunc(35) {
			b.Fatalf("bad result %d", out[0])
		}
	}
}

func BenchmarkQuine(b *testing.B) {
	prog := vm.Program(tests[len(tests)-1].code)
	for c := 0; c < b.N; c++ {
		if _, err := vm.RunAll(prog); err != nil {
			b.Fatal(err)
		}
	}
}
